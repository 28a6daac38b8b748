// Package cache 提供按TTL失效的结果缓存。
// 过期只在读取时惰性判断，没有后台清理协程；
// 同一键的并发未命中通过singleflight合并为一次计算。
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"lottery-master/internal/logger"
)

// Entry 缓存项
type Entry struct {
	Value     interface{}
	CreatedAt time.Time
}

// Cache TTL结果缓存。条目只增不减：过期条目等下一次写入覆盖，
// 不同键的数量没有上限。
type Cache struct {
	items sync.Map
	ttl   time.Duration
	group singleflight.Group

	// 测试注入时钟
	now func() time.Time
}

// New 创建缓存
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now}
}

// expired 条目在 createdAt+TTL 这一刻起算失效
func (c *Cache) expired(e *Entry) bool {
	return c.now().Sub(e.CreatedAt) >= c.ttl
}

// Get 读取缓存，不存在或已过TTL视为未命中
func (c *Cache) Get(key string) (interface{}, bool) {
	value, ok := c.items.Load(key)
	if !ok {
		return nil, false
	}
	entry := value.(*Entry)
	if c.expired(entry) {
		logger.Debugf("Cache expired: %s", key)
		return nil, false
	}
	logger.Debugf("Cache hit: %s", key)
	return entry.Value, true
}

// Put 无条件写入，覆盖同键的旧条目
func (c *Cache) Put(key string, value interface{}) {
	c.items.Store(key, &Entry{Value: value, CreatedAt: c.now()})
	logger.Debugf("Cache set: %s", key)
}

// GetOrCompute 命中则直接返回，否则计算并写入。
// 同一键的并发调用共享同一次进行中的计算，计算失败不落缓存。
func (c *Cache) GetOrCompute(key string, compute func() (interface{}, error)) (interface{}, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		// 排队期间可能已有同键计算完成
		if value, ok := c.Get(key); ok {
			return value, nil
		}
		value, err := compute()
		if err != nil {
			return nil, err
		}
		c.Put(key, value)
		return value, nil
	})
	return value, err
}

// Delete 删除指定键
func (c *Cache) Delete(key string) {
	c.items.Delete(key)
}

// Len 当前条目数，含已过期未覆盖的条目
func (c *Cache) Len() int {
	count := 0
	c.items.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return count
}
