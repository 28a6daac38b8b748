// Package dataset 负责按「玩法 + 采集日」落盘开奖数据集。
// 每个玩法同一时刻最多保留一个文件，旧日期文件按文件名前缀淘汰。
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"lottery-master/internal/extractor"
	"lottery-master/internal/logger"
	"lottery-master/internal/lottery"
)

const fileExt = ".csv"

// 各玩法数据集文件的表头
var headers = map[lottery.Game][]string{
	lottery.SSQ:  {"期号", "红球号码", "蓝球号码"},
	lottery.DLT:  {"期号", "前区号码", "后区号码1", "后区号码2"},
	lottery.FC3D: {"期号", "百位", "十位", "个位"},
}

// Store 数据集文件存取
type Store struct {
	dir      string
	prefixes map[lottery.Game]string
}

// NewStore 创建数据集存取器，目录不存在时创建
func NewStore(dir string, prefixes map[lottery.Game]string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %v", err)
	}
	return &Store{dir: dir, prefixes: prefixes}, nil
}

// Prefix 玩法的文件名前缀
func (s *Store) Prefix(game lottery.Game) string {
	if p, ok := s.prefixes[game]; ok {
		return p
	}
	return string(game) + "_data_"
}

// FileName 按采集日组成数据集文件路径，日期是采集日而不是开奖日
func (s *Store) FileName(game lottery.Game, day string) string {
	return filepath.Join(s.dir, s.Prefix(game)+day+fileExt)
}

// Exists 判断数据集文件是否存在
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EvictStale 删除同一玩法前缀下不属于指定采集日的旧文件。
// 只看文件名，不看内容；其他玩法的文件不受影响。
func (s *Store) EvictStale(game lottery.Game, day string) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read data dir: %v", err)
	}

	prefix := s.Prefix(game)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || strings.Contains(name, day) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			logger.Warnf("Failed to evict stale dataset %s: %v", name, err)
			continue
		}
		logger.Infof("Evicted stale dataset: %s", name)
	}
	return nil
}

// Write 把记录写为数据集文件：UTF-8表格，表头 + 每期一行
func (s *Store) Write(game lottery.Game, path string, records []lottery.DrawRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers[game]); err != nil {
		return fmt.Errorf("failed to write dataset header: %v", err)
	}
	for _, rec := range records {
		if err := w.Write(formatRow(game, rec)); err != nil {
			return fmt.Errorf("failed to write dataset row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush dataset file: %v", err)
	}
	return nil
}

// Read 读取数据集文件并逐行重新提取校验。
// 写入可能中断留下截断文件，存在性检查说明不了完整性，
// 所以读取时坏行直接丢弃而不是报错。
func (s *Store) Read(game lottery.Game, path string) ([]lottery.DrawRecord, error) {
	profile, err := lottery.ProfileFor(game)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %v", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	labels := rows[0]
	records := make([]lottery.DrawRecord, 0, len(rows)-1)
	dropped := 0
	for _, cells := range rows[1:] {
		rec, ok := extractor.FromDataset(extractor.Row{Labels: labels, Cells: cells}, profile)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	if dropped > 0 {
		logger.Warnf("Dropped %d invalid rows while reading %s", dropped, filepath.Base(path))
	}
	return records, nil
}

// LatestFile 返回玩法当前数据集文件路径，没有则返回空串
func (s *Store) LatestFile(game lottery.Game) string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return ""
	}
	prefix := s.Prefix(game)
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) {
			return filepath.Join(s.dir, entry.Name())
		}
	}
	return ""
}

func formatRow(game lottery.Game, rec lottery.DrawRecord) []string {
	switch game {
	case lottery.FC3D:
		return []string{rec.Date,
			strconv.Itoa(rec.Primary[0]),
			strconv.Itoa(rec.Primary[1]),
			strconv.Itoa(rec.Primary[2])}
	case lottery.DLT:
		return []string{rec.Date, joinNumbers(rec.Primary),
			strconv.Itoa(rec.Secondary[0]),
			strconv.Itoa(rec.Secondary[1])}
	default:
		return []string{rec.Date, joinNumbers(rec.Primary),
			strconv.Itoa(rec.Secondary[0])}
	}
}

func joinNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// Today 当前采集日，全仓库统一的日期格式
func Today(now time.Time) string {
	return now.Format("2006-01-02")
}
