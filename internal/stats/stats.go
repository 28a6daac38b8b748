// Package stats 对开奖记录序列计算频率、遗漏间隔与出现概率，
// 并生成走势图数据点。统计总是返回范围内全部号码的完整表，
// 数据不足时补零而不是报错。
package stats

import (
	"fmt"
	"math"

	"lottery-master/internal/lottery"
)

// DefaultWindow 默认的统计窗口期数
const DefaultWindow = 100

// NumberStat 单个号码在窗口内的统计
type NumberStat struct {
	Number          int     `json:"number"`
	Frequency       int     `json:"frequency"`
	AverageInterval float64 `json:"averageInterval"`
	MaxInterval     int     `json:"maxInterval"`
	LastInterval    int     `json:"lastInterval"`
	CurrentInterval int     `json:"currentInterval"`
	Probability     float64 `json:"probability"`
}

// TrendPoint 走势图数据点：期序号 + 号码值
type TrendPoint struct {
	Position int `json:"position"`
	Value    int `json:"value"`
}

// TrendDataset 一条带标签的走势线
type TrendDataset struct {
	Label string       `json:"label"`
	Data  []TrendPoint `json:"data"`
}

// Result 一次统计的完整输出
type Result struct {
	NumberStats []NumberStat `json:"numberStats"`
	Trend       TrendDataset `json:"trend"`
}

// Analyze 对记录序列的尾部窗口做分区统计。
// records 按时间先后排列，window<=0 或序列为空时返回全零表。
// 未知玩法或分区选择器属于调用方错误，直接返回error。
func Analyze(records []lottery.DrawRecord, game lottery.Game, zone lottery.Zone, window int) (*Result, error) {
	profile, err := lottery.ProfileFor(game)
	if err != nil {
		return nil, err
	}
	rng, err := profile.ZoneRange(zone)
	if err != nil {
		return nil, err
	}

	if window <= 0 {
		window = 0
	}
	if window > len(records) {
		window = len(records)
	}
	data := records
	if len(records) > window {
		data = records[len(records)-window:]
	}

	stats := make(map[int]*NumberStat, rng.Size())
	intervals := make(map[int][]int, rng.Size())
	lastSeen := make(map[int]int, rng.Size())
	for n := rng.Min; n <= rng.Max; n++ {
		stats[n] = &NumberStat{Number: n}
		lastSeen[n] = -1
	}

	var trend []TrendPoint
	for index, rec := range data {
		nums, err := profile.ZoneNumbers(rec, zone)
		if err != nil {
			return nil, err
		}
		if len(nums) == 0 {
			continue
		}

		// 走势线：前区只取每期第一个号码作为单条曲线，
		// 后区的每个号码都各成一点
		if zone == lottery.ZonePrimary {
			trend = append(trend, TrendPoint{Position: index + 1, Value: nums[0]})
		} else {
			for _, n := range nums {
				trend = append(trend, TrendPoint{Position: index + 1, Value: n})
			}
		}

		present := make(map[int]bool, len(nums))
		for _, n := range nums {
			if rng.Contains(n) {
				present[n] = true
				stats[n].Frequency++
			}
		}

		for n := rng.Min; n <= rng.Max; n++ {
			if present[n] {
				if lastSeen[n] >= 0 {
					gap := index - lastSeen[n]
					intervals[n] = append(intervals[n], gap)
					stats[n].LastInterval = gap
				}
				lastSeen[n] = index
				stats[n].CurrentInterval = 0
				continue
			}
			if lastSeen[n] >= 0 {
				stats[n].CurrentInterval = index - lastSeen[n]
			} else {
				// 窗口内从未出现，与「间隔为零」区分开
				stats[n].CurrentInterval = index + 1
			}
		}
	}

	for n := rng.Min; n <= rng.Max; n++ {
		if gaps := intervals[n]; len(gaps) > 0 {
			sum, max := 0, 0
			for _, g := range gaps {
				sum += g
				if g > max {
					max = g
				}
			}
			stats[n].AverageInterval = round2(float64(sum) / float64(len(gaps)))
			stats[n].MaxInterval = max
		}
		if len(data) > 0 {
			stats[n].Probability = round2(float64(stats[n].Frequency) / float64(len(data)))
		}
	}

	ordered := make([]NumberStat, 0, rng.Size())
	for n := rng.Min; n <= rng.Max; n++ {
		ordered = append(ordered, *stats[n])
	}

	return &Result{
		NumberStats: ordered,
		Trend:       TrendDataset{Label: trendLabel(zone), Data: trend},
	}, nil
}

// Frequency 频率分布图：窗口内每个号码的出现次数
func Frequency(records []lottery.DrawRecord, game lottery.Game, zone lottery.Zone, window int) (*TrendDataset, error) {
	result, err := Analyze(records, game, zone, window)
	if err != nil {
		return nil, err
	}
	points := make([]TrendPoint, 0, len(result.NumberStats))
	for _, st := range result.NumberStats {
		points = append(points, TrendPoint{Position: st.Number, Value: st.Frequency})
	}
	return &TrendDataset{Label: frequencyLabel(zone), Data: points}, nil
}

func trendLabel(zone lottery.Zone) string {
	switch zone {
	case lottery.ZoneSecondary:
		return "蓝球走势"
	case lottery.ZoneHundreds:
		return "百位走势"
	case lottery.ZoneTens:
		return "十位走势"
	case lottery.ZoneOnes:
		return "个位走势"
	default:
		return "红球走势"
	}
}

func frequencyLabel(zone lottery.Zone) string {
	if zone == lottery.ZoneSecondary {
		return "蓝球出现频率"
	}
	return "红球出现频率"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Describe 统计的简要文本摘要，用于日志输出
func Describe(result *Result) string {
	best := NumberStat{}
	for _, st := range result.NumberStats {
		if st.Frequency > best.Frequency {
			best = st
		}
	}
	return fmt.Sprintf("%d numbers tracked, hottest %d (freq=%d, p=%.2f)",
		len(result.NumberStats), best.Number, best.Frequency, best.Probability)
}
