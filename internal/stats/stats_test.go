package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lottery-master/internal/lottery"
)

func ssqRecord(date string, primary []int, secondary int) lottery.DrawRecord {
	return lottery.DrawRecord{Date: date, Primary: primary, Secondary: []int{secondary}}
}

func TestAnalyzePrimaryZone(t *testing.T) {
	records := []lottery.DrawRecord{
		ssqRecord("2024001", []int{1, 2, 3, 4, 5, 6}, 7),
		ssqRecord("2024002", []int{7, 8, 9, 10, 11, 12}, 8),
		ssqRecord("2024003", []int{1, 2, 3, 4, 5, 6}, 9),
	}

	result, err := Analyze(records, lottery.SSQ, lottery.ZonePrimary, 3)
	require.NoError(t, err)
	require.Len(t, result.NumberStats, 33)

	byNumber := make(map[int]NumberStat, len(result.NumberStats))
	for _, st := range result.NumberStats {
		byNumber[st.Number] = st
	}

	// 号码1：第1期出现，隔1期后第3期再出现
	one := byNumber[1]
	require.Equal(t, 2, one.Frequency)
	require.Equal(t, 2, one.LastInterval)
	require.Equal(t, 2, one.MaxInterval)
	require.Equal(t, 0, one.CurrentInterval)
	require.InDelta(t, 2.0, one.AverageInterval, 1e-9)
	require.InDelta(t, 0.67, one.Probability, 1e-9)

	// 号码7：只在第2期出现，离最近一期隔1期
	seven := byNumber[7]
	require.Equal(t, 1, seven.Frequency)
	require.Equal(t, 1, seven.CurrentInterval)
	require.Equal(t, 0, seven.LastInterval)
	require.InDelta(t, 0.33, seven.Probability, 1e-9)

	// 窗口内从未出现的号码：当前遗漏等于窗口长度
	unseen := byNumber[20]
	require.Equal(t, 0, unseen.Frequency)
	require.Equal(t, 3, unseen.CurrentInterval)
	require.Equal(t, 0, unseen.MaxInterval)
	require.InDelta(t, 0.0, unseen.AverageInterval, 1e-9)
	require.InDelta(t, 0.0, unseen.Probability, 1e-9)

	// 频率守恒：窗口内每期前区号码都计入
	total := 0
	for _, st := range result.NumberStats {
		total += st.Frequency
	}
	require.Equal(t, 3*6, total)

	// 前区走势线每期一点，取首个号码
	require.Equal(t, "红球走势", result.Trend.Label)
	require.Equal(t, []TrendPoint{
		{Position: 1, Value: 1},
		{Position: 2, Value: 7},
		{Position: 3, Value: 1},
	}, result.Trend.Data)
}

func TestAnalyzeSecondaryZoneDLT(t *testing.T) {
	records := []lottery.DrawRecord{
		{Date: "24001", Primary: []int{1, 2, 3, 4, 5}, Secondary: []int{2, 11}},
		{Date: "24002", Primary: []int{6, 7, 8, 9, 10}, Secondary: []int{2, 5}},
	}

	result, err := Analyze(records, lottery.DLT, lottery.ZoneSecondary, 100)
	require.NoError(t, err)
	require.Len(t, result.NumberStats, 12)

	total := 0
	for _, st := range result.NumberStats {
		total += st.Frequency
	}
	require.Equal(t, 2*2, total)

	// 后区每个号码都各成一个走势点
	require.Equal(t, "蓝球走势", result.Trend.Label)
	require.Len(t, result.Trend.Data, 4)
	require.Equal(t, TrendPoint{Position: 1, Value: 2}, result.Trend.Data[0])
	require.Equal(t, TrendPoint{Position: 1, Value: 11}, result.Trend.Data[1])
}

func TestAnalyzeWindowTrimsToTrailingDraws(t *testing.T) {
	records := []lottery.DrawRecord{
		ssqRecord("2024001", []int{1, 2, 3, 4, 5, 6}, 7),
		ssqRecord("2024002", []int{7, 8, 9, 10, 11, 12}, 8),
		ssqRecord("2024003", []int{13, 14, 15, 16, 17, 18}, 9),
	}

	result, err := Analyze(records, lottery.SSQ, lottery.ZonePrimary, 2)
	require.NoError(t, err)

	byNumber := make(map[int]NumberStat, len(result.NumberStats))
	for _, st := range result.NumberStats {
		byNumber[st.Number] = st
	}
	// 第1期在窗口之外
	require.Equal(t, 0, byNumber[1].Frequency)
	require.Equal(t, 1, byNumber[7].Frequency)
	require.Equal(t, 1, byNumber[13].Frequency)
	require.InDelta(t, 0.5, byNumber[7].Probability, 1e-9)
}

func TestAnalyzeEmptyReturnsZeroFilledTable(t *testing.T) {
	for _, window := range []int{0, 100} {
		result, err := Analyze(nil, lottery.SSQ, lottery.ZoneSecondary, window)
		require.NoError(t, err)
		require.Len(t, result.NumberStats, 16)
		for _, st := range result.NumberStats {
			require.Zero(t, st.Frequency)
			require.Zero(t, st.CurrentInterval)
			require.Zero(t, st.Probability)
		}
		require.Empty(t, result.Trend.Data)
	}
}

func TestAnalyzePositionalZones(t *testing.T) {
	records := []lottery.DrawRecord{
		{Date: "2024120", Primary: []int{9, 0, 5}},
		{Date: "2024121", Primary: []int{9, 3, 5}},
		{Date: "2024122", Primary: []int{1, 0, 5}},
	}

	result, err := Analyze(records, lottery.FC3D, lottery.ZoneHundreds, 100)
	require.NoError(t, err)
	require.Len(t, result.NumberStats, 10)

	byNumber := make(map[int]NumberStat, len(result.NumberStats))
	for _, st := range result.NumberStats {
		byNumber[st.Number] = st
	}
	require.Equal(t, 2, byNumber[9].Frequency)
	require.Equal(t, 1, byNumber[9].CurrentInterval)
	require.Equal(t, 1, byNumber[1].Frequency)
	require.Equal(t, "百位走势", result.Trend.Label)
	require.Equal(t, []TrendPoint{
		{Position: 1, Value: 9},
		{Position: 2, Value: 9},
		{Position: 3, Value: 1},
	}, result.Trend.Data)
}

func TestAnalyzeRejectsUnknownSelectors(t *testing.T) {
	records := []lottery.DrawRecord{
		ssqRecord("2024001", []int{1, 2, 3, 4, 5, 6}, 7),
	}

	_, err := Analyze(records, lottery.Game("pk10"), lottery.ZonePrimary, 100)
	require.ErrorIs(t, err, lottery.ErrUnknownGame)

	_, err = Analyze(records, lottery.SSQ, lottery.ZoneHundreds, 100)
	require.Error(t, err)
}

func TestFrequency(t *testing.T) {
	records := []lottery.DrawRecord{
		ssqRecord("2024001", []int{1, 2, 3, 4, 5, 6}, 7),
		ssqRecord("2024002", []int{1, 8, 9, 10, 11, 12}, 7),
	}

	chart, err := Frequency(records, lottery.SSQ, lottery.ZonePrimary, 100)
	require.NoError(t, err)
	require.Equal(t, "红球出现频率", chart.Label)
	require.Len(t, chart.Data, 33)
	require.Equal(t, TrendPoint{Position: 1, Value: 2}, chart.Data[0])
	require.Equal(t, TrendPoint{Position: 8, Value: 1}, chart.Data[7])
	require.Equal(t, TrendPoint{Position: 33, Value: 0}, chart.Data[32])
}

func TestRound2Precision(t *testing.T) {
	// 三期里出现两次，平均间隔带循环小数时保留两位
	records := []lottery.DrawRecord{
		ssqRecord("2024001", []int{1, 2, 3, 4, 5, 6}, 7),
		ssqRecord("2024002", []int{1, 8, 9, 10, 11, 12}, 7),
		ssqRecord("2024003", []int{13, 14, 15, 16, 17, 18}, 7),
	}
	result, err := Analyze(records, lottery.SSQ, lottery.ZonePrimary, 3)
	require.NoError(t, err)
	for _, st := range result.NumberStats {
		if st.Number == 1 {
			require.InDelta(t, 0.67, st.Probability, 1e-9)
		}
	}
}

func TestDescribe(t *testing.T) {
	records := []lottery.DrawRecord{
		ssqRecord("2024001", []int{1, 2, 3, 4, 5, 6}, 7),
		ssqRecord("2024002", []int{1, 8, 9, 10, 11, 12}, 7),
	}
	result, err := Analyze(records, lottery.SSQ, lottery.ZonePrimary, 100)
	require.NoError(t, err)
	require.Contains(t, Describe(result), "hottest 1")
}
