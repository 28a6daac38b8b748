package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lottery-master/internal/lottery"
)

func TestParseStructuredFencedJSON(t *testing.T) {
	raw := "根据分析，结果如下：\n```json\n" + `{
  "hotColdAnalysis": {
    "frontZone": {"hotNumbers": [1, 5, 12], "coldNumbers": [30, 31]}
  },
  "recommendations": [
    {"strategy": "高频优先", "frontZone": [1, 5, 12, 18, 23, 33], "backZone": [7], "rationale": "近期高频组合"}
  ],
  "riskWarnings": ["彩票有风险，投注需谨慎"]
}` + "\n```\n祝您好运。"

	parsed := ParseStructured(raw, lottery.SSQ)
	result, ok := parsed.(*StandardAnalysis)
	require.True(t, ok)
	require.Equal(t, []int{1, 5, 12}, result.HotColdAnalysis.FrontZone.HotNumbers)
	require.Len(t, result.Recommendations, 1)
	require.Equal(t, "高频优先", result.Recommendations[0].Strategy)
	require.Equal(t, []int{7}, result.Recommendations[0].BackZone)
	require.NotEmpty(t, result.RiskWarnings)
}

func TestParseStructuredFC3D(t *testing.T) {
	raw := "```json\n" + `{
  "spanAnalysis": {"currentSpan": 4, "spanTrend": "收窄", "recommendedSpan": [3, 4, 5]},
  "topRecommendation": {"directSelection": [9, 0, 5], "rationale": "百位走热"}
}` + "\n```"

	parsed := ParseStructured(raw, lottery.FC3D)
	result, ok := parsed.(*FC3DAnalysis)
	require.True(t, ok)
	require.Equal(t, 4, result.SpanAnalysis.CurrentSpan)
	require.Equal(t, []int{9, 0, 5}, result.TopRecommendation.DirectSelection)
}

func TestParseStructuredFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no fenced block", "这里没有任何代码块，只有闲聊。"},
		{"plain fence without json tag", "```\n{\"a\": 1}\n```"},
		{"malformed json", "```json\n{broken\n```"},
		{"json array not object", "```json\n[1, 2, 3]\n```"},
		{"empty content", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseStructured(tt.raw, lottery.SSQ)
			result, ok := parsed.(*StandardAnalysis)
			require.True(t, ok)
			require.Equal(t, DefaultStandardResult(), result)

			parsed = ParseStructured(tt.raw, lottery.FC3D)
			fc3d, ok := parsed.(*FC3DAnalysis)
			require.True(t, ok)
			require.Equal(t, DefaultFC3DResult(), fc3d)
		})
	}
}

func TestParseStructuredTakesFirstFencedBlock(t *testing.T) {
	raw := "```json\n{\"riskWarnings\": [\"第一块\"]}\n```\n```json\n{\"riskWarnings\": [\"第二块\"]}\n```"
	parsed := ParseStructured(raw, lottery.SSQ)
	result := parsed.(*StandardAnalysis)
	require.Equal(t, []string{"第一块"}, result.RiskWarnings)
}

func TestBuildPrompts(t *testing.T) {
	records := []lottery.DrawRecord{
		{Date: "2024001", Primary: []int{1, 2, 3, 4, 5, 6}, Secondary: []int{7}},
		{Date: "2024002", Primary: []int{2, 9, 15, 21, 28, 31}, Secondary: []int{12}},
	}

	system, user, err := BuildPrompts(lottery.SSQ, records, 20)
	require.NoError(t, err)
	require.Contains(t, system, "双色球")
	require.Contains(t, user, "2024001")
	require.Contains(t, user, "```json")
	require.NotContains(t, user, "${data}")

	// 相同输入必须产出相同提示词
	system2, user2, err := BuildPrompts(lottery.SSQ, records, 20)
	require.NoError(t, err)
	require.Equal(t, system, system2)
	require.Equal(t, user, user2)
}

func TestBuildPromptsTrimsToRecent(t *testing.T) {
	records := []lottery.DrawRecord{
		{Date: "2024001", Primary: []int{1, 2, 3, 4, 5, 6}, Secondary: []int{7}},
		{Date: "2024002", Primary: []int{2, 9, 15, 21, 28, 31}, Secondary: []int{12}},
		{Date: "2024003", Primary: []int{3, 10, 16, 22, 29, 32}, Secondary: []int{5}},
	}

	_, user, err := BuildPrompts(lottery.SSQ, records, 2)
	require.NoError(t, err)
	require.NotContains(t, user, "2024001")
	require.Contains(t, user, "2024002")
	require.Contains(t, user, "2024003")
}

func TestBuildPromptsPerGame(t *testing.T) {
	records := []lottery.DrawRecord{
		{Date: "24001", Primary: []int{1, 2, 3, 4, 5}, Secondary: []int{6, 7}},
	}
	system, _, err := BuildPrompts(lottery.DLT, records, 0)
	require.NoError(t, err)
	require.Contains(t, system, "大乐透")

	digits := []lottery.DrawRecord{{Date: "2024120", Primary: []int{9, 0, 5}}}
	system, user, err := BuildPrompts(lottery.FC3D, digits, 0)
	require.NoError(t, err)
	require.Contains(t, system, "福彩3D")
	require.Contains(t, user, "spanAnalysis")
}
