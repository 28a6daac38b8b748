package analyzer

// NumberFrequency 号码与出现频率
type NumberFrequency struct {
	Number    int `json:"number"`
	Frequency int `json:"frequency"`
}

// ZoneHotCold 一个分区的冷热号划分
type ZoneHotCold struct {
	HotNumbers    []int `json:"hotNumbers"`
	ColdNumbers   []int `json:"coldNumbers"`
	RisingNumbers []int `json:"risingNumbers,omitempty"`
}

// Recommendation 一组推荐号码
type Recommendation struct {
	Strategy  string `json:"strategy"`
	FrontZone []int  `json:"frontZone,omitempty"`
	BackZone  []int  `json:"backZone,omitempty"`
	Numbers   []int  `json:"numbers,omitempty"`
	Rationale string `json:"rationale"`
}

// StandardAnalysis 双色球/大乐透的结构化分析结果
type StandardAnalysis struct {
	FrequencyAnalysis struct {
		FrontZone []NumberFrequency `json:"frontZone"`
		BackZone  []NumberFrequency `json:"backZone"`
	} `json:"frequencyAnalysis"`

	HotColdAnalysis struct {
		FrontZone ZoneHotCold `json:"frontZone"`
		BackZone  ZoneHotCold `json:"backZone"`
	} `json:"hotColdAnalysis"`

	MissingAnalysis struct {
		FrontZone struct {
			MaxMissingNumber int      `json:"maxMissingNumber"`
			MissingTrend     string   `json:"missingTrend"`
			Warnings         []string `json:"warnings"`
		} `json:"frontZone"`
		BackZone struct {
			MissingStatus string   `json:"missingStatus"`
			Warnings      []string `json:"warnings"`
		} `json:"backZone"`
	} `json:"missingAnalysis"`

	TrendAnalysis struct {
		FrontZoneFeatures []string `json:"frontZoneFeatures"`
		BackZoneFeatures  []string `json:"backZoneFeatures"`
		KeyTurningPoints  []string `json:"keyTurningPoints"`
	} `json:"trendAnalysis"`

	OddEvenAnalysis struct {
		FrontZoneRatio   string `json:"frontZoneRatio"`
		BackZoneRatio    string `json:"backZoneRatio"`
		RecommendedRatio string `json:"recommendedRatio"`
	} `json:"oddEvenAnalysis"`

	Recommendations []Recommendation `json:"recommendations"`

	TopRecommendation struct {
		FrontZone []int  `json:"frontZone"`
		BackZone  []int  `json:"backZone"`
		Rationale string `json:"rationale"`
	} `json:"topRecommendation"`

	RiskWarnings []string `json:"riskWarnings"`
}

// PlaceHotCold 福彩3D单个数位的冷热号
type PlaceHotCold struct {
	HotNumbers  []int `json:"hotNumbers"`
	ColdNumbers []int `json:"coldNumbers"`
}

// PlaceMissing 福彩3D单个数位的遗漏状况
type PlaceMissing struct {
	MaxMissingNumber int    `json:"maxMissingNumber"`
	MissingTrend     string `json:"missingTrend"`
}

// FC3DAnalysis 福彩3D的结构化分析结果
type FC3DAnalysis struct {
	FrequencyAnalysis struct {
		HundredsPlace []NumberFrequency `json:"hundredsPlace"`
		TensPlace     []NumberFrequency `json:"tensPlace"`
		OnesPlace     []NumberFrequency `json:"onesPlace"`
		SumValue      struct {
			MostFrequent []int  `json:"mostFrequent"`
			Distribution string `json:"distribution"`
		} `json:"sumValue"`
	} `json:"frequencyAnalysis"`

	HotColdAnalysis struct {
		HundredsPlace PlaceHotCold `json:"hundredsPlace"`
		TensPlace     PlaceHotCold `json:"tensPlace"`
		OnesPlace     PlaceHotCold `json:"onesPlace"`
	} `json:"hotColdAnalysis"`

	MissingAnalysis struct {
		HundredsPlace PlaceMissing `json:"hundredsPlace"`
		TensPlace     PlaceMissing `json:"tensPlace"`
		OnesPlace     PlaceMissing `json:"onesPlace"`
	} `json:"missingAnalysis"`

	SpanAnalysis struct {
		CurrentSpan     int    `json:"currentSpan"`
		SpanTrend       string `json:"spanTrend"`
		RecommendedSpan []int  `json:"recommendedSpan"`
	} `json:"spanAnalysis"`

	OddEvenAnalysis struct {
		CurrentRatio     string `json:"currentRatio"`
		RatioTrend       string `json:"ratioTrend"`
		RecommendedRatio string `json:"recommendedRatio"`
	} `json:"oddEvenAnalysis"`

	GroupAnalysis struct {
		GroupDistribution struct {
			Group6     string `json:"group6"`
			Group3     string `json:"group3"`
			GroupTrend string `json:"groupTrend"`
		} `json:"groupDistribution"`
		CurrentPattern string `json:"currentPattern"`
	} `json:"groupAnalysis"`

	Recommendations []Recommendation `json:"recommendations"`

	TopRecommendation struct {
		DirectSelection []int `json:"directSelection"`
		GroupSelection  struct {
			Type    string `json:"type"`
			Numbers []int  `json:"numbers"`
		} `json:"groupSelection"`
		Rationale string `json:"rationale"`
	} `json:"topRecommendation"`

	RiskWarnings []string `json:"riskWarnings"`
}

// AnalysisResult 一次分析的最终输出
type AnalysisResult struct {
	Structured interface{} `json:"structured"`
	Provider   string      `json:"provider"`
	Model      string      `json:"model"`
}

// DefaultStandardResult 标准玩法的全零默认结构，
// 提供方返回解析不了时用它兜底
func DefaultStandardResult() *StandardAnalysis {
	r := &StandardAnalysis{}
	r.FrequencyAnalysis.FrontZone = []NumberFrequency{}
	r.FrequencyAnalysis.BackZone = []NumberFrequency{}
	r.Recommendations = []Recommendation{}
	r.RiskWarnings = []string{}
	return r
}

// DefaultFC3DResult 福彩3D的全零默认结构
func DefaultFC3DResult() *FC3DAnalysis {
	r := &FC3DAnalysis{}
	r.FrequencyAnalysis.HundredsPlace = []NumberFrequency{}
	r.FrequencyAnalysis.TensPlace = []NumberFrequency{}
	r.FrequencyAnalysis.OnesPlace = []NumberFrequency{}
	r.Recommendations = []Recommendation{}
	r.RiskWarnings = []string{}
	return r
}
