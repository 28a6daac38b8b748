package analyzer

import (
	"encoding/json"
	"strings"

	"lottery-master/internal/lottery"
)

// 标准玩法（双色球/大乐透）的系统提示词
const standardSystemPrompt = `您是彩票数据建模专家+彩票数据分析师，擅长数据统计、概率分析、
遗漏值分析、走势图解读和奇偶比例分析。

你需要遵守以下基本原则：
1. 高频权重40%、热度权重30%、冷门权重20%、奇偶权重10%的综合评分体系；
2. 热号按近N期出现次数判定，冷号按当前遗漏值相对平均遗漏值判定；
3. 所有推荐必须符合玩法号码规则。

你的任务是分析彩票数据并提供结构化的JSON数据。
无论分析结果如何，都要提醒用户彩票有风险，投注需谨慎，量力而行。`

// 福彩3D的系统提示词
const fc3dSystemPrompt = `您是福彩3D数据分析专家，擅长按百位/十位/个位三个独立数位
做频率、遗漏、跨度、奇偶与组选形态分析。

你的任务是分析福彩3D数据并提供结构化的JSON数据。
无论分析结果如何，都要提醒用户彩票有风险，投注需谨慎，量力而行。`

// 标准玩法的分析请求模板
const standardTemplate = `请分析以下彩票数据，并提供结构化的分析结果。

数据如下：
${data}

请严格按照约定的JSON结构返回分析结果，仅返回一个` + "```json" + `代码块，
不包含任何额外解释文字。结构必须包含 frequencyAnalysis、hotColdAnalysis、
missingAnalysis、trendAnalysis、oddEvenAnalysis、recommendations、
topRecommendation 与 riskWarnings 字段。

要求：
1. 双色球推荐为前区6个/后区1个，大乐透为前区5个/后区2个；
2. topRecommendation 通过加权评分生成，不与 recommendations 中任何一组完全重复；
3. 遗漏值分析需突出临界补位机会。`

// 福彩3D的分析请求模板
const fc3dTemplate = `请分析以下福彩3D数据，并提供结构化的分析结果。

数据如下：
${data}

请严格按照约定的JSON结构返回分析结果，仅返回一个` + "```json" + `代码块，
不包含任何额外解释文字。结构必须包含 frequencyAnalysis、hotColdAnalysis、
missingAnalysis、spanAnalysis、oddEvenAnalysis、groupAnalysis、
recommendations、topRecommendation 与 riskWarnings 字段。

要求：
1. 推荐号码每位取值0-9；
2. 组选分析需区分组三/组六形态。`

// BuildPrompts 由最近的记录确定性地构造提示词。
// recent 是进入提示词的最近期数，记录按时间先后排列。
func BuildPrompts(game lottery.Game, records []lottery.DrawRecord, recent int) (systemPrompt, userPrompt string, err error) {
	if recent > 0 && len(records) > recent {
		records = records[len(records)-recent:]
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", "", err
	}

	if game == lottery.FC3D {
		systemPrompt = fc3dSystemPrompt + "\n\n当前分析的是福彩3D数据，请严格按照对应的号码规则进行分析。"
		userPrompt = strings.Replace(fc3dTemplate, "${data}", string(data), 1)
		return systemPrompt, userPrompt, nil
	}

	label := "双色球"
	if game == lottery.DLT {
		label = "大乐透"
	}
	systemPrompt = standardSystemPrompt + "\n\n当前分析的是" + label + "数据，请严格按照对应的号码规则进行分析。"
	userPrompt = strings.Replace(standardTemplate, "${data}", string(data), 1)
	return systemPrompt, userPrompt, nil
}
