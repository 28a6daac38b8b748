package analyzer

import (
	"encoding/json"
	"regexp"

	"github.com/tidwall/gjson"

	"lottery-master/internal/logger"
	"lottery-master/internal/lottery"
)

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ParseStructured 从提供方的原始回复里按固定围栏约定提取JSON块。
// 缺失或非法的JSON换成对应玩法的全零默认结构，解析问题
// 在这里就地恢复，不向调用方抛出。
func ParseStructured(rawContent string, game lottery.Game) interface{} {
	match := fencedJSON.FindStringSubmatch(rawContent)
	if match == nil {
		logger.Warn("No fenced JSON block in AI response, using default result")
		return defaultFor(game)
	}

	payload := match[1]
	if !gjson.Valid(payload) || !gjson.Parse(payload).IsObject() {
		logger.Warn("Malformed JSON block in AI response, using default result")
		return defaultFor(game)
	}

	if game == lottery.FC3D {
		result := DefaultFC3DResult()
		if err := json.Unmarshal([]byte(payload), result); err != nil {
			logger.Warnf("Failed to unmarshal FC3D analysis: %v", err)
			return DefaultFC3DResult()
		}
		return result
	}

	result := DefaultStandardResult()
	if err := json.Unmarshal([]byte(payload), result); err != nil {
		logger.Warnf("Failed to unmarshal standard analysis: %v", err)
		return DefaultStandardResult()
	}
	return result
}

func defaultFor(game lottery.Game) interface{} {
	if game == lottery.FC3D {
		return DefaultFC3DResult()
	}
	return DefaultStandardResult()
}
