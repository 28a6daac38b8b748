package lottery

import (
	"errors"
	"fmt"
)

// Game 彩票玩法标识
type Game string

const (
	SSQ  Game = "ssq"  // 双色球：前区6个(1-33) + 蓝球1个(1-16)
	DLT  Game = "dlt"  // 大乐透：前区5个(1-35) + 后区2个(1-12)
	FC3D Game = "fc3d" // 福彩3D：百/十/个三个独立数位(0-9)
)

// ErrUnknownGame 未知的玩法标识
var ErrUnknownGame = errors.New("unknown lottery game")

// Zone 号码分区选择器
type Zone string

const (
	ZonePrimary   Zone = "primary"   // 前区/红球
	ZoneSecondary Zone = "secondary" // 后区/蓝球
	ZoneHundreds  Zone = "hundreds"  // 福彩3D百位
	ZoneTens      Zone = "tens"      // 福彩3D十位
	ZoneOnes      Zone = "ones"      // 福彩3D个位
)

// NumberRange 号码取值范围（闭区间）
type NumberRange struct {
	Min int
	Max int
}

// Contains 判断号码是否在范围内
func (r NumberRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Size 范围内的号码个数
func (r NumberRange) Size() int {
	return r.Max - r.Min + 1
}

// Profile 玩法的号码形态描述，是所有数值校验的唯一依据
type Profile struct {
	Game           Game
	PrimaryCount   int
	PrimaryRange   NumberRange
	SecondaryCount int
	SecondaryRange NumberRange
	Positional     bool // 按位取数的玩法（福彩3D），前区每个位置独立
}

var profiles = map[Game]Profile{
	SSQ: {
		Game:           SSQ,
		PrimaryCount:   6,
		PrimaryRange:   NumberRange{Min: 1, Max: 33},
		SecondaryCount: 1,
		SecondaryRange: NumberRange{Min: 1, Max: 16},
	},
	DLT: {
		Game:           DLT,
		PrimaryCount:   5,
		PrimaryRange:   NumberRange{Min: 1, Max: 35},
		SecondaryCount: 2,
		SecondaryRange: NumberRange{Min: 1, Max: 12},
	},
	FC3D: {
		Game:         FC3D,
		PrimaryCount: 3,
		PrimaryRange: NumberRange{Min: 0, Max: 9},
		Positional:   true,
	},
}

// ProfileFor 查询玩法的号码形态
func ProfileFor(game Game) (Profile, error) {
	p, ok := profiles[game]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownGame, game)
	}
	return p, nil
}

// ZoneRange 返回指定分区的号码取值范围
func (p Profile) ZoneRange(zone Zone) (NumberRange, error) {
	switch zone {
	case ZonePrimary:
		return p.PrimaryRange, nil
	case ZoneSecondary:
		if p.SecondaryCount == 0 {
			return NumberRange{}, fmt.Errorf("game %s has no secondary zone", p.Game)
		}
		return p.SecondaryRange, nil
	case ZoneHundreds, ZoneTens, ZoneOnes:
		if !p.Positional {
			return NumberRange{}, fmt.Errorf("game %s has no positional zones", p.Game)
		}
		return p.PrimaryRange, nil
	default:
		return NumberRange{}, fmt.Errorf("unknown zone selector: %s", zone)
	}
}

// ZoneNumbers 从一期记录中取出指定分区的号码
func (p Profile) ZoneNumbers(rec DrawRecord, zone Zone) ([]int, error) {
	switch zone {
	case ZonePrimary:
		return rec.Primary, nil
	case ZoneSecondary:
		if p.SecondaryCount == 0 {
			return nil, fmt.Errorf("game %s has no secondary zone", p.Game)
		}
		return rec.Secondary, nil
	case ZoneHundreds, ZoneTens, ZoneOnes:
		if !p.Positional {
			return nil, fmt.Errorf("game %s has no positional zones", p.Game)
		}
		idx := map[Zone]int{ZoneHundreds: 0, ZoneTens: 1, ZoneOnes: 2}[zone]
		if idx >= len(rec.Primary) {
			return nil, nil
		}
		return []int{rec.Primary[idx]}, nil
	default:
		return nil, fmt.Errorf("unknown zone selector: %s", zone)
	}
}
