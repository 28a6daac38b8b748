package extractor

import (
	"strings"

	"lottery-master/internal/lottery"
)

// FromSource 从来源页面的行提取记录。来源表格没有表头，
// 双色球/大乐透按固定列位取数，福彩3D按单元格标记定位。
func FromSource(row Row, profile lottery.Profile) (lottery.DrawRecord, bool) {
	if profile.Positional {
		return fc3dFromSource(row, profile)
	}

	// 列位：期号 + 前区号码逐列 + 后区号码逐列
	need := 1 + profile.PrimaryCount + profile.SecondaryCount
	if len(row.Cells) < need {
		return lottery.DrawRecord{}, false
	}

	date := strings.TrimSpace(row.Cells[0])
	primary := make([]int, 0, profile.PrimaryCount)
	for i := 0; i < profile.PrimaryCount; i++ {
		n, ok := parseScalar(row.Cells[1+i])
		if !ok {
			return lottery.DrawRecord{}, false
		}
		primary = append(primary, n)
	}

	secondary := make([]int, 0, profile.SecondaryCount)
	for i := 0; i < profile.SecondaryCount; i++ {
		n, ok := parseScalar(row.Cells[1+profile.PrimaryCount+i])
		if !ok {
			return lottery.DrawRecord{}, false
		}
		secondary = append(secondary, n)
	}

	rec := lottery.DrawRecord{Date: date, Primary: primary, Secondary: secondary}
	if err := profile.ValidateRecord(rec); err != nil {
		return lottery.DrawRecord{}, false
	}
	return rec, true
}

// fc3dFromSource 福彩3D来源页面不用列标签而是在开奖号单元格上
// 带展示标记。定位第一个带标记的单元格，三个数位依次从该位置读取。
func fc3dFromSource(row Row, profile lottery.Profile) (lottery.DrawRecord, bool) {
	if len(row.Cells) == 0 || len(row.Marked) != len(row.Cells) {
		return lottery.DrawRecord{}, false
	}

	first := -1
	for i, marked := range row.Marked {
		if marked {
			first = i
			break
		}
	}
	if first < 0 || first+2 >= len(row.Cells) {
		return lottery.DrawRecord{}, false
	}

	digits := make([]int, 0, 3)
	for off := 0; off < 3; off++ {
		n, ok := parseScalar(row.Cells[first+off])
		if !ok {
			return lottery.DrawRecord{}, false
		}
		digits = append(digits, n)
	}

	rec := lottery.DrawRecord{Date: strings.TrimSpace(row.Cells[0]), Primary: digits}
	if err := profile.ValidateRecord(rec); err != nil {
		return lottery.DrawRecord{}, false
	}
	return rec, true
}
