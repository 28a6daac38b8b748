// Package extractor 把来源文档或数据集文件中的一行表格数据
// 提取为规范的开奖记录。提取按行尽力而为：单行失败只丢弃该行。
package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"lottery-master/internal/lottery"
)

// Row 表格中的一行：按列顺序排列的单元格，可选的列标签与标记位。
// 来源页面的行没有标签，数据集文件的行带表头标签，
// 福彩3D来源用单元格标记而不是标签定位号码。
type Row struct {
	Labels []string
	Cells  []string
	Marked []bool
}

// Value 按列标签取单元格值
func (r Row) Value(label string) (string, bool) {
	for i, l := range r.Labels {
		if l == label && i < len(r.Cells) {
			return r.Cells[i], true
		}
	}
	return "", false
}

// 各玩法的常用列标签。来源页面与历史数据集的表头并不统一，
// 主标签缺失时走按形态扫描的回退路径。
var (
	primaryLabels = map[lottery.Game][]string{
		lottery.SSQ: {"红球", "红球号码"},
		lottery.DLT: {"前区号码", "前区"},
	}
	secondaryLabels = map[lottery.Game][]string{
		lottery.SSQ: {"蓝球", "蓝球号码"},
		lottery.DLT: {"后区号码1", "后区号码2"},
	}
	// 回退扫描时要跳过的非候选列
	skipLabelTokens = []string{"期号", "日期", "开奖日期"}
)

var numberDelimiter = regexp.MustCompile(`[,，\s]+`)

// ParseNumberList 解析分隔符列表形式的号码串，
// 分隔符支持半角逗号、全角逗号和空白。
// 任一段解析失败则整串视为无效。
func ParseNumberList(s string) ([]int, bool) {
	parts := numberDelimiter.Split(strings.TrimSpace(s), -1)
	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil, false
	}
	return nums, true
}

func parseScalar(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// FromDataset 从带表头的数据集行提取记录。
// 检测顺序：已知标签优先，标签缺失时按形态扫描回退。
func FromDataset(row Row, profile lottery.Profile) (lottery.DrawRecord, bool) {
	if profile.Positional {
		return fc3dFromDataset(row, profile)
	}

	date := datasetDate(row)

	primary, ok := primaryByLabel(row, profile)
	if !ok {
		primary, ok = primaryByShape(row, profile)
	}
	if !ok {
		return lottery.DrawRecord{}, false
	}

	secondary, ok := secondaryByLabel(row, profile)
	if !ok {
		secondary, ok = secondaryByShape(row, profile, primary)
	}
	if !ok {
		return lottery.DrawRecord{}, false
	}

	rec := lottery.DrawRecord{Date: date, Primary: primary, Secondary: secondary}
	if err := profile.ValidateRecord(rec); err != nil {
		return lottery.DrawRecord{}, false
	}
	return rec, true
}

// primaryByLabel 按已知标签提取前区号码
func primaryByLabel(row Row, profile lottery.Profile) ([]int, bool) {
	for _, label := range primaryLabels[profile.Game] {
		value, ok := row.Value(label)
		if !ok {
			continue
		}
		nums, ok := ParseNumberList(value)
		if ok && len(nums) == profile.PrimaryCount {
			return nums, true
		}
	}
	return nil, false
}

// primaryByShape 按形态扫描的回退路径：跳过已知非候选列，
// 取第一个恰好解析出前区数量个有效号码的列。
func primaryByShape(row Row, profile lottery.Profile) ([]int, bool) {
	for i, cell := range row.Cells {
		if skipColumn(row, i, secondaryLabels[profile.Game]) {
			continue
		}
		nums, ok := ParseNumberList(cell)
		if !ok || len(nums) != profile.PrimaryCount {
			continue
		}
		valid := true
		for _, n := range nums {
			if !profile.PrimaryRange.Contains(n) {
				valid = false
				break
			}
		}
		if valid {
			return nums, true
		}
	}
	return nil, false
}

// secondaryByLabel 按已知标签提取后区号码
func secondaryByLabel(row Row, profile lottery.Profile) ([]int, bool) {
	if profile.SecondaryCount == 0 {
		return nil, true
	}
	nums := make([]int, 0, profile.SecondaryCount)
	for _, label := range secondaryLabels[profile.Game] {
		value, ok := row.Value(label)
		if !ok {
			continue
		}
		n, ok := parseScalar(value)
		if !ok {
			return nil, false
		}
		nums = append(nums, n)
	}
	if len(nums) != profile.SecondaryCount {
		return nil, false
	}
	return nums, true
}

// secondaryByShape 回退路径：取第一个落在后区范围内的标量列。
// 仅支持单个后区号码的玩法，双后区标签缺失时无法可靠区分顺序。
func secondaryByShape(row Row, profile lottery.Profile, primary []int) ([]int, bool) {
	if profile.SecondaryCount != 1 {
		return nil, false
	}
	for i, cell := range row.Cells {
		if skipColumn(row, i, primaryLabels[profile.Game]) {
			continue
		}
		if strings.ContainsAny(cell, ",，") {
			continue
		}
		n, ok := parseScalar(cell)
		if ok && profile.SecondaryRange.Contains(n) {
			return []int{n}, true
		}
	}
	return nil, false
}

// skipColumn 回退扫描时跳过期号/日期列和对侧分区的列
func skipColumn(row Row, idx int, oppositeLabels []string) bool {
	if idx >= len(row.Labels) {
		return false
	}
	label := row.Labels[idx]
	for _, token := range skipLabelTokens {
		if strings.Contains(label, token) {
			return true
		}
	}
	for _, opp := range oppositeLabels {
		if strings.Contains(label, opp) || strings.Contains(opp, label) {
			return true
		}
	}
	return false
}

func datasetDate(row Row) string {
	for _, label := range []string{"期号", "开奖日期", "日期"} {
		if v, ok := row.Value(label); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if len(row.Cells) > 0 {
		return strings.TrimSpace(row.Cells[0])
	}
	return ""
}

// fc3dFromDataset 福彩3D数据集行：百/十/个三个标量列
func fc3dFromDataset(row Row, profile lottery.Profile) (lottery.DrawRecord, bool) {
	date := datasetDate(row)
	digits := make([]int, 0, 3)
	for _, label := range []string{"百位", "十位", "个位"} {
		v, ok := row.Value(label)
		if !ok {
			return lottery.DrawRecord{}, false
		}
		n, ok := parseScalar(v)
		if !ok {
			return lottery.DrawRecord{}, false
		}
		digits = append(digits, n)
	}
	rec := lottery.DrawRecord{Date: date, Primary: digits}
	if err := profile.ValidateRecord(rec); err != nil {
		return lottery.DrawRecord{}, false
	}
	return rec, true
}
