package lottery

import "fmt"

// DrawRecord 一期开奖记录的规范形式
type DrawRecord struct {
	Date      string `json:"date"`
	Primary   []int  `json:"primary"`
	Secondary []int  `json:"secondary,omitempty"`
}

// ValidateRecord 按玩法形态校验记录：数量必须完全一致，号码必须在范围内。
// 不合法的记录直接拒绝，绝不静默修正。
func (p Profile) ValidateRecord(rec DrawRecord) error {
	if rec.Date == "" {
		return fmt.Errorf("record has empty date")
	}
	if len(rec.Primary) != p.PrimaryCount {
		return fmt.Errorf("primary count mismatch: want %d, got %d", p.PrimaryCount, len(rec.Primary))
	}
	if len(rec.Secondary) != p.SecondaryCount {
		return fmt.Errorf("secondary count mismatch: want %d, got %d", p.SecondaryCount, len(rec.Secondary))
	}
	for _, n := range rec.Primary {
		if !p.PrimaryRange.Contains(n) {
			return fmt.Errorf("primary number out of range (%d-%d): %d", p.PrimaryRange.Min, p.PrimaryRange.Max, n)
		}
	}
	for _, n := range rec.Secondary {
		if !p.SecondaryRange.Contains(n) {
			return fmt.Errorf("secondary number out of range (%d-%d): %d", p.SecondaryRange.Min, p.SecondaryRange.Max, n)
		}
	}
	return nil
}
