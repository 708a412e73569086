package domain

import "math"

// Inventory status tiers, derived from the fill percentage.
const (
	StockCritical = "Critical"
	StockLow      = "Low"
	StockStable   = "Stable"
)

type InventoryItem struct {
	Type    string  `db:"type" json:"type"`
	Units   int     `db:"units" json:"units"`
	Total   int     `db:"total" json:"total"`
	Percent float64 `db:"-" json:"percent"`
	Status  string  `db:"-" json:"status"`
}

// Percent returns units as a percentage of capacity, 0 when capacity is unset.
func Percent(units, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(units) / float64(total) * 100
	return math.Round(p*100) / 100
}

// StockStatus maps the exact fill ratio onto Critical (<20%), Low (<50%) or
// Stable. It compares in integers so display rounding never moves a tier.
func StockStatus(units, total int) string {
	if total <= 0 {
		return StockCritical
	}
	switch {
	case units*100 < 20*total:
		return StockCritical
	case units*100 < 50*total:
		return StockLow
	default:
		return StockStable
	}
}

// Recompute refreshes the derived Percent and Status fields.
func (i *InventoryItem) Recompute() {
	i.Percent = Percent(i.Units, i.Total)
	i.Status = StockStatus(i.Units, i.Total)
}
