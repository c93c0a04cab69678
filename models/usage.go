package models

import (
	"encoding/json"
	"strconv"
)

// ProgressBar is one usage indicator (data, voice or SMS) as returned by the
// usage endpoint.
type ProgressBar struct {
	IsUnlimited   bool    `json:"isUnlimited"`
	LeftSideData  float64 `json:"leftSideData"`
	RightSideData float64 `json:"rightSideData"`
	Percentage    float64 `json:"percentage"`
	Type          string  `json:"type"`
	Units         string  `json:"units"`
}

// UsageRecord is the raw usage response for one line.
type UsageRecord struct {
	ProgressBars  []ProgressBar `json:"progressBars"`
	RemainingDays int           `json:"remainingDays"`
}

// UsageSnapshot is a normalized usage indicator. RemainingDays is copied
// from the parent [UsageRecord] onto every indicator.
type UsageSnapshot struct {
	IsUnlimited   bool    `json:"is_unlimited"`
	LeftSideData  float64 `json:"left_side_data"`
	RightSideData float64 `json:"right_side_data"`
	Percentage    float64 `json:"percentage"`
	RemainingDays int     `json:"remaining_days"`
	Type          string  `json:"type"`
	Units         string  `json:"units"`
}

// Snapshots converts every progress bar of the record into a
// [UsageSnapshot], preserving order.
func (u UsageRecord) Snapshots() []UsageSnapshot {
	snapshots := make([]UsageSnapshot, 0, len(u.ProgressBars))
	for _, bar := range u.ProgressBars {
		snapshots = append(snapshots, UsageSnapshot{
			IsUnlimited:   bar.IsUnlimited,
			LeftSideData:  bar.LeftSideData,
			RightSideData: bar.RightSideData,
			Percentage:    bar.Percentage,
			RemainingDays: u.RemainingDays,
			Type:          bar.Type,
			Units:         bar.Units,
		})
	}
	return snapshots
}

func toString(v any) string {
	switch n := v.(type) {
	case json.Number:
		return n.String()
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case bool:
		return strconv.FormatBool(n)
	default:
		return ""
	}
}
