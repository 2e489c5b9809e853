package services

import (
	"math"
	"sort"

	"nettui/internal/models"
)

// RankRows orders rows by combined throughput, busiest interface first.
// Infinite totals order like any other number. A NaN total cannot be
// compared, so those rows are kept after all others in their incoming order.
func RankRows(rows []models.InterfaceRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Total(), rows[j].Total()
		aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)

		switch {
		case !aNaN && !bNaN:
			return a > b
		case aNaN != bNaN:
			return bNaN
		default:
			return false
		}
	})
}
