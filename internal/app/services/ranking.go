package services

import (
	"sort"

	"github.com/rjoshi/counselport/internal/app/models"
)

// RankedStudent is a student row decorated with its plus-two total for
// the admin dashboard.
type RankedStudent struct {
	models.Student
	Total float64
}

// Rank orders students by descending plus-two total. The sort is stable:
// students with equal totals keep their fetch order. Rows with malformed
// marks already decoded to zero, so they sink to the bottom instead of
// failing.
func Rank(students []models.Student) []RankedStudent {
	ranked := make([]RankedStudent, 0, len(students))
	for _, s := range students {
		ranked = append(ranked, RankedStudent{
			Student: s,
			Total:   s.PlusTwoMarks.Total(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	return ranked
}
