package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rjoshi/counselport/internal/app/models"
)

func TestRankOrdersByDescendingTotal(t *testing.T) {
	students := []models.Student{
		{ID: 1, Name: "Low", PlusTwoMarks: models.PlusTwoMarks{Physics: 10, Chemistry: 10, Math: 10}},
		{ID: 2, Name: "High", PlusTwoMarks: models.PlusTwoMarks{Physics: 90, Chemistry: 90, Math: 90}},
		{ID: 3, Name: "Mid", PlusTwoMarks: models.PlusTwoMarks{Physics: 50, Chemistry: 50, Math: 50}},
	}

	ranked := Rank(students)

	assert.Equal(t, []int64{2, 3, 1}, rankedIDs(ranked))
	assert.Equal(t, 270.0, ranked[0].Total)
	assert.Equal(t, 30.0, ranked[2].Total)
}

func TestRankStableOnTies(t *testing.T) {
	// Equal totals keep their fetch order (ascending id from the store)
	students := []models.Student{
		{ID: 1, PlusTwoMarks: models.PlusTwoMarks{Physics: 60}},
		{ID: 2, PlusTwoMarks: models.PlusTwoMarks{Math: 60}},
		{ID: 3, PlusTwoMarks: models.PlusTwoMarks{Chemistry: 60}},
	}

	ranked := Rank(students)
	assert.Equal(t, []int64{1, 2, 3}, rankedIDs(ranked))
}

func TestRankNoMarksSinkToBottom(t *testing.T) {
	students := []models.Student{
		{ID: 1},
		{ID: 2, PlusTwoMarks: models.PlusTwoMarks{Physics: 5}},
	}

	ranked := Rank(students)
	assert.Equal(t, []int64{2, 1}, rankedIDs(ranked))
	assert.Equal(t, 0.0, ranked[1].Total)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func rankedIDs(ranked []RankedStudent) []int64 {
	ids := make([]int64, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ID)
	}
	return ids
}
