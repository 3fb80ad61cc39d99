package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodePlusTwoMarks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want PlusTwoMarks
	}{
		{
			name: "numeric values",
			raw:  `{"Physics":80,"Chemistry":70,"Math":90}`,
			want: PlusTwoMarks{Physics: 80, Chemistry: 70, Math: 90},
		},
		{
			// Historical rows stored form input as strings
			name: "string values coerced",
			raw:  `{"Physics":"80","Chemistry":"70","Math":"90"}`,
			want: PlusTwoMarks{Physics: 80, Chemistry: 70, Math: 90},
		},
		{
			name: "missing subjects default to zero",
			raw:  `{"Physics":55}`,
			want: PlusTwoMarks{Physics: 55},
		},
		{
			name: "non-numeric values default to zero",
			raw:  `{"Physics":"eighty","Chemistry":70,"Math":null}`,
			want: PlusTwoMarks{Chemistry: 70},
		},
		{name: "empty", raw: "", want: PlusTwoMarks{}},
		{name: "malformed JSON", raw: "{not json", want: PlusTwoMarks{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodePlusTwoMarks(tt.raw))
		})
	}
}

func TestDecodeHighSchoolMarks(t *testing.T) {
	got := DecodeHighSchoolMarks(`{"Math":95,"Science":"88","English":77,"Hindi":66}`)
	assert.Equal(t, HighSchoolMarks{Math: 95, Science: 88, English: 77, Hindi: 66}, got)

	assert.Equal(t, HighSchoolMarks{}, DecodeHighSchoolMarks("garbage"))
}

func TestPlusTwoMarksTotal(t *testing.T) {
	m := PlusTwoMarks{Physics: 80, Chemistry: 70, Math: 90}
	assert.Equal(t, 240.0, m.Total())
	assert.Equal(t, 0.0, PlusTwoMarks{}.Total())
}

func TestMarksEncodeDecodeRoundTrip(t *testing.T) {
	m := PlusTwoMarks{Physics: 80.5, Chemistry: 70, Math: 90}
	assert.Equal(t, m, DecodePlusTwoMarks(m.Encode()))
}
