package models

import (
	"encoding/json"
	"strconv"
)

// HighSchoolMarks holds the fixed high school subject scores.
type HighSchoolMarks struct {
	Math    float64 `json:"Math"`
	Science float64 `json:"Science"`
	English float64 `json:"English"`
	Hindi   float64 `json:"Hindi"`
}

// PlusTwoMarks holds the fixed plus-two subject scores. These three
// subjects drive the admin ranking.
type PlusTwoMarks struct {
	Physics   float64 `json:"Physics"`
	Chemistry float64 `json:"Chemistry"`
	Math      float64 `json:"Math"`
}

// Total returns the sum of all plus-two subjects.
func (m PlusTwoMarks) Total() float64 {
	return m.Physics + m.Chemistry + m.Math
}

// Encode serializes marks for storage as JSON text.
func (m HighSchoolMarks) Encode() string {
	data, _ := json.Marshal(m)
	return string(data)
}

// Encode serializes marks for storage as JSON text.
func (m PlusTwoMarks) Encode() string {
	data, _ := json.Marshal(m)
	return string(data)
}

// DecodeHighSchoolMarks parses stored JSON text. Malformed or missing data
// yields all-zero marks rather than an error; historical rows may carry
// subject values as strings, which are coerced.
func DecodeHighSchoolMarks(raw string) HighSchoolMarks {
	fields := decodeMarkFields(raw)
	return HighSchoolMarks{
		Math:    markValue(fields["Math"]),
		Science: markValue(fields["Science"]),
		English: markValue(fields["English"]),
		Hindi:   markValue(fields["Hindi"]),
	}
}

// DecodePlusTwoMarks parses stored JSON text with the same leniency as
// DecodeHighSchoolMarks. Ranking must never fail on malformed rows.
func DecodePlusTwoMarks(raw string) PlusTwoMarks {
	fields := decodeMarkFields(raw)
	return PlusTwoMarks{
		Physics:   markValue(fields["Physics"]),
		Chemistry: markValue(fields["Chemistry"]),
		Math:      markValue(fields["Math"]),
	}
}

func decodeMarkFields(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil
	}
	return fields
}

func markValue(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
	}
	return 0
}
