package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermRank(t *testing.T) {
	tests := []struct {
		term Term
		want int
	}{
		{TermFall, 4},
		{TermWinter, 3},
		{TermSpring, 2},
		{TermSummer, 1},
		{Term("Trimester"), 0},
		{Term(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.term), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.Rank())
		})
	}
}

func TestRecencyScore(t *testing.T) {
	fall2023 := StudentCourse{Term: TermFall, Year: 2023}
	spring2024 := StudentCourse{Term: TermSpring, Year: 2024}
	fall2024 := StudentCourse{Term: TermFall, Year: 2024}

	assert.Greater(t, fall2024.RecencyScore(), spring2024.RecencyScore())
	assert.Greater(t, spring2024.RecencyScore(), fall2023.RecencyScore())
}

func TestCourseKeyIsComplete(t *testing.T) {
	complete := CourseKey{SubjectID: 1, CourseNumber: "101", Term: TermFall, Year: 2024}
	assert.True(t, complete.IsComplete())

	tests := []struct {
		name string
		key  CourseKey
	}{
		{"missing subject", CourseKey{CourseNumber: "101", Term: TermFall, Year: 2024}},
		{"missing number", CourseKey{SubjectID: 1, Term: TermFall, Year: 2024}},
		{"missing term", CourseKey{SubjectID: 1, CourseNumber: "101", Year: 2024}},
		{"missing year", CourseKey{SubjectID: 1, CourseNumber: "101", Term: TermFall}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.key.IsComplete())
		})
	}
}
