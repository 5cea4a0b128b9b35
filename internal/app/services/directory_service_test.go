package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellarises/studygroup/internal/app/models"
)

func strPtr(s string) *string            { return &s }
func intPtr(n int) *int                  { return &n }
func int64Ptr(n int64) *int64            { return &n }
func termPtr(t models.Term) *models.Term { return &t }

func TestParseDirectoryQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFilter models.CourseFilter
		wantNorm   string
	}{
		{"empty", "", models.CourseFilter{}, ""},
		{"whitespace only", "   ", models.CourseFilter{}, ""},
		{"subject only", "comp sci", models.CourseFilter{SubjectCodePrefix: "COMPSCI"}, "comp sci"},
		{"subject and number", "comp sci 1", models.CourseFilter{SubjectCodePrefix: "COMPSCI", CourseNumberPrefix: "1"}, "comp sci 1"},
		{"number only", "101", models.CourseFilter{CourseNumberPrefix: "101"}, "101"},
		{"mixed token stays subject", "cs101", models.CourseFilter{SubjectCodePrefix: "CS101"}, "cs101"},
		{"extra spacing collapsed", "  math   20 ", models.CourseFilter{SubjectCodePrefix: "MATH", CourseNumberPrefix: "20"}, "math 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, norm := parseDirectoryQuery(tt.query)
			assert.Equal(t, tt.wantFilter, filter)
			assert.Equal(t, tt.wantNorm, norm)
		})
	}
}

func TestGroupDirectoryRows(t *testing.T) {
	rows := []models.DirectoryRow{
		{StudentID: 1, FirstName: "Ada", CourseID: int64Ptr(10), SubjectCode: strPtr("CS"), SubjectName: strPtr("Computer Science"), CourseNumber: strPtr("101"), Term: termPtr(models.TermFall), Year: intPtr(2025)},
		{StudentID: 1, FirstName: "Ada", CourseID: int64Ptr(11), SubjectCode: strPtr("MATH"), SubjectName: strPtr("Mathematics"), CourseNumber: strPtr("20"), Term: termPtr(models.TermSpring), Year: intPtr(2024)},
		{StudentID: 2, FirstName: "Grace"},
	}

	t.Run("without a search everyone shows up", func(t *testing.T) {
		entries := groupDirectoryRows(rows, false)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(1), entries[0].StudentID)
		assert.Len(t, entries[0].Courses, 2)
		assert.Equal(t, int64(2), entries[1].StudentID)
		assert.Empty(t, entries[1].Courses)
	})

	t.Run("a search hides members with no matching courses", func(t *testing.T) {
		entries := groupDirectoryRows(rows, true)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(1), entries[0].StudentID)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, groupDirectoryRows(nil, false))
	})
}

func TestSortCoursesByRecency(t *testing.T) {
	courses := []models.StudentCourse{
		{SubjectCode: "MATH", Term: models.TermSpring, Year: 2024},
		{SubjectCode: "CS", Term: models.TermFall, Year: 2025},
		{SubjectCode: "BIO", Term: models.TermWinter, Year: 2025},
		{SubjectCode: "ART", Term: models.TermWinter, Year: 2025},
	}

	sortCoursesByRecency(courses)

	codes := make([]string, 0, len(courses))
	for _, c := range courses {
		codes = append(codes, c.SubjectCode)
	}
	assert.Equal(t, []string{"CS", "ART", "BIO", "MATH"}, codes)
}

func TestDirectorySearch(t *testing.T) {
	ctx := context.Background()

	store := &fakeDirectory{rows: []models.DirectoryRow{
		{StudentID: 1, FirstName: "Ada", CourseID: int64Ptr(10), SubjectCode: strPtr("CS"), SubjectName: strPtr("Computer Science"), CourseNumber: strPtr("101"), Term: termPtr(models.TermSpring), Year: intPtr(2024)},
		{StudentID: 1, FirstName: "Ada", CourseID: int64Ptr(11), SubjectCode: strPtr("CS"), SubjectName: strPtr("Computer Science"), CourseNumber: strPtr("201"), Term: termPtr(models.TermFall), Year: intPtr(2025)},
		{StudentID: 3, FirstName: "Self"},
	}}
	svc := NewDirectoryService(store)

	resp, err := svc.Search(ctx, 3, "  cs  101 ")
	require.NoError(t, err)

	assert.Equal(t, int64(3), store.lastExcl)
	assert.Equal(t, models.CourseFilter{SubjectCodePrefix: "CS", CourseNumberPrefix: "101"}, store.lastFilter)
	assert.Equal(t, "cs 101", resp.Search)

	require.Len(t, resp.Members, 1)
	courses := resp.Members[0].Courses
	require.Len(t, courses, 2)
	assert.Equal(t, "201", courses[0].CourseNumber)
	assert.Equal(t, "101", courses[1].CourseNumber)
}
