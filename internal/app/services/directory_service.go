package services

import (
	"context"
	"sort"
	"strings"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/app/models/dto"
)

type directoryStore interface {
	FetchRows(ctx context.Context, excludeID int64, filter models.CourseFilter) ([]models.DirectoryRow, error)
}

// DirectoryService handles the searchable member directory.
type DirectoryService struct {
	directory directoryStore
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(directory directoryStore) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// Search returns every member except the caller, grouped with their
// enrollments newest first. A non-empty query restricts the listing to
// members enrolled in a matching offering; members with no enrollments
// are then left out entirely.
func (s *DirectoryService) Search(ctx context.Context, excludeID int64, query string) (*dto.DirectoryResponse, error) {
	filter, normalized := parseDirectoryQuery(query)

	rows, err := s.directory.FetchRows(ctx, excludeID, filter)
	if err != nil {
		return nil, err
	}

	members := groupDirectoryRows(rows, !filter.IsZero())
	for _, member := range members {
		sortCoursesByRecency(member.Courses)
	}

	return &dto.DirectoryResponse{Search: normalized, Members: members}, nil
}

// parseDirectoryQuery splits a free-text course search into a subject
// code prefix and an optional course number prefix. When the last token
// is numeric it is taken as the course number and the rest as the
// subject; otherwise the whole query is the subject. The subject part
// is uppercased with spaces stripped so "comp sci 1" matches "COMPSCI".
func parseDirectoryQuery(query string) (models.CourseFilter, string) {
	normalized := strings.Join(strings.Fields(query), " ")
	if normalized == "" {
		return models.CourseFilter{}, ""
	}

	tokens := strings.Fields(normalized)
	var filter models.CourseFilter

	last := tokens[len(tokens)-1]
	if isDigits(last) {
		filter.CourseNumberPrefix = last
		tokens = tokens[:len(tokens)-1]
	}
	filter.SubjectCodePrefix = strings.ToUpper(strings.Join(tokens, ""))

	return filter, normalized
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// groupDirectoryRows folds the flat join rows into one entry per
// member, keeping the row order of first appearance. Rows with nil
// offering columns only contribute the member itself; when a search is
// active such members are dropped.
func groupDirectoryRows(rows []models.DirectoryRow, searching bool) []*models.DirectoryEntry {
	entries := make([]*models.DirectoryEntry, 0)
	byStudent := make(map[int64]*models.DirectoryEntry)

	for _, row := range rows {
		entry, ok := byStudent[row.StudentID]
		if !ok {
			entry = &models.DirectoryEntry{
				StudentID: row.StudentID,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				Phone:     row.Phone,
				Email:     row.Email,
				Courses:   []models.StudentCourse{},
			}
			byStudent[row.StudentID] = entry
			entries = append(entries, entry)
		}

		if row.CourseID == nil {
			continue
		}

		course := models.StudentCourse{
			CourseID: *row.CourseID,
		}
		if row.SubjectCode != nil {
			course.SubjectCode = *row.SubjectCode
		}
		if row.SubjectName != nil {
			course.SubjectName = *row.SubjectName
		}
		if row.CourseNumber != nil {
			course.CourseNumber = *row.CourseNumber
		}
		if row.Term != nil {
			course.Term = *row.Term
		}
		if row.Year != nil {
			course.Year = *row.Year
		}
		entry.Courses = append(entry.Courses, course)
	}

	if !searching {
		return entries
	}

	filtered := entries[:0]
	for _, entry := range entries {
		if len(entry.Courses) > 0 {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// sortCoursesByRecency orders offerings newest first, breaking ties on
// subject code.
func sortCoursesByRecency(courses []models.StudentCourse) {
	sort.SliceStable(courses, func(i, j int) bool {
		si, sj := courses[i].RecencyScore(), courses[j].RecencyScore()
		if si != sj {
			return si > sj
		}
		return courses[i].SubjectCode < courses[j].SubjectCode
	})
}
