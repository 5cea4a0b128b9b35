package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/db"
)

// fakeTx runs the transaction function directly with a nil pgx.Tx and
// records whether the function reported an error, standing in for a
// rollback.
type fakeTx struct {
	began      int
	rolledBack bool
	failBegin  bool
}

func (f *fakeTx) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if f.failBegin {
		return errors.New("begin failed")
	}
	f.began++
	if err := fn(ctx, nil); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

// opLog records the order of mutating calls across fakes.
type opLog struct {
	ops []string
}

func (l *opLog) record(format string, args ...interface{}) {
	l.ops = append(l.ops, fmt.Sprintf(format, args...))
}

type fakeStudents struct {
	log      *opLog
	students map[int64]*models.Student
	updates  []map[string]interface{}
	nextID   int64

	updateErr error
}

func newFakeStudents(log *opLog) *fakeStudents {
	return &fakeStudents{log: log, students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudents) add(student *models.Student) *models.Student {
	if student.ID == 0 {
		student.ID = f.nextID
		f.nextID++
	}
	f.students[student.ID] = student
	return student
}

func (f *fakeStudents) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return f.students[id], nil
}

func (f *fakeStudents) Create(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error) {
	created := f.add(student)
	f.log.record("create student %d", created.ID)
	return created.ID, nil
}

func (f *fakeStudents) UpdateFields(ctx context.Context, tx pgx.Tx, id int64, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, fields)
	f.log.record("update student %d", id)
	return nil
}

func (f *fakeStudents) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	delete(f.students, id)
	f.log.record("delete student %d", id)
	return nil
}

type fakeSubjects struct {
	subjects map[int64]*models.Subject
}

func (f *fakeSubjects) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	return f.subjects[id], nil
}

type fakeCourses struct {
	log     *opLog
	byKey   map[models.CourseKey]int64
	nextID  int64
	listing map[int64][]models.StudentCourse

	getOrCreateErr error
}

func newFakeCourses(log *opLog) *fakeCourses {
	return &fakeCourses{
		log:     log,
		byKey:   make(map[models.CourseKey]int64),
		nextID:  100,
		listing: make(map[int64][]models.StudentCourse),
	}
}

func (f *fakeCourses) GetOrCreate(ctx context.Context, tx pgx.Tx, key models.CourseKey) (int64, error) {
	if f.getOrCreateErr != nil {
		return 0, f.getOrCreateErr
	}
	id, ok := f.byKey[key]
	if !ok {
		id = f.nextID
		f.nextID++
		f.byKey[key] = id
	}
	f.log.record("get-or-create course %d", id)
	return id, nil
}

func (f *fakeCourses) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error) {
	return f.listing[studentID], nil
}

type fakeSchedules struct {
	log   *opLog
	links map[int64][]int64

	linkErr error
}

func newFakeSchedules(log *opLog) *fakeSchedules {
	return &fakeSchedules{log: log, links: make(map[int64][]int64)}
}

func (f *fakeSchedules) RemoveCourses(ctx context.Context, tx pgx.Tx, studentID int64, courseIDs []int64) error {
	if len(courseIDs) == 0 {
		return nil
	}
	f.log.record("remove %d courses for %d", len(courseIDs), studentID)
	return nil
}

func (f *fakeSchedules) Link(ctx context.Context, tx pgx.Tx, studentID, courseID int64) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	for _, existing := range f.links[studentID] {
		if existing == courseID {
			return nil
		}
	}
	f.links[studentID] = append(f.links[studentID], courseID)
	f.log.record("link %d to course %d", studentID, courseID)
	return nil
}

func (f *fakeSchedules) DeleteByStudent(ctx context.Context, tx pgx.Tx, studentID int64) error {
	f.log.record("delete schedules for %d", studentID)
	return nil
}

type fakeCredentials struct {
	log    *opLog
	byName map[string]*models.Credential
	nextID int64
}

func newFakeCredentials(log *opLog) *fakeCredentials {
	return &fakeCredentials{log: log, byName: make(map[string]*models.Credential), nextID: 1}
}

func (f *fakeCredentials) Create(ctx context.Context, tx pgx.Tx, cred *models.Credential) (int64, error) {
	id := f.nextID
	f.nextID++
	f.byName[cred.Username] = cred
	f.log.record("create credential %d", id)
	return id, nil
}

func (f *fakeCredentials) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	return f.byName[username], nil
}

func (f *fakeCredentials) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, ok := f.byName[username]
	return ok, nil
}

func (f *fakeCredentials) DeleteByStudent(ctx context.Context, tx pgx.Tx, studentID int64) error {
	f.log.record("delete credentials for %d", studentID)
	return nil
}

type fakeDirectory struct {
	rows       []models.DirectoryRow
	lastFilter models.CourseFilter
	lastExcl   int64
}

func (f *fakeDirectory) FetchRows(ctx context.Context, excludeID int64, filter models.CourseFilter) ([]models.DirectoryRow, error) {
	f.lastExcl = excludeID
	f.lastFilter = filter

	var result []models.DirectoryRow
	for _, row := range f.rows {
		if row.StudentID == excludeID {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}
