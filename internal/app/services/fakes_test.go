package services

import (
	"context"

	"github.com/pravartak/mentorhub/internal/app/models"
	"github.com/pravartak/mentorhub/internal/app/repositories"
	"github.com/pravartak/mentorhub/internal/ml"
	"github.com/pravartak/mentorhub/internal/pkg/apperrors"
)

// In-memory repository fakes. Each keeps records keyed by ID and enforces the
// same not-found and duplicate-email outcomes as the real store.

type fakeMentorRepo struct {
	mentors     map[int64]*models.Mentor
	studentRepo *fakeStudentRepo
	nextID      int64
	err         error
}

func newFakeMentorRepo() *fakeMentorRepo {
	return &fakeMentorRepo{mentors: make(map[int64]*models.Mentor), nextID: 1}
}

func (r *fakeMentorRepo) add(m *models.Mentor) *models.Mentor {
	m.ID = r.nextID
	r.nextID++
	r.mentors[m.ID] = m
	return m
}

func (r *fakeMentorRepo) Create(ctx context.Context, mentor *models.Mentor) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	for _, m := range r.mentors {
		if m.Email == mentor.Email {
			return 0, apperrors.ErrMentorEmailAlreadyExists
		}
	}
	return r.add(mentor).ID, nil
}

func (r *fakeMentorRepo) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.mentors {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, apperrors.ErrMentorNotFound
}

func (r *fakeMentorRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.mentors[id]
	return ok, nil
}

func (r *fakeMentorRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.mentors[id]; !ok {
		return apperrors.ErrMentorNotFound
	}
	delete(r.mentors, id)
	// Mirror the ON DELETE CASCADE on students.mentor_id
	if r.studentRepo != nil {
		for sid, s := range r.studentRepo.students {
			if s.MentorID == id {
				delete(r.studentRepo.students, sid)
			}
		}
	}
	return nil
}

type fakeStudentRepo struct {
	students   map[int64]*models.Student
	mentorRepo *fakeMentorRepo
	nextID     int64
	err        error
}

func newFakeStudentRepo(mentorRepo *fakeMentorRepo) *fakeStudentRepo {
	repo := &fakeStudentRepo{
		students:   make(map[int64]*models.Student),
		mentorRepo: mentorRepo,
		nextID:     1,
	}
	mentorRepo.studentRepo = repo
	return repo
}

func (r *fakeStudentRepo) add(s *models.Student) *models.Student {
	s.ID = r.nextID
	r.nextID++
	r.students[s.ID] = s
	return s
}

func (r *fakeStudentRepo) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.mentorRepo.mentors[student.MentorID]; !ok {
		return nil, apperrors.ErrMentorNotFound
	}
	for _, s := range r.students {
		if s.Email == student.Email {
			return nil, apperrors.ErrStudentEmailAlreadyExists
		}
	}
	copied := *student
	return r.add(&copied), nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if r.err != nil {
		return nil, r.err
	}
	if s, ok := r.students[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, s := range r.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) ListByMentor(ctx context.Context, mentorID int64) ([]models.Student, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.Student, 0)
	for id := int64(1); id < r.nextID; id++ {
		if s, ok := r.students[id]; ok && s.MentorID == mentorID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) UpdateFields(ctx context.Context, id int64, update repositories.StudentUpdate) error {
	if r.err != nil {
		return r.err
	}
	if update.IsEmpty() {
		return apperrors.ErrNoFieldsToUpdate
	}
	s, ok := r.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	if update.CurrentCGPA != nil {
		s.CurrentCGPA = *update.CurrentCGPA
	}
	if update.AttendancePercentage != nil {
		s.AttendancePercentage = *update.AttendancePercentage
	}
	if update.FeeStatus != nil {
		s.FeeStatus = *update.FeeStatus
	}
	if update.Backlogs != nil {
		s.Backlogs = *update.Backlogs
	}
	return nil
}

// fakeClassifier returns a scripted verdict
type fakeClassifier struct {
	prediction ml.Prediction
	err        error
	lastInput  ml.Features
	calls      int
}

func (c *fakeClassifier) Predict(ctx context.Context, features ml.Features) (ml.Prediction, error) {
	c.calls++
	c.lastInput = features
	if c.err != nil {
		return ml.Prediction{}, c.err
	}
	return c.prediction, nil
}
