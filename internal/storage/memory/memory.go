// Package memory is an in-memory implementation of the postgres
// repositories. It enforces the same uniqueness and cascade rules and backs
// service and handler tests.
package memory

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"EduPlatform/internal/storage/postgres"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Store struct {
	mu          sync.Mutex
	users       map[uuid.UUID]models.User
	tokens      map[uuid.UUID][]models.RefreshToken
	courses     map[uuid.UUID]models.Course
	chapters    map[uuid.UUID]models.Chapter
	enrollments map[uuid.UUID]models.Enrollment
	progress    map[uuid.UUID]models.Progress

	// EnrollHook runs before an enrollment is written. Tests use it to
	// simulate a concurrent writer.
	EnrollHook func(userID, courseID uuid.UUID)
}

func New() *Store {
	return &Store{
		users:       map[uuid.UUID]models.User{},
		tokens:      map[uuid.UUID][]models.RefreshToken{},
		courses:     map[uuid.UUID]models.Course{},
		chapters:    map[uuid.UUID]models.Chapter{},
		enrollments: map[uuid.UUID]models.Enrollment{},
		progress:    map[uuid.UUID]models.Progress{},
	}
}

/* ---------------- users ---------------- */

func (s *Store) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, app_errors.ErrUserExists
		}
	}
	if user.Role == "" {
		user.Role = models.UserRole
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = user
	return &user, nil
}

func (s *Store) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, app_errors.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, app_errors.ErrUserNotFound
}

/* ---------------- refresh tokens ---------------- */

func (s *Store) Create(_ context.Context, userID uuid.UUID, token *jwt.Token) (*models.RefreshToken, error) {
	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, app_errors.ErrInvalidToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rt := models.RefreshToken{
		UserID:      userID,
		HashedToken: postgres.HashToken(token),
		CreatedAt:   time.Now().UTC(),
		ExpiresAt:   exp.Time,
	}
	s.tokens[userID] = append(s.tokens[userID], rt)
	return &rt, nil
}

func (s *Store) ByPrimaryKey(_ context.Context, userID uuid.UUID, token *jwt.Token) (*models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hashed := postgres.HashToken(token)
	for _, rt := range s.tokens[userID] {
		if rt.HashedToken == hashed {
			return &rt, nil
		}
	}
	return nil, app_errors.ErrTokenNotFound
}

func (s *Store) DeleteUserTokens(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, userID)
	return nil
}

/* ---------------- courses ---------------- */

func (s *Store) codeTaken(code string, except uuid.UUID) bool {
	for _, c := range s.courses {
		if c.ID != except && strings.EqualFold(c.EnrollmentCode, code) {
			return true
		}
	}
	return false
}

func (s *Store) CreateCourse(_ context.Context, plan models.CoursePlan) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := plan.Course
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	if s.codeTaken(course.EnrollmentCode, course.ID) {
		return nil, app_errors.ErrDuplicateEnrollmentCode
	}
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	s.courses[course.ID] = course

	for _, ch := range plan.InsertChapters {
		ch.CourseID = course.ID
		s.insertChapter(ch, now)
	}
	return &course, nil
}

func (s *Store) UpdateCourse(_ context.Context, plan models.CoursePlan) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[plan.Course.ID]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	now := time.Now().UTC()
	course.Title = plan.Course.Title
	course.Description = plan.Course.Description
	course.ImageURL = plan.Course.ImageURL
	course.UpdatedAt = now
	s.courses[course.ID] = course

	for _, id := range plan.DeleteChapters {
		if ch, ok := s.chapters[id]; ok && ch.CourseID == course.ID {
			s.deleteChapter(id)
		}
	}

	for _, upd := range plan.UpdateChapters {
		ch, ok := s.chapters[upd.ID]
		if !ok || ch.CourseID != course.ID {
			return nil, app_errors.ErrChapterNotFound
		}
		ch.Title = upd.Title
		ch.Content = upd.Content
		ch.Order = upd.Order
		ch.UpdatedAt = now
		for _, q := range upd.Quizzes {
			ch.Quizzes = upsertQuiz(ch.Quizzes, q, ch.ID, now)
		}
		sort.SliceStable(ch.Quizzes, func(i, j int) bool { return ch.Quizzes[i].Order < ch.Quizzes[j].Order })
		s.chapters[ch.ID] = ch
	}

	for _, ch := range plan.InsertChapters {
		ch.CourseID = course.ID
		s.insertChapter(ch, now)
	}
	return &course, nil
}

func (s *Store) DeleteCourse(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return app_errors.ErrCourseNotFound
	}
	for pid, p := range s.progress {
		if p.CourseID == id {
			delete(s.progress, pid)
		}
	}
	for chID, ch := range s.chapters {
		if ch.CourseID == id {
			s.deleteChapter(chID)
		}
	}
	for eid, e := range s.enrollments {
		if e.CourseID == id {
			delete(s.enrollments, eid)
		}
	}
	delete(s.courses, id)
	return nil
}

func (s *Store) CourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	return &c, nil
}

func (s *Store) ListCourses(_ context.Context) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].CreatedAt.After(courses[j].CreatedAt) })
	return courses, nil
}

func (s *Store) CoursesByIDs(_ context.Context, ids []uuid.UUID) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.courses[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (s *Store) SetImageObjectKey(_ context.Context, id uuid.UUID, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return app_errors.ErrCourseNotFound
	}
	c.ImageObjectKey = objectKey
	c.UpdatedAt = time.Now().UTC()
	s.courses[id] = c
	return nil
}

/* ---------------- chapters ---------------- */

func (s *Store) insertChapter(ch models.Chapter, now time.Time) {
	if ch.ID == uuid.Nil {
		ch.ID = uuid.New()
	}
	ch.CreatedAt = now
	ch.UpdatedAt = now
	quizzes := make([]models.Quiz, 0, len(ch.Quizzes))
	for _, q := range ch.Quizzes {
		q.ID = uuid.Nil
		quizzes = upsertQuiz(quizzes, q, ch.ID, now)
	}
	ch.Quizzes = quizzes
	s.chapters[ch.ID] = ch
}

func (s *Store) deleteChapter(id uuid.UUID) {
	for pid, p := range s.progress {
		if p.ChapterID == id {
			delete(s.progress, pid)
		}
	}
	delete(s.chapters, id)
}

func upsertQuiz(quizzes []models.Quiz, q models.Quiz, chapterID uuid.UUID, now time.Time) []models.Quiz {
	q.ChapterID = chapterID
	q.UpdatedAt = now
	if q.Options == nil {
		q.Options = []string{}
	}
	if q.ID != uuid.Nil {
		for i := range quizzes {
			if quizzes[i].ID == q.ID {
				q.CreatedAt = quizzes[i].CreatedAt
				quizzes[i] = q
				return quizzes
			}
		}
		return quizzes
	}
	q.ID = uuid.New()
	q.CreatedAt = now
	return append(quizzes, q)
}

func cloneChapter(ch models.Chapter) models.Chapter {
	ch.Quizzes = append([]models.Quiz(nil), ch.Quizzes...)
	return ch
}

func (s *Store) ChapterInCourse(_ context.Context, courseID, chapterID uuid.UUID) (*models.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.chapters[chapterID]
	if !ok || ch.CourseID != courseID {
		return nil, app_errors.ErrChapterNotFound
	}
	ch = cloneChapter(ch)
	return &ch, nil
}

func (s *Store) ChaptersByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Chapter, error) {
	byCourse, err := s.ChaptersByCourses(ctx, []uuid.UUID{courseID})
	if err != nil {
		return nil, err
	}
	return byCourse[courseID], nil
}

func (s *Store) ChaptersByCourses(_ context.Context, courseIDs []uuid.UUID) (map[uuid.UUID][]models.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[uuid.UUID]bool, len(courseIDs))
	for _, id := range courseIDs {
		wanted[id] = true
	}
	result := make(map[uuid.UUID][]models.Chapter, len(courseIDs))
	for _, ch := range s.chapters {
		if wanted[ch.CourseID] {
			result[ch.CourseID] = append(result[ch.CourseID], cloneChapter(ch))
		}
	}
	for id := range result {
		chs := result[id]
		sort.SliceStable(chs, func(i, j int) bool { return chs[i].Order < chs[j].Order })
	}
	return result, nil
}

/* ---------------- enrollments ---------------- */

func (s *Store) Enroll(_ context.Context, userID, courseID uuid.UUID) (bool, error) {
	if s.EnrollHook != nil {
		s.EnrollHook(userID, courseID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return false, nil
		}
	}
	e := models.Enrollment{ID: uuid.New(), UserID: userID, CourseID: courseID, EnrolledAt: time.Now().UTC()}
	s.enrollments[e.ID] = e
	return true, nil
}

func (s *Store) IsEnrolled(_ context.Context, userID, courseID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) EnrolledCourseIDs(_ context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := map[uuid.UUID]bool{}
	for _, e := range s.enrollments {
		if e.UserID == userID {
			ids[e.CourseID] = true
		}
	}
	return ids, nil
}

func (s *Store) EnrolledCourses(_ context.Context, userID uuid.UUID) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var enrollments []models.Enrollment
	for _, e := range s.enrollments {
		if e.UserID == userID {
			enrollments = append(enrollments, e)
		}
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].EnrolledAt.After(enrollments[j].EnrolledAt) })

	courses := make([]models.Course, 0, len(enrollments))
	for _, e := range enrollments {
		if c, ok := s.courses[e.CourseID]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

// EnrollmentCount is the number of stored enrollment rows.
func (s *Store) EnrollmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.enrollments)
}

/* ---------------- progress ---------------- */

func (s *Store) Upsert(_ context.Context, u models.ProgressUpdate) (models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := models.Progress{ID: uuid.New(), UserID: u.UserID, CourseID: u.CourseID, ChapterID: u.ChapterID}
	for _, p := range s.progress {
		if p.UserID == u.UserID && p.ChapterID == u.ChapterID {
			current = p
			break
		}
	}
	next := current.Apply(u)
	s.progress[next.ID] = next
	return next, nil
}

func (s *Store) ByChapter(_ context.Context, userID, chapterID uuid.UUID) (models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.progress {
		if p.UserID == userID && p.ChapterID == chapterID {
			return p, nil
		}
	}
	return models.Progress{UserID: userID, ChapterID: chapterID}, nil
}

func (s *Store) CompletedChapterIDs(_ context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := map[uuid.UUID]bool{}
	for _, p := range s.progress {
		if p.UserID == userID && p.Completed {
			ids[p.ChapterID] = true
		}
	}
	return ids, nil
}

// ProgressCount is the number of stored progress rows.
func (s *Store) ProgressCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.progress)
}
