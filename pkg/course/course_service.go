package course

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/utils/logger"
	"context"
	"errors"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const defaultLevel = "BEGINNER"

type (
	CourseService interface {
		CreateCourse(ctx context.Context, userID string, req domain.CourseRequest) (domain.Course, error)
		AddLesson(ctx context.Context, userID, courseID string, req domain.LessonRequest) (domain.Course, error)
		PublishCourse(ctx context.Context, userID, courseID string) (domain.Course, error)
		Courses(ctx context.Context, page domain.Page) ([]domain.Course, int64, error)
		Course(ctx context.Context, courseID, viewerID string) (domain.Course, error)
		MyCourses(ctx context.Context, userID string) ([]domain.Course, error)

		EnrollCourse(ctx context.Context, userID, courseID string) (domain.Enrollment, error)
		CompleteLesson(ctx context.Context, userID, courseID, lessonID string) (domain.Enrollment, error)
		MyEnrollments(ctx context.Context, userID string) ([]domain.Enrollment, error)
	}

	courseService struct {
		courseRepository CourseRepository
		log              *logger.Logger
		now              func() time.Time
	}
)

func NewCourseService(courseRepository CourseRepository, log *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		log:              log.With("service", "course"),
		now:              time.Now,
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	return parsed, nil
}

// Progress is the completed share of lessons as a percentage rounded to two decimals.
// Ids of lessons no longer in the course are ignored.
func Progress(completed []string, lessons []*entities.Lesson) float64 {
	if len(lessons) == 0 {
		return 0
	}
	done := 0
	for _, l := range lessons {
		if slices.Contains(completed, l.ID.String()) {
			done++
		}
	}
	p := float64(done) / float64(len(lessons)) * 100
	return math.Round(p*100) / 100
}

func (s *courseService) loadCourse(ctx context.Context, courseID string) (*entities.Course, error) {
	if _, err := parseID(courseID); err != nil {
		return nil, err
	}
	course, err := s.courseRepository.GetCourseByID(ctx, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCourseNotFound
	}
	return course, err
}

func (s *courseService) loadOwnedCourse(ctx context.Context, userID, courseID string) (*entities.Course, error) {
	course, err := s.loadCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.InstructorID.String() != userID {
		return nil, domain.ErrUnauthorizedCourseAccess
	}
	return course, nil
}

func (s *courseService) toCourses(ctx context.Context, courses []*entities.Course) ([]domain.Course, error) {
	ids := make([]uuid.UUID, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	counts, err := s.courseRepository.CountEnrollments(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		out = append(out, ToCourse(c, counts[c.ID]))
	}
	return out, nil
}

func (s *courseService) toCourse(ctx context.Context, course *entities.Course) (domain.Course, error) {
	out, err := s.toCourses(ctx, []*entities.Course{course})
	if err != nil {
		return domain.Course{}, err
	}
	return out[0], nil
}

func (s *courseService) CreateCourse(ctx context.Context, userID string, req domain.CourseRequest) (domain.Course, error) {
	instructorID, err := parseID(userID)
	if err != nil {
		return domain.Course{}, err
	}
	level := strings.ToUpper(req.Level)
	if level == "" {
		level = defaultLevel
	}

	course := &entities.Course{
		ID:           uuid.New(),
		InstructorID: instructorID,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Level:        level,
		CuisineType:  req.CuisineType,
	}
	if course.Title == "" {
		return domain.Course{}, domain.ErrInvalidInput
	}
	if err := s.courseRepository.CreateCourse(ctx, course); err != nil {
		return domain.Course{}, err
	}
	s.log.Info("course created", "course_id", course.ID.String(), "user_id", userID)

	created, err := s.loadCourse(ctx, course.ID.String())
	if err != nil {
		return domain.Course{}, err
	}
	return ToCourse(created, 0), nil
}

func (s *courseService) AddLesson(ctx context.Context, userID, courseID string, req domain.LessonRequest) (domain.Course, error) {
	course, err := s.loadOwnedCourse(ctx, userID, courseID)
	if err != nil {
		return domain.Course{}, err
	}
	lesson := &entities.Lesson{
		ID:              uuid.New(),
		CourseID:        course.ID,
		Title:           strings.TrimSpace(req.Title),
		Content:         req.Content,
		VideoURL:        req.VideoURL,
		DurationMinutes: req.DurationMinutes,
	}
	if lesson.Title == "" {
		return domain.Course{}, domain.ErrInvalidInput
	}
	if err := s.courseRepository.CreateLesson(ctx, lesson); err != nil {
		return domain.Course{}, err
	}

	updated, err := s.loadCourse(ctx, courseID)
	if err != nil {
		return domain.Course{}, err
	}
	return s.toCourse(ctx, updated)
}

func (s *courseService) PublishCourse(ctx context.Context, userID, courseID string) (domain.Course, error) {
	course, err := s.loadOwnedCourse(ctx, userID, courseID)
	if err != nil {
		return domain.Course{}, err
	}
	if len(course.Lessons) == 0 {
		return domain.Course{}, domain.ErrCourseHasNoLessons
	}
	if !course.IsPublished {
		course.IsPublished = true
		if err := s.courseRepository.UpdateCourse(ctx, course); err != nil {
			return domain.Course{}, err
		}
		s.log.Info("course published", "course_id", courseID)
	}
	return s.toCourse(ctx, course)
}

func (s *courseService) Courses(ctx context.Context, page domain.Page) ([]domain.Course, int64, error) {
	page = page.Normalize()
	courses, total, err := s.courseRepository.GetPublishedCourses(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.toCourses(ctx, courses)
	return out, total, err
}

// Course hides unpublished courses from everyone but their instructor.
func (s *courseService) Course(ctx context.Context, courseID, viewerID string) (domain.Course, error) {
	course, err := s.loadCourse(ctx, courseID)
	if err != nil {
		return domain.Course{}, err
	}
	if !course.IsPublished && course.InstructorID.String() != viewerID {
		return domain.Course{}, domain.ErrCourseNotFound
	}
	return s.toCourse(ctx, course)
}

func (s *courseService) MyCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	courses, err := s.courseRepository.GetCoursesByInstructor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toCourses(ctx, courses)
}

func (s *courseService) EnrollCourse(ctx context.Context, userID, courseID string) (domain.Enrollment, error) {
	course, err := s.loadCourse(ctx, courseID)
	if err != nil {
		return domain.Enrollment{}, err
	}
	if !course.IsPublished {
		return domain.Enrollment{}, domain.ErrCourseNotFound
	}
	userUUID, err := parseID(userID)
	if err != nil {
		return domain.Enrollment{}, err
	}

	enrollment := &entities.CourseEnrollment{
		ID:                 uuid.New(),
		UserID:             userUUID,
		CourseID:           course.ID,
		CompletedLessonIDs: pq.StringArray{},
		EnrolledAt:         s.now(),
	}
	err = s.courseRepository.CreateEnrollment(ctx, enrollment)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Enrollment{}, domain.ErrAlreadyEnrolled
	}
	if err != nil {
		return domain.Enrollment{}, err
	}
	enrollment.Course = course
	return s.toEnrollment(ctx, enrollment)
}

func (s *courseService) CompleteLesson(ctx context.Context, userID, courseID, lessonID string) (domain.Enrollment, error) {
	if _, err := parseID(courseID); err != nil {
		return domain.Enrollment{}, err
	}
	if _, err := parseID(lessonID); err != nil {
		return domain.Enrollment{}, err
	}
	enrollment, err := s.courseRepository.GetEnrollment(ctx, userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Enrollment{}, domain.ErrNotEnrolled
	}
	if err != nil {
		return domain.Enrollment{}, err
	}
	if enrollment.Course == nil || !slices.ContainsFunc(enrollment.Course.Lessons, func(l *entities.Lesson) bool {
		return l.ID.String() == lessonID
	}) {
		return domain.Enrollment{}, domain.ErrLessonNotFound
	}

	if !slices.Contains(enrollment.CompletedLessonIDs, lessonID) {
		enrollment.CompletedLessonIDs = append(enrollment.CompletedLessonIDs, lessonID)
	}
	enrollment.Progress = Progress(enrollment.CompletedLessonIDs, enrollment.Course.Lessons)
	if enrollment.Progress >= 100 && enrollment.CompletedAt == nil {
		now := s.now()
		enrollment.CompletedAt = &now
	}
	if err := s.courseRepository.UpdateEnrollment(ctx, enrollment); err != nil {
		return domain.Enrollment{}, err
	}
	return s.toEnrollment(ctx, enrollment)
}

func (s *courseService) MyEnrollments(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	enrollments, err := s.courseRepository.GetEnrollments(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.CourseID)
	}
	counts, err := s.courseRepository.CountEnrollments(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, ToEnrollment(e, counts[e.CourseID]))
	}
	return out, nil
}

func (s *courseService) toEnrollment(ctx context.Context, e *entities.CourseEnrollment) (domain.Enrollment, error) {
	counts, err := s.courseRepository.CountEnrollments(ctx, []uuid.UUID{e.CourseID})
	if err != nil {
		return domain.Enrollment{}, err
	}
	return ToEnrollment(e, counts[e.CourseID]), nil
}
