package course

import (
	"Recipe-Hub/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CourseRepository interface {
		CreateCourse(ctx context.Context, course *entities.Course) error
		UpdateCourse(ctx context.Context, course *entities.Course) error
		GetCourseByID(ctx context.Context, courseID string) (*entities.Course, error)
		GetPublishedCourses(ctx context.Context, offset, limit int) ([]*entities.Course, int64, error)
		GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*entities.Course, error)
		CountEnrollments(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]int, error)

		CreateLesson(ctx context.Context, lesson *entities.Lesson) error

		CreateEnrollment(ctx context.Context, enrollment *entities.CourseEnrollment) error
		GetEnrollment(ctx context.Context, userID, courseID string) (*entities.CourseEnrollment, error)
		UpdateEnrollment(ctx context.Context, enrollment *entities.CourseEnrollment) error
		GetEnrollments(ctx context.Context, userID string) ([]*entities.CourseEnrollment, error)
	}

	courseRepository struct {
		db *gorm.DB
	}
)

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func preloadCourse(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Instructor").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") })
}

func (r *courseRepository) CreateCourse(ctx context.Context, course *entities.Course) error {
	return r.db.WithContext(ctx).Omit("Instructor", "Lessons").Create(course).Error
}

func (r *courseRepository) UpdateCourse(ctx context.Context, course *entities.Course) error {
	return r.db.WithContext(ctx).Omit("Instructor", "Lessons").Save(course).Error
}

func (r *courseRepository) GetCourseByID(ctx context.Context, courseID string) (*entities.Course, error) {
	var course entities.Course
	if err := preloadCourse(r.db.WithContext(ctx)).Where("id = ?", courseID).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetPublishedCourses(ctx context.Context, offset, limit int) ([]*entities.Course, int64, error) {
	var courses []*entities.Course
	var count int64

	base := r.db.WithContext(ctx).Model(&entities.Course{}).Where("is_published = ?", true)
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := preloadCourse(base.Session(&gorm.Session{})).
		Order("created_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&courses).Error; err != nil {
		return nil, 0, err
	}
	return courses, count, nil
}

func (r *courseRepository) GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*entities.Course, error) {
	var courses []*entities.Course
	err := preloadCourse(r.db.WithContext(ctx)).
		Where("instructor_id = ?", instructorID).
		Order("created_at desc").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepository) CountEnrollments(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(courseIDs))
	if len(courseIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		CourseID uuid.UUID
		Total    int
	}
	err := r.db.WithContext(ctx).Model(&entities.CourseEnrollment{}).
		Select("course_id, COUNT(*) AS total").
		Where("course_id IN ?", courseIDs).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.CourseID] = row.Total
	}
	return out, nil
}

// CreateLesson appends the lesson after the course's last position.
func (r *courseRepository) CreateLesson(ctx context.Context, lesson *entities.Lesson) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&entities.Lesson{}).
			Select("COALESCE(MAX(position) + 1, 1)").
			Where("course_id = ?", lesson.CourseID).
			Scan(&next).Error; err != nil {
			return err
		}
		lesson.Position = next
		return tx.Create(lesson).Error
	})
}

func (r *courseRepository) CreateEnrollment(ctx context.Context, enrollment *entities.CourseEnrollment) error {
	return r.db.WithContext(ctx).Omit("User", "Course").Create(enrollment).Error
}

func (r *courseRepository) GetEnrollment(ctx context.Context, userID, courseID string) (*entities.CourseEnrollment, error) {
	var enrollment entities.CourseEnrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Instructor").
		Preload("Course.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *courseRepository) UpdateEnrollment(ctx context.Context, enrollment *entities.CourseEnrollment) error {
	return r.db.WithContext(ctx).Model(enrollment).
		Select("progress", "completed_lesson_ids", "completed_at").
		Updates(enrollment).Error
}

func (r *courseRepository) GetEnrollments(ctx context.Context, userID string) ([]*entities.CourseEnrollment, error) {
	var enrollments []*entities.CourseEnrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Instructor").
		Preload("Course.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("user_id = ?", userID).
		Order("enrolled_at desc").
		Find(&enrollments).Error
	return enrollments, err
}
