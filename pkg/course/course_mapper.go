package course

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/pkg/user"
)

func ToLesson(l *entities.Lesson) domain.Lesson {
	return domain.Lesson{
		ID:              l.ID.String(),
		Title:           l.Title,
		Content:         l.Content,
		VideoURL:        l.VideoURL,
		Position:        l.Position,
		DurationMinutes: l.DurationMinutes,
	}
}

func ToCourse(c *entities.Course, enrollments int) domain.Course {
	out := domain.Course{
		ID:               c.ID.String(),
		Instructor:       user.ToSummary(c.Instructor),
		Title:            c.Title,
		Description:      c.Description,
		ImageURL:         c.ImageURL,
		Level:            c.Level,
		CuisineType:      c.CuisineType,
		IsPublished:      c.IsPublished,
		Lessons:          make([]domain.Lesson, 0, len(c.Lessons)),
		EnrollmentsCount: enrollments,
		CreatedAt:        c.CreatedAt,
	}
	if out.Instructor.ID == "" {
		out.Instructor.ID = c.InstructorID.String()
	}
	for _, l := range c.Lessons {
		out.Lessons = append(out.Lessons, ToLesson(l))
	}
	return out
}

func ToEnrollment(e *entities.CourseEnrollment, enrollments int) domain.Enrollment {
	out := domain.Enrollment{
		ID:                 e.ID.String(),
		Progress:           e.Progress,
		CompletedLessonIDs: append([]string{}, e.CompletedLessonIDs...),
		EnrolledAt:         e.EnrolledAt,
		CompletedAt:        e.CompletedAt,
	}
	if e.Course != nil {
		out.Course = ToCourse(e.Course, enrollments)
	}
	return out
}
