package domain

import (
	"errors"
	"time"
)

var (
	ErrCourseNotFound           = errors.New("course not found")
	ErrLessonNotFound           = errors.New("lesson not found")
	ErrUnauthorizedCourseAccess = errors.New("unauthorized access to course")
	ErrAlreadyEnrolled          = errors.New("already enrolled in this course")
	ErrNotEnrolled              = errors.New("not enrolled in this course")
	ErrCourseHasNoLessons       = errors.New("course has no lessons")
)

type (
	CourseRequest struct {
		Title       string `json:"title" validate:"required,max=200"`
		Description string `json:"description" validate:"omitempty,max=4000"`
		ImageURL    string `json:"image_url" validate:"omitempty,url"`
		Level       string `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
		CuisineType string `json:"cuisine_type" validate:"omitempty,max=40"`
	}

	LessonRequest struct {
		Title           string `json:"title" validate:"required,max=200"`
		Content         string `json:"content" validate:"omitempty,max=20000"`
		VideoURL        string `json:"video_url" validate:"omitempty,url"`
		DurationMinutes int    `json:"duration_minutes" validate:"min=0,max=600"`
	}

	Lesson struct {
		ID              string `json:"id"`
		Title           string `json:"title"`
		Content         string `json:"content"`
		VideoURL        string `json:"video_url,omitempty"`
		Position        int    `json:"position"`
		DurationMinutes int    `json:"duration_minutes"`
	}

	Course struct {
		ID               string      `json:"id"`
		Instructor       UserSummary `json:"instructor"`
		Title            string      `json:"title"`
		Description      string      `json:"description"`
		ImageURL         string      `json:"image_url,omitempty"`
		Level            string      `json:"level"`
		CuisineType      string      `json:"cuisine_type"`
		IsPublished      bool        `json:"is_published"`
		Lessons          []Lesson    `json:"lessons"`
		EnrollmentsCount int         `json:"enrollments_count"`
		CreatedAt        time.Time   `json:"created_at"`
	}

	Enrollment struct {
		ID                 string     `json:"id"`
		Course             Course     `json:"course"`
		Progress           float64    `json:"progress"`
		CompletedLessonIDs []string   `json:"completed_lesson_ids"`
		EnrolledAt         time.Time  `json:"enrolled_at"`
		CompletedAt        *time.Time `json:"completed_at,omitempty"`
	}
)
