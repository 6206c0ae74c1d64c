package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Course struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InstructorID uuid.UUID `gorm:"type:uuid;index;not null" json:"instructor_id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageURL     string    `json:"image_url,omitempty"`
	Level        string    `json:"level"` // Beginner, Intermediate, Advanced
	CuisineType  string    `json:"cuisine_type,omitempty"`
	IsPublished  bool      `json:"is_published"`

	Instructor *User     `gorm:"foreignKey:InstructorID"`
	Lessons    []*Lesson `gorm:"foreignKey:CourseID"`
	Timestamp
}

type Lesson struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CourseID        uuid.UUID `gorm:"type:uuid;index;not null" json:"course_id"`
	Title           string    `json:"title"`
	Content         string    `gorm:"type:text" json:"content"`
	VideoURL        string    `json:"video_url,omitempty"`
	Position        int       `json:"position"`
	DurationMinutes int       `json:"duration_minutes"`

	Timestamp
}

// CompletedLessonIDs is denormalised and not checked against the course's lessons.
type CourseEnrollment struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course" json:"user_id"`
	CourseID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course;index" json:"course_id"`
	Progress           float64        `json:"progress"`
	CompletedLessonIDs pq.StringArray `gorm:"type:text[]" json:"completed_lesson_ids"`
	EnrolledAt         time.Time      `gorm:"type:timestamptz" json:"enrolled_at"`
	CompletedAt        *time.Time     `gorm:"type:timestamptz" json:"completed_at,omitempty"`

	User   *User   `gorm:"foreignKey:UserID"`
	Course *Course `gorm:"foreignKey:CourseID"`
}
