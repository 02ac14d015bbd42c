package course

import (
	"errors"
	"time"
)

type Course struct {
	ID           string     `json:"course_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	InstructorID string     `json:"instructor_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Modules      []Module   `json:"modules"`
	Detail       Detail     `json:"detail"`
}

type Module struct {
	ID              string   `json:"module_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Order           int      `json:"order"`
	DurationMinutes int      `json:"estimated_duration_minutes"`
	Lessons         []Lesson `json:"lessons"`
}

type Lesson struct {
	ID              string  `json:"lesson_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	Order           int     `json:"order"`
	DurationMinutes int     `json:"estimated_duration_minutes"`
	Topics          []Topic `json:"topics"`
}

type Topic struct {
	ID              string `json:"topic_id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Order           int    `json:"order"`
	ContentURL      string `json:"content_url,omitempty"`
	DurationMinutes int    `json:"estimated_duration_minutes"`
}

// Detail carries denormalized totals over the nested structure.
// Recomputed on every structural mutation.
type Detail struct {
	TotalModules int `json:"total_modules"`
	TotalLessons int `json:"total_lessons"`
	TotalTopics  int `json:"total_topics"`
}

type Instructor struct {
	ID   string `json:"instructor_id"`
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

var (
	ErrNotFound       = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrLessonNotFound = errors.New("lesson not found")
)

type CreateCourseRequest struct {
	Title        string `json:"title" binding:"required,min=3,max=120"`
	Description  string `json:"description" binding:"omitempty,max=1000"`
	InstructorID string `json:"instructor_id" binding:"required"`
}

type AddModuleRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=120"`
	Description     string `json:"description" binding:"omitempty,max=1000"`
	Order           int    `json:"order" binding:"omitempty,min=1"`
	DurationMinutes int    `json:"estimated_duration_minutes" binding:"omitempty,min=0"`
}

type AddLessonRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=120"`
	Description     string `json:"description" binding:"omitempty,max=1000"`
	Order           int    `json:"order" binding:"omitempty,min=1"`
	DurationMinutes int    `json:"estimated_duration_minutes" binding:"omitempty,min=0"`
}

type AddTopicRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=120"`
	Description     string `json:"description" binding:"omitempty,max=1000"`
	Order           int    `json:"order" binding:"omitempty,min=1"`
	ContentURL      string `json:"content_url" binding:"omitempty,url"`
	DurationMinutes int    `json:"estimated_duration_minutes" binding:"omitempty,min=0"`
}

// Recount walks the nested structure and refreshes the detail totals.
func (c *Course) Recount() {
	d := Detail{TotalModules: len(c.Modules)}

	for _, m := range c.Modules {
		d.TotalLessons += len(m.Lessons)
		for _, l := range m.Lessons {
			d.TotalTopics += len(l.Topics)
		}
	}

	c.Detail = d
}
