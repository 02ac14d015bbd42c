package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lernexhq/lernex/internal/domain/course"
)

// CoursesRepo holds the course catalog, including the nested
// module/lesson/topic structure. Structural mutations recompute the
// denormalized detail totals before publishing the new value.
type CoursesRepo struct {
	mu          sync.RWMutex
	items       map[string]course.Course
	instructors map[string]course.Instructor
}

func NewCoursesRepo() *CoursesRepo {
	return &CoursesRepo{
		items:       make(map[string]course.Course),
		instructors: make(map[string]course.Instructor),
	}
}

// Seed loads the starter instructors and catalog. Called once at boot.
func (r *CoursesRepo) Seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, in := range course.SeedInstructors() {
		r.instructors[in.ID] = in
	}

	for _, c := range course.SeedCourses(time.Now().UTC()) {
		r.items[c.ID] = c
	}
}

func (r *CoursesRepo) Create(ctx context.Context, req course.CreateCourseRequest) (course.Course, error) {
	now := time.Now().UTC()
	c := course.Course{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: req.InstructorID,
		CreatedAt:    now,
		UpdatedAt:    now,
		Modules:      []course.Module{},
	}
	c.Recount()

	r.mu.Lock()
	r.items[c.ID] = c
	r.mu.Unlock()

	return c, nil
}

func (r *CoursesRepo) GetByID(ctx context.Context, id string) (course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]

	if !ok {
		return course.Course{}, course.ErrNotFound
	}

	return c, nil
}

func (r *CoursesRepo) List(ctx context.Context) ([]course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]course.Course, 0, len(r.items))

	for _, c := range r.items {
		out = append(out, c)
	}

	// Stable order for listings; map iteration is randomized.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *CoursesRepo) AddModule(ctx context.Context, courseID string, req course.AddModuleRequest) (course.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[courseID]

	if !ok {
		return course.Course{}, course.ErrNotFound
	}

	c.Modules = cloneModules(c.Modules)

	m := course.Module{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Order:           req.Order,
		DurationMinutes: req.DurationMinutes,
		Lessons:         []course.Lesson{},
	}

	if m.Order == 0 {
		m.Order = len(c.Modules) + 1
	}

	c.Modules = append(c.Modules, m)
	c.UpdatedAt = time.Now().UTC()
	c.Recount()
	r.items[courseID] = c

	return c, nil
}

func (r *CoursesRepo) AddLesson(ctx context.Context, courseID, moduleID string, req course.AddLessonRequest) (course.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[courseID]

	if !ok {
		return course.Course{}, course.ErrNotFound
	}

	// Copy-on-write: course values already handed to readers share the
	// nested slices, so never mutate them in place.
	c.Modules = cloneModules(c.Modules)

	for i := range c.Modules {
		if c.Modules[i].ID != moduleID {
			continue
		}

		l := course.Lesson{
			ID:              uuid.NewString(),
			Title:           req.Title,
			Description:     req.Description,
			Order:           req.Order,
			DurationMinutes: req.DurationMinutes,
			Topics:          []course.Topic{},
		}

		if l.Order == 0 {
			l.Order = len(c.Modules[i].Lessons) + 1
		}

		c.Modules[i].Lessons = append(c.Modules[i].Lessons, l)
		c.UpdatedAt = time.Now().UTC()
		c.Recount()
		r.items[courseID] = c

		return c, nil
	}

	return course.Course{}, course.ErrModuleNotFound
}

func (r *CoursesRepo) AddTopic(ctx context.Context, courseID, moduleID, lessonID string, req course.AddTopicRequest) (course.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[courseID]

	if !ok {
		return course.Course{}, course.ErrNotFound
	}

	c.Modules = cloneModules(c.Modules)

	for i := range c.Modules {
		if c.Modules[i].ID != moduleID {
			continue
		}

		for j := range c.Modules[i].Lessons {
			if c.Modules[i].Lessons[j].ID != lessonID {
				continue
			}

			topic := course.Topic{
				ID:              uuid.NewString(),
				Title:           req.Title,
				Description:     req.Description,
				Order:           req.Order,
				ContentURL:      req.ContentURL,
				DurationMinutes: req.DurationMinutes,
			}

			if topic.Order == 0 {
				topic.Order = len(c.Modules[i].Lessons[j].Topics) + 1
			}

			c.Modules[i].Lessons[j].Topics = append(c.Modules[i].Lessons[j].Topics, topic)
			c.UpdatedAt = time.Now().UTC()
			c.Recount()
			r.items[courseID] = c

			return c, nil
		}

		return course.Course{}, course.ErrLessonNotFound
	}

	return course.Course{}, course.ErrModuleNotFound
}

func cloneModules(modules []course.Module) []course.Module {
	out := make([]course.Module, len(modules))
	copy(out, modules)

	for i := range out {
		lessons := make([]course.Lesson, len(out[i].Lessons))
		copy(lessons, out[i].Lessons)

		for j := range lessons {
			topics := make([]course.Topic, len(lessons[j].Topics))
			copy(topics, lessons[j].Topics)
			lessons[j].Topics = topics
		}

		out[i].Lessons = lessons
	}

	return out
}
