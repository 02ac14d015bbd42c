package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/cache"
	"github.com/lernexhq/lernex/internal/domain/course"
	"github.com/lernexhq/lernex/internal/domain/enrollment"
	"github.com/lernexhq/lernex/internal/http/middlewares"
	"github.com/lernexhq/lernex/internal/jobs"
	"github.com/lernexhq/lernex/internal/observability"
)

type CourseCatalog interface {
	Create(ctx context.Context, req course.CreateCourseRequest) (course.Course, error)
	GetByID(ctx context.Context, id string) (course.Course, error)
	List(ctx context.Context) ([]course.Course, error)
	AddModule(ctx context.Context, courseID string, req course.AddModuleRequest) (course.Course, error)
	AddLesson(ctx context.Context, courseID, moduleID string, req course.AddLessonRequest) (course.Course, error)
	AddTopic(ctx context.Context, courseID, moduleID, lessonID string, req course.AddTopicRequest) (course.Course, error)
}

type EnrollmentWriter interface {
	Create(ctx context.Context, req enrollment.CreateEnrollmentRequest) (enrollment.Enrollment, error)
	ListByLearner(ctx context.Context, learnerID string) ([]enrollment.Enrollment, error)
}

const coursesListCacheKey = "courses:list"

type CoursesHandler struct {
	catalog     CourseCatalog
	enrollments EnrollmentWriter
	listCache   *cache.Cache[[]course.Course]
	queue       NotificationEnqueuer
	metrics     *observability.Prom
}

func NewCoursesHandler(catalog CourseCatalog, enrollments EnrollmentWriter, listCache *cache.Cache[[]course.Course], queue NotificationEnqueuer, metrics *observability.Prom) *CoursesHandler {
	return &CoursesHandler{
		catalog:     catalog,
		enrollments: enrollments,
		listCache:   listCache,
		queue:       queue,
		metrics:     metrics,
	}
}

func (h *CoursesHandler) List(ctx *gin.Context) {
	if h.listCache != nil {
		if courses, ok := h.listCache.Get(coursesListCacheKey); ok {
			ctx.JSON(http.StatusOK, courses)
			return
		}
	}

	courses, err := h.catalog.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list courses")
		return
	}

	if h.listCache != nil {
		h.listCache.Set(coursesListCacheKey, courses)
	}

	ctx.JSON(http.StatusOK, courses)
}

func (h *CoursesHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	c, err := h.catalog.GetByID(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, course.ErrNotFound) {
			RespondNotFound(ctx, "Course not found")
			return
		}

		RespondInternal(ctx, "Could not fetch course")
		return
	}

	ctx.JSON(http.StatusOK, c)
}

func (h *CoursesHandler) Create(ctx *gin.Context) {
	var req course.CreateCourseRequest

	if !BindJSON(ctx, &req) {
		return
	}

	c, err := h.catalog.Create(ctx.Request.Context(), req)

	if err != nil {
		RespondInternal(ctx, "Could not create course")
		return
	}

	h.invalidateList()

	ctx.JSON(http.StatusOK, c)
}

func (h *CoursesHandler) AddModule(ctx *gin.Context) {
	var req course.AddModuleRequest

	if !BindJSON(ctx, &req) {
		return
	}

	c, err := h.catalog.AddModule(ctx.Request.Context(), ctx.Param("id"), req)

	if err != nil {
		h.respondStructureError(ctx, err, "Could not add module")
		return
	}

	h.invalidateList()

	ctx.JSON(http.StatusOK, c)
}

func (h *CoursesHandler) AddLesson(ctx *gin.Context) {
	var req course.AddLessonRequest

	if !BindJSON(ctx, &req) {
		return
	}

	c, err := h.catalog.AddLesson(ctx.Request.Context(), ctx.Param("id"), ctx.Param("moduleID"), req)

	if err != nil {
		h.respondStructureError(ctx, err, "Could not add lesson")
		return
	}

	h.invalidateList()

	ctx.JSON(http.StatusOK, c)
}

func (h *CoursesHandler) AddTopic(ctx *gin.Context) {
	var req course.AddTopicRequest

	if !BindJSON(ctx, &req) {
		return
	}

	c, err := h.catalog.AddTopic(ctx.Request.Context(), ctx.Param("id"), ctx.Param("moduleID"), ctx.Param("lessonID"), req)

	if err != nil {
		h.respondStructureError(ctx, err, "Could not add topic")
		return
	}

	h.invalidateList()

	ctx.JSON(http.StatusOK, c)
}

type EnrollResponse struct {
	Message      string `json:"message"`
	CourseID     string `json:"course_id"`
	EnrollmentID string `json:"enrollment_id"`
}

// Enroll enrolls the authenticated principal into the course.
func (h *CoursesHandler) Enroll(ctx *gin.Context) {
	courseID := ctx.Param("id")

	principal, ok := middlewares.LearnerFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Could not validate credentials")
		return
	}

	c, err := h.catalog.GetByID(ctx.Request.Context(), courseID)

	if err != nil {
		if errors.Is(err, course.ErrNotFound) {
			RespondNotFound(ctx, "Course not found")
			return
		}

		RespondInternal(ctx, "Could not enroll in course")
		return
	}

	e, err := h.enrollments.Create(ctx.Request.Context(), enrollment.CreateEnrollmentRequest{
		LearnerID: principal.ID,
		CourseID:  c.ID,
		Status:    enrollment.StatusActive,
	})

	if err != nil {
		if errors.Is(err, enrollment.ErrAlreadyEnrolled) {
			RespondBadRequest(ctx, "already_enrolled", "Already enrolled in this course", nil)
			return
		}

		RespondInternal(ctx, "Could not enroll in course")
		return
	}

	h.enqueueConfirmation(ctx, principal.Email, principal.Name, e, c)

	ctx.JSON(http.StatusOK, EnrollResponse{
		Message:      "Successfully enrolled in course",
		CourseID:     c.ID,
		EnrollmentID: e.ID,
	})
}

// MyCourses lists the courses the principal is enrolled in.
func (h *CoursesHandler) MyCourses(ctx *gin.Context) {
	principal, ok := middlewares.LearnerFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Could not validate credentials")
		return
	}

	enrolled, err := h.enrollments.ListByLearner(ctx.Request.Context(), principal.ID)

	if err != nil {
		RespondInternal(ctx, "Could not list enrolled courses")
		return
	}

	courses := make([]course.Course, 0, len(enrolled))

	for _, e := range enrolled {
		c, err := h.catalog.GetByID(ctx.Request.Context(), e.CourseID)

		if err != nil {
			// enrollment may outlive a course; skip dangling references
			continue
		}

		courses = append(courses, c)
	}

	ctx.JSON(http.StatusOK, courses)
}

func (h *CoursesHandler) respondStructureError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, course.ErrNotFound):
		RespondNotFound(ctx, "Course not found")
	case errors.Is(err, course.ErrModuleNotFound):
		RespondNotFound(ctx, "Module not found")
	case errors.Is(err, course.ErrLessonNotFound):
		RespondNotFound(ctx, "Lesson not found")
	default:
		RespondInternal(ctx, fallback)
	}
}

func (h *CoursesHandler) invalidateList() {
	if h.listCache != nil {
		h.listCache.Delete(coursesListCacheKey)
	}
}

func (h *CoursesHandler) enqueueConfirmation(ctx *gin.Context, email, name string, e enrollment.Enrollment, c course.Course) {
	if h.queue == nil {
		return
	}

	payload, err := jobs.EncodePayload(jobs.JobSendEnrollmentConfirmation, jobs.EnrollmentConfirmationPayload{
		EnrollmentID: e.ID,
		LearnerID:    e.LearnerID,
		CourseID:     c.ID,
		CourseTitle:  c.Title,
		Email:        email,
		Name:         name,
		RequestID:    requestIDFrom(ctx),
	})

	if err != nil {
		return
	}

	j, err := jobs.NewJob(jobs.JobSendEnrollmentConfirmation, payload)

	if err != nil {
		return
	}

	_ = h.queue.Enqueue(ctx.Request.Context(), j)

	if h.metrics != nil {
		h.metrics.JobsEnqueued.WithLabelValues(string(jobs.JobSendEnrollmentConfirmation)).Inc()
	}
}
