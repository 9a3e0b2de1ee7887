package api

import (
	"fmt"
	"net/http"
	"strconv"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the exercise screen: the list, today's
// schedule, completion toggles and progress.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// ExerciseRequest is the body of create and update. Days are weekday tags.
type ExerciseRequest struct {
	Name        string        `json:"name"`
	Days        domain.DaySet `json:"days"`
	Description string        `json:"description"`
}

type ToggleCompletionRequest struct {
	ExerciseID int         `json:"exerciseId" binding:"required"`
	Date       domain.Date `json:"date"`
}

type ToggleCompletionResponse struct {
	ExerciseID int         `json:"exerciseId"`
	Date       domain.Date `json:"date"`
	Completed  bool        `json:"completed"`
}

type ProgressResponse struct {
	Date      domain.Date `json:"date"`
	Completed int         `json:"completed"`
	Scheduled int         `json:"scheduled"`
	Percent   int         `json:"percent"`
	Done      bool        `json:"done"`
}

func (r ExerciseRequest) input() service.ExerciseInput {
	return service.ExerciseInput{Name: r.Name, Days: r.Days, Description: r.Description}
}

// --- Handler Methods ---

// GET /api/v1/exercises
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// POST /api/v1/exercises
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := h.exerciseService.Create(c.Request.Context(), req.input()); err != nil {
		respondError(c, err)
		return
	}
	h.respondList(c, http.StatusCreated)
}

// PUT /api/v1/exercises/:id
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, ok := exerciseIDParam(c)
	if !ok {
		return
	}
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := h.exerciseService.Update(c.Request.Context(), id, req.input()); err != nil {
		respondError(c, err)
		return
	}
	h.respondList(c, http.StatusOK)
}

// DELETE /api/v1/exercises/:id
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, ok := exerciseIDParam(c)
	if !ok {
		return
	}
	if err := h.exerciseService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/v1/exercises/reload
func (h *ExerciseHandler) ReloadExercises(c *gin.Context) {
	if err := h.exerciseService.Reload(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	h.respondList(c, http.StatusOK)
}

// GET /api/v1/today
func (h *ExerciseHandler) GetToday(c *gin.Context) {
	view, err := h.exerciseService.Today(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /api/v1/completions
func (h *ExerciseHandler) ToggleCompletion(c *gin.Context) {
	var req ToggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	record, completed, err := h.exerciseService.Toggle(c.Request.Context(), req.ExerciseID, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToggleCompletionResponse{ExerciseID: record.ExerciseID, Date: record.Date, Completed: completed})
}

// GET /api/v1/progress?date=2006-01-02
func (h *ExerciseHandler) GetProgress(c *gin.Context) {
	var date domain.Date
	if raw := c.Query("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	progress, err := h.exerciseService.Progress(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProgressResponse{
		Date:      progress.Date,
		Completed: progress.Completed,
		Scheduled: progress.Scheduled,
		Percent:   progress.Percent(),
		Done:      progress.Done(),
	})
}

func (h *ExerciseHandler) respondList(c *gin.Context, status int) {
	exercises, err := h.exerciseService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, exercises)
}

func exerciseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format")
		return 0, false
	}
	return id, true
}
