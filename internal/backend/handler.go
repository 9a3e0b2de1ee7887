package backend

import (
	"errors"
	"net/http"
	"strconv"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/remote"
	"fittracker/fitness-app/internal/repository"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Handler serves the remote API the app talks to.
type Handler struct {
	auth      AuthService
	exercises ExerciseService
	videos    VideoService
}

func NewHandler(auth AuthService, exercises ExerciseService, videos VideoService) *Handler {
	return &Handler{auth: auth, exercises: exercises, videos: videos}
}

// --- Wire DTOs ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountRequest struct {
	ID       int    `json:"id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	UF       string `json:"uf"`
	Password string `json:"password"`
	Level    string `json:"level"`
}

type accountResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	UF    string `json:"uf"`
	Level string `json:"level"`
}

// exerciseWire is an exercise with its days as a comma-joined string.
type exerciseWire struct {
	ID          int            `json:"id"`
	Name        string         `json:"nome"`
	Days        string         `json:"dias"`
	Description string         `json:"descricao"`
	OwnerID     domain.FlexInt `json:"idUser"`
}

type videoRequest struct {
	Name     string `json:"nome"`
	ImageURL string `json:"imageUrl"`
	VideoURL string `json:"videoUrl"`
	ImageKey string `json:"imageKey"`
	VideoKey string `json:"videoKey"`
}

type videoResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"nome"`
	ImageURL string `json:"imageUrl"`
	VideoURL string `json:"videoUrl"`
}

type uploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{ID: a.ID, Name: a.Name, Email: a.Email, UF: a.UF, Level: a.Level}
}

func toExerciseWire(e domain.Exercise) exerciseWire {
	return exerciseWire{
		ID:          e.ID,
		Name:        e.Name,
		Days:        remote.EncodeDays(e.Days),
		Description: e.Description,
		OwnerID:     domain.FlexInt(e.OwnerID),
	}
}

func (w exerciseWire) toDomain() domain.Exercise {
	return domain.Exercise{
		ID:          w.ID,
		OwnerID:     int(w.OwnerID),
		Name:        w.Name,
		Days:        remote.DecodeDays(w.Days),
		Description: w.Description,
	}
}

func toVideoResponse(v domain.Video) videoResponse {
	return videoResponse{ID: v.ID, Name: v.Name, ImageURL: v.ImageURL, VideoURL: v.VideoURL}
}

// --- Users ---

// POST /userauth
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// POST /user
func (h *Handler) Register(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	account, err := h.auth.Register(c.Request.Context(), AccountInput{
		Name: req.Name, Email: req.Email, UF: req.UF, Level: req.Level, Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAccountResponse(account))
}

// PUT /user/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller, ok := identityFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Token ausente")
		return
	}
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	account, err := h.auth.UpdateAccount(c.Request.Context(), caller, id, AccountInput{
		Name: req.Name, Email: req.Email, UF: req.UF, Level: req.Level, Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(account))
}

// --- Exercises ---

// GET /exercicios
func (h *Handler) ListExercises(c *gin.Context) {
	exercises, err := h.exercises.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := make([]exerciseWire, len(exercises))
	for i, e := range exercises {
		resp[i] = toExerciseWire(e)
	}
	c.JSON(http.StatusOK, resp)
}

// POST /exercicios
func (h *Handler) CreateExercise(c *gin.Context) {
	var req exerciseWire
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	created, err := h.exercises.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toExerciseWire(*created))
}

// PUT /exercicios/:id
func (h *Handler) UpdateExercise(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req exerciseWire
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	exercise := req.toDomain()
	exercise.ID = id
	updated, err := h.exercises.Update(c.Request.Context(), exercise)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toExerciseWire(*updated))
}

// DELETE /exercicios/:id
func (h *Handler) DeleteExercise(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.exercises.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Videos ---

// GET /videos
func (h *Handler) ListVideos(c *gin.Context) {
	videos, err := h.videos.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := make([]videoResponse, len(videos))
	for i, v := range videos {
		resp[i] = toVideoResponse(v)
	}
	c.JSON(http.StatusOK, resp)
}

// POST /videos
func (h *Handler) AddVideo(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	video, err := h.videos.Add(c.Request.Context(), domain.CatalogVideo{
		Name: req.Name, ImageURL: req.ImageURL, VideoURL: req.VideoURL, ImageKey: req.ImageKey, VideoKey: req.VideoKey,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVideoResponse(*video))
}

// DELETE /videos/:id
func (h *Handler) DeleteVideo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.videos.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /videos/upload-url
func (h *Handler) UploadURL(c *gin.Context) {
	var req uploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "contentType é obrigatório")
		return
	}
	ticket, err := h.videos.UploadURL(c.Request.Context(), req.ContentType)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// fail maps service and repository errors to statuses.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, "Usuário ou senha inválidos")
	case errors.Is(err, ErrForbidden):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, repository.ErrDuplicate):
		abortWithError(c, http.StatusConflict, "Email já cadastrado")
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidExercise),
		errors.Is(err, ErrInvalidVideo), errors.Is(err, ErrInvalidUpload):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "Registro não encontrado")
	case errors.Is(err, ErrStorageDisabled):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		log.Errorf("backend: %s %s: %s", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
	}
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return id, true
}
