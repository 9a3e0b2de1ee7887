package api

import (
	"fmt"
	"net/http"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, registration and the profile screen.
type AuthHandler struct {
	authService     service.AuthService
	exerciseService service.ExerciseService
}

func NewAuthHandler(authService service.AuthService, exerciseService service.ExerciseService) *AuthHandler {
	return &AuthHandler{authService: authService, exerciseService: exerciseService}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User domain.Identity `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	UF       string `json:"uf"`
	Password string `json:"password"`
	Level    string `json:"level"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	UF       string `json:"uf"`
	Level    string `json:"level"`
	Password string `json:"password"`
}

type HomeResponse struct {
	Message  string   `json:"message"`
	User     string   `json:"user,omitempty"`
	Sections []string `json:"sections"`
}

// --- Handler Methods ---

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	identity, err := h.authService.Login(c.Request.Context(), service.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		respondError(c, err)
		return
	}
	// a new user must not see the previous user's screen state
	h.exerciseService.Deactivate()

	c.JSON(http.StatusOK, LoginResponse{User: identity})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout()
	h.exerciseService.Deactivate()
	c.Status(http.StatusNoContent)
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		UF:       req.UF,
		Password: req.Password,
		Level:    req.Level,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created"})
}

// POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	_ = c.ShouldBindJSON(&req)
	respondError(c, h.authService.ForgotPassword(c.Request.Context(), req.Email))
}

// GET /api/v1/home
func (h *AuthHandler) Home(c *gin.Context) {
	resp := HomeResponse{
		Message:  "Bem-vindo!",
		Sections: []string{"exercises", "videos", "profile"},
	}
	if profile, err := h.authService.Profile(); err == nil {
		resp.User = profile.Name
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/v1/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	profile, err := h.authService.Profile()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PUT /api/v1/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	profile, err := h.authService.UpdateProfile(c.Request.Context(), service.ProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		UF:       req.UF,
		Level:    req.Level,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
