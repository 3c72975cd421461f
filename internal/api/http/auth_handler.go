package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/service"
)

type AuthHandler struct {
	authSvc  service.AuthService
	validate *validator.Validate
}

func NewAuthHandler(authSvc service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, validate: validate}
}

type registerRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	StudentID string `json:"studentId" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the user payload with the token attached, mirroring the
// register/login contract.
type userResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	StudentID     string               `json:"studentId"`
	Role          domain.UserRole      `json:"role"`
	CurrentBorrow *domain.BorrowRecord `json:"currentBorrow,omitempty"`
	Token         string               `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authSvc.Register(r.Context(), req.Name, req.Email, req.StudentID, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "User registered successfully", userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		StudentID: user.StudentID,
		Role:      user.Role,
		Token:     token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Login successful", userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		StudentID: user.StudentID,
		Role:      user.Role,
		Token:     token,
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	user, current, err := h.authSvc.GetProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, struct {
		*domain.User
		CurrentBorrow *domain.BorrowRecord `json:"currentBorrow,omitempty"`
	}{User: user, CurrentBorrow: current})
}
