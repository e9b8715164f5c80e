package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"marblemanager/internal/domain"
	"marblemanager/internal/dto"
	apperrors "marblemanager/internal/errors"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, fullName, phone string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type AuthController struct {
	service AuthService
	logger  *zap.Logger
}

func NewAuthController(service AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{
		service: service,
		logger:  logger,
	}
}

func (c *AuthController) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	user, token, err := c.service.Signup(r.Context(), req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  userDTO(user),
	})
}

func (c *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	user, token, err := c.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  userDTO(user),
	})
}

// HandleLogout exists so the page flow has an endpoint to hit. Tokens are
// stateless; the client discards its copy and the session is over.
func (c *AuthController) HandleLogout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (c *AuthController) handleServiceError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "CONFLICT",
			"message": err.Error(),
		})
		return
	}

	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "UNAUTHORIZED",
			"message": err.Error(),
		})
		return
	}

	c.logger.Error("auth operation failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func userDTO(u *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
	}
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *AuthController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *AuthController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
