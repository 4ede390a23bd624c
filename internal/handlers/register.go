package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, login, password string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Login
	// required: true
	// default: john_doe
	Login string `json:"login"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// MessageResponse represents a successful response without payload
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a normal user account. Logins are unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.MessageResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Login already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.Register(r.Context(), req.Login, req.Password)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{
			Message: "User registered successfully",
		})
	}
}

// writeAuthError maps account errors to status codes.
func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMalformedCredentials):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, "Login already exists")
	case errors.Is(err, services.ErrUserDoesNotExist),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidMasterPassword):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrNotAdmin):
		writeError(w, http.StatusForbidden, "User is not an administrator")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
