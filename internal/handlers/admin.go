package handlers

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
)

// AdminRegisterer registers admin accounts.
type AdminRegisterer interface {
	RegisterAdmin(ctx context.Context, login, password, masterPassword string) error
}

// AdminPasswordResetter resets admin passwords.
type AdminPasswordResetter interface {
	ResetAdminPassword(ctx context.Context, login, newPassword, masterPassword string) error
}

// AdminLister lists admin accounts.
type AdminLister interface {
	ListAdmins(ctx context.Context) ([]string, error)
}

// AdminRequest represents the JSON body of master-password protected admin operations
// swagger:model AdminRequest
type AdminRequest struct {
	// Admin login
	// required: true
	// default: root
	Login string `json:"login"`

	// New password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Master password from the service configuration
	// required: true
	MasterPassword string `json:"master_password"`
}

// AdminListResponse lists admin logins
// swagger:model AdminListResponse
type AdminListResponse struct {
	Admins []string `json:"admins"`
}

// NewAdminRegisterHandler returns an HTTP handler creating admin accounts.
// @Summary Register an admin
// @Description Creates an admin account. Requires the master password.
// @Tags admin
// @Accept json
// @Produce json
// @Param adminRequest body handlers.AdminRequest true "Admin registration request"
// @Success 201 {object} handlers.MessageResponse "Admin registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid master password"
// @Failure 409 {object} handlers.ErrorResponse "Login already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/register [post]
func NewAdminRegisterHandler(svc AdminRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.RegisterAdmin(r.Context(), req.Login, req.Password, req.MasterPassword); err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{
			Message: "Admin registered successfully",
		})
	}
}

// NewAdminResetPasswordHandler returns an HTTP handler resetting admin passwords.
// @Summary Reset an admin password
// @Description Replaces the password of an existing admin. Requires the master password.
// @Tags admin
// @Accept json
// @Produce json
// @Param adminRequest body handlers.AdminRequest true "Password reset request"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid master password or unknown login"
// @Failure 403 {object} handlers.ErrorResponse "User is not an administrator"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/reset-password [post]
func NewAdminResetPasswordHandler(svc AdminPasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.ResetAdminPassword(r.Context(), req.Login, req.Password, req.MasterPassword); err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Message: "Password reset successfully",
		})
	}
}

// NewListAdminsHandler returns an HTTP handler listing admin logins.
// @Summary List admins
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminListResponse "Admin logins"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/admins [get]
// @Security BearerAuth
func NewListAdminsHandler(svc AdminLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admins, err := svc.ListAdmins(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list admins", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		if admins == nil {
			admins = []string{}
		}
		writeJSON(w, http.StatusOK, AdminListResponse{Admins: admins})
	}
}
