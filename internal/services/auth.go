package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists     = errors.New("login already exists")
	ErrUserDoesNotExist      = errors.New("login does not exist")
	ErrInvalidCredentials    = errors.New("invalid login or password")
	ErrMalformedCredentials  = errors.New("login and password are required; password must not exceed 72 bytes")
	ErrInvalidMasterPassword = errors.New("invalid master password")
	ErrNotAdmin              = errors.New("user is not an administrator")
)

const (
	maxLoginLength    = 100
	maxPasswordLength = 72 // bcrypt input limit
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByLogin(ctx context.Context, login string) (*models.UserDB, error)
	ListLoginsByRole(ctx context.Context, role models.Role) ([]string, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, login, passwordHash string, role models.Role) (bool, error)
	Upsert(ctx context.Context, login, passwordHash string, role models.Role) error
	UpdateAdminPassword(ctx context.Context, login, passwordHash string) (bool, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, login string, role models.Role) (string, error)
}

// AuthService handles registration, login and admin account management.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	jwt        JWTGenerator
	masterHash []byte
}

// NewAuthService creates a new AuthService instance. The master password is
// hashed once and only compared through bcrypt afterwards.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, masterPassword string) (*AuthService, error) {
	if masterPassword == "" || len(masterPassword) > maxPasswordLength {
		return nil, ErrMalformedCredentials
	}
	masterHash, err := bcrypt.GenerateFromPassword([]byte(masterPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		reader:     reader,
		writer:     writer,
		jwt:        jwt,
		masterHash: masterHash,
	}, nil
}

// Register registers a new normal user.
func (svc *AuthService) Register(ctx context.Context, login, password string) error {
	return svc.create(ctx, login, password, models.RoleNormal)
}

// RegisterAdmin registers a new admin user if masterPassword is correct.
func (svc *AuthService) RegisterAdmin(ctx context.Context, login, password, masterPassword string) error {
	if !svc.checkMaster(masterPassword) {
		logger.Log.Warnw("admin registration rejected", "login", login)
		return ErrInvalidMasterPassword
	}
	return svc.create(ctx, login, password, models.RoleAdmin)
}

func (svc *AuthService) create(ctx context.Context, login, password string, role models.Role) error {
	if !validCredentials(login, password) {
		return ErrMalformedCredentials
	}

	user, err := svc.reader.GetByLogin(ctx, login)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "login", login)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	created, err := svc.writer.Create(ctx, login, string(hashedPassword), role)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}
	if !created {
		// lost a race with a concurrent registration
		return ErrUserAlreadyExists
	}

	logger.Log.Infow("user registered", "login", login, "role", role)
	return nil
}

// Login authenticates a user and returns a JWT token and the user role.
func (svc *AuthService) Login(ctx context.Context, login, password string) (string, models.Role, error) {
	user, err := svc.reader.GetByLogin(ctx, login)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "login", login)
		return "", "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "login", login)
		return "", "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Login, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", "", err
	}

	return token, user.Role, nil
}

// ResetAdminPassword replaces the password of an existing admin if
// masterPassword is correct.
func (svc *AuthService) ResetAdminPassword(ctx context.Context, login, newPassword, masterPassword string) error {
	if !svc.checkMaster(masterPassword) {
		logger.Log.Warnw("admin password reset rejected", "login", login)
		return ErrInvalidMasterPassword
	}
	if !validCredentials(login, newPassword) {
		return ErrMalformedCredentials
	}

	user, err := svc.reader.GetByLogin(ctx, login)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}
	if user.Role != models.RoleAdmin {
		return ErrNotAdmin
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	updated, err := svc.writer.UpdateAdminPassword(ctx, login, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to update admin password", "err", err)
		return err
	}
	if !updated {
		return ErrNotAdmin
	}

	logger.Log.Infow("admin password reset", "login", login)
	return nil
}

// ListAdmins returns the logins of all admin users.
func (svc *AuthService) ListAdmins(ctx context.Context) ([]string, error) {
	admins, err := svc.reader.ListLoginsByRole(ctx, models.RoleAdmin)
	if err != nil {
		logger.Log.Errorw("failed to list admins", "err", err)
		return nil, err
	}
	return admins, nil
}

// EnsureDefaultAdmin creates the bootstrap admin or resets its password.
func (svc *AuthService) EnsureDefaultAdmin(ctx context.Context, login, password string) error {
	if !validCredentials(login, password) {
		return ErrMalformedCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := svc.writer.Upsert(ctx, login, string(hashedPassword), models.RoleAdmin); err != nil {
		logger.Log.Errorw("failed to save default admin", "err", err)
		return err
	}

	logger.Log.Infow("default admin ensured", "login", login)
	return nil
}

func (svc *AuthService) checkMaster(password string) bool {
	return bcrypt.CompareHashAndPassword(svc.masterHash, []byte(password)) == nil
}

func validCredentials(login, password string) bool {
	return login != "" && len(login) <= maxLoginLength &&
		password != "" && len(password) <= maxPasswordLength
}
