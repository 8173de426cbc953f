package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"

	"github.com/thenoetrevino/worklog/internal/database"
	"github.com/thenoetrevino/worklog/internal/models"
)

// Service defines account and session operations
type Service interface {
	// Accounts
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (bool, error)

	// Sessions
	StartSession(ctx context.Context, username, password string) (*models.Session, error)
	CurrentSession(ctx context.Context, token string) (*models.Session, error)
	SaveDraft(ctx context.Context, token string, draft models.ExpenseForm) error
	Logout(ctx context.Context, token string) error
}

// RegisterRequest encapsulates the registration form
type RegisterRequest struct {
	Username  string
	Email     string
	ContactNo string
	Password  string
}

// repository defines the data access methods needed by the auth service
type repository interface {
	RegisterUser(ctx context.Context, username, email, contactNo, passwordHash string) (*models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)

	CreateSession(ctx context.Context, username string) (*models.Session, error)
	GetSession(ctx context.Context, token string) (*models.Session, error)
	UpdateSessionDraft(ctx context.Context, token string, draft models.ExpenseForm) error
	DeleteSession(ctx context.Context, token string) error
}

const maxUsernameLength = 64

var contactPattern = regexp.MustCompile(`^[0-9+\-() ]+$`)

// service implements Service
type service struct {
	repo      repository
	passwords *PasswordHasher
	logger    *slog.Logger
}

// NewService creates a new auth service
func NewService(repo repository, passwords *PasswordHasher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:      repo,
		passwords: passwords,
		logger:    logger,
	}
}

// Register validates the form, hashes the password and stores the account
func (s *service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := s.validateRegister(req); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.RegisterUser(ctx, req.Username, strings.TrimSpace(req.Email), strings.TrimSpace(req.ContactNo), hash)
	if errors.Is(err, database.ErrUsernameExists) {
		return nil, ErrUsernameExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", "username", user.Username)
	return user, nil
}

// Login reports whether username/password identify a registered account.
// A wrong password or unknown username is (false, nil); a store failure is
// returned as an error so it is never mistaken for bad credentials.
func (s *service) Login(ctx context.Context, username, password string) (bool, error) {
	user, err := s.repo.GetUser(ctx, username)
	if errors.Is(err, database.ErrUserNotFound) {
		s.passwords.CompareDummy(password)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load user: %w", err)
	}

	return s.passwords.Compare(user.PasswordHash, password), nil
}

// StartSession logs in and opens a session
func (s *service) StartSession(ctx context.Context, username, password string) (*models.Session, error) {
	ok, err := s.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn("failed login", "username", username)
		return nil, ErrInvalidCredentials
	}

	session, err := s.repo.CreateSession(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("user logged in", "username", username)
	return session, nil
}

// CurrentSession resolves a session token
func (s *service) CurrentSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	session, err := s.repo.GetSession(ctx, token)
	if errors.Is(err, database.ErrSessionNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

// SaveDraft stores the in-progress expense form on the session
func (s *service) SaveDraft(ctx context.Context, token string, draft models.ExpenseForm) error {
	if token == "" {
		return ErrNotLoggedIn
	}
	err := s.repo.UpdateSessionDraft(ctx, token, draft)
	if errors.Is(err, database.ErrSessionNotFound) {
		return ErrNotLoggedIn
	}
	return err
}

// Logout ends the session. Logging out twice is not an error.
func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

// validateRegister validates a RegisterRequest
func (s *service) validateRegister(req RegisterRequest) error {
	if req.Username == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(req.Username) != req.Username {
		return ErrUsernameWhitespace
	}
	if len(req.Username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	if err := s.passwords.Validate(req.Password); err != nil {
		return err
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return ErrInvalidEmail
		}
	}
	if contact := strings.TrimSpace(req.ContactNo); contact != "" && !contactPattern.MatchString(contact) {
		return ErrInvalidContact
	}
	return nil
}
