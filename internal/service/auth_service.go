package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"wordquest/internal/models"
	"wordquest/internal/quiz"
	"wordquest/internal/repository"
	"wordquest/internal/security"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("username must be 3-32 characters")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

// AuthService handles registration, login and token issuance
type AuthService struct {
	users    *repository.UserRepository
	progress *repository.ProgressRepository
	tokens   *security.TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(users *repository.UserRepository, progress *repository.ProgressRepository, tokens *security.TokenIssuer) *AuthService {
	return &AuthService{users: users, progress: progress, tokens: tokens}
}

// Register creates a player account and returns it with a fresh token
func (s *AuthService) Register(username, password, displayName, email string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 32 {
		return nil, "", ErrInvalidUsername
	}
	if len(password) < 6 {
		return nil, "", ErrWeakPassword
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	if displayName == "" {
		displayName = username
	}
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RolePlayer,
		CreatedAt:    time.Now().UnixMilli(),
	}

	if err := s.users.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.progress.CreateProgress(user.ID, quiz.DefaultTitle); err != nil {
		return nil, "", fmt.Errorf("failed to create player progress: %w", err)
	}

	token, err := s.tokens.Mint(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to mint token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Mint(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to mint token: %w", err)
	}
	return user, token, nil
}

// Profile returns a user's account and progress
func (s *AuthService) Profile(userID string) (*models.User, *models.PlayerProgress, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	progress, err := s.progress.GetProgress(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load progress: %w", err)
	}
	return user, progress, nil
}

// LoginWithGoogle finds or creates the account for a Google profile
// and returns it with a fresh token. Google accounts get a random
// unusable password hash.
func (s *AuthService) LoginWithGoogle(email, name string) (*models.User, string, error) {
	if email == "" {
		return nil, "", errors.New("google profile has no email")
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		username := strings.SplitN(email, "@", 2)[0]
		if existing, err := s.users.GetByUsername(username); err != nil {
			return nil, "", fmt.Errorf("failed to check username: %w", err)
		} else if existing != nil {
			username = username + "-" + uuid.New().String()[:8]
		}
		if name == "" {
			name = username
		}

		user = &models.User{
			ID:           uuid.New().String(),
			Username:     username,
			DisplayName:  name,
			Email:        email,
			PasswordHash: uuid.New().String(),
			Role:         models.RolePlayer,
			CreatedAt:    time.Now().UnixMilli(),
		}
		if err := s.users.Create(user); err != nil {
			return nil, "", fmt.Errorf("failed to create user: %w", err)
		}
		if err := s.progress.CreateProgress(user.ID, quiz.DefaultTitle); err != nil {
			return nil, "", fmt.Errorf("failed to create player progress: %w", err)
		}
	}

	token, err := s.tokens.Mint(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to mint token: %w", err)
	}
	return user, token, nil
}
