package repository

import (
	"database/sql"

	"wordquest/internal/database"
	"wordquest/internal/models"
)

// UserRepository handles user account database operations
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user record
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (id, username, display_name, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		user.ID, user.Username, user.DisplayName, user.Email,
		user.PasswordHash, string(user.Role), user.CreatedAt)
	return err
}

// GetByID retrieves a user by ID, or nil when not found
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	return r.getOne("SELECT id, username, display_name, email, password_hash, role, created_at FROM users WHERE id = ?", id)
}

// GetByUsername retrieves a user by username, or nil when not found
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	return r.getOne("SELECT id, username, display_name, email, password_hash, role, created_at FROM users WHERE username = ?", username)
}

// GetByEmail retrieves a user by email, or nil when not found
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getOne("SELECT id, username, display_name, email, password_hash, role, created_at FROM users WHERE email = ?", email)
}

func (r *UserRepository) getOne(query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	var role string

	err := r.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Username, &user.DisplayName, &user.Email,
		&user.PasswordHash, &role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.Role = models.Role(role)
	return user, nil
}
