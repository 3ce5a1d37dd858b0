package models

// Role identifies what a user account is allowed to do
type Role string

const (
	RolePlayer Role = "player"
	RoleParent Role = "parent"
	RoleAdmin  Role = "admin"
)

// User represents a registered account
type User struct {
	ID           string
	Username     string
	DisplayName  string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    int64 // unix milliseconds
}
