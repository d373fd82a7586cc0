package models

// Role controls access to administrative actions such as member deletion,
// user management and profit distribution.
type Role string

// Known user roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents a login account of the society office.
//
// Passwords are stored and compared in plaintext. The stored layout predates
// this implementation and must stay readable by it, so no hashing is applied.
type User struct {
	ID       string `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Name     string `json:"name" yaml:"name"`
	Role     Role   `json:"role" yaml:"role"`
	Password string `json:"password" yaml:"password"`
}

// Sanitized returns a copy of the user safe to put on the wire.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// CreateUserRequest represents the request to create a login account.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest represents the change-password form.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
