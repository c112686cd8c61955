package domain

import (
	"errors"
	"time"
)

const RoleSuperAdmin = "SUPER_ADMIN"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminExists        = errors.New("admin already exists")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)

// Admin models a back-office administrator.
type Admin struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	FullName     string     `json:"full_name" bson:"full_name"`
	Role         string     `json:"role" bson:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
}

// AdminPrincipal is the authenticated identity exposed to handlers after the
// auth guard has verified the token and re-resolved the admin record.
type AdminPrincipal struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
