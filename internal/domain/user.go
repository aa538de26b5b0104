package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin   = 1
	RoleAnalyst = 2
	RoleViewer  = 3
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanReadReports indica se o perfil tem acesso aos relatórios financeiros
func (u *User) CanReadReports() bool {
	return u.RoleID == RoleAdmin || u.RoleID == RoleAnalyst
}

type Claims struct {
	UserID       int    `json:"user_id"`
	UserName     string `json:"user_name"`
	UserLastname string `json:"user_lastname"`
	UserEmail    string `json:"user_email"`
	UserActive   bool   `json:"user_active"`
	UserRoleID   int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
