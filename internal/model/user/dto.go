package user

import "github.com/deppfellow/activity-api/internal/validation"

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=mahasiswa admin"`
}

func (r *RegisterRequest) Validate() error {
	return validation.Struct(r)
}

// RegisterResponse is returned by POST /register.
type RegisterResponse struct {
	Message string  `json:"message"`
	User    Summary `json:"user"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
