package dto

import "github.com/Rrens/space-reservation/internal/domain"

// UserDTO never exposes the password hash
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// Caller is the authenticated identity taken from the access token
type Caller struct {
	UserID string
	Type   string
}

// IsAdmin reports whether the caller carries the admin type claim
func (c Caller) IsAdmin() bool {
	return c.Type == string(domain.UserTypeAdmin)
}

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type LoginDTO struct {
	User   UserDTO  `json:"user"`
	Tokens TokenDTO `json:"tokens"`
}

type LogoutDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func FromUser(u *domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Type:  string(u.Type),
	}
}

func FromUsers(users []domain.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}
