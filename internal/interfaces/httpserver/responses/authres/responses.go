package authres

import "github.com/Dmitry2004126/ai-assistant/internal/domain/user"

// User is the public view of an account.
type User struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
	IsVerified  bool   `json:"is_verified"`
}

func NewUser(usr *user.User) User {
	return User{
		ID:          usr.ID,
		Email:       usr.Email,
		IsActive:    usr.IsActive,
		IsSuperuser: usr.IsSuperuser,
		IsVerified:  usr.IsVerified,
	}
}

// Token is returned by a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
