package user

import (
	"context"
	"time"
)

// User is the authenticated principal. Credentials and flags follow the
// account model of the auth endpoints: a user registers with email+password
// and may be deactivated or promoted out of band.
type User struct {
	ID             uint
	Email          string
	HashedPassword string
	IsActive       bool
	IsSuperuser    bool
	IsVerified     bool
	CreatedAt      time.Time
}

// Repository is the persistence port for users. Find methods return
// (nil, nil) when no row matches.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, usr *User) error
}
