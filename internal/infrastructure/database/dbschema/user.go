package dbschema

import (
	"time"

	"github.com/Dmitry2004126/ai-assistant/internal/domain/user"
)

// User is the database schema for accounts.
type User struct {
	ID             uint      `gorm:"primaryKey"`
	Email          string    `gorm:"type:varchar(320);uniqueIndex;not null"`
	HashedPassword string    `gorm:"type:varchar(128);not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	IsSuperuser    bool      `gorm:"not null;default:false"`
	IsVerified     bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	Messages []Message `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// EtoD converts the schema row into the domain user.
func (u *User) EtoD() *user.User {
	return &user.User{
		ID:             u.ID,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		IsActive:       u.IsActive,
		IsSuperuser:    u.IsSuperuser,
		IsVerified:     u.IsVerified,
		CreatedAt:      u.CreatedAt,
	}
}

// NewSchemaUser converts a domain user into its schema row.
func NewSchemaUser(usr *user.User) *User {
	return &User{
		ID:             usr.ID,
		Email:          usr.Email,
		HashedPassword: usr.HashedPassword,
		IsActive:       usr.IsActive,
		IsSuperuser:    usr.IsSuperuser,
		IsVerified:     usr.IsVerified,
		CreatedAt:      usr.CreatedAt,
	}
}
