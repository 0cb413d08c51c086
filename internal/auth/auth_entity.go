package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Password string    `gorm:"type:varchar(255);not null"`
	Role     string    `gorm:"type:varchar(50);not null"`
	// No gorm default: a default would replace an explicit false.
	IsActive  bool `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
