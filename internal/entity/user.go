package entity

import (
	"time"
)

const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// User is a back-office account.
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	Role         string     `json:"role" gorm:"size:20;not null;default:OPERATOR"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
