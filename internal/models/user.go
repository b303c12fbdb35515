package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID        string    `bun:"id,pk" json:"id"`
	Email     string    `bun:"email,unique,notnull" json:"email"`
	FirstName string    `bun:"first_name" json:"first_name"`
	LastName  string    `bun:"last_name" json:"last_name"`
	IsActive  bool      `bun:"is_active,notnull" json:"is_active"`
	IsAdmin   bool      `bun:"is_admin,notnull" json:"is_admin"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at,omitempty"`
}
