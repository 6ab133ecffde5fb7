package models

import (
	"time"
)

// BaseModel provides common fields for all mutable models with integer primary keys
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
