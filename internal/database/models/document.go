package models

import (
	"time"
)

// Document records an uploaded file. Documents are append-only.
type Document struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FileName     string    `json:"fileName" gorm:"not null;size:255"`
	FilePath     string    `json:"filePath" gorm:"not null;size:500"`
	Version      string    `json:"version" gorm:"not null;size:20;default:'1.0'"`
	UploaderName string    `json:"uploaderName" gorm:"not null;size:200"`
	PackageID    uint      `json:"packageId" gorm:"not null;index"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
