package model

import (
	"time"

	"gorm.io/gorm"
)

type Resource struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Title         string         `json:"title" gorm:"not null"`
	Description   string         `json:"description,omitempty"`
	FileURL       string         `json:"file_url" gorm:"not null"`
	FileType      string         `json:"file_type" gorm:"not null"`
	UploadedBy    uint           `json:"uploaded_by" gorm:"not null;index"`
	User          User           `json:"user,omitempty" gorm:"foreignKey:UploadedBy"`
	IsPublished   bool           `json:"is_published" gorm:"default:false"`
	DownloadCount int64          `json:"download_count" gorm:"not null;default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
