package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Type        TestType       `json:"type" gorm:"type:varchar(20);not null"`
	FileURL     string         `json:"file_url,omitempty"`
	FileType    string         `json:"file_type,omitempty"`
	CreatedBy   uint           `json:"created_by" gorm:"not null;index"`
	Creator     User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
