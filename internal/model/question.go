package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Type          QuestionType   `json:"type" gorm:"type:varchar(20);not null"`
	Options       []string       `json:"options,omitempty" gorm:"serializer:json"`
	CorrectAnswer string         `json:"correct_answer,omitempty" gorm:"type:text"`
	FileURL       string         `json:"file_url,omitempty"`
	FileType      string         `json:"file_type,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
