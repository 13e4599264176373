package dto

import (
	"mime/multipart"
	"time"
)

type ResultCreateDTO struct {
	UserID      uint                  `form:"user_id" binding:"required"`
	TestID      uint                  `form:"test_id" binding:"required"`
	Score       float64               `form:"score" binding:"min=0"`
	CompletedAt *time.Time            `form:"completed_at" time_format:"2006-01-02T15:04:05Z07:00"`
	File        *multipart.FileHeader `form:"file"`
}

type ResultUpdateDTO struct {
	Score *float64              `form:"score" binding:"omitempty,min=0"`
	File  *multipart.FileHeader `form:"file"`
}

type ResultResponseDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	TestID      uint      `json:"test_id"`
	Score       float64   `json:"score"`
	FileURL     string    `json:"file_url,omitempty"`
	FileType    string    `json:"file_type,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}
