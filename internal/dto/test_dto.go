package dto

import (
	"mime/multipart"
	"time"
)

type TestCreateDTO struct {
	Title       string                `form:"title" binding:"required,max=255"`
	Description string                `form:"description"`
	Type        string                `form:"type" binding:"required"`
	File        *multipart.FileHeader `form:"file"`
}

type TestUpdateDTO struct {
	Title       *string               `form:"title" binding:"omitempty,max=255"`
	Description *string               `form:"description"`
	Type        *string               `form:"type"`
	File        *multipart.FileHeader `form:"file"`
}

type TestResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Type        string                `json:"type"`
	FileURL     string                `json:"file_url,omitempty"`
	FileType    string                `json:"file_type,omitempty"`
	CreatedBy   uint                  `json:"created_by"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

type QuestionCreateDTO struct {
	TestID        uint                  `form:"test_id" binding:"required"`
	Text          string                `form:"text" binding:"required"`
	Type          string                `form:"type" binding:"required"`
	Options       []string              `form:"options[]"`
	CorrectAnswer string                `form:"correct_answer"`
	File          *multipart.FileHeader `form:"file"`
}

type QuestionUpdateDTO struct {
	Text          *string               `form:"text"`
	Type          *string               `form:"type"`
	Options       []string              `form:"options[]"`
	CorrectAnswer *string               `form:"correct_answer"`
	File          *multipart.FileHeader `form:"file"`
}

type QuestionResponseDTO struct {
	ID            uint      `json:"id"`
	TestID        uint      `json:"test_id"`
	Text          string    `json:"text"`
	Type          string    `json:"type"`
	Options       []string  `json:"options,omitempty"`
	CorrectAnswer string    `json:"correct_answer,omitempty"`
	FileURL       string    `json:"file_url,omitempty"`
	FileType      string    `json:"file_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
