package dto

import (
	"mime/multipart"
	"time"
)

type ResourceCreateDTO struct {
	Title       string                `form:"title" binding:"required,max=255"`
	Description string                `form:"description"`
	IsPublished bool                  `form:"is_published"`
	File        *multipart.FileHeader `form:"file" binding:"required"`
}

type ResourceUpdateDTO struct {
	Title       *string               `form:"title" binding:"omitempty,max=255"`
	Description *string               `form:"description"`
	IsPublished *bool                 `form:"is_published"`
	File        *multipart.FileHeader `form:"file"`
}

type ResourceResponseDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	FileURL       string    `json:"file_url"`
	FileType      string    `json:"file_type"`
	UploadedBy    uint      `json:"uploaded_by"`
	IsPublished   bool      `json:"is_published"`
	DownloadCount int64     `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type ResourceListDTO struct {
	Resources      []ResourceResponseDTO `json:"resources"`
	Total          int                   `json:"total"`
	TotalPublished int                   `json:"total_published"`
	TotalDownloads int64                 `json:"total_downloads"`
}
