package dto

import (
	"mime/multipart"
	"time"
)

// SubmissionCreateDTO is the shared multipart payload for submitting a
// project or a report.
type SubmissionCreateDTO struct {
	Title       string                `form:"title" binding:"required,max=255"`
	Description string                `form:"description"`
	File        *multipart.FileHeader `form:"file" binding:"required"`
}

// SubmissionUpdateDTO carries optional changes; which of them apply is
// decided by the policy field narrowing, not by the route.
type SubmissionUpdateDTO struct {
	Title       *string               `form:"title" binding:"omitempty,max=255"`
	Description *string               `form:"description"`
	Feedback    *string               `form:"feedback"`
	Status      *string               `form:"status"`
	File        *multipart.FileHeader `form:"file"`
}

type StatusUpdateDTO struct {
	Status string `json:"status" binding:"required"`
}

type ProjectResponseDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileURL     string    `json:"file_url"`
	FileType    string    `json:"file_type"`
	Feedback    *string   `json:"feedback,omitempty"`
	SubmittedBy uint      `json:"submitted_by"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReportResponseDTO struct {
	ID                 uint       `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	FileURL            string     `json:"file_url"`
	FileType           string     `json:"file_type"`
	Feedback           *string    `json:"feedback,omitempty"`
	SubmissionDeadline *time.Time `json:"submission_deadline,omitempty"`
	SubmittedBy        uint       `json:"submitted_by"`
	Status             string     `json:"status"`
	SubmittedAt        time.Time  `json:"submitted_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// SubmissionStatsDTO mirrors stats.SubmissionSummary on the wire.
type SubmissionStatsDTO struct {
	TotalSubmitted int `json:"total_submitted"`
	TotalApproved  int `json:"total_approved"`
	TotalInReview  int `json:"total_in_review"`
	ThisMonth      int `json:"this_month"`
}

type ProjectListDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
	SubmissionStatsDTO
}

type ReportListDTO struct {
	Reports []ReportResponseDTO `json:"reports"`
	SubmissionStatsDTO
}
