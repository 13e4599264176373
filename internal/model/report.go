package model

import (
	"time"

	"gorm.io/gorm"
)

type Report struct {
	ID                 uint             `gorm:"primarykey" json:"id"`
	Title              string           `json:"title" gorm:"not null"`
	Description        string           `json:"description,omitempty"`
	FileURL            string           `json:"file_url" gorm:"not null"`
	FileType           string           `json:"file_type" gorm:"not null"`
	Feedback           *string          `json:"feedback,omitempty"`
	SubmissionDeadline *time.Time       `json:"submission_deadline,omitempty"`
	SubmittedBy        uint             `json:"submitted_by" gorm:"not null;index"`
	User               User             `json:"user,omitempty" gorm:"foreignKey:SubmittedBy"`
	Status             SubmissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'Submitted'"`
	SubmittedAt        time.Time        `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (r Report) ReviewStatus() SubmissionStatus { return r.Status }
func (r Report) SubmittedTime() time.Time       { return r.SubmittedAt }
