package model

import "time"

// Otp holds the single active email verification code for an address.
type Otp struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Code      string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (o Otp) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
