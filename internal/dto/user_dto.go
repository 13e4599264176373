package dto

import "time"

type UserResponseDTO struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserUpdateDTO carries optional profile changes; the policy decision decides
// which of them actually apply.
type UserUpdateDTO struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      *string `json:"role"`
}

type AdminDashboardDTO struct {
	TotalUsers  int                `json:"total_users"`
	UsersByRole map[string]int64   `json:"users_by_role"`
	Projects    SubmissionStatsDTO `json:"projects"`
	Reports     SubmissionStatsDTO `json:"reports"`
}

type ParticipantDashboardDTO struct {
	Projects SubmissionStatsDTO `json:"projects"`
	Reports  SubmissionStatsDTO `json:"reports"`
}
