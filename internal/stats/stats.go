// Package stats computes derived counts over already-authorized collections.
// Every function is pure; the reference clock is always injected.
package stats

import (
	"time"

	"github.com/mkhadiri/mentorhub/internal/model"
)

// Reviewed is the minimal view of a submission needed for aggregation.
// model.Project and model.Report both satisfy it.
type Reviewed interface {
	ReviewStatus() model.SubmissionStatus
	SubmittedTime() time.Time
}

// SubmissionSummary mirrors the statistics block returned with submission
// listings.
type SubmissionSummary struct {
	Total     int `json:"total_submitted"`
	Approved  int `json:"total_approved"`
	InReview  int `json:"total_in_review"`
	ThisMonth int `json:"this_month"`
}

// Submissions aggregates a collection that the caller has already filtered by
// a view decision. ThisMonth counts items submitted in the calendar month and
// year of now.
func Submissions(items []Reviewed, now time.Time) SubmissionSummary {
	var s SubmissionSummary
	s.Total = len(items)

	for _, it := range items {
		switch it.ReviewStatus() {
		case model.StatusApproved:
			s.Approved++
		case model.StatusInReview:
			s.InReview++
		}
		at := it.SubmittedTime()
		if at.Year() == now.Year() && at.Month() == now.Month() {
			s.ThisMonth++
		}
	}
	return s
}

// ResourceSummary mirrors the statistics block returned with resource
// listings.
type ResourceSummary struct {
	Total          int   `json:"total"`
	Published      int   `json:"total_published"`
	TotalDownloads int64 `json:"total_downloads"`
}

func Resources(items []model.Resource) ResourceSummary {
	var s ResourceSummary
	s.Total = len(items)
	for _, r := range items {
		if r.IsPublished {
			s.Published++
		}
		s.TotalDownloads += r.DownloadCount
	}
	return s
}
