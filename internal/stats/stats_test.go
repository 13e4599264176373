package stats

import (
	"testing"
	"time"

	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/stretchr/testify/assert"
)

func submission(status model.SubmissionStatus, at time.Time) Reviewed {
	return model.Project{Status: status, SubmittedAt: at}
}

func TestSubmissions(t *testing.T) {
	now := time.Date(2025, time.August, 15, 12, 0, 0, 0, time.UTC)
	old := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)
	recent := time.Date(2025, time.August, 10, 9, 0, 0, 0, time.UTC)

	items := []Reviewed{
		submission(model.StatusSubmitted, old),
		submission(model.StatusApproved, recent),
		submission(model.StatusApproved, old),
		submission(model.StatusInReview, old),
		submission(model.StatusRejected, old),
	}

	got := Submissions(items, now)

	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 2, got.Approved)
	assert.Equal(t, 1, got.InReview)
	assert.Equal(t, 1, got.ThisMonth)
}

func TestSubmissionsEmpty(t *testing.T) {
	got := Submissions(nil, time.Now())
	assert.Equal(t, SubmissionSummary{}, got)
}

// Same day-of-month in a different year must not count toward ThisMonth.
func TestSubmissionsMonthMatchesYear(t *testing.T) {
	now := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)

	got := Submissions([]Reviewed{submission(model.StatusSubmitted, lastYear)}, now)
	assert.Equal(t, 0, got.ThisMonth)
}

func TestSubmissionsMixedKinds(t *testing.T) {
	now := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	items := []Reviewed{
		model.Project{Status: model.StatusApproved, SubmittedAt: now},
		model.Report{Status: model.StatusInReview, SubmittedAt: now},
	}

	got := Submissions(items, now)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 1, got.Approved)
	assert.Equal(t, 1, got.InReview)
	assert.Equal(t, 2, got.ThisMonth)
}

func TestResources(t *testing.T) {
	items := []model.Resource{
		{IsPublished: true, DownloadCount: 10},
		{IsPublished: false, DownloadCount: 3},
		{IsPublished: true, DownloadCount: 0},
	}

	got := Resources(items)

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Published)
	assert.Equal(t, int64(13), got.TotalDownloads)
}

func TestResourcesEmpty(t *testing.T) {
	assert.Equal(t, ResourceSummary{}, Resources(nil))
}
