package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles() {
		parsed, err := ParseRole(string(r))
		assert.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	for _, bad := range []string{"", "admin", "ADMIN", "Superuser", "participant"} {
		_, err := ParseRole(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestParseSubmissionStatus(t *testing.T) {
	for _, s := range []SubmissionStatus{StatusSubmitted, StatusInReview, StatusApproved, StatusRejected} {
		parsed, err := ParseSubmissionStatus(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseSubmissionStatus("Pending")
	assert.Error(t, err)
}

func TestParseQuestionType(t *testing.T) {
	for _, q := range []QuestionType{QuestionTypeQCM, QuestionTypeOpen, QuestionTypePractical} {
		parsed, err := ParseQuestionType(string(q))
		assert.NoError(t, err)
		assert.Equal(t, q, parsed)
	}

	_, err := ParseQuestionType("Essay")
	assert.Error(t, err)
}
