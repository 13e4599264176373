package model

import "fmt"

// SubmissionStatus is the review lifecycle shared by projects and reports.
type SubmissionStatus string

const (
	StatusSubmitted SubmissionStatus = "Submitted"
	StatusInReview  SubmissionStatus = "InReview"
	StatusApproved  SubmissionStatus = "Approved"
	StatusRejected  SubmissionStatus = "Rejected"
)

func SubmissionStatuses() []SubmissionStatus {
	return []SubmissionStatus{StatusSubmitted, StatusInReview, StatusApproved, StatusRejected}
}

func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func ParseSubmissionStatus(s string) (SubmissionStatus, error) {
	st := SubmissionStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown submission status %q", s)
	}
	return st, nil
}

// TestType classifies a test.
type TestType string

const (
	TestTypeQCM       TestType = "QCM"
	TestTypeOpen      TestType = "Open"
	TestTypePractical TestType = "Practical"
)

func (t TestType) Valid() bool {
	switch t {
	case TestTypeQCM, TestTypeOpen, TestTypePractical:
		return true
	}
	return false
}

func ParseTestType(s string) (TestType, error) {
	t := TestType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown test type %q", s)
	}
	return t, nil
}

// QuestionType mirrors TestType at the question level.
type QuestionType string

const (
	QuestionTypeQCM       QuestionType = "QCM"
	QuestionTypeOpen      QuestionType = "Open"
	QuestionTypePractical QuestionType = "Practical"
)

func (q QuestionType) Valid() bool {
	switch q {
	case QuestionTypeQCM, QuestionTypeOpen, QuestionTypePractical:
		return true
	}
	return false
}

func ParseQuestionType(s string) (QuestionType, error) {
	q := QuestionType(s)
	if !q.Valid() {
		return "", fmt.Errorf("unknown question type %q", s)
	}
	return q, nil
}
