package policy

import (
	"testing"

	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCanOwnerMutate(t *testing.T) {
	owner := Actor{ID: 5, Role: model.RoleParticipant}

	cases := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"owner with submitted", Snapshot{OwnerID: 5, Status: model.StatusSubmitted}, true},
		{"owner with in_review", Snapshot{OwnerID: 5, Status: model.StatusInReview}, false},
		{"owner with approved", Snapshot{OwnerID: 5, Status: model.StatusApproved}, false},
		{"owner with rejected", Snapshot{OwnerID: 5, Status: model.StatusRejected}, false},
		{"non owner with submitted", Snapshot{OwnerID: 6, Status: model.StatusSubmitted}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanOwnerMutate(owner, tc.snap))
		})
	}
}

// The window is about ownership and state only; a mentor who somehow owns a
// submission gets the same treatment as a participant owner.
func TestCanOwnerMutateIgnoresRole(t *testing.T) {
	mentorOwner := Actor{ID: 8, Role: model.RoleMentor}
	snap := Snapshot{OwnerID: 8, Status: model.StatusSubmitted}
	assert.True(t, CanOwnerMutate(mentorOwner, snap))
}
