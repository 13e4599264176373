package policy

import (
	"testing"

	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/stretchr/testify/assert"
)

var (
	admin       = Actor{ID: 1, Role: model.RoleAdmin, Verified: true}
	mentor      = Actor{ID: 2, Role: model.RoleMentor, Verified: true}
	participant = Actor{ID: 3, Role: model.RoleParticipant, Verified: true}
	stranger    = Actor{ID: 9, Role: model.RoleParticipant, Verified: true}
)

func ownedBy(a Actor, status model.SubmissionStatus) *Snapshot {
	return &Snapshot{ID: 100, OwnerID: a.ID, Status: status}
}

func TestDecideCollectionRules(t *testing.T) {
	cases := []struct {
		name   string
		actor  Actor
		action Action
		kind   Kind
		want   bool
	}{
		{"admin lists projects", admin, ActionViewAny, KindProject, true},
		{"mentor lists projects", mentor, ActionViewAny, KindProject, true},
		{"participant cannot list all projects", participant, ActionViewAny, KindProject, false},
		{"admin creates project", admin, ActionCreate, KindProject, true},
		{"participant cannot create project", participant, ActionCreate, KindProject, false},
		{"mentor cannot create project", mentor, ActionCreate, KindProject, false},

		{"participant creates report", participant, ActionCreate, KindReport, true},
		{"admin cannot create report", admin, ActionCreate, KindReport, false},
		{"mentor cannot create report", mentor, ActionCreate, KindReport, false},
		{"mentor lists reports", mentor, ActionViewAny, KindReport, true},
		{"participant cannot list all reports", participant, ActionViewAny, KindReport, false},

		{"participant lists tests", participant, ActionViewAny, KindTest, true},
		{"admin creates test", admin, ActionCreate, KindTest, true},
		{"mentor cannot create test", mentor, ActionCreate, KindTest, false},

		{"mentor lists questions", mentor, ActionViewAny, KindQuestion, true},
		{"participant cannot list questions", participant, ActionViewAny, KindQuestion, false},
		{"mentor creates question", mentor, ActionCreate, KindQuestion, true},
		{"participant cannot create question", participant, ActionCreate, KindQuestion, false},

		{"participant lists resources", participant, ActionViewAny, KindResource, true},
		{"admin creates resource", admin, ActionCreate, KindResource, true},
		{"mentor cannot create resource", mentor, ActionCreate, KindResource, false},

		{"admin lists results", admin, ActionViewAny, KindTestResult, true},
		{"participant cannot list all results", participant, ActionViewAny, KindTestResult, false},
		{"admin records result", admin, ActionCreate, KindTestResult, true},
		{"mentor cannot record result", mentor, ActionCreate, KindTestResult, false},

		{"admin lists users", admin, ActionViewAny, KindUser, true},
		{"mentor cannot list users", mentor, ActionViewAny, KindUser, false},
		{"nobody creates users through policy", admin, ActionCreate, KindUser, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.actor, tc.action, tc.kind, nil)
			assert.Equal(t, tc.want, got.Allowed)
		})
	}
}

func TestDecideInstanceRules(t *testing.T) {
	submitted := ownedBy(participant, model.StatusSubmitted)
	approved := ownedBy(participant, model.StatusApproved)
	other := &Snapshot{ID: 101, OwnerID: 42, Status: model.StatusSubmitted}

	cases := []struct {
		name   string
		actor  Actor
		action Action
		kind   Kind
		snap   *Snapshot
		want   bool
	}{
		{"owner views own project", participant, ActionView, KindProject, submitted, true},
		{"mentor views any project", mentor, ActionView, KindProject, other, true},
		{"stranger cannot view project", stranger, ActionView, KindProject, submitted, false},
		{"stranger downloads nothing from projects", stranger, ActionDownload, KindProject, submitted, false},

		{"any role views a report", stranger, ActionView, KindReport, submitted, true},
		{"any role downloads a report", stranger, ActionDownload, KindReport, submitted, true},

		{"owner updates submitted project", participant, ActionUpdate, KindProject, submitted, true},
		{"owner cannot update approved project", participant, ActionUpdate, KindProject, approved, false},
		{"admin updates approved project", admin, ActionUpdate, KindProject, approved, true},
		{"stranger cannot update project", stranger, ActionUpdate, KindProject, submitted, false},

		{"owner deletes submitted report", participant, ActionDelete, KindReport, submitted, true},
		{"owner cannot delete approved report", participant, ActionDelete, KindReport, approved, false},
		{"admin deletes any report", admin, ActionDelete, KindReport, approved, true},

		{"mentor cannot update test", mentor, ActionUpdate, KindTest, other, false},
		{"admin deletes test", admin, ActionDelete, KindTest, other, true},
		{"participant downloads test", participant, ActionDownload, KindTest, other, true},

		{"mentor views question", mentor, ActionView, KindQuestion, other, true},
		{"participant cannot view question", participant, ActionView, KindQuestion, other, false},
		{"mentor updates question", mentor, ActionUpdate, KindQuestion, other, true},
		{"mentor cannot delete question", mentor, ActionDelete, KindQuestion, other, false},
		{"participant downloads question attachment", participant, ActionDownload, KindQuestion, other, true},

		{"participant downloads resource", participant, ActionDownload, KindResource, other, true},
		{"mentor cannot update resource", mentor, ActionUpdate, KindResource, other, false},
		{"mentor cannot delete resource", mentor, ActionDelete, KindResource, other, false},

		{"owner views own result", participant, ActionView, KindTestResult, ownedBy(participant, ""), true},
		{"stranger cannot view result", stranger, ActionView, KindTestResult, ownedBy(participant, ""), false},
		{"owner downloads own result", participant, ActionDownload, KindTestResult, ownedBy(participant, ""), true},
		{"mentor cannot update result", mentor, ActionUpdate, KindTestResult, other, false},

		{"user views own record", participant, ActionView, KindUser, &Snapshot{ID: 3, OwnerID: 3}, true},
		{"user cannot view another record", participant, ActionView, KindUser, &Snapshot{ID: 9, OwnerID: 9}, false},
		{"admin views any user", admin, ActionView, KindUser, &Snapshot{ID: 9, OwnerID: 9}, true},
		{"mentor cannot delete user", mentor, ActionDelete, KindUser, &Snapshot{ID: 9, OwnerID: 9}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.actor, tc.action, tc.kind, tc.snap)
			assert.Equal(t, tc.want, got.Allowed)
		})
	}
}

func TestDecideFailsClosed(t *testing.T) {
	unknown := Actor{ID: 7, Role: model.Role("Superuser")}
	snap := &Snapshot{ID: 1, OwnerID: 7, Status: model.StatusSubmitted}

	assert.False(t, Decide(unknown, ActionViewAny, KindTest, nil).Allowed)
	assert.False(t, Decide(unknown, ActionView, KindReport, snap).Allowed)
	assert.False(t, Decide(admin, ActionView, Kind("gadget"), snap).Allowed)
	assert.False(t, Decide(admin, Action("transmogrify"), KindProject, snap).Allowed)
	assert.False(t, Decide(admin, ActionView, KindProject, nil).Allowed)
	assert.False(t, Decide(admin, ActionUpdate, KindProject, nil).Allowed)
}

func TestDecideIsPure(t *testing.T) {
	snap := ownedBy(participant, model.StatusSubmitted)
	first := Decide(participant, ActionUpdate, KindProject, snap)
	second := Decide(participant, ActionUpdate, KindProject, snap)
	assert.Equal(t, first, second)
}

func TestUpdateFieldNarrowing(t *testing.T) {
	snap := ownedBy(participant, model.StatusSubmitted)

	adminDec := Decide(admin, ActionUpdate, KindProject, snap)
	assert.True(t, adminDec.Allowed)
	assert.ElementsMatch(t,
		[]string{FieldTitle, FieldDescription, FieldFeedback, FieldStatus, FieldFile},
		adminDec.Fields)

	ownerDec := Decide(participant, ActionUpdate, KindProject, snap)
	assert.True(t, ownerDec.Allowed)
	assert.ElementsMatch(t,
		[]string{FieldTitle, FieldDescription, FieldFile},
		ownerDec.Fields)
	assert.True(t, ownerDec.FieldAllowed(FieldTitle))
	assert.False(t, ownerDec.FieldAllowed(FieldStatus))
	assert.False(t, ownerDec.FieldAllowed(FieldFeedback))

	selfDec := Decide(participant, ActionUpdate, KindUser, &Snapshot{ID: 3, OwnerID: 3})
	assert.True(t, selfDec.Allowed)
	assert.False(t, selfDec.FieldAllowed(FieldRole))

	adminUserDec := Decide(admin, ActionUpdate, KindUser, &Snapshot{ID: 3, OwnerID: 3})
	assert.True(t, adminUserDec.FieldAllowed(FieldRole))

	resultDec := Decide(admin, ActionUpdate, KindTestResult, snap)
	assert.ElementsMatch(t, []string{FieldScore, FieldFile}, resultDec.Fields)

	denied := Decide(stranger, ActionUpdate, KindProject, snap)
	assert.False(t, denied.Allowed)
	assert.False(t, denied.FieldAllowed(FieldTitle))
	assert.Empty(t, denied.Fields)
}
