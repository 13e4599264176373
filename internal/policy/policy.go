// Package policy is the pure authorization core. It maps an authenticated
// actor, an action and an entity snapshot to an Allow/Deny decision, and for
// updates also narrows the set of attributes the actor may change. It performs
// no I/O and holds no state; callers apply side effects only after an Allow.
package policy

import "github.com/mkhadiri/mentorhub/internal/model"

// Action enumerates the operations the engine can authorize.
type Action string

const (
	ActionViewAny  Action = "viewAny"
	ActionView     Action = "view"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionDownload Action = "download"
)

// Kind names an authorizable entity class.
type Kind string

const (
	KindProject    Kind = "project"
	KindReport     Kind = "report"
	KindTest       Kind = "test"
	KindQuestion   Kind = "question"
	KindResource   Kind = "resource"
	KindTestResult Kind = "user_test_result"
	KindUser       Kind = "user"
)

// Actor is the authenticated identity a decision is made for.
type Actor struct {
	ID       uint
	Role     model.Role
	Verified bool
}

// Snapshot is the minimal read-only view of a persisted entity needed to
// evaluate an instance-level rule. OwnerID carries submitted_by, uploaded_by,
// user_id or, for KindUser, the target user's own id. Status is zero for
// entities without a review lifecycle.
type Snapshot struct {
	ID      uint
	OwnerID uint
	Status  model.SubmissionStatus
}

// Decision is the uniform result of a policy check. Fields is populated only
// for allowed updates and lists the attributes the actor may change.
type Decision struct {
	Allowed bool
	Fields  []string
}

// Deny is the zero decision.
var Deny = Decision{}

// Allow builds an allowing decision, optionally carrying an update field set.
func Allow(fields ...string) Decision {
	return Decision{Allowed: true, Fields: fields}
}

// Attribute names used in update decisions.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldFeedback    = "feedback"
	FieldStatus      = "status"
	FieldFile        = "file"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldRole        = "role"
	FieldPublished   = "is_published"
	FieldScore       = "score"
)

func submissionAdminFields() []string {
	return []string{FieldTitle, FieldDescription, FieldFeedback, FieldStatus, FieldFile}
}

func submissionOwnerFields() []string {
	return []string{FieldTitle, FieldDescription, FieldFile}
}

type roleSet map[model.Role]struct{}

func roles(rs ...model.Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

func (s roleSet) has(r model.Role) bool {
	_, ok := s[r]
	return ok
}

// allRoles is every recognized role. Combined with the fail-closed role check
// in Decide, it expresses the original "any authenticated user" rules.
var allRoles = roles(model.RoleParticipant, model.RoleMentor, model.RoleAdmin)

// instanceRule evaluates an instance-level action. Decide guarantees the
// actor role is recognized and the snapshot is present before a rule runs.
type instanceRule func(a Actor, s Snapshot) Decision

// ruleSet is the per-kind row of the authorization table. A nil rule or an
// empty role set denies the corresponding action.
type ruleSet struct {
	viewAny  roleSet
	create   roleSet
	view     instanceRule
	update   instanceRule
	delete   instanceRule
	download instanceRule
}

func boolRule(pred func(a Actor, s Snapshot) bool) instanceRule {
	return func(a Actor, s Snapshot) Decision {
		if pred(a, s) {
			return Allow()
		}
		return Deny
	}
}

func anyActor(Actor, Snapshot) bool { return true }

func adminOnly(a Actor, _ Snapshot) bool { return a.Role == model.RoleAdmin }

func adminOrOwner(a Actor, s Snapshot) bool {
	return a.Role == model.RoleAdmin || a.ID == s.OwnerID
}

func adminOrMentor(a Actor, _ Snapshot) bool {
	return a.Role == model.RoleAdmin || a.Role == model.RoleMentor
}

// submissionUpdate implements the shared "Admin, or owner while Submitted"
// mutation rule for projects and reports, narrowing the editable fields.
func submissionUpdate(a Actor, s Snapshot) Decision {
	if a.Role == model.RoleAdmin {
		return Allow(submissionAdminFields()...)
	}
	if CanOwnerMutate(a, s) {
		return Allow(submissionOwnerFields()...)
	}
	return Deny
}

func submissionDelete(a Actor, s Snapshot) Decision {
	if a.Role == model.RoleAdmin || CanOwnerMutate(a, s) {
		return Allow()
	}
	return Deny
}

// rules is the authorization table. Each row reproduces the corresponding
// per-entity policy of the platform; the Project/Report asymmetry in view and
// create is deliberate and must not be unified.
var rules = map[Kind]ruleSet{
	KindProject: {
		viewAny: roles(model.RoleAdmin, model.RoleMentor),
		create:  roles(model.RoleAdmin),
		view: boolRule(func(a Actor, s Snapshot) bool {
			return adminOrMentor(a, s) || a.ID == s.OwnerID
		}),
		update: submissionUpdate,
		delete: submissionDelete,
		download: boolRule(func(a Actor, s Snapshot) bool {
			return adminOrMentor(a, s) || a.ID == s.OwnerID
		}),
	},
	KindReport: {
		viewAny: roles(model.RoleAdmin, model.RoleMentor),
		create:  roles(model.RoleParticipant),
		// Any recognized role may view a report; this is looser than the
		// project rule and intentionally preserved.
		view:     boolRule(anyActor),
		update:   submissionUpdate,
		delete:   submissionDelete,
		download: boolRule(anyActor),
	},
	KindTest: {
		viewAny:  allRoles,
		create:   roles(model.RoleAdmin),
		view:     boolRule(anyActor),
		update:   boolRule(adminOnly),
		delete:   boolRule(adminOnly),
		download: boolRule(anyActor),
	},
	KindQuestion: {
		viewAny:  roles(model.RoleAdmin, model.RoleMentor),
		create:   roles(model.RoleAdmin, model.RoleMentor),
		view:     boolRule(adminOrMentor),
		update:   boolRule(adminOrMentor),
		delete:   boolRule(adminOnly),
		download: boolRule(anyActor),
	},
	KindResource: {
		viewAny: allRoles,
		create:  roles(model.RoleAdmin),
		view:    boolRule(anyActor),
		update: func(a Actor, _ Snapshot) Decision {
			if a.Role == model.RoleAdmin {
				return Allow(FieldTitle, FieldDescription, FieldPublished, FieldFile)
			}
			return Deny
		},
		delete:   boolRule(adminOnly),
		download: boolRule(anyActor),
	},
	KindTestResult: {
		viewAny: roles(model.RoleAdmin),
		create:  roles(model.RoleAdmin),
		view:    boolRule(adminOrOwner),
		update: func(a Actor, _ Snapshot) Decision {
			if a.Role == model.RoleAdmin {
				return Allow(FieldScore, FieldFile)
			}
			return Deny
		},
		delete:   boolRule(adminOnly),
		download: boolRule(adminOrOwner),
	},
	KindUser: {
		viewAny: roles(model.RoleAdmin),
		create:  roles(), // registration happens outside the policy engine
		view:    boolRule(adminOrOwner),
		update: func(a Actor, s Snapshot) Decision {
			if a.Role == model.RoleAdmin {
				return Allow(FieldFirstName, FieldLastName, FieldEmail, FieldRole)
			}
			if a.ID == s.OwnerID {
				return Allow(FieldFirstName, FieldLastName, FieldEmail)
			}
			return Deny
		},
		delete: boolRule(adminOnly),
	},
}

// Decide evaluates (actor, action, kind, snapshot) against the rule table.
// It fails closed: unknown roles, unknown kinds, unknown actions and missing
// snapshots for instance-level actions all deny.
func Decide(a Actor, action Action, kind Kind, snap *Snapshot) Decision {
	if !a.Role.Valid() {
		return Deny
	}
	rs, ok := rules[kind]
	if !ok {
		return Deny
	}

	switch action {
	case ActionViewAny:
		if rs.viewAny.has(a.Role) {
			return Allow()
		}
	case ActionCreate:
		if rs.create.has(a.Role) {
			return Allow()
		}
	case ActionView, ActionUpdate, ActionDelete, ActionDownload:
		if snap == nil {
			return Deny
		}
		var rule instanceRule
		switch action {
		case ActionView:
			rule = rs.view
		case ActionUpdate:
			rule = rs.update
		case ActionDelete:
			rule = rs.delete
		case ActionDownload:
			rule = rs.download
		}
		if rule == nil {
			return Deny
		}
		return rule(a, *snap)
	}
	return Deny
}

// FieldAllowed reports whether an update decision permits changing the named
// attribute.
func (d Decision) FieldAllowed(name string) bool {
	if !d.Allowed {
		return false
	}
	for _, f := range d.Fields {
		if f == name {
			return true
		}
	}
	return false
}
