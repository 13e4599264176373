package policy

import "github.com/mkhadiri/mentorhub/internal/model"

// CanOwnerMutate reports whether the actor owns the submission and it is
// still in the Submitted state, the only window in which owners may edit or
// delete what they submitted. Projects and reports share this predicate;
// keep it single so the two cannot drift.
func CanOwnerMutate(a Actor, s Snapshot) bool {
	return a.ID == s.OwnerID && s.Status == model.StatusSubmitted
}
