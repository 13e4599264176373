package policy

import "github.com/mkhadiri/mentorhub/internal/model"

// Snapshot constructors used by the service layer. Each extracts exactly the
// fields a decision needs from a loaded entity.

func ProjectSnapshot(p *model.Project) *Snapshot {
	if p == nil {
		return nil
	}
	return &Snapshot{ID: p.ID, OwnerID: p.SubmittedBy, Status: p.Status}
}

func ReportSnapshot(r *model.Report) *Snapshot {
	if r == nil {
		return nil
	}
	return &Snapshot{ID: r.ID, OwnerID: r.SubmittedBy, Status: r.Status}
}

func TestSnapshot(t *model.Test) *Snapshot {
	if t == nil {
		return nil
	}
	return &Snapshot{ID: t.ID, OwnerID: t.CreatedBy}
}

func QuestionSnapshot(q *model.Question) *Snapshot {
	if q == nil {
		return nil
	}
	return &Snapshot{ID: q.ID}
}

func ResourceSnapshot(r *model.Resource) *Snapshot {
	if r == nil {
		return nil
	}
	return &Snapshot{ID: r.ID, OwnerID: r.UploadedBy}
}

func ResultSnapshot(r *model.UserTestResult) *Snapshot {
	if r == nil {
		return nil
	}
	return &Snapshot{ID: r.ID, OwnerID: r.UserID}
}

func UserSnapshot(u *model.User) *Snapshot {
	if u == nil {
		return nil
	}
	return &Snapshot{ID: u.ID, OwnerID: u.ID}
}
