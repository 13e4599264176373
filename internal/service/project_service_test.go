package service

import (
	"mime/multipart"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/mkhadiri/mentorhub/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProjectRepo struct {
	projects map[uint]*model.Project
	updated  *model.Project
}

func newFakeProjectRepo(projects ...*model.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: make(map[uint]*model.Project)}
	for _, p := range projects {
		r.projects[p.ID] = p
	}
	return r
}

func (f *fakeProjectRepo) Create(p *model.Project) error {
	p.ID = uint(len(f.projects) + 1)
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) FindByID(id uint) (*model.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjectRepo) FindAll() ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProjectRepo) FindBySubmitter(userID uint) ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.projects {
		if p.SubmittedBy == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(p *model.Project) error {
	f.updated = p
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Delete(id uint) error {
	delete(f.projects, id)
	return nil
}

type fakeStore struct {
	saved   []string
	removed []string
}

func (f *fakeStore) Save(kind string, fh *multipart.FileHeader) (string, string, error) {
	path := filepath.Join(kind, fh.Filename)
	f.saved = append(f.saved, path)
	return path, "pdf", nil
}

func (f *fakeStore) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

func (f *fakeStore) Absolute(path string) string { return "/uploads/" + path }
func (f *fakeStore) Exists(string) bool          { return true }

func strPtr(s string) *string { return &s }

func TestProjectUpdateOwnerFieldNarrowing(t *testing.T) {
	owner := policy.Actor{ID: 3, Role: model.RoleParticipant, Verified: true}
	repo := newFakeProjectRepo(&model.Project{
		ID:          10,
		Title:       "Original",
		SubmittedBy: 3,
		Status:      model.StatusSubmitted,
		FileURL:     "projects/a.pdf",
	})
	svc := NewProjectService(repo, &fakeStore{})

	got, err := svc.Update(owner, 10, dto.SubmissionUpdateDTO{
		Title:    strPtr("Renamed"),
		Feedback: strPtr("sneaky self-review"),
		Status:   strPtr(string(model.StatusApproved)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", got.Title)
	require.NotNil(t, repo.updated)
	assert.Nil(t, repo.updated.Feedback)
	assert.Equal(t, model.StatusSubmitted, repo.updated.Status)
}

func TestProjectUpdateAdminSetsStatusAndFeedback(t *testing.T) {
	admin := policy.Actor{ID: 1, Role: model.RoleAdmin, Verified: true}
	repo := newFakeProjectRepo(&model.Project{
		ID:          10,
		Title:       "Original",
		SubmittedBy: 3,
		Status:      model.StatusInReview,
	})
	svc := NewProjectService(repo, &fakeStore{})

	got, err := svc.Update(admin, 10, dto.SubmissionUpdateDTO{
		Status:   strPtr(string(model.StatusApproved)),
		Feedback: strPtr("well done"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(model.StatusApproved), got.Status)
	require.NotNil(t, repo.updated.Feedback)
	assert.Equal(t, "well done", *repo.updated.Feedback)
}

func TestProjectUpdateRejectsUnknownStatus(t *testing.T) {
	admin := policy.Actor{ID: 1, Role: model.RoleAdmin, Verified: true}
	repo := newFakeProjectRepo(&model.Project{ID: 10, SubmittedBy: 3, Status: model.StatusSubmitted})
	svc := NewProjectService(repo, &fakeStore{})

	_, err := svc.Update(admin, 10, dto.SubmissionUpdateDTO{Status: strPtr("Pending")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestProjectUpdateForbiddenOutsideWindow(t *testing.T) {
	owner := policy.Actor{ID: 3, Role: model.RoleParticipant, Verified: true}
	repo := newFakeProjectRepo(&model.Project{
		ID:          10,
		SubmittedBy: 3,
		Status:      model.StatusApproved,
	})
	svc := NewProjectService(repo, &fakeStore{})

	_, err := svc.Update(owner, 10, dto.SubmissionUpdateDTO{Title: strPtr("Renamed")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestProjectListScopedBySubmitter(t *testing.T) {
	participant := policy.Actor{ID: 3, Role: model.RoleParticipant, Verified: true}
	now := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	repo := newFakeProjectRepo(
		&model.Project{ID: 1, SubmittedBy: 3, Status: model.StatusApproved, SubmittedAt: now},
		&model.Project{ID: 2, SubmittedBy: 9, Status: model.StatusApproved, SubmittedAt: now},
	)
	svc := NewProjectService(repo, &fakeStore{})

	got, err := svc.List(participant, now)
	require.NoError(t, err)

	assert.Len(t, got.Projects, 1)
	assert.Equal(t, 1, got.TotalSubmitted)
	assert.Equal(t, 1, got.TotalApproved)

	admin := policy.Actor{ID: 1, Role: model.RoleAdmin, Verified: true}
	all, err := svc.List(admin, now)
	require.NoError(t, err)
	assert.Len(t, all.Projects, 2)
}

func TestProjectGetNotFound(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &fakeStore{})
	admin := policy.Actor{ID: 1, Role: model.RoleAdmin, Verified: true}

	_, err := svc.Get(admin, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectCreateParticipantForbidden(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &fakeStore{})
	participant := policy.Actor{ID: 3, Role: model.RoleParticipant, Verified: true}

	_, err := svc.Create(participant, dto.SubmissionCreateDTO{
		Title: "Nope",
		File:  &multipart.FileHeader{Filename: "x.pdf"},
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestProjectDeleteRemovesStoredFile(t *testing.T) {
	admin := policy.Actor{ID: 1, Role: model.RoleAdmin, Verified: true}
	store := &fakeStore{}
	repo := newFakeProjectRepo(&model.Project{ID: 10, SubmittedBy: 3, FileURL: "projects/a.pdf"})
	svc := NewProjectService(repo, store)

	err := svc.Delete(admin, 10)
	require.NoError(t, err)
	assert.Contains(t, store.removed, "projects/a.pdf")
}
