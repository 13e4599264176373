package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/mkhadiri/mentorhub/internal/policy"
	"github.com/mkhadiri/mentorhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ProjectService interface {
	List(actor policy.Actor, now time.Time) (*dto.ProjectListDTO, error)
	Get(actor policy.Actor, id uint) (*dto.ProjectResponseDTO, error)
	Create(actor policy.Actor, req dto.SubmissionCreateDTO) (*dto.ProjectResponseDTO, error)
	Update(actor policy.Actor, id uint, req dto.SubmissionUpdateDTO) (*dto.ProjectResponseDTO, error)
	Delete(actor policy.Actor, id uint) error
	Download(actor policy.Actor, id uint) (string, string, error)
}

type projectService struct {
	projects repository.ProjectRepository
	store    FileStore
}

func NewProjectService(projects repository.ProjectRepository, store FileStore) ProjectService {
	return &projectService{projects: projects, store: store}
}

// List returns all projects for actors allowed to view any, and the actor's
// own submissions otherwise, together with the aggregate counters.
func (s *projectService) List(actor policy.Actor, now time.Time) (*dto.ProjectListDTO, error) {
	var (
		projects []model.Project
		err      error
	)
	if policy.Decide(actor, policy.ActionViewAny, policy.KindProject, nil).Allowed {
		projects, err = s.projects.FindAll()
	} else if actor.Role.Valid() {
		projects, err = s.projects.FindBySubmitter(actor.ID)
	} else {
		return nil, ErrForbidden
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list projects")
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	resp := dto.ProjectListDTO{
		Projects:           make([]dto.ProjectResponseDTO, 0, len(projects)),
		SubmissionStatsDTO: submissionStatsDTO(projectFacts(projects), now),
	}
	for _, p := range projects {
		var d dto.ProjectResponseDTO
		copier.Copy(&d, &p)
		resp.Projects = append(resp.Projects, d)
	}
	return &resp, nil
}

func (s *projectService) Get(actor policy.Actor, id uint) (*dto.ProjectResponseDTO, error) {
	project, err := s.loadProject(id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(actor, policy.ActionView, policy.KindProject, policy.ProjectSnapshot(project)).Allowed {
		return nil, ErrForbidden
	}
	var resp dto.ProjectResponseDTO
	copier.Copy(&resp, project)
	return &resp, nil
}

func (s *projectService) Create(actor policy.Actor, req dto.SubmissionCreateDTO) (*dto.ProjectResponseDTO, error) {
	if !policy.Decide(actor, policy.ActionCreate, policy.KindProject, nil).Allowed {
		return nil, ErrForbidden
	}

	path, ext, err := s.store.Save("projects", req.File)
	if err != nil {
		return nil, fmt.Errorf("storing project file: %w", err)
	}

	project := model.Project{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     path,
		FileType:    ext,
		SubmittedBy: actor.ID,
		Status:      model.StatusSubmitted,
	}
	if err := s.projects.Create(&project); err != nil {
		log.Error().Err(err).Msg("Failed to create project")
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var resp dto.ProjectResponseDTO
	copier.Copy(&resp, &project)
	return &resp, nil
}

// Update applies only the fields the policy decision permits; a request
// carrying a disallowed field has that field ignored rather than rejected,
// matching the separate admin/participant edit surfaces of the API.
func (s *projectService) Update(actor policy.Actor, id uint, req dto.SubmissionUpdateDTO) (*dto.ProjectResponseDTO, error) {
	project, err := s.loadProject(id)
	if err != nil {
		return nil, err
	}

	decision := policy.Decide(actor, policy.ActionUpdate, policy.KindProject, policy.ProjectSnapshot(project))
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	if req.Title != nil && decision.FieldAllowed(policy.FieldTitle) {
		project.Title = *req.Title
	}
	if req.Description != nil && decision.FieldAllowed(policy.FieldDescription) {
		project.Description = *req.Description
	}
	if req.Feedback != nil && decision.FieldAllowed(policy.FieldFeedback) {
		project.Feedback = req.Feedback
	}
	if req.Status != nil && decision.FieldAllowed(policy.FieldStatus) {
		status, err := model.ParseSubmissionStatus(*req.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		project.Status = status
	}
	if req.File != nil && decision.FieldAllowed(policy.FieldFile) {
		old := project.FileURL
		path, ext, err := s.store.Save("projects", req.File)
		if err != nil {
			return nil, fmt.Errorf("storing project file: %w", err)
		}
		project.FileURL = path
		project.FileType = ext
		s.store.Remove(old)
	}

	if err := s.projects.Update(project); err != nil {
		log.Error().Err(err).Uint("projectID", id).Msg("Failed to update project")
		return nil, fmt.Errorf("updating project: %w", err)
	}

	var resp dto.ProjectResponseDTO
	copier.Copy(&resp, project)
	return &resp, nil
}

func (s *projectService) Delete(actor policy.Actor, id uint) error {
	project, err := s.loadProject(id)
	if err != nil {
		return err
	}
	if !policy.Decide(actor, policy.ActionDelete, policy.KindProject, policy.ProjectSnapshot(project)).Allowed {
		return ErrForbidden
	}
	if err := s.projects.Delete(id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	s.store.Remove(project.FileURL)
	return nil
}

// Download returns the absolute path and a client-facing file name after a
// download decision. The counter-free submission download mirrors the view
// rule.
func (s *projectService) Download(actor policy.Actor, id uint) (string, string, error) {
	project, err := s.loadProject(id)
	if err != nil {
		return "", "", err
	}
	if !policy.Decide(actor, policy.ActionDownload, policy.KindProject, policy.ProjectSnapshot(project)).Allowed {
		return "", "", ErrForbidden
	}
	if !s.store.Exists(project.FileURL) {
		return "", "", ErrNotFound
	}
	return s.store.Absolute(project.FileURL), downloadName(project.Title, project.FileType), nil
}

func (s *projectService) loadProject(id uint) (*model.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}
	return project, nil
}

func downloadName(title, ext string) string {
	if ext == "" {
		return title
	}
	return title + "." + ext
}
