package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/mkhadiri/mentorhub/internal/policy"
	"github.com/mkhadiri/mentorhub/internal/repository"
	"github.com/mkhadiri/mentorhub/internal/stats"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ResourceService interface {
	List(actor policy.Actor) (*dto.ResourceListDTO, error)
	Get(actor policy.Actor, id uint) (*dto.ResourceResponseDTO, error)
	Create(actor policy.Actor, req dto.ResourceCreateDTO) (*dto.ResourceResponseDTO, error)
	Update(actor policy.Actor, id uint, req dto.ResourceUpdateDTO) (*dto.ResourceResponseDTO, error)
	Delete(actor policy.Actor, id uint) error
	Download(actor policy.Actor, id uint) (string, string, error)
}

type resourceService struct {
	resources repository.ResourceRepository
	store     FileStore
}

func NewResourceService(resources repository.ResourceRepository, store FileStore) ResourceService {
	return &resourceService{resources: resources, store: store}
}

func (s *resourceService) List(actor policy.Actor) (*dto.ResourceListDTO, error) {
	if !policy.Decide(actor, policy.ActionViewAny, policy.KindResource, nil).Allowed {
		return nil, ErrForbidden
	}
	resources, err := s.resources.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list resources")
		return nil, fmt.Errorf("listing resources: %w", err)
	}

	summary := stats.Resources(resources)
	resp := dto.ResourceListDTO{
		Resources:      make([]dto.ResourceResponseDTO, 0, len(resources)),
		Total:          summary.Total,
		TotalPublished: summary.Published,
		TotalDownloads: summary.TotalDownloads,
	}
	for _, r := range resources {
		var d dto.ResourceResponseDTO
		copier.Copy(&d, &r)
		resp.Resources = append(resp.Resources, d)
	}
	return &resp, nil
}

func (s *resourceService) Get(actor policy.Actor, id uint) (*dto.ResourceResponseDTO, error) {
	resource, err := s.loadResource(id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(actor, policy.ActionView, policy.KindResource, policy.ResourceSnapshot(resource)).Allowed {
		return nil, ErrForbidden
	}
	var resp dto.ResourceResponseDTO
	copier.Copy(&resp, resource)
	return &resp, nil
}

func (s *resourceService) Create(actor policy.Actor, req dto.ResourceCreateDTO) (*dto.ResourceResponseDTO, error) {
	if !policy.Decide(actor, policy.ActionCreate, policy.KindResource, nil).Allowed {
		return nil, ErrForbidden
	}

	path, ext, err := s.store.Save("resources", req.File)
	if err != nil {
		return nil, fmt.Errorf("storing resource file: %w", err)
	}

	resource := model.Resource{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     path,
		FileType:    ext,
		UploadedBy:  actor.ID,
		IsPublished: req.IsPublished,
	}
	if err := s.resources.Create(&resource); err != nil {
		log.Error().Err(err).Msg("Failed to create resource")
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var resp dto.ResourceResponseDTO
	copier.Copy(&resp, &resource)
	return &resp, nil
}

func (s *resourceService) Update(actor policy.Actor, id uint, req dto.ResourceUpdateDTO) (*dto.ResourceResponseDTO, error) {
	resource, err := s.loadResource(id)
	if err != nil {
		return nil, err
	}

	decision := policy.Decide(actor, policy.ActionUpdate, policy.KindResource, policy.ResourceSnapshot(resource))
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	if req.Title != nil && decision.FieldAllowed(policy.FieldTitle) {
		resource.Title = *req.Title
	}
	if req.Description != nil && decision.FieldAllowed(policy.FieldDescription) {
		resource.Description = *req.Description
	}
	if req.IsPublished != nil && decision.FieldAllowed(policy.FieldPublished) {
		resource.IsPublished = *req.IsPublished
	}
	if req.File != nil && decision.FieldAllowed(policy.FieldFile) {
		old := resource.FileURL
		path, ext, err := s.store.Save("resources", req.File)
		if err != nil {
			return nil, fmt.Errorf("storing resource file: %w", err)
		}
		resource.FileURL = path
		resource.FileType = ext
		s.store.Remove(old)
	}

	if err := s.resources.Update(resource); err != nil {
		log.Error().Err(err).Uint("resourceID", id).Msg("Failed to update resource")
		return nil, fmt.Errorf("updating resource: %w", err)
	}

	var resp dto.ResourceResponseDTO
	copier.Copy(&resp, resource)
	return &resp, nil
}

func (s *resourceService) Delete(actor policy.Actor, id uint) error {
	resource, err := s.loadResource(id)
	if err != nil {
		return err
	}
	if !policy.Decide(actor, policy.ActionDelete, policy.KindResource, policy.ResourceSnapshot(resource)).Allowed {
		return ErrForbidden
	}
	if err := s.resources.Delete(id); err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}
	s.store.Remove(resource.FileURL)
	return nil
}

// Download bumps the counter through the repository's atomic increment only
// after the decision allows and the file is known to exist.
func (s *resourceService) Download(actor policy.Actor, id uint) (string, string, error) {
	resource, err := s.loadResource(id)
	if err != nil {
		return "", "", err
	}
	if !policy.Decide(actor, policy.ActionDownload, policy.KindResource, policy.ResourceSnapshot(resource)).Allowed {
		return "", "", ErrForbidden
	}
	if !s.store.Exists(resource.FileURL) {
		return "", "", ErrNotFound
	}
	if err := s.resources.IncrementDownloadCount(id); err != nil {
		log.Error().Err(err).Uint("resourceID", id).Msg("Failed to increment download count")
		return "", "", fmt.Errorf("incrementing download count: %w", err)
	}
	return s.store.Absolute(resource.FileURL), downloadName(resource.Title, resource.FileType), nil
}

func (s *resourceService) loadResource(id uint) (*model.Resource, error) {
	resource, err := s.resources.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading resource: %w", err)
	}
	return resource, nil
}
