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

type ResultService interface {
	List(actor policy.Actor) ([]dto.ResultResponseDTO, error)
	Get(actor policy.Actor, id uint) (*dto.ResultResponseDTO, error)
	Create(actor policy.Actor, req dto.ResultCreateDTO, now time.Time) (*dto.ResultResponseDTO, error)
	Update(actor policy.Actor, id uint, req dto.ResultUpdateDTO) (*dto.ResultResponseDTO, error)
	Delete(actor policy.Actor, id uint) error
	Download(actor policy.Actor, id uint) (string, string, error)
}

type resultService struct {
	results repository.ResultRepository
	users   repository.UserRepository
	tests   repository.TestRepository
	store   FileStore
}

func NewResultService(results repository.ResultRepository, users repository.UserRepository, tests repository.TestRepository, store FileStore) ResultService {
	return &resultService{results: results, users: users, tests: tests, store: store}
}

// List returns every result for an Admin and the actor's own results for any
// other recognized role.
func (s *resultService) List(actor policy.Actor) ([]dto.ResultResponseDTO, error) {
	var (
		results []model.UserTestResult
		err     error
	)
	if policy.Decide(actor, policy.ActionViewAny, policy.KindTestResult, nil).Allowed {
		results, err = s.results.FindAll()
	} else if actor.Role.Valid() {
		results, err = s.results.FindByUser(actor.ID)
	} else {
		return nil, ErrForbidden
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list test results")
		return nil, fmt.Errorf("listing results: %w", err)
	}

	resp := make([]dto.ResultResponseDTO, 0, len(results))
	for _, r := range results {
		var d dto.ResultResponseDTO
		copier.Copy(&d, &r)
		resp = append(resp, d)
	}
	return resp, nil
}

func (s *resultService) Get(actor policy.Actor, id uint) (*dto.ResultResponseDTO, error) {
	result, err := s.loadResult(id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(actor, policy.ActionView, policy.KindTestResult, policy.ResultSnapshot(result)).Allowed {
		return nil, ErrForbidden
	}
	var resp dto.ResultResponseDTO
	copier.Copy(&resp, result)
	return &resp, nil
}

func (s *resultService) Create(actor policy.Actor, req dto.ResultCreateDTO, now time.Time) (*dto.ResultResponseDTO, error) {
	if !policy.Decide(actor, policy.ActionCreate, policy.KindTestResult, nil).Allowed {
		return nil, ErrForbidden
	}

	if _, err := s.users.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if _, err := s.tests.FindByID(req.TestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading test: %w", err)
	}

	completedAt := now
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	result := model.UserTestResult{
		UserID:      req.UserID,
		TestID:      req.TestID,
		Score:       req.Score,
		CompletedAt: completedAt,
	}
	if req.File != nil {
		path, ext, err := s.store.Save("results", req.File)
		if err != nil {
			return nil, fmt.Errorf("storing result file: %w", err)
		}
		result.FileURL = path
		result.FileType = ext
	}

	if err := s.results.Create(&result); err != nil {
		log.Error().Err(err).Msg("Failed to create test result")
		return nil, fmt.Errorf("creating result: %w", err)
	}

	var resp dto.ResultResponseDTO
	copier.Copy(&resp, &result)
	return &resp, nil
}

func (s *resultService) Update(actor policy.Actor, id uint, req dto.ResultUpdateDTO) (*dto.ResultResponseDTO, error) {
	result, err := s.loadResult(id)
	if err != nil {
		return nil, err
	}

	decision := policy.Decide(actor, policy.ActionUpdate, policy.KindTestResult, policy.ResultSnapshot(result))
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	if req.Score != nil && decision.FieldAllowed(policy.FieldScore) {
		result.Score = *req.Score
	}
	if req.File != nil && decision.FieldAllowed(policy.FieldFile) {
		old := result.FileURL
		path, ext, err := s.store.Save("results", req.File)
		if err != nil {
			return nil, fmt.Errorf("storing result file: %w", err)
		}
		result.FileURL = path
		result.FileType = ext
		s.store.Remove(old)
	}

	if err := s.results.Update(result); err != nil {
		log.Error().Err(err).Uint("resultID", id).Msg("Failed to update test result")
		return nil, fmt.Errorf("updating result: %w", err)
	}

	var resp dto.ResultResponseDTO
	copier.Copy(&resp, result)
	return &resp, nil
}

func (s *resultService) Delete(actor policy.Actor, id uint) error {
	result, err := s.loadResult(id)
	if err != nil {
		return err
	}
	if !policy.Decide(actor, policy.ActionDelete, policy.KindTestResult, policy.ResultSnapshot(result)).Allowed {
		return ErrForbidden
	}
	if err := s.results.Delete(id); err != nil {
		return fmt.Errorf("deleting result: %w", err)
	}
	s.store.Remove(result.FileURL)
	return nil
}

func (s *resultService) Download(actor policy.Actor, id uint) (string, string, error) {
	result, err := s.loadResult(id)
	if err != nil {
		return "", "", err
	}
	if !policy.Decide(actor, policy.ActionDownload, policy.KindTestResult, policy.ResultSnapshot(result)).Allowed {
		return "", "", ErrForbidden
	}
	if !s.store.Exists(result.FileURL) {
		return "", "", ErrNotFound
	}
	return s.store.Absolute(result.FileURL), downloadName(fmt.Sprintf("result-%d", result.ID), result.FileType), nil
}

func (s *resultService) loadResult(id uint) (*model.UserTestResult, error) {
	result, err := s.results.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading result: %w", err)
	}
	return result, nil
}
