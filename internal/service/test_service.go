package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/mkhadiri/mentorhub/internal/policy"
	"github.com/mkhadiri/mentorhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TestService interface {
	List(actor policy.Actor) ([]dto.TestResponseDTO, error)
	Get(actor policy.Actor, id uint) (*dto.TestResponseDTO, error)
	Create(actor policy.Actor, req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	Update(actor policy.Actor, id uint, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error)
	Delete(actor policy.Actor, id uint) error
	Download(actor policy.Actor, id uint) (string, string, error)
}

type testService struct {
	tests repository.TestRepository
	store FileStore
}

func NewTestService(tests repository.TestRepository, store FileStore) TestService {
	return &testService{tests: tests, store: store}
}

func (s *testService) List(actor policy.Actor) ([]dto.TestResponseDTO, error) {
	if !policy.Decide(actor, policy.ActionViewAny, policy.KindTest, nil).Allowed {
		return nil, ErrForbidden
	}
	tests, err := s.tests.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list tests")
		return nil, fmt.Errorf("listing tests: %w", err)
	}
	resp := make([]dto.TestResponseDTO, 0, len(tests))
	for _, t := range tests {
		var d dto.TestResponseDTO
		copier.Copy(&d, &t)
		resp = append(resp, d)
	}
	return resp, nil
}

func (s *testService) Get(actor policy.Actor, id uint) (*dto.TestResponseDTO, error) {
	test, err := s.loadTestWithQuestions(id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(actor, policy.ActionView, policy.KindTest, policy.TestSnapshot(test)).Allowed {
		return nil, ErrForbidden
	}
	// Questions carry correct answers; only actors cleared for the question
	// list see them embedded.
	if !policy.Decide(actor, policy.ActionViewAny, policy.KindQuestion, nil).Allowed {
		test.Questions = nil
	}
	var resp dto.TestResponseDTO
	copier.Copy(&resp, test)
	return &resp, nil
}

func (s *testService) Create(actor policy.Actor, req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	if !policy.Decide(actor, policy.ActionCreate, policy.KindTest, nil).Allowed {
		return nil, ErrForbidden
	}

	testType, err := model.ParseTestType(req.Type)
	if err != nil {
		return nil, ErrInvalidType
	}

	test := model.Test{
		Title:       req.Title,
		Description: req.Description,
		Type:        testType,
		CreatedBy:   actor.ID,
	}
	if req.File != nil {
		path, ext, err := s.store.Save("tests", req.File)
		if err != nil {
			return nil, fmt.Errorf("storing test file: %w", err)
		}
		test.FileURL = path
		test.FileType = ext
	}

	if err := s.tests.Create(&test); err != nil {
		log.Error().Err(err).Msg("Failed to create test")
		return nil, fmt.Errorf("creating test: %w", err)
	}

	var resp dto.TestResponseDTO
	copier.Copy(&resp, &test)
	return &resp, nil
}

func (s *testService) Update(actor policy.Actor, id uint, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error) {
	test, err := s.loadTest(id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(actor, policy.ActionUpdate, policy.KindTest, policy.TestSnapshot(test)).Allowed {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if req.Type != nil {
		testType, err := model.ParseTestType(*req.Type)
		if err != nil {
			return nil, ErrInvalidType
		}
		test.Type = testType
	}
	if req.File != nil {
		old := test.FileURL
		path, ext, err := s.store.Save("tests", req.File)
		if err != nil {
			return nil, fmt.Errorf("storing test file: %w", err)
		}
		test.FileURL = path
		test.FileType = ext
		s.store.Remove(old)
	}

	if err := s.tests.Update(test); err != nil {
		log.Error().Err(err).Uint("testID", id).Msg("Failed to update test")
		return nil, fmt.Errorf("updating test: %w", err)
	}

	var resp dto.TestResponseDTO
	copier.Copy(&resp, test)
	return &resp, nil
}

// Delete removes the test together with its questions (repository cascade).
func (s *testService) Delete(actor policy.Actor, id uint) error {
	test, err := s.loadTest(id)
	if err != nil {
		return err
	}
	if !policy.Decide(actor, policy.ActionDelete, policy.KindTest, policy.TestSnapshot(test)).Allowed {
		return ErrForbidden
	}
	if err := s.tests.Delete(id); err != nil {
		return fmt.Errorf("deleting test: %w", err)
	}
	s.store.Remove(test.FileURL)
	return nil
}

func (s *testService) Download(actor policy.Actor, id uint) (string, string, error) {
	test, err := s.loadTest(id)
	if err != nil {
		return "", "", err
	}
	if !policy.Decide(actor, policy.ActionDownload, policy.KindTest, policy.TestSnapshot(test)).Allowed {
		return "", "", ErrForbidden
	}
	if !s.store.Exists(test.FileURL) {
		return "", "", ErrNotFound
	}
	return s.store.Absolute(test.FileURL), downloadName(test.Title, test.FileType), nil
}

func (s *testService) loadTest(id uint) (*model.Test, error) {
	test, err := s.tests.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading test: %w", err)
	}
	return test, nil
}

func (s *testService) loadTestWithQuestions(id uint) (*model.Test, error) {
	test, err := s.tests.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading test: %w", err)
	}
	return test, nil
}
