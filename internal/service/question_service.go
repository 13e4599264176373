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

type QuestionService interface {
	List(actor policy.Actor, testID uint) ([]dto.QuestionResponseDTO, error)
	Get(actor policy.Actor, id uint) (*dto.QuestionResponseDTO, error)
	Create(actor policy.Actor, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	Update(actor policy.Actor, id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	Delete(actor policy.Actor, id uint) error
	Download(actor policy.Actor, id uint) (string, string, error)
}

type questionService struct {
	questions repository.QuestionRepository
	tests     repository.TestRepository
	store     FileStore
}

func NewQuestionService(questions repository.QuestionRepository, tests repository.TestRepository, store FileStore) QuestionService {
	return &questionService{questions: questions, tests: tests, store: store}
}

// List returns every question, or only those of a test when testID is set.
func (s *questionService) List(actor policy.Actor, testID uint) ([]dto.QuestionResponseDTO, error) {
	if !policy.Decide(actor, policy.ActionViewAny, policy.KindQuestion, nil).Allowed {
		return nil, ErrForbidden
	}

	var (
		questions []model.Question
		err       error
	)
	if testID != 0 {
		questions, err = s.questions.FindByTestID(testID)
	} else {
		questions, err = s.questions.FindAll()
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, fmt.Errorf("listing questions: %w", err)
	}

	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, q := range questions {
		var d dto.QuestionResponseDTO
		copier.Copy(&d, &q)
		resp = append(resp, d)
	}
	return resp, nil
}

func (s *questionService) Get(actor policy.Actor, id uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.loadQuestion(id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(actor, policy.ActionView, policy.KindQuestion, policy.QuestionSnapshot(question)).Allowed {
		return nil, ErrForbidden
	}
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) Create(actor policy.Actor, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if !policy.Decide(actor, policy.ActionCreate, policy.KindQuestion, nil).Allowed {
		return nil, ErrForbidden
	}

	questionType, err := model.ParseQuestionType(req.Type)
	if err != nil {
		return nil, ErrInvalidType
	}

	// The parent test must exist; questions are never orphans.
	if _, err := s.tests.FindByID(req.TestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading parent test: %w", err)
	}

	question := model.Question{
		TestID:        req.TestID,
		Text:          req.Text,
		Type:          questionType,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	}
	if req.File != nil {
		path, ext, err := s.store.Save("questions", req.File)
		if err != nil {
			return nil, fmt.Errorf("storing question file: %w", err)
		}
		question.FileURL = path
		question.FileType = ext
	}

	if err := s.questions.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("creating question: %w", err)
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) Update(actor policy.Actor, id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.loadQuestion(id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(actor, policy.ActionUpdate, policy.KindQuestion, policy.QuestionSnapshot(question)).Allowed {
		return nil, ErrForbidden
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Type != nil {
		questionType, err := model.ParseQuestionType(*req.Type)
		if err != nil {
			return nil, ErrInvalidType
		}
		question.Type = questionType
	}
	if req.Options != nil {
		question.Options = req.Options
	}
	if req.CorrectAnswer != nil {
		question.CorrectAnswer = *req.CorrectAnswer
	}
	if req.File != nil {
		old := question.FileURL
		path, ext, err := s.store.Save("questions", req.File)
		if err != nil {
			return nil, fmt.Errorf("storing question file: %w", err)
		}
		question.FileURL = path
		question.FileType = ext
		s.store.Remove(old)
	}

	if err := s.questions.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, fmt.Errorf("updating question: %w", err)
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) Delete(actor policy.Actor, id uint) error {
	question, err := s.loadQuestion(id)
	if err != nil {
		return err
	}
	if !policy.Decide(actor, policy.ActionDelete, policy.KindQuestion, policy.QuestionSnapshot(question)).Allowed {
		return ErrForbidden
	}
	if err := s.questions.Delete(id); err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}
	s.store.Remove(question.FileURL)
	return nil
}

func (s *questionService) Download(actor policy.Actor, id uint) (string, string, error) {
	question, err := s.loadQuestion(id)
	if err != nil {
		return "", "", err
	}
	if !policy.Decide(actor, policy.ActionDownload, policy.KindQuestion, policy.QuestionSnapshot(question)).Allowed {
		return "", "", ErrForbidden
	}
	if !s.store.Exists(question.FileURL) {
		return "", "", ErrNotFound
	}
	return s.store.Absolute(question.FileURL), downloadName(fmt.Sprintf("question-%d", question.ID), question.FileType), nil
}

func (s *questionService) loadQuestion(id uint) (*model.Question, error) {
	question, err := s.questions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading question: %w", err)
	}
	return question, nil
}
