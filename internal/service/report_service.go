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

type ReportService interface {
	List(actor policy.Actor, now time.Time) (*dto.ReportListDTO, error)
	Get(actor policy.Actor, id uint) (*dto.ReportResponseDTO, error)
	Create(actor policy.Actor, req dto.SubmissionCreateDTO) (*dto.ReportResponseDTO, error)
	Update(actor policy.Actor, id uint, req dto.SubmissionUpdateDTO) (*dto.ReportResponseDTO, error)
	UpdateStatus(actor policy.Actor, id uint, status string) (*dto.ReportResponseDTO, error)
	Delete(actor policy.Actor, id uint) error
	Download(actor policy.Actor, id uint) (string, string, error)
}

type reportService struct {
	reports repository.ReportRepository
	store   FileStore
}

func NewReportService(reports repository.ReportRepository, store FileStore) ReportService {
	return &reportService{reports: reports, store: store}
}

func (s *reportService) List(actor policy.Actor, now time.Time) (*dto.ReportListDTO, error) {
	var (
		reports []model.Report
		err     error
	)
	if policy.Decide(actor, policy.ActionViewAny, policy.KindReport, nil).Allowed {
		reports, err = s.reports.FindAll()
	} else if actor.Role.Valid() {
		reports, err = s.reports.FindBySubmitter(actor.ID)
	} else {
		return nil, ErrForbidden
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list reports")
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	resp := dto.ReportListDTO{
		Reports:            make([]dto.ReportResponseDTO, 0, len(reports)),
		SubmissionStatsDTO: submissionStatsDTO(reportFacts(reports), now),
	}
	for _, r := range reports {
		var d dto.ReportResponseDTO
		copier.Copy(&d, &r)
		resp.Reports = append(resp.Reports, d)
	}
	return &resp, nil
}

func (s *reportService) Get(actor policy.Actor, id uint) (*dto.ReportResponseDTO, error) {
	report, err := s.loadReport(id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(actor, policy.ActionView, policy.KindReport, policy.ReportSnapshot(report)).Allowed {
		return nil, ErrForbidden
	}
	var resp dto.ReportResponseDTO
	copier.Copy(&resp, report)
	return &resp, nil
}

func (s *reportService) Create(actor policy.Actor, req dto.SubmissionCreateDTO) (*dto.ReportResponseDTO, error) {
	if !policy.Decide(actor, policy.ActionCreate, policy.KindReport, nil).Allowed {
		return nil, ErrForbidden
	}

	path, ext, err := s.store.Save("reports", req.File)
	if err != nil {
		return nil, fmt.Errorf("storing report file: %w", err)
	}

	report := model.Report{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     path,
		FileType:    ext,
		SubmittedBy: actor.ID,
		Status:      model.StatusSubmitted,
	}
	if err := s.reports.Create(&report); err != nil {
		log.Error().Err(err).Msg("Failed to create report")
		return nil, fmt.Errorf("creating report: %w", err)
	}

	var resp dto.ReportResponseDTO
	copier.Copy(&resp, &report)
	return &resp, nil
}

func (s *reportService) Update(actor policy.Actor, id uint, req dto.SubmissionUpdateDTO) (*dto.ReportResponseDTO, error) {
	report, err := s.loadReport(id)
	if err != nil {
		return nil, err
	}

	decision := policy.Decide(actor, policy.ActionUpdate, policy.KindReport, policy.ReportSnapshot(report))
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	if req.Title != nil && decision.FieldAllowed(policy.FieldTitle) {
		report.Title = *req.Title
	}
	if req.Description != nil && decision.FieldAllowed(policy.FieldDescription) {
		report.Description = *req.Description
	}
	if req.Feedback != nil && decision.FieldAllowed(policy.FieldFeedback) {
		report.Feedback = req.Feedback
	}
	if req.Status != nil && decision.FieldAllowed(policy.FieldStatus) {
		status, err := model.ParseSubmissionStatus(*req.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		report.Status = status
	}
	if req.File != nil && decision.FieldAllowed(policy.FieldFile) {
		old := report.FileURL
		path, ext, err := s.store.Save("reports", req.File)
		if err != nil {
			return nil, fmt.Errorf("storing report file: %w", err)
		}
		report.FileURL = path
		report.FileType = ext
		s.store.Remove(old)
	}

	if err := s.reports.Update(report); err != nil {
		log.Error().Err(err).Uint("reportID", id).Msg("Failed to update report")
		return nil, fmt.Errorf("updating report: %w", err)
	}

	var resp dto.ReportResponseDTO
	copier.Copy(&resp, report)
	return &resp, nil
}

// UpdateStatus is the review action. Status changes are reserved to Admin and
// Mentor regardless of ownership.
func (s *reportService) UpdateStatus(actor policy.Actor, id uint, status string) (*dto.ReportResponseDTO, error) {
	if actor.Role != model.RoleAdmin && actor.Role != model.RoleMentor {
		return nil, ErrForbidden
	}

	report, err := s.loadReport(id)
	if err != nil {
		return nil, err
	}

	parsed, err := model.ParseSubmissionStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}
	report.Status = parsed

	if err := s.reports.Update(report); err != nil {
		return nil, fmt.Errorf("updating report status: %w", err)
	}

	var resp dto.ReportResponseDTO
	copier.Copy(&resp, report)
	return &resp, nil
}

func (s *reportService) Delete(actor policy.Actor, id uint) error {
	report, err := s.loadReport(id)
	if err != nil {
		return err
	}
	if !policy.Decide(actor, policy.ActionDelete, policy.KindReport, policy.ReportSnapshot(report)).Allowed {
		return ErrForbidden
	}
	if err := s.reports.Delete(id); err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	s.store.Remove(report.FileURL)
	return nil
}

func (s *reportService) Download(actor policy.Actor, id uint) (string, string, error) {
	report, err := s.loadReport(id)
	if err != nil {
		return "", "", err
	}
	if !policy.Decide(actor, policy.ActionDownload, policy.KindReport, policy.ReportSnapshot(report)).Allowed {
		return "", "", ErrForbidden
	}
	if !s.store.Exists(report.FileURL) {
		return "", "", ErrNotFound
	}
	return s.store.Absolute(report.FileURL), downloadName(report.Title, report.FileType), nil
}

func (s *reportService) loadReport(id uint) (*model.Report, error) {
	report, err := s.reports.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading report: %w", err)
	}
	return report, nil
}
