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
	"github.com/mkhadiri/mentorhub/internal/stats"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	List(actor policy.Actor) ([]dto.UserResponseDTO, error)
	Get(actor policy.Actor, id uint) (*dto.UserResponseDTO, error)
	Update(actor policy.Actor, id uint, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error)
	Delete(actor policy.Actor, id uint) error
	AdminDashboard(actor policy.Actor, now time.Time) (*dto.AdminDashboardDTO, error)
	ParticipantDashboard(actor policy.Actor, now time.Time) (*dto.ParticipantDashboardDTO, error)
}

type userService struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
	reports  repository.ReportRepository
}

func NewUserService(users repository.UserRepository, projects repository.ProjectRepository, reports repository.ReportRepository) UserService {
	return &userService{users: users, projects: projects, reports: reports}
}

func (s *userService) List(actor policy.Actor) ([]dto.UserResponseDTO, error) {
	if !policy.Decide(actor, policy.ActionViewAny, policy.KindUser, nil).Allowed {
		return nil, ErrForbidden
	}
	users, err := s.users.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		return nil, fmt.Errorf("listing users: %w", err)
	}
	resp := make([]dto.UserResponseDTO, 0, len(users))
	for _, u := range users {
		var d dto.UserResponseDTO
		copier.Copy(&d, &u)
		resp = append(resp, d)
	}
	return resp, nil
}

func (s *userService) Get(actor policy.Actor, id uint) (*dto.UserResponseDTO, error) {
	user, err := s.loadUser(id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(actor, policy.ActionView, policy.KindUser, policy.UserSnapshot(user)).Allowed {
		return nil, ErrForbidden
	}
	var resp dto.UserResponseDTO
	copier.Copy(&resp, user)
	return &resp, nil
}

// Update narrows changes by the policy decision: an Admin may also reassign
// the role, while a user editing their own profile may not.
func (s *userService) Update(actor policy.Actor, id uint, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error) {
	user, err := s.loadUser(id)
	if err != nil {
		return nil, err
	}

	decision := policy.Decide(actor, policy.ActionUpdate, policy.KindUser, policy.UserSnapshot(user))
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	if req.FirstName != nil && decision.FieldAllowed(policy.FieldFirstName) {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil && decision.FieldAllowed(policy.FieldLastName) {
		user.LastName = *req.LastName
	}
	if req.Email != nil && decision.FieldAllowed(policy.FieldEmail) {
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !decision.FieldAllowed(policy.FieldRole) {
			return nil, ErrForbidden
		}
		role, err := model.ParseRole(*req.Role)
		if err != nil {
			return nil, ErrInvalidRole
		}
		user.Role = role
	}

	if err := s.users.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", id).Msg("Failed to update user")
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, user)
	return &resp, nil
}

func (s *userService) Delete(actor policy.Actor, id uint) error {
	user, err := s.loadUser(id)
	if err != nil {
		return err
	}
	if !policy.Decide(actor, policy.ActionDelete, policy.KindUser, policy.UserSnapshot(user)).Allowed {
		return ErrForbidden
	}
	if err := s.users.Delete(id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

func (s *userService) AdminDashboard(actor policy.Actor, now time.Time) (*dto.AdminDashboardDTO, error) {
	if actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	counts, err := s.users.CountByRole()
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	byRole := make(map[string]int64, len(counts))
	var total int64
	for role, n := range counts {
		byRole[string(role)] = n
		total += n
	}

	projects, err := s.projects.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	reports, err := s.reports.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	return &dto.AdminDashboardDTO{
		TotalUsers:  int(total),
		UsersByRole: byRole,
		Projects:    submissionStatsDTO(projectFacts(projects), now),
		Reports:     submissionStatsDTO(reportFacts(reports), now),
	}, nil
}

func (s *userService) ParticipantDashboard(actor policy.Actor, now time.Time) (*dto.ParticipantDashboardDTO, error) {
	if !actor.Role.Valid() {
		return nil, ErrForbidden
	}

	projects, err := s.projects.FindBySubmitter(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing own projects: %w", err)
	}
	reports, err := s.reports.FindBySubmitter(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing own reports: %w", err)
	}

	return &dto.ParticipantDashboardDTO{
		Projects: submissionStatsDTO(projectFacts(projects), now),
		Reports:  submissionStatsDTO(reportFacts(reports), now),
	}, nil
}

func (s *userService) loadUser(id uint) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return user, nil
}

func projectFacts(projects []model.Project) []stats.Reviewed {
	out := make([]stats.Reviewed, len(projects))
	for i, p := range projects {
		out[i] = p
	}
	return out
}

func reportFacts(reports []model.Report) []stats.Reviewed {
	out := make([]stats.Reviewed, len(reports))
	for i, r := range reports {
		out[i] = r
	}
	return out
}

func submissionStatsDTO(items []stats.Reviewed, now time.Time) dto.SubmissionStatsDTO {
	summary := stats.Submissions(items, now)
	return dto.SubmissionStatsDTO{
		TotalSubmitted: summary.Total,
		TotalApproved:  summary.Approved,
		TotalInReview:  summary.InReview,
		ThisMonth:      summary.ThisMonth,
	}
}
