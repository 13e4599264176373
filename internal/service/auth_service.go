package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/mkhadiri/mentorhub/config"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/mkhadiri/mentorhub/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	otpValidity   = 10 * time.Minute
	tokenValidity = 72 * time.Hour
)

type AuthService interface {
	Register(req dto.RegisterDTO, now time.Time) (*dto.UserResponseDTO, error)
	VerifyEmail(req dto.VerifyEmailDTO, now time.Time) error
	Login(req dto.LoginDTO, now time.Time) (*dto.TokenResponseDTO, error)
	Me(userID uint) (*dto.UserResponseDTO, error)
}

type authService struct {
	users  repository.UserRepository
	otps   repository.OtpRepository
	mailer Mailer
	secret string
}

func NewAuthService(users repository.UserRepository, otps repository.OtpRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{users: users, otps: otps, mailer: mailer, secret: cfg.JWT.Secret}
}

// Register creates an unverified Participant account and emails a one-time
// code. Role is never taken from the request; only an Admin can change it
// later through the user update path.
func (s *authService) Register(req dto.RegisterDTO, now time.Time) (*dto.UserResponseDTO, error) {
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hash),
		Role:      model.RoleParticipant,
	}
	if err := s.users.Create(&user); err != nil {
		log.Error().Err(err).Msg("Failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	code, err := generateOtpCode()
	if err != nil {
		return nil, fmt.Errorf("generating otp: %w", err)
	}
	if err := s.otps.Upsert(user.Email, code, now.Add(otpValidity)); err != nil {
		return nil, fmt.Errorf("storing otp: %w", err)
	}
	if err := s.mailer.SendOtp(user.Email, code); err != nil {
		// The account exists and the code can be re-requested; log instead of
		// failing registration on a mail outage.
		log.Error().Err(err).Str("email", user.Email).Msg("Failed to send otp mail")
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *authService) VerifyEmail(req dto.VerifyEmailDTO, now time.Time) error {
	otp, err := s.otps.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOtp
		}
		return fmt.Errorf("loading otp: %w", err)
	}
	if otp.Code != req.Code {
		return ErrInvalidOtp
	}
	if otp.Expired(now) {
		return ErrOtpExpired
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return fmt.Errorf("loading user: %w", err)
	}
	user.IsVerified = true
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("marking user verified: %w", err)
	}
	if err := s.otps.DeleteByEmail(req.Email); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("Failed to delete consumed otp")
	}
	return nil
}

func (s *authService) Login(req dto.LoginDTO, now time.Time) (*dto.TokenResponseDTO, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, ErrNotVerified
	}

	expiresAt := now.Add(tokenValidity)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	var userResp dto.UserResponseDTO
	copier.Copy(&userResp, user)
	return &dto.TokenResponseDTO{Token: token, ExpiresAt: expiresAt, User: userResp}, nil
}

func (s *authService) Me(userID uint) (*dto.UserResponseDTO, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	var resp dto.UserResponseDTO
	copier.Copy(&resp, user)
	return &resp, nil
}

func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
