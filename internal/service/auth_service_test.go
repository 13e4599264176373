package service

import (
	"testing"
	"time"

	"github.com/mkhadiri/mentorhub/config"
	"github.com/mkhadiri/mentorhub/internal/dto"
	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memUserRepo struct {
	byID    map[uint]*model.User
	byEmail map[string]*model.User
	nextID  uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[uint]*model.User{}, byEmail: map[string]*model.User{}, nextID: 1}
}

func (m *memUserRepo) Create(u *model.User) error {
	u.ID = m.nextID
	m.nextID++
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *memUserRepo) FindByEmail(email string) (*model.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *memUserRepo) FindAll() ([]model.User, error) { return nil, nil }
func (m *memUserRepo) Update(u *model.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}
func (m *memUserRepo) Delete(id uint) error                       { return nil }
func (m *memUserRepo) CountByRole() (map[model.Role]int64, error) { return nil, nil }

type memOtpRepo struct {
	otps map[string]*model.Otp
}

func newMemOtpRepo() *memOtpRepo { return &memOtpRepo{otps: map[string]*model.Otp{}} }

func (m *memOtpRepo) Upsert(email, code string, expiresAt time.Time) error {
	m.otps[email] = &model.Otp{Email: email, Code: code, ExpiresAt: expiresAt}
	return nil
}

func (m *memOtpRepo) FindByEmail(email string) (*model.Otp, error) {
	o, ok := m.otps[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (m *memOtpRepo) DeleteByEmail(email string) error {
	delete(m.otps, email)
	return nil
}

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) SendOtp(email, code string) error {
	m.sent = append(m.sent, email)
	return m.err
}

func newAuthFixture() (AuthService, *memUserRepo, *memOtpRepo, *recordingMailer) {
	users := newMemUserRepo()
	otps := newMemOtpRepo()
	mailer := &recordingMailer{}
	cfg := &config.Config{JWT: config.JWT{Secret: "test-secret"}}
	return NewAuthService(users, otps, mailer, cfg), users, otps, mailer
}

func TestRegisterDefaultsToParticipant(t *testing.T) {
	svc, users, otps, mailer := newAuthFixture()
	now := time.Now()

	got, err := svc.Register(dto.RegisterDTO{
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "User",
		Password:  "supersecret",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, string(model.RoleParticipant), got.Role)
	stored := users.byEmail["new@example.com"]
	require.NotNil(t, stored)
	assert.False(t, stored.IsVerified)
	assert.NotEqual(t, "supersecret", stored.Password)

	otp, err := otps.FindByEmail("new@example.com")
	require.NoError(t, err)
	assert.Len(t, otp.Code, 6)
	assert.Equal(t, []string{"new@example.com"}, mailer.sent)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	users.Create(&model.User{Email: "dup@example.com"})

	_, err := svc.Register(dto.RegisterDTO{Email: "dup@example.com", Password: "supersecret"}, time.Now())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterSurvivesMailOutage(t *testing.T) {
	svc, _, _, mailer := newAuthFixture()
	mailer.err = assert.AnError

	_, err := svc.Register(dto.RegisterDTO{
		Email:    "new@example.com",
		Password: "supersecret",
	}, time.Now())
	assert.NoError(t, err)
}

func TestVerifyEmail(t *testing.T) {
	svc, users, otps, _ := newAuthFixture()
	now := time.Now()
	users.Create(&model.User{Email: "v@example.com"})
	otps.Upsert("v@example.com", "123456", now.Add(10*time.Minute))

	err := svc.VerifyEmail(dto.VerifyEmailDTO{Email: "v@example.com", Code: "123456"}, now)
	require.NoError(t, err)

	assert.True(t, users.byEmail["v@example.com"].IsVerified)
	_, err = otps.FindByEmail("v@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVerifyEmailWrongCode(t *testing.T) {
	svc, users, otps, _ := newAuthFixture()
	now := time.Now()
	users.Create(&model.User{Email: "v@example.com"})
	otps.Upsert("v@example.com", "123456", now.Add(10*time.Minute))

	err := svc.VerifyEmail(dto.VerifyEmailDTO{Email: "v@example.com", Code: "000000"}, now)
	assert.ErrorIs(t, err, ErrInvalidOtp)
}

func TestVerifyEmailExpiredCode(t *testing.T) {
	svc, users, otps, _ := newAuthFixture()
	now := time.Now()
	users.Create(&model.User{Email: "v@example.com"})
	otps.Upsert("v@example.com", "123456", now.Add(-time.Minute))

	err := svc.VerifyEmail(dto.VerifyEmailDTO{Email: "v@example.com", Code: "123456"}, now)
	assert.ErrorIs(t, err, ErrOtpExpired)
}

func TestLogin(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	users.Create(&model.User{
		Email:      "l@example.com",
		Password:   string(hash),
		Role:       model.RoleParticipant,
		IsVerified: true,
	})

	got, err := svc.Login(dto.LoginDTO{Email: "l@example.com", Password: "supersecret"}, now)
	require.NoError(t, err)
	assert.NotEmpty(t, got.Token)
	assert.Equal(t, "l@example.com", got.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	users.Create(&model.User{Email: "l@example.com", Password: string(hash), IsVerified: true})

	_, err := svc.Login(dto.LoginDTO{Email: "l@example.com", Password: "wrong"}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Login(dto.LoginDTO{Email: "ghost@example.com", Password: "supersecret"}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnverified(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	users.Create(&model.User{Email: "l@example.com", Password: string(hash)})

	_, err := svc.Login(dto.LoginDTO{Email: "l@example.com", Password: "supersecret"}, time.Now())
	assert.ErrorIs(t, err, ErrNotVerified)
}
