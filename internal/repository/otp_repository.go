package repository

import (
	"time"

	"github.com/mkhadiri/mentorhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OtpRepository interface {
	Upsert(email, code string, expiresAt time.Time) error
	FindByEmail(email string) (*model.Otp, error)
	DeleteByEmail(email string) error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &otpRepository{db: db}
}

// Upsert keeps a single active code per address; re-registering replaces the
// previous code and resets the expiry.
func (r *otpRepository) Upsert(email, code string, expiresAt time.Time) error {
	otp := model.Otp{Email: email, Code: code, ExpiresAt: expiresAt}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "created_at"}),
	}).Create(&otp).Error
}

func (r *otpRepository) FindByEmail(email string) (*model.Otp, error) {
	var otp model.Otp
	if err := r.db.Where("email = ?", email).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) DeleteByEmail(email string) error {
	return r.db.Where("email = ?", email).Delete(&model.Otp{}).Error
}
