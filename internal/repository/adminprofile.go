package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/REBCDR07/marketconnect/internal/model"
)

type AdminProfileRepository interface {
	Get(ctx context.Context) (*model.AdminProfile, error)
	Upsert(ctx context.Context, profile *model.AdminProfile) error
}

type adminProfileRepoImpl struct {
	db *gorm.DB
}

func NewAdminProfileRepository(db *gorm.DB) AdminProfileRepository {
	return &adminProfileRepoImpl{
		db: db,
	}
}

func (r *adminProfileRepoImpl) Get(ctx context.Context) (*model.AdminProfile, error) {
	var profile model.AdminProfile
	err := r.db.WithContext(ctx).
		Where("id = ?", model.AdminProfileID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *adminProfileRepoImpl) Upsert(ctx context.Context, profile *model.AdminProfile) error {
	profile.ID = model.AdminProfileID

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]interface{}{
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"email":      profile.Email,
			"phone":      profile.Phone,
			"whatsapp":   profile.Whatsapp,
			"bio":        profile.Bio,
			"updated_at": time.Now(),
		}),
	}).Create(profile).Error
}
