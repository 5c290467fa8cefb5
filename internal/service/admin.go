package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/model"
	"github.com/REBCDR07/marketconnect/internal/repository"
)

// defaultAdminProfile is materialized on first read; the row is only
// written once the admin saves something.
var defaultAdminProfile = model.AdminProfile{
	ID:        model.AdminProfileID,
	FirstName: "Admin",
	LastName:  "MarketConnect",
	Email:     "admin@marketconnect.com",
	Bio:       "Dédié à la promotion des artisans et vendeurs locaux du Bénin.",
}

type AdminProfileService interface {
	Get(ctx context.Context) (*model.AdminProfile, error)
	// Save merges the provided fields over the current (or default)
	// profile; absent fields keep their value.
	Save(ctx context.Context, req dto.SaveAdminProfileRequest) (*model.AdminProfile, error)
}

type adminProfileServiceImpl struct {
	profileRepo repository.AdminProfileRepository
}

func NewAdminProfileService(profileRepo repository.AdminProfileRepository) AdminProfileService {
	return &adminProfileServiceImpl{
		profileRepo: profileRepo,
	}
}

func (s *adminProfileServiceImpl) Get(ctx context.Context) (*model.AdminProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fallback := defaultAdminProfile
		return &fallback, nil
	}
	if err != nil {
		return nil, apperr.Storage(err, "load admin profile")
	}

	return profile, nil
}

func (s *adminProfileServiceImpl) Save(ctx context.Context, req dto.SaveAdminProfileRequest) (*model.AdminProfile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		profile.Whatsapp = *req.Whatsapp
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperr.Storage(err, "save admin profile")
	}

	return profile, nil
}
