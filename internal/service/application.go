package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/client"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/model"
	"github.com/REBCDR07/marketconnect/internal/repository"
)

type ApplicationService interface {
	Submit(ctx context.Context, req dto.SubmitApplicationRequest) (*model.SellerApplication, error)
	ListPending(ctx context.Context) ([]*model.SellerApplication, error)
	// Approve turns a pending application into a storefront plus a
	// seller-role account in one transaction. Approving an absent or
	// already-processed application reports not found.
	Approve(ctx context.Context, applicationID string) (*model.Seller, error)
	Reject(ctx context.Context, applicationID string) error
}

type applicationServiceImpl struct {
	db              *gorm.DB
	applicationRepo repository.ApplicationRepository
	sellerRepo      repository.SellerRepository
	userRepo        repository.UserRepository
	notifications   NotificationService
	images          client.ImageClient
	logger          *zap.Logger
}

func NewApplicationService(
	db *gorm.DB,
	applicationRepo repository.ApplicationRepository,
	sellerRepo repository.SellerRepository,
	userRepo repository.UserRepository,
	notifications NotificationService,
	images client.ImageClient,
	logger *zap.Logger,
) ApplicationService {
	return &applicationServiceImpl{
		db:              db,
		applicationRepo: applicationRepo,
		sellerRepo:      sellerRepo,
		userRepo:        userRepo,
		notifications:   notifications,
		images:          images,
		logger:          logger,
	}
}

func (s *applicationServiceImpl) Submit(ctx context.Context, req dto.SubmitApplicationRequest) (*model.SellerApplication, error) {
	if req.CompanyName == "" || req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("company name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	application := &model.SellerApplication{
		ID:             "seller_" + uuid.NewString(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Whatsapp:       req.Whatsapp,
		CompanyName:    req.CompanyName,
		Address:        req.Address,
		Activity:       req.Activity,
		WhyPlatform:    req.WhyPlatform,
		PasswordHash:   string(hash),
		ProfilePicture: req.ProfilePicture,
		BannerPicture:  req.BannerPicture,
		Status:         model.ApplicationPending,
		SubmittedAt:    time.Now(),
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, apperr.Storage(err, "create application")
	}

	err = s.notifications.Raise(ctx, model.RecipientAdmin, "",
		model.NotificationNewSellerApplication,
		fmt.Sprintf("Nouvelle demande de vendeur : %s.", application.CompanyName),
		"/admin/dashboard")
	if err != nil {
		// The application is saved; a lost notification only delays review.
		s.logger.Warn("raise admin notification failed",
			zap.String("application_id", application.ID), zap.Error(err))
	}

	return application, nil
}

func (s *applicationServiceImpl) ListPending(ctx context.Context) ([]*model.SellerApplication, error) {
	applications, err := s.applicationRepo.ListPending(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "list pending applications")
	}

	return applications, nil
}

func (s *applicationServiceImpl) Approve(ctx context.Context, applicationID string) (*model.Seller, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("application %s not found", applicationID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "load application")
	}
	if application.Status != model.ApplicationPending {
		return nil, apperr.NotFound("application %s is not pending", applicationID)
	}

	_, err = s.userRepo.FindByEmail(ctx, application.Email)
	if err == nil {
		return nil, apperr.Duplicate("an account with email %s already exists", application.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Storage(err, "look up applicant email")
	}

	seller := &model.Seller{
		ID:             application.ID,
		CompanyName:    application.CompanyName,
		FirstName:      application.FirstName,
		LastName:       application.LastName,
		Email:          application.Email,
		Phone:          application.Phone,
		Whatsapp:       application.Whatsapp,
		Address:        application.Address,
		ProfilePicture: application.ProfilePicture,
		BannerPicture:  application.BannerPicture,
		ImageHint:      "portrait",
	}
	if seller.ProfilePicture == "" {
		seller.ProfilePicture = s.images.URLFor(application.ID, 100, 100)
	}
	if seller.BannerPicture == "" {
		seller.BannerPicture = s.images.URLFor(application.ID+"-banner", 1600, 400)
	}

	// The seller signs in with the credentials from the application; the
	// shared id is what ownership checks compare against.
	account := &model.User{
		ID:           application.ID,
		Email:        application.Email,
		PasswordHash: application.PasswordHash,
		Role:         model.RoleSeller,
		FirstName:    application.FirstName,
		LastName:     application.LastName,
		Phone:        application.Phone,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.MarkApproved(ctx, tx, applicationID); err != nil {
			return err
		}
		if err := s.sellerRepo.Create(ctx, tx, seller); err != nil {
			return fmt.Errorf("create seller: %w", err)
		}
		if err := s.userRepo.Create(ctx, tx, account); err != nil {
			return fmt.Errorf("create seller account: %w", err)
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("application %s is not pending", applicationID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "approve application")
	}

	s.logger.Info("application approved",
		zap.String("application_id", applicationID),
		zap.String("company", seller.CompanyName))

	return seller, nil
}

func (s *applicationServiceImpl) Reject(ctx context.Context, applicationID string) error {
	err := s.applicationRepo.Delete(ctx, applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("application %s not found", applicationID)
	}
	if err != nil {
		return apperr.Storage(err, "reject application")
	}

	// No notification and no reason recorded; the application is gone.
	return nil
}
