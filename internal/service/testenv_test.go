package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/auth"
	"github.com/REBCDR07/marketconnect/internal/client"
	"github.com/REBCDR07/marketconnect/internal/config"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/model"
	"github.com/REBCDR07/marketconnect/internal/repository"
)

var testAuthCfg = config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour}

var testAdminCfg = config.Admin{
	Email:     "admin@test.com",
	Password:  "admin-password",
	FirstName: "Admin",
	LastName:  "Test",
}

type testEnv struct {
	db *gorm.DB

	userRepo        repository.UserRepository
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	applicationRepo repository.ApplicationRepository

	authSvc         AuthService
	applicationSvc  ApplicationService
	catalogSvc      CatalogService
	orderSvc        OrderService
	notificationSvc NotificationService
	profileSvc      AdminProfileService
	statsSvc        StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, client.Migrate(db))

	logger := zap.NewNop()
	images := client.NewImageClient("https://picsum.photos")
	suggest := client.NewSuggestClient(&config.Suggest{})

	userRepo := repository.NewUserRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	profileRepo := repository.NewAdminProfileRepository(db)

	notificationSvc := NewNotificationService(notificationRepo)

	return &testEnv{
		db:              db,
		userRepo:        userRepo,
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		applicationRepo: applicationRepo,
		authSvc:         NewAuthService(db, userRepo, testAuthCfg, testAdminCfg, logger),
		applicationSvc: NewApplicationService(
			db, applicationRepo, sellerRepo, userRepo, notificationSvc, images, logger),
		catalogSvc:      NewCatalogService(productRepo, sellerRepo, suggest),
		orderSvc:        NewOrderService(orderRepo, productRepo, sellerRepo, notificationSvc, logger),
		notificationSvc: notificationSvc,
		profileSvc:      NewAdminProfileService(profileRepo),
		statsSvc:        NewStatsService(sellerRepo, productRepo, orderRepo, applicationRepo),
	}
}

func adminSession() *auth.Session {
	return &auth.Session{UserID: "admin_user", Email: testAdminCfg.Email, Role: model.RoleAdmin}
}

func sellerSession(sellerID string) *auth.Session {
	return &auth.Session{UserID: sellerID, Role: model.RoleSeller}
}

func buyerSession(buyerID string) *auth.Session {
	return &auth.Session{UserID: buyerID, Role: model.RoleBuyer}
}

func submitApplication(t *testing.T, env *testEnv, company, email string) *model.SellerApplication {
	t.Helper()

	application, err := env.applicationSvc.Submit(context.Background(), dto.SubmitApplicationRequest{
		FirstName:   "Marie",
		LastName:    "Adan",
		Email:       email,
		Phone:       "96000001",
		CompanyName: company,
		Address:     "Rue de l'artisan, Cotonou",
		Password:    "seller-password",
	})
	require.NoError(t, err)
	return application
}

func approveSeller(t *testing.T, env *testEnv, company, email string) *model.Seller {
	t.Helper()

	application := submitApplication(t, env, company, email)
	seller, err := env.applicationSvc.Approve(context.Background(), application.ID)
	require.NoError(t, err)
	return seller
}

func addProduct(t *testing.T, env *testEnv, sellerID, name string, price int64, promo *int64) *model.Product {
	t.Helper()

	product, err := env.catalogSvc.Add(context.Background(), sellerSession(sellerID), sellerID, dto.ProductRequest{
		Name:             name,
		Description:      "description",
		Price:            price,
		PromotionalPrice: promo,
		Image:            "https://picsum.photos/seed/p/400/400",
	})
	require.NoError(t, err)
	return product
}

func int64Ptr(v int64) *int64 { return &v }
