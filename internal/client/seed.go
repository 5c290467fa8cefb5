package client

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/REBCDR07/marketconnect/internal/model"
)

func int64Ptr(v int64) *int64 { return &v }

// SeedDemoData loads a small demo storefront so a fresh install has
// something to browse. Existing rows are left untouched.
func SeedDemoData(db *gorm.DB) error {
	now := time.Now()

	sellers := []model.Seller{
		{
			ID:             "seller_demo_1",
			CompanyName:    "Artisans du Bénin",
			FirstName:      "Marie",
			LastName:       "Adan",
			Email:          "seller1@test.com",
			Phone:          "96000001",
			Whatsapp:       "96000001",
			Address:        "Rue de l'artisan, Cotonou",
			ProfilePicture: "https://picsum.photos/seed/seller-woman1/100/100",
			BannerPicture:  "https://picsum.photos/seed/seller-woman1-banner/1600/400",
			ImageHint:      "portrait woman",
			CreatedAt:      now,
		},
		{
			ID:             "seller_demo_2",
			CompanyName:    "Tissage Royal",
			FirstName:      "Koffi",
			LastName:       "Zinsou",
			Email:          "seller4@test.com",
			Phone:          "96000004",
			Whatsapp:       "96000004",
			Address:        "Boulevard du textile, Abomey",
			ProfilePicture: "https://picsum.photos/seed/seller-man2/100/100",
			BannerPicture:  "https://picsum.photos/seed/seller-man2-banner/1600/400",
			ImageHint:      "portrait craftsman",
			CreatedAt:      now.Add(time.Second),
		},
	}

	products := []model.Product{
		{
			ID:               "prod_demo_1",
			SellerID:         "seller_demo_1",
			SellerName:       "Artisans du Bénin",
			Name:             "Bijoux faits main",
			Description:      "De magnifiques bijoux faits à la main, parfaits pour toutes les occasions.",
			Price:            15000,
			PromotionalPrice: int64Ptr(12500),
			Image:            "https://picsum.photos/seed/product-jewelry/400/400",
			ImageHint:        "handmade jewelry",
			CreatedAt:        now,
		},
		{
			ID:          "prod_demo_2",
			SellerID:    "seller_demo_1",
			SellerName:  "Artisans du Bénin",
			Name:        "Poterie artisanale",
			Description: "Vases et bols en poterie, modelés et peints à la main.",
			Price:       12000,
			Image:       "https://picsum.photos/seed/product-pottery/400/400",
			ImageHint:   "pottery",
			CreatedAt:   now,
		},
		{
			ID:          "prod_demo_3",
			SellerID:    "seller_demo_2",
			SellerName:  "Tissage Royal",
			Name:        "Tissus colorés",
			Description: "Tissus africains aux motifs vibrants et colorés.",
			Price:       9500,
			Image:       "https://picsum.photos/seed/product-textiles/400/400",
			ImageHint:   "colorful textiles",
			CreatedAt:   now,
		},
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&sellers).Error; err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}
