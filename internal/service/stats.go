package service

import (
	"context"
	"sort"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/auth"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/repository"
)

// Weights of the top-seller score. An order weighs more than a listed
// product so active storefronts outrank crowded ones.
const (
	salesWeight   = 5
	productWeight = 1
)

type StatsService interface {
	// TopSellers ranks sellers by salesCount*5 + productCount; ties keep
	// seller creation order, so the ranking is stable between calls.
	TopSellers(ctx context.Context, limit int) ([]*dto.TopSeller, error)
	SellerStats(ctx context.Context, sess *auth.Session, sellerID string) (*dto.SellerStats, error)
	AdminStats(ctx context.Context) (*dto.AdminStats, error)
}

type statsServiceImpl struct {
	sellerRepo      repository.SellerRepository
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	applicationRepo repository.ApplicationRepository
}

func NewStatsService(
	sellerRepo repository.SellerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	applicationRepo repository.ApplicationRepository,
) StatsService {
	return &statsServiceImpl{
		sellerRepo:      sellerRepo,
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *statsServiceImpl) TopSellers(ctx context.Context, limit int) ([]*dto.TopSeller, error) {
	sellers, err := s.sellerRepo.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "list sellers")
	}

	productCounts, err := s.productRepo.CountsBySeller(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "count products")
	}

	salesCounts, err := s.orderRepo.CountsBySeller(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "count orders")
	}

	ranked := make([]*dto.TopSeller, 0, len(sellers))
	for _, seller := range sellers {
		products := productCounts[seller.ID]
		sales := salesCounts[seller.ID]
		ranked = append(ranked, &dto.TopSeller{
			Seller:       seller,
			ProductCount: products,
			SalesCount:   sales,
			Score:        sales*salesWeight + products*productWeight,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

func (s *statsServiceImpl) SellerStats(ctx context.Context, sess *auth.Session, sellerID string) (*dto.SellerStats, error) {
	if !sess.Owns(sellerID) {
		return nil, apperr.Auth("stats belong to another seller")
	}

	totalSales, err := s.orderRepo.DeliveredAmountBySeller(ctx, sellerID)
	if err != nil {
		return nil, apperr.Storage(err, "sum delivered orders")
	}

	totalOrders, err := s.orderRepo.CountBySeller(ctx, sellerID)
	if err != nil {
		return nil, apperr.Storage(err, "count seller orders")
	}

	productCount, err := s.productRepo.CountBySeller(ctx, sellerID)
	if err != nil {
		return nil, apperr.Storage(err, "count seller products")
	}

	return &dto.SellerStats{
		TotalSalesAmount: totalSales,
		TotalOrders:      totalOrders,
		ProductCount:     productCount,
	}, nil
}

func (s *statsServiceImpl) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	pending, err := s.applicationRepo.CountPending(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "count pending applications")
	}

	sellers, err := s.sellerRepo.Count(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "count sellers")
	}

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "count orders")
	}

	return &dto.AdminStats{
		PendingApplications: pending,
		Sellers:             sellers,
		Orders:              orders,
	}, nil
}
