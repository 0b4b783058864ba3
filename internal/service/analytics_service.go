package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daontrade/exportdesk/internal/repository"
)

const dashboardCacheTTL = 5 * time.Minute

type AnalyticsService struct {
	analytics *repository.AnalyticsRepository
	redis     *redis.Client
}

func NewAnalyticsService(analytics *repository.AnalyticsRepository, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, redis: rdb}
}

// Dashboard is the full analytics payload the dashboard page renders.
type Dashboard struct {
	Revenue          float64                     `json:"revenue"`
	OrderCount       int64                       `json:"order_count"`
	NewCustomerCount int64                       `json:"new_customer_count"`
	SalesTrend       []repository.TrendPoint     `json:"sales_trend"`
	TopProducts      []repository.ProductRank    `json:"top_products"`
	TopCustomers     []repository.CustomerRank   `json:"top_customers"`
	RevenueByCountry []repository.CountryRevenue `json:"revenue_by_country"`
}

// Dashboard aggregates the KPI queries for one filter window. Results
// are cached briefly in Redis keyed by the filter.
func (s *AnalyticsService) Dashboard(ctx context.Context, f repository.AnalyticsFilter) (*Dashboard, error) {
	if f.From == "" {
		f.From = time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	}
	if f.To == "" {
		f.To = time.Now().Format("2006-01-02")
	}

	cacheKey := fmt.Sprintf("analytics:dashboard:%s:%s:%s", f.From, f.To, f.CustomerID)
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached Dashboard
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	kpis, err := s.analytics.KPIs(f)
	if err != nil {
		return nil, fmt.Errorf("kpis: %w", err)
	}
	newCustomers, err := s.analytics.NewCustomerCount()
	if err != nil {
		return nil, fmt.Errorf("new customers: %w", err)
	}
	trend, err := s.analytics.SalesTrend(f)
	if err != nil {
		return nil, fmt.Errorf("sales trend: %w", err)
	}
	topProducts, err := s.analytics.TopProducts(f, 5)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	topCustomers, err := s.analytics.TopCustomers(f, 5)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	byCountry, err := s.analytics.RevenueByCountry(f)
	if err != nil {
		return nil, fmt.Errorf("revenue by country: %w", err)
	}

	dash := &Dashboard{
		Revenue:          kpis.Revenue,
		OrderCount:       kpis.OrderCount,
		NewCustomerCount: newCustomers,
		SalesTrend:       trend,
		TopProducts:      topProducts,
		TopCustomers:     topCustomers,
		RevenueByCountry: byCountry,
	}

	if s.redis != nil {
		if raw, err := json.Marshal(dash); err == nil {
			s.redis.Set(ctx, cacheKey, raw, dashboardCacheTTL)
		}
	}
	return dash, nil
}
