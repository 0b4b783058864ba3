package repository

import (
	"testing"

	"gorm.io/gorm"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/testutil"
)

func seedAnalyticsData(t *testing.T, db *gorm.DB) {
	t.Helper()

	customers := []entity.Customer{
		{ID: "aaaaaaaa-0000-0000-0000-000000000001", Name: "Hanoi Beauty", Email: "a1@example.com", Country: "Vietnam"},
		{ID: "aaaaaaaa-0000-0000-0000-000000000002", Name: "Bangkok Retail", Email: "a2@example.com", Country: "Thailand"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			t.Fatalf("seed customer: %v", err)
		}
	}

	orders := []entity.Order{
		{ID: "bbbbbbbb-0000-0000-0000-000000000001", OrderNumber: "ORD-1", CustomerID: customers[0].ID, Status: entity.OrderStatusDelivered, PaymentStatus: entity.PaymentStatusPaid, OrderDate: "2026-03-01", TotalAmount: 100000},
		{ID: "bbbbbbbb-0000-0000-0000-000000000002", OrderNumber: "ORD-2", CustomerID: customers[0].ID, Status: entity.OrderStatusShipping, PaymentStatus: entity.PaymentStatusDeposit, OrderDate: "2026-03-05", TotalAmount: 50000},
		{ID: "bbbbbbbb-0000-0000-0000-000000000003", OrderNumber: "ORD-3", CustomerID: customers[1].ID, Status: entity.OrderStatusReceived, PaymentStatus: entity.PaymentStatusUnpaid, OrderDate: "2026-03-05", TotalAmount: 30000},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	items := []entity.OrderItem{
		{ID: "cccccccc-1000-0000-0000-000000000001", OrderID: orders[0].ID, ProductID: "dddddddd-1000-0000-0000-000000000001", ProductName: "Vitamin Ampoule", Quantity: 100, UnitPrice: 1000},
		{ID: "cccccccc-1000-0000-0000-000000000002", OrderID: orders[1].ID, ProductID: "dddddddd-1000-0000-0000-000000000001", ProductName: "Vitamin Ampoule", Quantity: 40, UnitPrice: 1000},
		{ID: "cccccccc-1000-0000-0000-000000000003", OrderID: orders[2].ID, ProductID: "dddddddd-1000-0000-0000-000000000002", ProductName: "Snail Cream", Quantity: 60, UnitPrice: 500},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
}

func TestAnalyticsKPIs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedAnalyticsData(t, db)
	repo := NewAnalyticsRepository(db)

	f := AnalyticsFilter{From: "2026-03-01", To: "2026-03-31"}
	kpis, err := repo.KPIs(f)
	if err != nil {
		t.Fatalf("KPIs: %v", err)
	}
	if kpis.Revenue != 180000 {
		t.Errorf("Expected revenue 180000, got %v", kpis.Revenue)
	}
	if kpis.OrderCount != 3 {
		t.Errorf("Expected 3 orders, got %d", kpis.OrderCount)
	}

	// filter by customer
	f.CustomerID = "aaaaaaaa-0000-0000-0000-000000000001"
	kpis, err = repo.KPIs(f)
	if err != nil {
		t.Fatalf("KPIs filtered: %v", err)
	}
	if kpis.Revenue != 150000 || kpis.OrderCount != 2 {
		t.Errorf("Expected customer-filtered KPIs, got %+v", kpis)
	}

	// window excludes everything
	empty, err := repo.KPIs(AnalyticsFilter{From: "2026-05-01", To: "2026-05-31"})
	if err != nil {
		t.Fatalf("KPIs empty window: %v", err)
	}
	if empty.Revenue != 0 || empty.OrderCount != 0 {
		t.Errorf("Expected empty KPIs, got %+v", empty)
	}
}

func TestAnalyticsSalesTrend(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedAnalyticsData(t, db)
	repo := NewAnalyticsRepository(db)

	points, err := repo.SalesTrend(AnalyticsFilter{From: "2026-03-01", To: "2026-03-31"})
	if err != nil {
		t.Fatalf("SalesTrend: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("Expected 2 trend points, got %d", len(points))
	}
	if points[0].Date != "2026-03-01" || points[0].Revenue != 100000 {
		t.Errorf("Unexpected first point: %+v", points[0])
	}
	if points[1].Date != "2026-03-05" || points[1].Revenue != 80000 {
		t.Errorf("Unexpected second point: %+v", points[1])
	}
}

func TestAnalyticsRankings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedAnalyticsData(t, db)
	repo := NewAnalyticsRepository(db)

	f := AnalyticsFilter{From: "2026-03-01", To: "2026-03-31"}

	products, err := repo.TopProducts(f, 5)
	if err != nil {
		t.Fatalf("TopProducts: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("Expected 2 ranked products, got %d", len(products))
	}
	if products[0].ProductName != "Vitamin Ampoule" || products[0].Quantity != 140 {
		t.Errorf("Unexpected top product: %+v", products[0])
	}

	customers, err := repo.TopCustomers(f, 5)
	if err != nil {
		t.Fatalf("TopCustomers: %v", err)
	}
	if customers[0].CustomerName != "Hanoi Beauty" || customers[0].Revenue != 150000 {
		t.Errorf("Unexpected top customer: %+v", customers[0])
	}

	byCountry, err := repo.RevenueByCountry(f)
	if err != nil {
		t.Fatalf("RevenueByCountry: %v", err)
	}
	if len(byCountry) != 2 {
		t.Fatalf("Expected 2 countries, got %d", len(byCountry))
	}
	if byCountry[0].Country != "Vietnam" || byCountry[0].Revenue != 150000 {
		t.Errorf("Unexpected country ranking: %+v", byCountry[0])
	}

	// the customer filter narrows every ranking, not just the KPIs
	f.CustomerID = "aaaaaaaa-0000-0000-0000-000000000002"
	customers, err = repo.TopCustomers(f, 5)
	if err != nil {
		t.Fatalf("TopCustomers filtered: %v", err)
	}
	if len(customers) != 1 || customers[0].CustomerName != "Bangkok Retail" || customers[0].Revenue != 30000 {
		t.Errorf("Unexpected filtered customer ranking: %+v", customers)
	}

	byCountry, err = repo.RevenueByCountry(f)
	if err != nil {
		t.Fatalf("RevenueByCountry filtered: %v", err)
	}
	if len(byCountry) != 1 || byCountry[0].Country != "Thailand" || byCountry[0].Revenue != 30000 {
		t.Errorf("Unexpected filtered country revenue: %+v", byCountry)
	}
}
