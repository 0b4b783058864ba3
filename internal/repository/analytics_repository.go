package repository

import (
	"gorm.io/gorm"
)

// AnalyticsRepository runs the aggregate queries behind the sales
// dashboard. Everything is read-only raw SQL over orders and their
// items; date params are YYYY-MM-DD strings matching orders.order_date.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

type AnalyticsFilter struct {
	From       string
	To         string
	CustomerID string
}

type KPIRow struct {
	Revenue    float64 `json:"revenue"`
	OrderCount int64   `json:"order_count"`
}

func (r *AnalyticsRepository) KPIs(f AnalyticsFilter) (*KPIRow, error) {
	var row KPIRow
	query := r.db.Raw(`
		SELECT COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS order_count
		FROM orders
		WHERE deleted_at IS NULL
		AND order_date BETWEEN ? AND ?
		AND (? = '' OR customer_id::text = ?)
	`, f.From, f.To, f.CustomerID, f.CustomerID)
	err := query.Scan(&row).Error
	return &row, err
}

// NewCustomerCount counts customers created in the last seven days.
func (r *AnalyticsRepository) NewCustomerCount() (int64, error) {
	var count int64
	err := r.db.Raw(`
		SELECT COUNT(*) FROM customers
		WHERE deleted_at IS NULL
		AND created_at >= NOW() - INTERVAL '7 days'
	`).Scan(&count).Error
	return count, err
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

func (r *AnalyticsRepository) SalesTrend(f AnalyticsFilter) ([]TrendPoint, error) {
	var points []TrendPoint
	err := r.db.Raw(`
		SELECT order_date AS date, COALESCE(SUM(total_amount), 0) AS revenue
		FROM orders
		WHERE deleted_at IS NULL
		AND order_date BETWEEN ? AND ?
		AND (? = '' OR customer_id::text = ?)
		GROUP BY order_date
		ORDER BY order_date
	`, f.From, f.To, f.CustomerID, f.CustomerID).Scan(&points).Error
	return points, err
}

type ProductRank struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
}

func (r *AnalyticsRepository) TopProducts(f AnalyticsFilter, limit int) ([]ProductRank, error) {
	var ranks []ProductRank
	err := r.db.Raw(`
		SELECT i.product_name, COALESCE(SUM(i.quantity), 0) AS quantity
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.deleted_at IS NULL
		AND o.order_date BETWEEN ? AND ?
		AND (? = '' OR o.customer_id::text = ?)
		GROUP BY i.product_name
		ORDER BY quantity DESC
		LIMIT ?
	`, f.From, f.To, f.CustomerID, f.CustomerID, limit).Scan(&ranks).Error
	return ranks, err
}

type CustomerRank struct {
	CustomerName string  `json:"customer_name"`
	Revenue      float64 `json:"revenue"`
}

func (r *AnalyticsRepository) TopCustomers(f AnalyticsFilter, limit int) ([]CustomerRank, error) {
	var ranks []CustomerRank
	err := r.db.Raw(`
		SELECT c.name AS customer_name, COALESCE(SUM(o.total_amount), 0) AS revenue
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.deleted_at IS NULL
		AND o.order_date BETWEEN ? AND ?
		AND (? = '' OR o.customer_id::text = ?)
		GROUP BY c.name
		ORDER BY revenue DESC
		LIMIT ?
	`, f.From, f.To, f.CustomerID, f.CustomerID, limit).Scan(&ranks).Error
	return ranks, err
}

type CountryRevenue struct {
	Country string  `json:"country"`
	Revenue float64 `json:"revenue"`
}

func (r *AnalyticsRepository) RevenueByCountry(f AnalyticsFilter) ([]CountryRevenue, error) {
	var rows []CountryRevenue
	err := r.db.Raw(`
		SELECT COALESCE(NULLIF(c.country, ''), 'Unknown') AS country,
		       COALESCE(SUM(o.total_amount), 0) AS revenue
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.deleted_at IS NULL
		AND o.order_date BETWEEN ? AND ?
		AND (? = '' OR o.customer_id::text = ?)
		GROUP BY 1
		ORDER BY revenue DESC
	`, f.From, f.To, f.CustomerID, f.CustomerID).Scan(&rows).Error
	return rows, err
}
