package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
)

type OrderService struct {
	orders    *repository.OrderRepository
	customers *repository.CustomerRepository
	products  *repository.ProductRepository
}

func NewOrderService(orders *repository.OrderRepository, customers *repository.CustomerRepository, products *repository.ProductRepository) *OrderService {
	return &OrderService{orders: orders, customers: customers, products: products}
}

// OrderItemInput is one line of an order form submission. A line with
// an empty ProductID and a ProductName is an OEM item: a hidden
// catalog row is created for it on save.
type OrderItemInput struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	Quantity       float64 `json:"quantity" binding:"required"`
	UnitPrice      float64 `json:"unit_price"`
	AdditionalCost float64 `json:"additional_cost"`
	UnitPriceUSD   float64 `json:"unit_price_usd"`
	USDManuallySet bool    `json:"usd_manually_edited"`
	RetailPrice    float64 `json:"retail_price"`
	ProductNameEN  string  `json:"product_name_en"`
}

type SaveOrderRequest struct {
	CustomerID          string           `json:"customer_id" binding:"required"`
	OrderDate           string           `json:"order_date"`
	OrderNumber         string           `json:"order_number"`
	ExchangeRate        float64          `json:"exchange_rate"`
	AdditionalCostLabel string           `json:"additional_cost_label"`
	Notes               string           `json:"notes"`
	Items               []OrderItemInput `json:"items" binding:"required,min=1"`
}

func (s *OrderService) Create(req *SaveOrderRequest, createdBy string) (*entity.Order, error) {
	if _, err := s.customers.GetByID(req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	orderDate := req.OrderDate
	if orderDate == "" {
		orderDate = time.Now().Format("2006-01-02")
	}
	orderNumber := strings.TrimSpace(req.OrderNumber)
	if orderNumber == "" {
		orderNumber = generateOrderNumber()
	}

	items, total, err := s.buildItems(req.Items, createdBy)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:                  uuid.New().String(),
		OrderNumber:         orderNumber,
		CustomerID:          req.CustomerID,
		Status:              entity.OrderStatusReceived,
		PaymentStatus:       entity.PaymentStatusUnpaid,
		OrderDate:           orderDate,
		ExchangeRate:        req.ExchangeRate,
		TotalAmount:         total,
		AdditionalCostLabel: req.AdditionalCostLabel,
		Notes:               req.Notes,
		CreatedBy:           createdBy,
		Items:               items,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return s.orders.GetByID(order.ID)
}

func (s *OrderService) Update(id string, req *SaveOrderRequest, updatedBy string) (*entity.Order, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}

	items, total, err := s.buildItems(req.Items, updatedBy)
	if err != nil {
		return nil, err
	}

	order.CustomerID = req.CustomerID
	if req.OrderDate != "" {
		order.OrderDate = req.OrderDate
	}
	if strings.TrimSpace(req.OrderNumber) != "" {
		order.OrderNumber = strings.TrimSpace(req.OrderNumber)
	}
	order.ExchangeRate = req.ExchangeRate
	order.AdditionalCostLabel = req.AdditionalCostLabel
	order.Notes = req.Notes
	order.TotalAmount = total
	order.Items = nil

	if err := s.orders.Update(order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if err := s.orders.ReplaceItems(order.ID, items); err != nil {
		return nil, fmt.Errorf("replace items: %w", err)
	}
	return s.orders.GetByID(order.ID)
}

func (s *OrderService) Get(id string) (*entity.Order, error) {
	return s.orders.GetByID(id)
}

func (s *OrderService) List(params repository.OrderListParams) ([]entity.Order, int64, error) {
	return s.orders.List(params)
}

func (s *OrderService) Delete(id string) error {
	return s.orders.Delete(id)
}

func (s *OrderService) DeleteBatch(ids []string) error {
	return s.orders.DeleteBatch(ids)
}

func (s *OrderService) SetArchived(id string, archived bool) error {
	return s.orders.UpdateFields(id, map[string]interface{}{"is_archived": archived})
}

// buildItems turns form lines into order items, synthesizing hidden
// catalog rows for OEM lines, and returns the KRW total.
func (s *OrderService) buildItems(inputs []OrderItemInput, createdBy string) ([]entity.OrderItem, float64, error) {
	items := make([]entity.OrderItem, 0, len(inputs))
	var total float64
	for i, in := range inputs {
		productID := in.ProductID
		name := strings.TrimSpace(in.ProductName)

		if productID == "" {
			if name == "" {
				return nil, 0, fmt.Errorf("item %d: product is required", i+1)
			}
			nameEN := strings.TrimSpace(in.ProductNameEN)
			if nameEN == "" {
				nameEN = name
			}
			oem := &entity.Product{
				ID:          uuid.New().String(),
				NameKR:      name,
				NameEN:      nameEN,
				RetailPrice: in.RetailPrice,
				IsOEM:       true,
				CreatedBy:   createdBy,
			}
			if err := s.products.Create(oem); err != nil {
				return nil, 0, fmt.Errorf("item %d: create oem product: %w", i+1, err)
			}
			productID = oem.ID
		} else {
			p, err := s.products.GetByID(productID)
			if err != nil {
				return nil, 0, fmt.Errorf("item %d: product not found: %w", i+1, err)
			}
			if name == "" {
				name = p.NameEN
				if name == "" {
					name = p.NameKR
				}
			}
		}

		item := entity.OrderItem{
			ID:             uuid.New().String(),
			ProductID:      productID,
			ProductName:    name,
			Quantity:       in.Quantity,
			UnitPrice:      in.UnitPrice,
			AdditionalCost: in.AdditionalCost,
			SortOrder:      i,
		}
		if in.USDManuallySet && in.UnitPriceUSD > 0 {
			usd := in.UnitPriceUSD
			item.UnitPriceUSD = &usd
		}
		items = append(items, item)
		total += math.Round(in.Quantity * (in.UnitPrice + in.AdditionalCost))
	}
	return items, total, nil
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s%04d", time.Now().Format("20060102"), time.Now().UnixNano()%10000)
}
