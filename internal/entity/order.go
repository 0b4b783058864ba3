package entity

import (
	"time"
)

// Workflow statuses, in board order. Values are stored as-is so the
// kanban columns render the Korean labels the back office uses.
const (
	OrderStatusReceived       = "주문접수"
	OrderStatusStockCheck     = "재고확인"
	OrderStatusConfirmed      = "주문서확정"
	OrderStatusPacking        = "패킹중"
	OrderStatusDocsInProgress = "서류준비중"
	OrderStatusReadyToShip    = "출고준비중"
	OrderStatusShipping       = "배송중"
	OrderStatusAtPort         = "항구배송"
	OrderStatusDelivered      = "배송완료"
)

// WorkflowStatuses drives the kanban board column order.
var WorkflowStatuses = []string{
	OrderStatusReceived,
	OrderStatusStockCheck,
	OrderStatusConfirmed,
	OrderStatusPacking,
	OrderStatusDocsInProgress,
	OrderStatusReadyToShip,
	OrderStatusShipping,
	OrderStatusAtPort,
	OrderStatusDelivered,
}

// Payment progress labels.
const (
	PaymentStatusUnpaid  = "미입금"
	PaymentStatusDeposit = "계약금"
	PaymentStatusPaid    = "완불"
)

// Order is a confirmed export order together with its generated
// trade documents. The Saved*HTML columns hold the last saved markup
// of each document so an operator's manual edits survive reloads.
type Order struct {
	ID            string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderNumber   string  `json:"order_number" gorm:"size:50;not null;uniqueIndex"`
	CustomerID    string  `json:"customer_id" gorm:"type:uuid;not null;index"`
	Status        string  `json:"status" gorm:"size:30;not null;default:주문접수"`
	PaymentStatus string  `json:"payment_status" gorm:"size:20;not null;default:미입금"`
	OrderDate     string  `json:"order_date" gorm:"size:10"`
	ExchangeRate  float64 `json:"exchange_rate" gorm:"type:decimal(12,4);default:0"`
	TotalAmount   float64 `json:"total_amount" gorm:"type:decimal(14,2);default:0"`

	// Label printed on the invoice's extra cost column, e.g. "운송비".
	AdditionalCostLabel string `json:"additional_cost_label" gorm:"size:100"`

	// Per-order flags tracked on the workflow card.
	COPrepared           bool `json:"co_prepared" gorm:"column:co_prepared;default:false"`
	IsSymphonyRegistered bool `json:"is_symphony_registered" gorm:"default:false"`
	IsArchived           bool `json:"is_archived" gorm:"default:false;index"`

	SavedInvoiceHTML     string `json:"saved_invoice_html,omitempty" gorm:"column:saved_invoice_html;type:text"`
	SavedPackingListHTML string `json:"saved_packinglist_html,omitempty" gorm:"column:saved_packinglist_html;type:text"`
	SavedProformaHTML    string `json:"saved_proforma_html,omitempty" gorm:"column:saved_proforma_html;type:text"`

	Notes     string     `json:"notes" gorm:"type:text"`
	CreatedBy string     `json:"created_by" gorm:"size:64"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Customer *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one order line. UnitPriceUSD is nil unless the operator
// typed a USD price by hand; a nil value means "derive from the
// exchange rate at generation time".
type OrderItem struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID        string    `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID      string    `json:"product_id" gorm:"type:uuid;not null"`
	ProductName    string    `json:"product_name" gorm:"size:200"`
	Quantity       float64   `json:"quantity" gorm:"type:decimal(12,2);default:0"`
	UnitPrice      float64   `json:"unit_price" gorm:"type:decimal(14,2);default:0"`
	AdditionalCost float64   `json:"additional_cost" gorm:"type:decimal(14,2);default:0"`
	UnitPriceUSD   *float64  `json:"unit_price_usd" gorm:"type:decimal(14,3)"`
	SortOrder      int       `json:"sort_order" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
