package repository

import (
	"github.com/daontrade/exportdesk/internal/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Preload("Customer").Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.sort_order, order_items.created_at")
	}).Preload("Items.Product").
		Where("id = ? AND deleted_at IS NULL", id).First(&o).Error
	return &o, err
}

func (r *OrderRepository) Update(o *entity.Order) error {
	return r.db.Save(o).Error
}

// UpdateFields patches selected columns without touching the rest of
// the row, so a status move cannot clobber a concurrent edit's items.
func (r *OrderRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&entity.Order{}).Where("id = ?", id).Updates(fields).Error
}

func (r *OrderRepository) Delete(id string) error {
	if err := r.db.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&entity.Order{}).Error
}

func (r *OrderRepository) DeleteBatch(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.Where("order_id IN ?", ids).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return r.db.Where("id IN ?", ids).Delete(&entity.Order{}).Error
}

type OrderListParams struct {
	Status     string
	CustomerID string
	Archived   bool
	Keyword    string
	Page       int
	Size       int
}

func (r *OrderRepository) List(params OrderListParams) ([]entity.Order, int64, error) {
	query := r.db.Model(&entity.Order{}).Where("orders.deleted_at IS NULL")
	query = query.Where("is_archived = ?", params.Archived)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
			Where("order_number ILIKE ? OR customers.name ILIKE ?", kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var orders []entity.Order
	err := query.Preload("Customer").Order("order_date DESC, created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&orders).Error
	return orders, total, err
}

// ListActive returns every non-archived order with its customer, in
// board order, for the kanban view.
func (r *OrderRepository) ListActive() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Preload("Customer").
		Where("deleted_at IS NULL AND is_archived = false").
		Order("order_date DESC, created_at DESC").Find(&orders).Error
	return orders, err
}

// ReplaceItems swaps an order's line items for a new set. Order
// entry always rewrites the full set.
func (r *OrderRepository) ReplaceItems(orderID string, items []entity.OrderItem) error {
	if err := r.db.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return r.db.Create(&items).Error
}

// SaveDocumentHTML persists one saved-markup column. column must be
// one of the saved_*_html names; callers resolve it from the
// document type before reaching storage.
func (r *OrderRepository) SaveDocumentHTML(orderID, column, html string) error {
	return r.db.Model(&entity.Order{}).Where("id = ?", orderID).
		Update(column, html).Error
}

// ClearDocumentHTML empties one saved-markup column.
func (r *OrderRepository) ClearDocumentHTML(orderID, column string) error {
	return r.db.Model(&entity.Order{}).Where("id = ?", orderID).
		Update(column, "").Error
}
