package service

import (
	"fmt"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
)

type WorkflowService struct {
	orders *repository.OrderRepository
}

func NewWorkflowService(orders *repository.OrderRepository) *WorkflowService {
	return &WorkflowService{orders: orders}
}

// BoardColumn is one kanban column with its cards in board order.
type BoardColumn struct {
	Status string         `json:"status"`
	Orders []entity.Order `json:"orders"`
}

// Board groups every active order into workflow columns. Orders whose
// stored status is unknown are folded into the first column so they
// stay visible.
func (s *WorkflowService) Board() ([]BoardColumn, error) {
	orders, err := s.orders.ListActive()
	if err != nil {
		return nil, fmt.Errorf("list active orders: %w", err)
	}

	byStatus := make(map[string][]entity.Order, len(entity.WorkflowStatuses))
	for _, o := range orders {
		status := o.Status
		if !validWorkflowStatus(status) {
			status = entity.OrderStatusReceived
		}
		byStatus[status] = append(byStatus[status], o)
	}

	columns := make([]BoardColumn, 0, len(entity.WorkflowStatuses))
	for _, status := range entity.WorkflowStatuses {
		orders := byStatus[status]
		if orders == nil {
			orders = []entity.Order{}
		}
		columns = append(columns, BoardColumn{Status: status, Orders: orders})
	}
	return columns, nil
}

func (s *WorkflowService) MoveStatus(orderID, status string) error {
	if !validWorkflowStatus(status) {
		return fmt.Errorf("unknown order status: %s", status)
	}
	return s.orders.UpdateFields(orderID, map[string]interface{}{"status": status})
}

func (s *WorkflowService) SetPaymentStatus(orderID, payment string) error {
	switch payment {
	case entity.PaymentStatusUnpaid, entity.PaymentStatusDeposit, entity.PaymentStatusPaid:
	default:
		return fmt.Errorf("unknown payment status: %s", payment)
	}
	return s.orders.UpdateFields(orderID, map[string]interface{}{"payment_status": payment})
}

// UpdateFlagsRequest toggles the per-order checklist flags shown on a
// workflow card. Nil fields are untouched.
type UpdateFlagsRequest struct {
	COPrepared           *bool `json:"co_prepared"`
	IsSymphonyRegistered *bool `json:"is_symphony_registered"`
}

func (s *WorkflowService) UpdateFlags(orderID string, req *UpdateFlagsRequest) error {
	fields := map[string]interface{}{}
	if req.COPrepared != nil {
		fields["co_prepared"] = *req.COPrepared
	}
	if req.IsSymphonyRegistered != nil {
		fields["is_symphony_registered"] = *req.IsSymphonyRegistered
	}
	if len(fields) == 0 {
		return nil
	}
	return s.orders.UpdateFields(orderID, fields)
}

func validWorkflowStatus(status string) bool {
	for _, s := range entity.WorkflowStatuses {
		if s == status {
			return true
		}
	}
	return false
}
