package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopnobd/backoffice/config"
	"github.com/shopnobd/backoffice/internal/courier"
	"github.com/shopnobd/backoffice/internal/logger"
	"github.com/shopnobd/backoffice/internal/models"
	"github.com/shopnobd/backoffice/internal/orders"
)

// OrderUpstream is the slice of the commerce API the order service consumes.
type OrderUpstream interface {
	// ListOrders returns the orders matching criteria
	ListOrders(ctx context.Context, criteria orders.Criteria) ([]models.Order, error)
	// UpdateOrderStatus submits a status transition
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
	// UpdateOrderAddress replaces a delivery address
	UpdateOrderAddress(ctx context.Context, orderID string, address models.Address) error
	// CourierCheck returns the raw per-courier delivery history for a phone
	CourierCheck(ctx context.Context, phone string) (map[string]json.RawMessage, error)
}

// OrderService implements the order operations of the backoffice.
type OrderService struct {
	upstream OrderUpstream
	mode     string
	snap     *orders.Snapshot
}

// NewOrderService creates new OrderService instance. mode is one of the
// config.OrderFilterMode values.
func NewOrderService(upstream OrderUpstream, mode string) *OrderService {
	return &OrderService{
		upstream: upstream,
		mode:     mode,
		snap:     &orders.Snapshot{},
	}
}

// List produces the order list for the given criteria. In remote mode the
// criteria are forwarded and the upstream's ordering is trusted; in local
// mode the full snapshot is refetched and the engine filters it here. The
// caller's contract is identical either way.
func (s *OrderService) List(ctx context.Context, criteria orders.Criteria) ([]models.Order, error) {
	criteria = normalizeCriteria(criteria)
	if s.mode != config.OrderFilterModeLocal {
		return s.upstream.ListOrders(ctx, criteria)
	}
	if err := s.RefreshSnapshot(ctx); err != nil {
		return nil, err
	}
	return orders.Apply(s.snap.Orders(), criteria), nil
}

func normalizeCriteria(c orders.Criteria) orders.Criteria {
	if c.Status == orders.StatusAll {
		c.Status = ""
	}
	if c.Sort == "" {
		c.Sort = orders.SortDateDesc
	}
	c.Search = strings.TrimSpace(c.Search)
	return c
}

// RefreshSnapshot refetches the authoritative order list. A response that
// lost the race against a later refresh is discarded.
func (s *OrderService) RefreshSnapshot(ctx context.Context) error {
	token := s.snap.Begin()
	list, err := s.upstream.ListOrders(ctx, orders.Criteria{Sort: orders.SortDateDesc})
	if err != nil {
		return err
	}
	if !s.snap.Commit(token, list) {
		logger.Log.Debug("discarding stale order snapshot")
	}
	return nil
}

// UpdateStatus submits a status transition. Only membership in the status
// menu is checked here; the upstream decides legality and a rejection
// surfaces as an ordinary failure.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if strings.TrimSpace(orderID) == "" {
		return &models.ValidationError{Reason: "order id is required"}
	}
	if !models.IsValidStatus(status) {
		return &models.ValidationError{Reason: "unknown order status: " + status}
	}
	return s.upstream.UpdateOrderStatus(ctx, orderID, status)
}

// UpdateAddress validates the complete draft and submits it.
func (s *OrderService) UpdateAddress(ctx context.Context, orderID string, address models.Address) error {
	if strings.TrimSpace(orderID) == "" {
		return &models.ValidationError{Reason: "order id is required"}
	}
	if err := orders.ValidateAddress(address); err != nil {
		return err
	}
	return s.upstream.UpdateOrderAddress(ctx, orderID, address)
}

// CheckCourier looks up the customer's historical delivery counts by phone
// and aggregates them into a report.
func (s *OrderService) CheckCourier(ctx context.Context, phone string) (courier.Report, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return courier.Report{}, &models.ValidationError{Reason: "No phone number found for this order"}
	}
	raw, err := s.upstream.CourierCheck(ctx, phone)
	if err != nil {
		return courier.Report{}, err
	}
	return courier.Normalize(raw), nil
}
