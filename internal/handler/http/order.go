package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shopnobd/backoffice/internal/courier"
	"github.com/shopnobd/backoffice/internal/models"
	"github.com/shopnobd/backoffice/internal/orders"
)

// OrderService is the order operations the handler exposes.
type OrderService interface {
	// List produces the order list for the given criteria
	List(ctx context.Context, criteria orders.Criteria) ([]models.Order, error)
	// UpdateStatus submits a status transition
	UpdateStatus(ctx context.Context, orderID, status string) error
	// UpdateAddress validates and submits a complete address draft
	UpdateAddress(ctx context.Context, orderID string, address models.Address) error
	// CheckCourier aggregates the delivery history for a phone number
	CheckCourier(ctx context.Context, phone string) (courier.Report, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type listOrdersResponse struct {
	envelope
	Orders []models.Order `json:"orders"`
}

// ListOrders handles POST /api/order/list. An empty body means no filter.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var criteria orders.Criteria
		if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil && !errors.Is(err, io.EOF) {
			writeMessage(w, http.StatusBadRequest, false, "invalid request body")
			return
		}
		defer r.Body.Close()

		list, err := oh.svc.List(r.Context(), criteria)
		if err != nil {
			writeError(w, err)
			return
		}
		if list == nil {
			list = []models.Order{}
		}
		writeJSON(w, http.StatusOK, listOrdersResponse{
			envelope: envelope{Success: true},
			Orders:   list,
		})
	}
}

// UpdateStatus handles POST /api/order/status.
func (oh *OrderHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OrderID string `json:"orderId"`
			Status  string `json:"status"`
		}
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		if err := oh.svc.UpdateStatus(r.Context(), req.OrderID, req.Status); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Status updated")
	}
}

// UpdateAddress handles POST /api/order/update-address.
func (oh *OrderHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OrderID string         `json:"orderId"`
			Address models.Address `json:"address"`
		}
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		if err := oh.svc.UpdateAddress(r.Context(), req.OrderID, req.Address); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Address updated")
	}
}

type courierCheckResponse struct {
	envelope
	Data courier.Report `json:"data"`
}

// CheckCourier handles POST /api/order/courier/check.
func (oh *OrderHandler) CheckCourier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Phone string `json:"phone"`
		}
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		report, err := oh.svc.CheckCourier(r.Context(), req.Phone)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, courierCheckResponse{
			envelope: envelope{Success: true},
			Data:     report,
		})
	}
}
