package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopnobd/backoffice/internal/models"
	"github.com/shopnobd/backoffice/internal/orders"
)

type listOrdersResponse struct {
	Envelope
	Orders []models.Order `json:"orders"`
}

// ListOrders forwards the filter criteria and trusts the returned ordering.
func (c *Client) ListOrders(ctx context.Context, criteria orders.Criteria) ([]models.Order, error) {
	var resp listOrdersResponse
	if err := c.doJSON(ctx, http.MethodPost, criteria, &resp, "api", "order", "list"); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// UpdateOrderStatus submits a status transition. The upstream is the
// authority on whether the transition is legal.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	payload := struct {
		OrderID string `json:"orderId"`
		Status  string `json:"status"`
	}{OrderID: orderID, Status: status}

	var resp struct{ Envelope }
	return c.doJSON(ctx, http.MethodPost, payload, &resp, "api", "order", "status")
}

// UpdateOrderAddress replaces an order's delivery address with the complete
// draft; partial updates are not part of the contract.
func (c *Client) UpdateOrderAddress(ctx context.Context, orderID string, address models.Address) error {
	payload := struct {
		OrderID string         `json:"orderId"`
		Address models.Address `json:"address"`
	}{OrderID: orderID, Address: address}

	var resp struct{ Envelope }
	return c.doJSON(ctx, http.MethodPost, payload, &resp, "api", "order", "update-address")
}

type courierCheckResponse struct {
	Envelope
	Data struct {
		CourierData map[string]json.RawMessage `json:"courierData"`
	} `json:"data"`
}

// CourierCheck queries the per-courier delivery history for a phone number.
func (c *Client) CourierCheck(ctx context.Context, phone string) (map[string]json.RawMessage, error) {
	payload := struct {
		Phone string `json:"phone"`
	}{Phone: phone}

	var resp courierCheckResponse
	if err := c.doJSON(ctx, http.MethodPost, payload, &resp, "api", "order", "courier", "check"); err != nil {
		return nil, err
	}
	return resp.Data.CourierData, nil
}
