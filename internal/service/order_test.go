package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopnobd/backoffice/config"
	"github.com/shopnobd/backoffice/internal/models"
	"github.com/shopnobd/backoffice/internal/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderUpstreamStub struct {
	orders       []models.Order
	listErr      error
	gotCriteria  []orders.Criteria
	gotStatus    string
	gotAddress   models.Address
	gotPhone     string
	courierData  map[string]json.RawMessage
	statusErr    error
	addressErr   error
	courierErr   error
	listAttempts int
}

func (s *orderUpstreamStub) ListOrders(ctx context.Context, criteria orders.Criteria) ([]models.Order, error) {
	s.listAttempts++
	s.gotCriteria = append(s.gotCriteria, criteria)
	return s.orders, s.listErr
}

func (s *orderUpstreamStub) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	s.gotStatus = status
	return s.statusErr
}

func (s *orderUpstreamStub) UpdateOrderAddress(ctx context.Context, orderID string, address models.Address) error {
	s.gotAddress = address
	return s.addressErr
}

func (s *orderUpstreamStub) CourierCheck(ctx context.Context, phone string) (map[string]json.RawMessage, error) {
	s.gotPhone = phone
	return s.courierData, s.courierErr
}

func dated(id, status string, day string) models.Order {
	date, _ := time.Parse("2006-01-02", day)
	return models.Order{ID: id, Status: status, Date: models.Timestamp{Time: date}}
}

func TestOrderServiceListRemoteForwardsCriteria(t *testing.T) {
	stub := &orderUpstreamStub{orders: []models.Order{dated("ord-1", models.StatusPending, "2025-03-01")}}
	svc := NewOrderService(stub, config.OrderFilterModeRemote)

	got, err := svc.List(context.Background(), orders.Criteria{Status: "Pending", Search: "  rahim  "})

	require.NoError(t, err)
	assert.Len(t, got, 1)
	require.Len(t, stub.gotCriteria, 1)
	// criteria are normalized before forwarding
	assert.Equal(t, orders.Criteria{Status: "Pending", Sort: orders.SortDateDesc, Search: "rahim"}, stub.gotCriteria[0])
	assert.Equal(t, 1, stub.listAttempts)
}

func TestOrderServiceListRemoteDropsStatusAll(t *testing.T) {
	stub := &orderUpstreamStub{}
	svc := NewOrderService(stub, config.OrderFilterModeRemote)

	_, err := svc.List(context.Background(), orders.Criteria{Status: orders.StatusAll})

	require.NoError(t, err)
	require.Len(t, stub.gotCriteria, 1)
	assert.Empty(t, stub.gotCriteria[0].Status)
}

func TestOrderServiceListLocalFiltersSnapshot(t *testing.T) {
	stub := &orderUpstreamStub{orders: []models.Order{
		dated("ord-1", models.StatusPending, "2025-03-01"),
		dated("ord-2", models.StatusShipped, "2025-03-02"),
		dated("ord-3", models.StatusPending, "2025-03-03"),
	}}
	svc := NewOrderService(stub, config.OrderFilterModeLocal)

	got, err := svc.List(context.Background(), orders.Criteria{Status: models.StatusPending})

	require.NoError(t, err)
	require.Len(t, got, 2)
	// default sort is newest first
	assert.Equal(t, "ord-3", got[0].ID)
	assert.Equal(t, "ord-1", got[1].ID)
	// local mode fetches the whole snapshot, not the filtered list
	require.Len(t, stub.gotCriteria, 1)
	assert.Empty(t, stub.gotCriteria[0].Status)
}

func TestOrderServiceListLocalFetchFailure(t *testing.T) {
	stub := &orderUpstreamStub{listErr: errors.New("connection refused")}
	svc := NewOrderService(stub, config.OrderFilterModeLocal)

	_, err := svc.List(context.Background(), orders.Criteria{})

	assert.Error(t, err)
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		status  string
		wantErr string
	}{
		{name: "known_status", orderID: "ord-1", status: models.StatusShipped},
		{name: "missing_order_id", orderID: " ", status: models.StatusShipped, wantErr: "order id is required"},
		{name: "unknown_status", orderID: "ord-1", status: "Teleported", wantErr: "unknown order status: Teleported"},
		{name: "case_sensitive_status", orderID: "ord-1", status: "shipped", wantErr: "unknown order status: shipped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &orderUpstreamStub{}
			svc := NewOrderService(stub, config.OrderFilterModeRemote)

			err := svc.UpdateStatus(context.Background(), tt.orderID, tt.status)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.status, stub.gotStatus)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Reason)
			assert.Empty(t, stub.gotStatus)
		})
	}
}

func TestOrderServiceUpdateStatusUpstreamRejection(t *testing.T) {
	stub := &orderUpstreamStub{statusErr: &models.UpstreamError{Message: "Order already delivered"}}
	svc := NewOrderService(stub, config.OrderFilterModeRemote)

	err := svc.UpdateStatus(context.Background(), "ord-1", models.StatusCanceled)

	var uerr *models.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "Order already delivered", uerr.Message)
}

func TestOrderServiceUpdateAddress(t *testing.T) {
	addr := models.Address{
		RecipientName: "Rahim Uddin",
		Phone:         "01712345678",
		AddressLine1:  "House 12, Road 5",
		District:      "Dhaka",
		PostalCode:    "1205",
	}

	t.Run("valid_address_is_forwarded", func(t *testing.T) {
		stub := &orderUpstreamStub{}
		svc := NewOrderService(stub, config.OrderFilterModeRemote)

		require.NoError(t, svc.UpdateAddress(context.Background(), "ord-1", addr))
		assert.Equal(t, addr, stub.gotAddress)
	})

	t.Run("invalid_phone_never_reaches_upstream", func(t *testing.T) {
		stub := &orderUpstreamStub{}
		svc := NewOrderService(stub, config.OrderFilterModeRemote)

		bad := addr
		bad.Phone = "12345"
		err := svc.UpdateAddress(context.Background(), "ord-1", bad)

		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid Bangladesh phone number.", verr.Reason)
		assert.Empty(t, stub.gotAddress.Phone)
	})

	t.Run("missing_order_id", func(t *testing.T) {
		svc := NewOrderService(&orderUpstreamStub{}, config.OrderFilterModeRemote)

		err := svc.UpdateAddress(context.Background(), "", addr)

		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "order id is required", verr.Reason)
	})
}

func TestOrderServiceCheckCourier(t *testing.T) {
	raw := map[string]json.RawMessage{
		"pathao":  json.RawMessage(`{"name": "Pathao", "total_parcel": 5, "success_parcel": 4, "cancelled_parcel": 1}`),
		"summary": json.RawMessage(`{"total_parcel": 5, "success_parcel": 4, "cancelled_parcel": 1}`),
	}
	stub := &orderUpstreamStub{courierData: raw}
	svc := NewOrderService(stub, config.OrderFilterModeRemote)

	report, err := svc.CheckCourier(context.Background(), " 01712345678 ")

	require.NoError(t, err)
	assert.Equal(t, "01712345678", stub.gotPhone)
	require.Len(t, report.Couriers, 1)
	assert.Equal(t, "Pathao", report.Couriers[0].Name)
	assert.Equal(t, 5, report.Totals.Total)
	assert.Equal(t, 80, report.Pct.Success)
	assert.Equal(t, 20, report.Pct.Cancel)
}

func TestOrderServiceCheckCourierEmptyPhone(t *testing.T) {
	stub := &orderUpstreamStub{}
	svc := NewOrderService(stub, config.OrderFilterModeRemote)

	_, err := svc.CheckCourier(context.Background(), "   ")

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "No phone number found for this order", verr.Reason)
	assert.Empty(t, stub.gotPhone)
}
