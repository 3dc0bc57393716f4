package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "unix_milliseconds_number",
			raw:  `1741003200000`,
			want: time.UnixMilli(1741003200000).UTC(),
		},
		{
			name: "rfc3339_string",
			raw:  `"2025-03-03T12:30:00Z"`,
			want: time.Date(2025, 3, 3, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339_nano_string",
			raw:  `"2025-03-03T12:30:00.250Z"`,
			want: time.Date(2025, 3, 3, 12, 30, 0, 250000000, time.UTC),
		},
		{
			name: "bare_date_string",
			raw:  `"2025-03-03"`,
			want: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "unparsable_string_sorts_as_oldest",
			raw:  `"yesterday"`,
			want: time.UnixMilli(0).UTC(),
		},
		{
			name: "null_sorts_as_oldest",
			raw:  `null`,
			want: time.UnixMilli(0).UTC(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v, want %v", ts.Time, tt.want)
		})
	}
}

func TestTimestampMarshalEmitsMilliseconds(t *testing.T) {
	ts := Timestamp{Time: time.UnixMilli(1741003200000).UTC()}

	b, err := json.Marshal(ts)

	require.NoError(t, err)
	assert.Equal(t, "1741003200000", string(b))
}

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Amount
	}{
		{name: "number", raw: `1250.5`, want: 1250.5},
		{name: "numeric_string", raw: `"990"`, want: 990},
		{name: "null_counts_as_zero", raw: `null`, want: 0},
		{name: "empty_string_counts_as_zero", raw: `""`, want: 0},
		{name: "garbage_counts_as_zero", raw: `"free"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("Returned"))
	assert.False(t, IsValidStatus("delivered"))
	assert.False(t, IsValidStatus(""))
}

func TestOrderUnmarshalToleratesMixedShapes(t *testing.T) {
	raw := `{
		"_id": "ord-9",
		"items": [{"name": "T-Shirt", "quantity": 2, "size": "L"}],
		"amount": "780",
		"address": {"recipientName": "Rahim Uddin", "phone": "01712345678"},
		"paymentMethod": "COD",
		"payment": false,
		"status": "Pending",
		"date": 1741003200000
	}`

	var ord Order
	require.NoError(t, json.Unmarshal([]byte(raw), &ord))

	assert.Equal(t, "ord-9", ord.ID)
	assert.Equal(t, Amount(780), ord.Amount)
	assert.Equal(t, StatusPending, ord.Status)
	assert.Equal(t, time.UnixMilli(1741003200000).UTC(), ord.Date.Time)
	require.Len(t, ord.Items, 1)
	assert.Equal(t, "T-Shirt", ord.Items[0].Name)
}
