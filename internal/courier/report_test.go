package courier

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func payload(t *testing.T, s string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		t.Fatalf("bad payload fixture: %v", err)
	}
	return raw
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Report
	}{
		{
			name: "summary_entry_wins_over_summing",
			raw: `{
				"summary": {"total_parcel": 10, "success_parcel": 8, "cancelled_parcel": 2},
				"pathao": {"name": "Pathao", "total_parcel": 3, "success_parcel": 2, "cancelled_parcel": 1, "success_ratio": 66.7}
			}`,
			want: Report{
				Couriers: []Provider{
					{Key: "pathao", Name: "Pathao", Total: 3, Success: 2, Cancel: 1, Ratio: 66.7},
				},
				Totals: Totals{Total: 10, Success: 8, Cancel: 2},
				Pct:    Percent{Success: 80, Cancel: 20},
			},
		},
		{
			name: "totals_summed_without_summary",
			raw: `{
				"pathao": {"name": "Pathao", "total_parcel": 4, "success_parcel": 3, "cancelled_parcel": 1},
				"steadfast": {"name": "Steadfast", "total_parcel": 2, "success_parcel": 2, "cancelled_parcel": 0}
			}`,
			want: Report{
				Couriers: []Provider{
					{Key: "pathao", Name: "Pathao", Total: 4, Success: 3, Cancel: 1},
					{Key: "steadfast", Name: "Steadfast", Total: 2, Success: 2, Cancel: 0},
				},
				Totals: Totals{Total: 6, Success: 5, Cancel: 1},
				Pct:    Percent{Success: 83, Cancel: 17},
			},
		},
		{
			name: "numeric_strings_and_missing_fields",
			raw: `{
				"redx": {"total_parcel": "7", "success_parcel": "5", "success_ratio": "71.4"}
			}`,
			want: Report{
				Couriers: []Provider{
					{Key: "redx", Name: "redx", Total: 7, Success: 5, Cancel: 0, Ratio: 71.4},
				},
				Totals: Totals{Total: 7, Success: 5, Cancel: 0},
				Pct:    Percent{Success: 71, Cancel: 0},
			},
		},
		{
			name: "malformed_entry_yields_zero_counts",
			raw: `{
				"broken": "not an object"
			}`,
			want: Report{
				Couriers: []Provider{
					{Key: "broken", Name: "broken"},
				},
			},
		},
		{
			name: "zero_total_keeps_zero_percentages",
			raw: `{
				"pathao": {"name": "Pathao", "total_parcel": 0, "success_parcel": 0, "cancelled_parcel": 0}
			}`,
			want: Report{
				Couriers: []Provider{
					{Key: "pathao", Name: "Pathao"},
				},
			},
		},
		{
			name: "empty_payload",
			raw:  `{}`,
			want: Report{Couriers: []Provider{}},
		},
		{
			name: "providers_sorted_by_key",
			raw: `{
				"steadfast": {"total_parcel": 1, "success_parcel": 1},
				"pathao": {"total_parcel": 1, "success_parcel": 1},
				"redx": {"total_parcel": 2, "success_parcel": 1, "cancelled_parcel": 1}
			}`,
			want: Report{
				Couriers: []Provider{
					{Key: "pathao", Name: "pathao", Total: 1, Success: 1},
					{Key: "redx", Name: "redx", Total: 2, Success: 1, Cancel: 1},
					{Key: "steadfast", Name: "steadfast", Total: 1, Success: 1},
				},
				Totals: Totals{Total: 4, Success: 3, Cancel: 1},
				Pct:    Percent{Success: 75, Cancel: 25},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(payload(t, tt.raw))
			if tt.want.Couriers == nil {
				tt.want.Couriers = []Provider{}
			}
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestNormalizeRoundsHalfUp(t *testing.T) {
	raw := payload(t, `{
		"summary": {"total_parcel": 8, "success_parcel": 1, "cancelled_parcel": 7}
	}`)

	got := Normalize(raw)

	// 12.5 rounds to 13, 87.5 rounds to 88
	assert.Equal(t, 13, got.Pct.Success)
	assert.Equal(t, 88, got.Pct.Cancel)
}
