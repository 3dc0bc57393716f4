package orders

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopnobd/backoffice/internal/models"
	"github.com/stretchr/testify/assert"
)

func order(id, status string, amount float64, day string, name, phone string) models.Order {
	date, _ := time.Parse("2006-01-02", day)
	return models.Order{
		ID:     id,
		Status: status,
		Amount: models.Amount(amount),
		Date:   models.Timestamp{Time: date},
		Address: models.Address{
			RecipientName: name,
			Phone:         phone,
		},
	}
}

func fixtureOrders() []models.Order {
	return []models.Order{
		order("ord-1", models.StatusPending, 500, "2025-03-01", "Rahim Uddin", "01712345678"),
		order("ord-2", models.StatusShipped, 1200, "2025-03-03", "Karim Mia", "01898765432"),
		order("ord-3", models.StatusPending, 300, "2025-03-02", "Fatema Begum", "01911112222"),
		order("ord-4", models.StatusDelivered, 1200, "2025-03-04", "Rahima Khatun", "01733334444"),
	}
}

func ids(list []models.Order) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "default_sort_is_newest_first",
			criteria: Criteria{},
			want:     []string{"ord-4", "ord-2", "ord-3", "ord-1"},
		},
		{
			name:     "status_all_passes_everything",
			criteria: Criteria{Status: StatusAll},
			want:     []string{"ord-4", "ord-2", "ord-3", "ord-1"},
		},
		{
			name:     "status_filter_is_exact",
			criteria: Criteria{Status: models.StatusPending, Sort: SortDateAsc},
			want:     []string{"ord-1", "ord-3"},
		},
		{
			name:     "date_range_is_inclusive",
			criteria: Criteria{DateFrom: "2025-03-02", DateTo: "2025-03-03", Sort: SortDateAsc},
			want:     []string{"ord-3", "ord-2"},
		},
		{
			name:     "unparsable_date_bound_is_ignored",
			criteria: Criteria{DateFrom: "03/02/2025", Sort: SortDateAsc},
			want:     []string{"ord-1", "ord-3", "ord-2", "ord-4"},
		},
		{
			name:     "search_matches_recipient_case_insensitively",
			criteria: Criteria{Search: "rahim"},
			want:     []string{"ord-4", "ord-1"},
		},
		{
			name:     "search_matches_phone",
			criteria: Criteria{Search: "018987"},
			want:     []string{"ord-2"},
		},
		{
			name:     "search_matches_order_id",
			criteria: Criteria{Search: "ORD-3"},
			want:     []string{"ord-3"},
		},
		{
			name:     "amount_desc_keeps_original_order_on_ties",
			criteria: Criteria{Sort: SortAmountDesc},
			want:     []string{"ord-2", "ord-4", "ord-1", "ord-3"},
		},
		{
			name:     "amount_asc",
			criteria: Criteria{Sort: SortAmountAsc},
			want:     []string{"ord-3", "ord-1", "ord-2", "ord-4"},
		},
		{
			name:     "status_asc_is_lexicographic",
			criteria: Criteria{Sort: SortStatusAsc},
			want:     []string{"ord-4", "ord-1", "ord-3", "ord-2"},
		},
		{
			name:     "status_desc",
			criteria: Criteria{Sort: SortStatusDesc},
			want:     []string{"ord-2", "ord-1", "ord-3", "ord-4"},
		},
		{
			name:     "combined_filters",
			criteria: Criteria{Status: models.StatusPending, DateFrom: "2025-03-02", Search: "fatema"},
			want:     []string{"ord-3"},
		},
		{
			name:     "nothing_matches",
			criteria: Criteria{Status: models.StatusCanceled},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixtureOrders(), tt.criteria)
			assert.Empty(t, cmp.Diff(tt.want, ids(got)))
		})
	}
}

func TestApplyDoesNotMutateSnapshot(t *testing.T) {
	snapshot := fixtureOrders()

	Apply(snapshot, Criteria{Sort: SortAmountAsc})

	assert.Equal(t, []string{"ord-1", "ord-2", "ord-3", "ord-4"}, ids(snapshot))
}
