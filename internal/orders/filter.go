// Package orders holds the presentation-side order logic: the filter/sort
// engine, address validation and the fetch snapshot.
package orders

import (
	"sort"
	"strings"
	"time"

	"github.com/shopnobd/backoffice/internal/models"
)

// sort keys accepted by the engine
const (
	SortDateDesc   = "date_desc"
	SortDateAsc    = "date_asc"
	SortAmountDesc = "amount_desc"
	SortAmountAsc  = "amount_asc"
	SortStatusAsc  = "status_asc"
	SortStatusDesc = "status_desc"
)

// StatusAll is the filter value that passes every order through.
const StatusAll = "All"

const dayLayout = "2006-01-02"

// Criteria is the order list filter. The JSON form matches the upstream
// list payload, so the same criteria serve both deployment modes.
type Criteria struct {
	Status   string `json:"status,omitempty"`
	Sort     string `json:"sort,omitempty"`
	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`
	Search   string `json:"search,omitempty"`
}

// Apply filters and sorts a fetched snapshot. The snapshot is never mutated;
// every call returns a fresh sequence. Ties keep their original order.
func Apply(snapshot []models.Order, c Criteria) []models.Order {
	from, hasFrom := parseDay(c.DateFrom)
	to, hasTo := parseDay(c.DateTo)
	if hasTo {
		// inclusive calendar day
		to = to.AddDate(0, 0, 1)
	}
	search := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]models.Order, 0, len(snapshot))
	for _, ord := range snapshot {
		if c.Status != "" && c.Status != StatusAll && ord.Status != c.Status {
			continue
		}
		if hasFrom && ord.Date.Time.Before(from) {
			continue
		}
		if hasTo && !ord.Date.Time.Before(to) {
			continue
		}
		if search != "" && !matchesSearch(ord, search) {
			continue
		}
		out = append(out, ord)
	}

	sortOrders(out, c.Sort)
	return out
}

func matchesSearch(ord models.Order, term string) bool {
	for _, field := range []string{ord.Address.RecipientName, ord.Address.Phone, ord.ID} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	day, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func sortOrders(list []models.Order, key string) {
	var less func(a, b models.Order) bool
	switch key {
	case SortDateAsc:
		less = func(a, b models.Order) bool { return a.Date.Time.Before(b.Date.Time) }
	case SortAmountDesc:
		less = func(a, b models.Order) bool { return a.Amount > b.Amount }
	case SortAmountAsc:
		less = func(a, b models.Order) bool { return a.Amount < b.Amount }
	case SortStatusAsc:
		less = func(a, b models.Order) bool { return a.Status < b.Status }
	case SortStatusDesc:
		less = func(a, b models.Order) bool { return a.Status > b.Status }
	default: // SortDateDesc
		less = func(a, b models.Order) bool { return b.Date.Time.Before(a.Date.Time) }
	}
	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}
