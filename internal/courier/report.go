// Package courier normalizes the raw per-provider delivery history returned
// by the courier check endpoint into a summary table.
package courier

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// reserved key carrying pre-aggregated totals, excluded from the provider list
const summaryKey = "summary"

// Provider is one courier provider's delivery counts.
type Provider struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Logo    string  `json:"logo"`
	Total   int     `json:"total"`
	Success int     `json:"success"`
	Cancel  int     `json:"cancel"`
	Ratio   float64 `json:"ratio"`
}

// Totals aggregates counts across all providers.
type Totals struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Cancel  int `json:"cancel"`
}

// Percent holds the rounded success and cancel percentages.
type Percent struct {
	Success int `json:"success"`
	Cancel  int `json:"cancel"`
}

// Report is the normalized courier summary.
type Report struct {
	Couriers []Provider `json:"couriers"`
	Totals   Totals     `json:"totals"`
	Pct      Percent    `json:"pct"`
}

// record mirrors one raw provider entry. Every numeric field tolerates
// missing and non-numeric values, defaulting to zero.
type record struct {
	Name      string    `json:"name"`
	Logo      string    `json:"logo"`
	Total     flexInt   `json:"total_parcel"`
	Success   flexInt   `json:"success_parcel"`
	Cancelled flexInt   `json:"cancelled_parcel"`
	Ratio     flexFloat `json:"success_ratio"`
}

// Normalize turns the raw courier payload into a Report. Totals come from
// the reserved summary entry when the upstream supplies one, otherwise they
// are summed from the per-provider records. Providers are listed in key
// order so the output is deterministic.
func Normalize(raw map[string]json.RawMessage) Report {
	report := Report{Couriers: []Provider{}}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		if k != summaryKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		rec := decodeRecord(raw[k])
		name := rec.Name
		if name == "" {
			name = k
		}
		report.Couriers = append(report.Couriers, Provider{
			Key:     k,
			Name:    name,
			Logo:    rec.Logo,
			Total:   int(rec.Total),
			Success: int(rec.Success),
			Cancel:  int(rec.Cancelled),
			Ratio:   float64(rec.Ratio),
		})
	}

	if summary, ok := raw[summaryKey]; ok {
		rec := decodeRecord(summary)
		report.Totals = Totals{
			Total:   int(rec.Total),
			Success: int(rec.Success),
			Cancel:  int(rec.Cancelled),
		}
	} else {
		for _, p := range report.Couriers {
			report.Totals.Total += p.Total
			report.Totals.Success += p.Success
			report.Totals.Cancel += p.Cancel
		}
	}

	if report.Totals.Total > 0 {
		report.Pct.Success = roundPct(report.Totals.Success, report.Totals.Total)
		report.Pct.Cancel = roundPct(report.Totals.Cancel, report.Totals.Total)
	}

	return report
}

func decodeRecord(raw json.RawMessage) record {
	var rec record
	// a malformed entry simply yields zero counts
	_ = json.Unmarshal(raw, &rec)
	return rec
}

func roundPct(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

// flexInt decodes numbers, numeric strings and anything else as an integer,
// falling back to zero rather than failing.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	*n = flexInt(parseFlex(b))
	return nil
}

// flexFloat is flexInt's fractional counterpart.
type flexFloat float64

func (n *flexFloat) UnmarshalJSON(b []byte) error {
	*n = flexFloat(parseFlex(b))
	return nil
}

func parseFlex(b []byte) float64 {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
