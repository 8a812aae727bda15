/*
dashboard.go - Read-only aggregation over persisted entities

PURPOSE:
  Turns a user's professionals and vacation periods into the dashboard
  figures: totals, a chronological month-bucketed series, and a
  per-professional impact breakdown. Optionally pre-filtered to a date
  range.

RANGE FILTER SEMANTICS:
  A vacation is included when its usage window OVERLAPS the range at all:
  its start falls inside, OR its end falls inside, OR it fully contains
  the range. A narrow filter window fully inside a long vacation must
  still surface that vacation.

DETERMINISM:
  Month buckets are keyed YYYY-MM and sorted lexicographically, which is
  chronological. Map iteration order is never relied on.
*/
package vacation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// UnknownProfessionalName labels impact rows whose vacation references a
// professional absent from the supplied set. Referential inconsistency
// (concurrent mutation, partial seed data) must never abort aggregation.
const UnknownProfessionalName = "unknown"

type DateRange struct {
	From Date
	To   Date
}

type MonthBucket struct {
	Month  string          `json:"month"`
	Count  int             `json:"count"`
	Impact decimal.Decimal `json:"impact"`
}

type ProfessionalImpact struct {
	ProfessionalName string          `json:"professionalName"`
	TotalDays        int             `json:"totalDays"`
	RevenueImpact    decimal.Decimal `json:"revenueImpact"`
}

type DashboardData struct {
	TotalProfessionals  int                  `json:"totalProfessionals"`
	TotalVacationDays   int                  `json:"totalVacationDays"`
	TotalRevenueImpact  decimal.Decimal      `json:"totalRevenueImpact"`
	VacationsByMonth    []MonthBucket        `json:"vacationsByMonth"`
	ProfessionalImpacts []ProfessionalImpact `json:"professionalImpacts"`
}

// Overlaps reports whether the vacation's usage window intersects the range.
func Overlaps(v VacationPeriod, rng DateRange) bool {
	window := Period{Start: rng.From, End: rng.To}
	usage := Period{Start: v.UsageStart, End: v.UsageEnd}
	return window.Contains(v.UsageStart) ||
		window.Contains(v.UsageEnd) ||
		usage.Contains(rng.From)
}

// Aggregate produces the dashboard for one user's data. rng may be nil.
//
// TotalProfessionals counts every supplied professional, including those
// with zero vacation days; the impact list excludes the zero-day ones.
func Aggregate(pros []Professional, vacs []VacationPeriod, rng *DateRange) DashboardData {
	filtered := vacs
	if rng != nil {
		filtered = make([]VacationPeriod, 0, len(vacs))
		for _, v := range vacs {
			if Overlaps(v, *rng) {
				filtered = append(filtered, v)
			}
		}
	}

	data := DashboardData{
		TotalProfessionals:  len(pros),
		TotalRevenueImpact:  decimal.Zero,
		VacationsByMonth:    []MonthBucket{},
		ProfessionalImpacts: []ProfessionalImpact{},
	}

	type tally struct {
		days   int
		impact decimal.Decimal
	}
	months := make(map[string]*MonthBucket)
	perPro := make(map[string]*tally)

	for _, v := range filtered {
		data.TotalVacationDays += v.TotalDays
		data.TotalRevenueImpact = data.TotalRevenueImpact.Add(v.RevenueDeduction)

		key := v.UsageStart.MonthKey()
		bucket := months[key]
		if bucket == nil {
			bucket = &MonthBucket{Month: key, Impact: decimal.Zero}
			months[key] = bucket
		}
		bucket.Count += v.TotalDays
		bucket.Impact = bucket.Impact.Add(v.RevenueDeduction)

		t := perPro[v.ProfessionalID]
		if t == nil {
			t = &tally{impact: decimal.Zero}
			perPro[v.ProfessionalID] = t
		}
		t.days += v.TotalDays
		t.impact = t.impact.Add(v.RevenueDeduction)
	}

	// Month series, chronological.
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		data.VacationsByMonth = append(data.VacationsByMonth, *months[k])
	}

	// Impact rows follow the supplied professional order, zero-day rows
	// dropped as dashboard noise.
	known := make(map[string]bool, len(pros))
	for _, p := range pros {
		known[p.ID] = true
		t := perPro[p.ID]
		if t == nil || t.days == 0 {
			continue
		}
		data.ProfessionalImpacts = append(data.ProfessionalImpacts, ProfessionalImpact{
			ProfessionalName: p.Name,
			TotalDays:        t.days,
			RevenueImpact:    t.impact,
		})
	}

	// Orphaned references get the sentinel name, sorted by id for
	// deterministic output.
	var orphans []string
	for id, t := range perPro {
		if !known[id] && t.days > 0 {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		t := perPro[id]
		data.ProfessionalImpacts = append(data.ProfessionalImpacts, ProfessionalImpact{
			ProfessionalName: UnknownProfessionalName,
			TotalDays:        t.days,
			RevenueImpact:    t.impact,
		})
	}

	return data
}
