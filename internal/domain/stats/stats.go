// Package stats derives dashboard figures from full snapshots of the
// quote, project and payment collections.
//
// Every function here is pure: no side effects, no incremental state.
// Dashboards recompute from scratch on each read, so results must be
// identical for repeated calls and for any input ordering.
package stats

import (
	"sort"
	"time"

	"brightworks/internal/domain/entities"
)

// TotalRevenue sums completed payment amounts.
func TotalRevenue(payments []entities.Payment) float64 {
	total := 0.0
	for _, p := range payments {
		if p.Status == entities.PaymentStatusCompleted {
			total += p.Amount
		}
	}
	return total
}

// ConversionRate returns the share of quotes that were approved or
// converted, as a percentage. Empty input yields 0.
func ConversionRate(quotes []entities.Quote) float64 {
	if len(quotes) == 0 {
		return 0
	}
	won := 0
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusApproved || q.Status == entities.QuoteStatusConverted {
			won++
		}
	}
	return float64(won) / float64(len(quotes)) * 100
}

// MonthBucket is one calendar month of completed revenue.
type MonthBucket struct {
	Month string  `json:"month"` // "2006-01"
	Total float64 `json:"total"`
}

const monthKeyLayout = "2006-01"

// MonthlyRevenue groups completed payments by calendar month (UTC) and
// returns exactly monthsBack buckets in chronological order, zero-filling
// months with no payments. The window ends at the month of the most
// recent completed payment; an empty ledger anchors at the current month
// so the shape stays stable for first-render dashboards.
func MonthlyRevenue(payments []entities.Payment, monthsBack int) []MonthBucket {
	if monthsBack <= 0 {
		return []MonthBucket{}
	}

	totals := make(map[string]float64)
	var latest time.Time
	for _, p := range payments {
		if p.Status != entities.PaymentStatusCompleted {
			continue
		}
		created := p.CreatedAt.UTC()
		totals[created.Format(monthKeyLayout)] += p.Amount
		if created.After(latest) {
			latest = created
		}
	}
	if latest.IsZero() {
		latest = time.Now().UTC()
	}

	anchor := time.Date(latest.Year(), latest.Month(), 1, 0, 0, 0, 0, time.UTC)
	buckets := make([]MonthBucket, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		key := anchor.AddDate(0, -i, 0).Format(monthKeyLayout)
		buckets = append(buckets, MonthBucket{Month: key, Total: totals[key]})
	}
	return buckets
}

// AmountPaid sums completed payments recorded against a quote.
func AmountPaid(quoteID string, payments []entities.Payment) float64 {
	total := 0.0
	for _, p := range payments {
		if p.QuoteID == quoteID && p.Status == entities.PaymentStatusCompleted {
			total += p.Amount
		}
	}
	return total
}

// AmountOutstanding is the unpaid remainder of a quote's amount.
// Overpayment reports 0, never a negative balance.
func AmountOutstanding(quote entities.Quote, payments []entities.Payment) float64 {
	remaining := quote.Amount - AmountPaid(quote.ID, payments)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ClientOutstandingBalance sums the outstanding amounts of a user's
// approved quotes.
func ClientOutstandingBalance(userID string, quotes []entities.Quote, payments []entities.Payment) float64 {
	total := 0.0
	for _, q := range quotes {
		if q.UserID == userID && q.Status == entities.QuoteStatusApproved {
			total += AmountOutstanding(q, payments)
		}
	}
	return total
}

// ServiceShare is one service category's slice of the quote volume.
type ServiceShare struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ServiceDistribution returns a histogram of service categories across
// all quotes, sorted by count descending. Equal counts order by category
// name so output is independent of input ordering.
func ServiceDistribution(quotes []entities.Quote) []ServiceShare {
	counts := make(map[string]int)
	for _, q := range quotes {
		counts[q.ServiceCategory]++
	}

	shares := make([]ServiceShare, 0, len(counts))
	for category, count := range counts {
		shares = append(shares, ServiceShare{
			Category:   category,
			Count:      count,
			Percentage: float64(count) / float64(len(quotes)) * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Category < shares[j].Category
	})
	return shares
}

// StatusCounts tallies quotes per lifecycle status.
func StatusCounts(quotes []entities.Quote) map[entities.QuoteStatus]int {
	counts := make(map[entities.QuoteStatus]int)
	for _, q := range quotes {
		counts[q.Status]++
	}
	return counts
}
