package controllers

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"admindash/models"
	"admindash/services"
	"admindash/session"
)

const (
	UnknownCategory = "unknown"
	recentCount     = 5
)

// Dashboard aggregates products, categories and transactions into totals and
// chart series. There is no server-side aggregation.
type Dashboard struct {
	sess *session.Session
	svc  *services.Services

	State *ViewState[models.DashboardSummary]
}

func NewDashboard(sess *session.Session, svc *services.Services) *Dashboard {
	return &Dashboard{sess: sess, svc: svc, State: NewViewState[models.DashboardSummary]()}
}

// Load fetches the three collections concurrently. Any failure fails the
// whole screen.
func (d *Dashboard) Load(ctx context.Context) Phase {
	return d.State.Load(ctx, d.sess, "Dashboard data", func(ctx context.Context) (models.DashboardSummary, error) {
		var (
			products     []models.Product
			categories   []models.Category
			transactions []models.Transaction
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			products, err = d.svc.Products.List(gctx, "")
			return err
		})
		g.Go(func() error {
			var err error
			categories, err = d.svc.Categories.List(gctx, "")
			return err
		})
		g.Go(func() error {
			var err error
			transactions, err = d.svc.Transactions.List(gctx, models.TransactionFilter{})
			return err
		})
		if err := g.Wait(); err != nil {
			return models.DashboardSummary{}, err
		}

		return Summarize(products, categories, transactions), nil
	})
}

// Summarize derives every dashboard figure from the fetched collections.
func Summarize(products []models.Product, categories []models.Category, transactions []models.Transaction) models.DashboardSummary {
	recent := transactions
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}
	return models.DashboardSummary{
		TotalProducts:      len(products),
		TotalCategories:    len(categories),
		TotalTransactions:  len(transactions),
		RecentTransactions: append([]models.Transaction{}, recent...),
		TransactionsByType: CountByType(transactions),
		ProductsByCategory: CountByCategory(products, categories),
		SalesTrend:         SalesTrend(transactions),
	}
}

// CountByType always yields one slice per known type, in display order.
func CountByType(transactions []models.Transaction) []models.ChartSlice {
	counts := make(map[models.TransactionType]int, len(models.TransactionTypes))
	for _, t := range transactions {
		counts[t.TransactionType]++
	}
	out := make([]models.ChartSlice, 0, len(models.TransactionTypes))
	for _, typ := range models.TransactionTypes {
		out = append(out, models.ChartSlice{Name: typ.Label(), Value: counts[typ]})
	}
	return out
}

// CountByCategory counts products per category name. Names appear in the
// order their first product appears; products whose category id is not
// listed are counted under UnknownCategory, which always comes last.
func CountByCategory(products []models.Product, categories []models.Category) []models.ChartSlice {
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	var (
		out     []models.ChartSlice
		index   = map[string]int{}
		unknown int
	)
	for _, p := range products {
		name, ok := names[p.Category]
		if !ok {
			unknown++
			continue
		}
		i, seen := index[name]
		if !seen {
			i = len(out)
			index[name] = i
			out = append(out, models.ChartSlice{Name: name})
		}
		out[i].Value++
	}
	if unknown > 0 {
		out = append(out, models.ChartSlice{Name: UnknownCategory, Value: unknown})
	}
	if out == nil {
		out = []models.ChartSlice{}
	}
	return out
}

// SalesTrend sums sale totals per local calendar day of created_at, in
// ascending date order. Transactions without a timestamp are skipped.
func SalesTrend(transactions []models.Transaction) []models.SalesPoint {
	type bucket struct {
		day    time.Time
		amount decimal.Decimal
	}
	buckets := map[string]*bucket{}
	for _, t := range transactions {
		if t.TransactionType != models.TransactionSale || t.CreatedAt.IsZero() {
			continue
		}
		local := t.CreatedAt.Local()
		key := local.Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{day: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local), amount: decimal.Zero}
			buckets[key] = b
		}
		b.amount = b.amount.Add(t.TotalAmount)
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].day.Before(ordered[j].day) })

	out := make([]models.SalesPoint, 0, len(ordered))
	for _, b := range ordered {
		out = append(out, models.SalesPoint{Date: b.day.Format(DateLayout), Amount: b.amount})
	}
	return out
}
