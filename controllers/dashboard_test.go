package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"admindash/models"
)

func TestCountByCategory(t *testing.T) {
	categories := []models.Category{{ID: 1, Name: "A"}}
	products := []models.Product{{Category: 1}, {Category: 1}, {Category: 99}}

	got := CountByCategory(products, categories)
	expected := []models.ChartSlice{{Name: "A", Value: 2}, {Name: "unknown", Value: 1}}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Slice %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestCountByCategoryUnknownAlwaysLast(t *testing.T) {
	categories := []models.Category{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	products := []models.Product{{Category: 7}, {Category: 2}, {Category: 1}, {Category: 2}}

	got := CountByCategory(products, categories)
	expected := []models.ChartSlice{{Name: "B", Value: 2}, {Name: "A", Value: 1}, {Name: "unknown", Value: 1}}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Slice %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestCountByCategoryEmpty(t *testing.T) {
	got := CountByCategory(nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil series, got %#v", got)
	}
}

func TestCountByType(t *testing.T) {
	testCases := []struct {
		name         string
		transactions []models.Transaction
		sales        int
		purchases    int
	}{
		{"empty", nil, 0, 0},
		{"mixed", []models.Transaction{
			{TransactionType: models.TransactionPurchase},
			{TransactionType: models.TransactionSale},
			{TransactionType: models.TransactionSale},
		}, 2, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CountByType(tc.transactions)
			if len(got) != 2 {
				t.Fatalf("Expected 2 slices, got %d", len(got))
			}
			if got[0].Name != "Sale" || got[0].Value != tc.sales {
				t.Errorf("Expected Sale=%d first, got %v", tc.sales, got[0])
			}
			if got[1].Name != "Purchase" || got[1].Value != tc.purchases {
				t.Errorf("Expected Purchase=%d second, got %v", tc.purchases, got[1])
			}
		})
	}
}

func TestSalesTrendMergesSameDay(t *testing.T) {
	d1 := time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		{TransactionType: models.TransactionSale, CreatedAt: models.Timestamp{Time: d1}, TotalAmount: decimal.NewFromInt(100)},
		{TransactionType: models.TransactionSale, CreatedAt: models.Timestamp{Time: d1.Add(3 * time.Hour)}, TotalAmount: decimal.NewFromInt(50)},
	}

	got := SalesTrend(transactions)
	if len(got) != 1 {
		t.Fatalf("Expected exactly one point, got %v", got)
	}
	if got[0].Date != "05/03/2024" {
		t.Errorf("Expected date 05/03/2024, got %q", got[0].Date)
	}
	if !got[0].Amount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("Expected amount 150, got %s", got[0].Amount)
	}
}

func TestSalesTrendOrderAndFilter(t *testing.T) {
	day := func(d int) models.Timestamp {
		return models.Timestamp{Time: time.Date(2024, 1, d, 12, 0, 0, 0, time.Local)}
	}
	transactions := []models.Transaction{
		{TransactionType: models.TransactionSale, CreatedAt: day(20), TotalAmount: decimal.NewFromInt(3)},
		{TransactionType: models.TransactionPurchase, CreatedAt: day(10), TotalAmount: decimal.NewFromInt(999)},
		{TransactionType: models.TransactionSale, CreatedAt: day(2), TotalAmount: decimal.RequireFromString("1.5")},
		{TransactionType: models.TransactionSale, TotalAmount: decimal.NewFromInt(7)},
	}

	got := SalesTrend(transactions)
	if len(got) != 2 {
		t.Fatalf("Expected 2 points, got %v", got)
	}
	if got[0].Date != "02/01/2024" || got[1].Date != "20/01/2024" {
		t.Errorf("Expected ascending dates, got %q then %q", got[0].Date, got[1].Date)
	}
	if !got[0].Amount.Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("Expected 1.5, got %s", got[0].Amount)
	}
}

func TestSummarizeRecent(t *testing.T) {
	transactions := make([]models.Transaction, 8)
	for i := range transactions {
		transactions[i] = models.Transaction{ID: int64(i + 1)}
	}

	summary := Summarize(nil, nil, transactions)
	if summary.TotalTransactions != 8 {
		t.Errorf("Expected 8 transactions, got %d", summary.TotalTransactions)
	}
	if len(summary.RecentTransactions) != 5 || summary.RecentTransactions[0].ID != 1 {
		t.Errorf("Expected first five transactions, got %+v", summary.RecentTransactions)
	}
}

func TestDashboardLoad(t *testing.T) {
	_, sess, svc := newLoggedIn(t)
	dash := NewDashboard(sess, svc)

	if phase := dash.Load(context.Background()); phase != PhaseReady {
		t.Fatalf("Expected PhaseReady, got %v (%s)", phase, dash.State.Message())
	}
	summary := dash.State.Data()
	if summary.TotalProducts != 3 || summary.TotalCategories != 2 || summary.TotalTransactions != 2 {
		t.Errorf("Unexpected totals %+v", summary)
	}
	if len(summary.ProductsByCategory) != 2 || summary.ProductsByCategory[1].Name != UnknownCategory {
		t.Errorf("Expected Drinks then unknown, got %v", summary.ProductsByCategory)
	}
	if len(summary.SalesTrend) != 1 || !summary.SalesTrend[0].Amount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("Expected one sales point of 150, got %v", summary.SalesTrend)
	}
}

func TestDashboardAnyFailureFailsScreen(t *testing.T) {
	backend, sess, svc := newLoggedIn(t)
	backend.Fail(http.MethodGet, "/api/categories/", http.StatusInternalServerError, `{"detail":"db down"}`)
	dash := NewDashboard(sess, svc)

	if phase := dash.Load(context.Background()); phase != PhaseError {
		t.Fatalf("Expected PhaseError, got %v", phase)
	}
	if dash.State.Message() != "An error occurred: db down" {
		t.Errorf("Unexpected message %q", dash.State.Message())
	}
}
