package models

import "github.com/shopspring/decimal"

// ChartSlice is one named count in a pie or bar chart.
type ChartSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SalesPoint is one day of the sales trend line.
type SalesPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardSummary is everything the dashboard screen renders.
type DashboardSummary struct {
	TotalProducts      int           `json:"totalProducts"`
	TotalCategories    int           `json:"totalCategories"`
	TotalTransactions  int           `json:"totalTransactions"`
	RecentTransactions []Transaction `json:"recentTransactions"`
	TransactionsByType []ChartSlice  `json:"transactionsByType"`
	ProductsByCategory []ChartSlice  `json:"productsByCategory"`
	SalesTrend         []SalesPoint  `json:"salesTrend"`
}
