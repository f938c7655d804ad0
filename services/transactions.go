package services

import (
	"context"
	"net/url"

	"admindash/apiclient"
	"admindash/models"
	"admindash/validation"
)

type Transactions struct {
	res *apiclient.Resource[models.Transaction]
}

func NewTransactions(client *apiclient.Client) *Transactions {
	return &Transactions{res: apiclient.NewResource[models.Transaction](client, "/api/transactions/")}
}

// List returns the transactions matching filter. Empty criteria are not sent.
func (t *Transactions) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	query, err := filterQuery(filter)
	if err != nil {
		return nil, err
	}
	return t.res.List(ctx, query)
}

// Create validates input and posts it. The total is recomputed from the items.
func (t *Transactions) Create(ctx context.Context, input models.TransactionInput) (*models.Transaction, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	input.TotalAmount = models.SumItems(input.Items)
	return t.res.Create(ctx, input)
}

// filterQuery maps the filter to query parameters, normalising dates to
// YYYY-MM-DD. Unparseable dates fail validation.
func filterQuery(filter models.TransactionFilter) (url.Values, error) {
	fields := map[string]string{}
	dateFrom, err := models.NormalizeDate(filter.DateFrom)
	if err != nil {
		fields["date_from"] = "Enter a valid date."
	}
	dateTo, err := models.NormalizeDate(filter.DateTo)
	if err != nil {
		fields["date_to"] = "Enter a valid date."
	}
	if len(fields) > 0 {
		return nil, apiclient.ValidationError(fields)
	}

	return url.Values{
		"search":           {filter.Search},
		"transaction_type": {string(filter.Type)},
		"status":           {string(filter.Status)},
		"date_from":        {dateFrom},
		"date_to":          {dateTo},
	}, nil
}
