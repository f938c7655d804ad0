package controllers

import (
	"context"

	"admindash/models"
	"admindash/services"
	"admindash/session"
)

// TransactionList shows transactions narrowed by the filter bar.
type TransactionList struct {
	sess *session.Session
	svc  *services.Transactions

	State  *ViewState[[]models.Transaction]
	Filter models.TransactionFilter
}

func NewTransactionList(sess *session.Session, svc *services.Services) *TransactionList {
	return &TransactionList{sess: sess, svc: svc.Transactions, State: NewViewState[[]models.Transaction]()}
}

// Load refetches with filter. Every change is a full round trip.
func (c *TransactionList) Load(ctx context.Context, filter models.TransactionFilter) Phase {
	c.Filter = filter
	return c.State.Load(ctx, c.sess, "Transaction", func(ctx context.Context) ([]models.Transaction, error) {
		return c.svc.List(ctx, filter)
	})
}

// Reset clears every filter and refetches.
func (c *TransactionList) Reset(ctx context.Context) Phase {
	return c.Load(ctx, models.TransactionFilter{})
}

func (c *TransactionList) Empty() bool {
	return c.State.Ready() && len(c.State.Data()) == 0
}
