// Package services wraps each backend resource in a typed fetcher. Fetchers
// hold no state: every call is a full round trip.
package services

import "admindash/apiclient"

// Services bundles the fetchers for one session-bound client.
type Services struct {
	Auth         *Auth
	Categories   *Categories
	Products     *Products
	Transactions *Transactions
	Profile      *Profile
}

func New(client *apiclient.Client) *Services {
	return &Services{
		Auth:         NewAuth(client),
		Categories:   NewCategories(client),
		Products:     NewProducts(client),
		Transactions: NewTransactions(client),
		Profile:      NewProfile(client),
	}
}
