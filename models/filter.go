package models

// TransactionFilter holds the list filters for transactions. Empty fields are not sent.
// The backend ANDs all non-empty filters.
type TransactionFilter struct {
	Search   string            `json:"search,omitempty"`
	Type     TransactionType   `json:"transaction_type,omitempty"`
	Status   TransactionStatus `json:"status,omitempty"`
	DateFrom string            `json:"date_from,omitempty"` // YYYY-MM-DD
	DateTo   string            `json:"date_to,omitempty"`   // YYYY-MM-DD
}

// IsZero reports whether no filter is set.
func (f TransactionFilter) IsZero() bool {
	return f == TransactionFilter{}
}
