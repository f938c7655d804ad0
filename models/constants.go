package models

// TransactionType values accepted by the backend
type TransactionType string

const (
	TransactionSale     TransactionType = "sale"
	TransactionPurchase TransactionType = "purchase"
)

// TransactionStatus values accepted by the backend
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusCancelled TransactionStatus = "cancelled"
)

// TransactionTypes lists the types in display order.
var TransactionTypes = []TransactionType{TransactionSale, TransactionPurchase}

// TransactionStatuses lists the statuses in display order.
var TransactionStatuses = []TransactionStatus{StatusPending, StatusCompleted, StatusCancelled}

// Label returns the display name; unknown values are shown as-is.
func (t TransactionType) Label() string {
	switch t {
	case TransactionSale:
		return "Sale"
	case TransactionPurchase:
		return "Purchase"
	default:
		return string(t)
	}
}

func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionPurchase
}

func (s TransactionStatus) Label() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusPending:
		return "Pending"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// BadgeClass is the CSS class used for the status badge in lists.
func (s TransactionStatus) BadgeClass() string {
	switch s {
	case StatusCompleted:
		return "badge-completed"
	case StatusPending:
		return "badge-pending"
	case StatusCancelled:
		return "badge-cancelled"
	default:
		return "badge-default"
	}
}

func (s TransactionStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}
