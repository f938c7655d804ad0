package controllers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"admindash/apiclient"
	"admindash/models"
	"admindash/services"
	"admindash/session"
)

const msgProductRequired = "All items must have a product selected."

// LineItem is one row of the transaction form. Product 0 means unselected.
type LineItem struct {
	Product   int64
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func blankLine() LineItem {
	return LineItem{Quantity: 1, UnitPrice: decimal.Zero}
}

// ParseLine coerces raw form values into a line. Unparseable numbers become 0
// and are caught by validation on submit.
func ParseLine(product, quantity, unitPrice string) LineItem {
	line := blankLine()
	line.Product = parseWhole(product)
	line.Quantity = int(parseWhole(quantity))
	if price, err := decimal.NewFromString(strings.TrimSpace(unitPrice)); err == nil {
		line.UnitPrice = price
	} else {
		line.UnitPrice = decimal.NewFromFloat(cast.ToFloat64(strings.TrimSpace(unitPrice)))
	}
	return line
}

// parseWhole reads a base-10 integer, so "010" is 10. Decimal input such as
// "2.0" is truncated.
func parseWhole(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return int64(cast.ToFloat64(s))
}

// TransactionBuilder composes a new transaction from line items. The total is
// never stored: it is derived from the items on every read.
type TransactionBuilder struct {
	sess *session.Session
	svc  *services.Services

	Products *ViewState[[]models.Product]
	Type     models.TransactionType
	Status   models.TransactionStatus
	Notes    string
	Error    string
	Created  *models.Transaction

	items      []LineItem
	submitting bool
}

func NewTransactionBuilder(sess *session.Session, svc *services.Services) *TransactionBuilder {
	b := &TransactionBuilder{sess: sess, svc: svc, Products: NewViewState[[]models.Product]()}
	b.reset()
	return b
}

func (b *TransactionBuilder) reset() {
	b.items = []LineItem{blankLine()}
	b.Type = models.TransactionSale
	b.Status = models.StatusPending
	b.Notes = ""
}

// LoadProducts fetches the product choices used for selection and prices.
func (b *TransactionBuilder) LoadProducts(ctx context.Context) Phase {
	return b.Products.Load(ctx, b.sess, "Product", func(ctx context.Context) ([]models.Product, error) {
		return b.svc.Products.List(ctx, "")
	})
}

// Items returns a copy of the current lines.
func (b *TransactionBuilder) Items() []LineItem {
	return append([]LineItem(nil), b.items...)
}

// SetItems replaces the lines, keeping at least one.
func (b *TransactionBuilder) SetItems(items []LineItem) {
	if len(items) == 0 {
		b.items = []LineItem{blankLine()}
		return
	}
	b.items = append([]LineItem(nil), items...)
}

func (b *TransactionBuilder) AddItem() {
	b.items = append(b.items, blankLine())
}

// RemoveItem drops line i. The last remaining line is never removed.
func (b *TransactionBuilder) RemoveItem(i int) bool {
	if len(b.items) <= 1 || i < 0 || i >= len(b.items) {
		return false
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	return true
}

// SelectProduct sets line i's product and copies its current price from the
// loaded list. Unknown products leave the price alone.
func (b *TransactionBuilder) SelectProduct(i int, productID int64) {
	if i < 0 || i >= len(b.items) {
		return
	}
	b.items[i].Product = productID
	if productID == 0 {
		return
	}
	for _, p := range b.Products.Data() {
		if p.ID == productID {
			b.items[i].UnitPrice = p.Price
			return
		}
	}
}

func (b *TransactionBuilder) SetQuantity(i, quantity int) {
	if i >= 0 && i < len(b.items) {
		b.items[i].Quantity = quantity
	}
}

func (b *TransactionBuilder) SetUnitPrice(i int, price decimal.Decimal) {
	if i >= 0 && i < len(b.items) {
		b.items[i].UnitPrice = price
	}
}

// Total is Σ quantity × unit_price over the current lines.
func (b *TransactionBuilder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.items {
		total = total.Add(l.Subtotal())
	}
	return total
}

// CanSubmit is false while any line lacks a product or work is in flight.
func (b *TransactionBuilder) CanSubmit() bool {
	if b.submitting || b.Products.Loading() {
		return false
	}
	for _, l := range b.items {
		if l.Product == 0 {
			return false
		}
	}
	return true
}

// Input is the request body for the current form.
func (b *TransactionBuilder) Input() models.TransactionInput {
	items := make([]models.TransactionItem, 0, len(b.items))
	for _, l := range b.items {
		items = append(items, models.TransactionItem{Product: l.Product, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	return models.TransactionInput{
		TransactionType: b.Type,
		Status:          b.Status,
		Notes:           b.Notes,
		TotalAmount:     b.Total(),
		Items:           items,
	}
}

// Submit posts the transaction. Lines without a product are rejected before
// any request. On success the form resets to one blank line and Created holds
// the new transaction.
func (b *TransactionBuilder) Submit(ctx context.Context) error {
	b.Error = ""
	if !b.sess.Authenticated() {
		b.Products.Redirect()
		return &apiclient.Error{Kind: apiclient.KindUnauthorized}
	}
	if b.submitting {
		return fmt.Errorf("a submission is already in flight")
	}

	missing := map[string]string{}
	for i, l := range b.items {
		if l.Product == 0 {
			missing[fmt.Sprintf("items[%d].product", i)] = "This field is required."
		}
	}
	if len(missing) > 0 {
		b.Error = msgProductRequired
		return apiclient.ValidationError(missing)
	}

	b.submitting = true
	defer func() { b.submitting = false }()

	created, err := b.svc.Transactions.Create(ctx, b.Input())
	if err != nil {
		if !mutationFailed(b.sess, b.Products, err) {
			b.Error = submitError(err)
		}
		return err
	}

	b.Created = created
	b.reset()
	return nil
}

// SuccessNotice is the toast shown after a successful submit.
func (b *TransactionBuilder) SuccessNotice() string {
	if b.Created == nil {
		return ""
	}
	return "Transaction created successfully! ID: " + b.Created.DisplayCode()
}

func submitError(err error) string {
	apiErr, ok := apiclient.AsError(err)
	if !ok {
		return "An error occurred: " + err.Error()
	}
	switch apiErr.Kind {
	case apiclient.KindServerRejected, apiclient.KindValidationFailed:
		if lines := apiErr.FieldMessages(); lines != "" {
			return lines
		}
		if detail := apiErr.Detail(); detail != "" {
			return detail
		}
		return fmt.Sprintf("Error: %d", apiErr.Status)
	}
	return ErrorMessage(err, "Transaction")
}
