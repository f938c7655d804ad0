package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cast"

	"admindash/controllers"
	"admindash/models"
)

const transactionsPath = "/transactions"

// transactionsView adds the filter choices to the list controller.
type transactionsView struct {
	*controllers.TransactionList
	Types    []models.TransactionType
	Statuses []models.TransactionStatus
}

// Transactions lists transactions narrowed by the query string filters.
// ?reset=1 clears every filter.
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	list := controllers.NewTransactionList(sess, svc)

	q := r.URL.Query()
	if q.Get("reset") != "" {
		list.Reset(r.Context())
	} else {
		list.Load(r.Context(), models.TransactionFilter{
			Search:   strings.TrimSpace(q.Get("search")),
			Type:     models.TransactionType(q.Get("transaction_type")),
			Status:   models.TransactionStatus(q.Get("status")),
			DateFrom: strings.TrimSpace(q.Get("date_from")),
			DateTo:   strings.TrimSpace(q.Get("date_to")),
		})
	}
	if redirected(w, r, list.State) {
		return
	}
	h.render(w, r, "transactions", "Transactions", transactionsView{
		TransactionList: list,
		Types:           models.TransactionTypes,
		Statuses:        models.TransactionStatuses,
	})
}

// builderView adds the select choices to the builder.
type builderView struct {
	*controllers.TransactionBuilder
	Types    []models.TransactionType
	Statuses []models.TransactionStatus
}

func (h *Handler) renderBuilder(w http.ResponseWriter, r *http.Request, b *controllers.TransactionBuilder) {
	h.render(w, r, "transaction_form", "Create Transaction", builderView{
		TransactionBuilder: b,
		Types:              models.TransactionTypes,
		Statuses:           models.TransactionStatuses,
	})
}

func (h *Handler) NewTransaction(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	b := controllers.NewTransactionBuilder(sess, svc)
	b.LoadProducts(r.Context())
	if redirected(w, r, b.Products) {
		return
	}
	h.renderBuilder(w, r, b)
}

// CreateTransaction handles every button of the transaction form. The form
// posts back to itself: "add" and "remove-N" edit the lines, "submit" sends
// the transaction and anything else just recomputes prices and the total.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, svc := h.scope(r)
	b := controllers.NewTransactionBuilder(sess, svc)
	b.LoadProducts(r.Context())
	if redirected(w, r, b.Products) {
		return
	}
	applyForm(b, r)

	action := r.PostFormValue("action")
	switch {
	case action == "add":
		b.AddItem()
	case strings.HasPrefix(action, "remove-"):
		b.RemoveItem(cast.ToInt(strings.TrimPrefix(action, "remove-")))
	case action == "submit":
		err := b.Submit(r.Context())
		if redirected(w, r, b.Products) {
			return
		}
		if err == nil {
			flash(r, b.SuccessNotice())
			http.Redirect(w, r, transactionsPath, http.StatusSeeOther)
			return
		}
	}
	h.renderBuilder(w, r, b)
}

// applyForm copies the posted fields into b. A line whose product changed
// since the last render takes that product's current price.
func applyForm(b *controllers.TransactionBuilder, r *http.Request) {
	if t := models.TransactionType(r.PostFormValue("transaction_type")); t.Valid() {
		b.Type = t
	}
	if s := models.TransactionStatus(r.PostFormValue("status")); s.Valid() {
		b.Status = s
	}
	b.Notes = r.PostFormValue("notes")

	var (
		lines   []controllers.LineItem
		changed []int
	)
	for i := 0; ; i++ {
		key := fmt.Sprintf("items-%d-", i)
		if _, ok := r.PostForm[key+"product"]; !ok {
			break
		}
		line := controllers.ParseLine(
			r.PostFormValue(key+"product"),
			r.PostFormValue(key+"quantity"),
			r.PostFormValue(key+"unit_price"),
		)
		if line.Product != cast.ToInt64(r.PostFormValue(key+"prev_product")) {
			changed = append(changed, i)
		}
		lines = append(lines, line)
	}
	b.SetItems(lines)
	for _, i := range changed {
		b.SelectProduct(i, lines[i].Product)
	}
}
