package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"admindash/controllers"
)

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	list := controllers.NewProductList(sess, svc)
	list.Load(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
	if redirected(w, r, list.State) {
		return
	}
	h.render(w, r, "products", "Products", list)
}

func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	detail := controllers.NewProductDetail(sess, svc, mux.Vars(r)["slug"])
	detail.Load(r.Context())
	if redirected(w, r, detail.State) {
		return
	}
	h.render(w, r, "product_detail", "Product", detail)
}
