// Package testutil provides an in-process fake of the REST backend for tests.
package testutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"admindash/models"
)

// Recorded is one request seen by the backend.
type Recorded struct {
	Method string
	Path   string
	Query  string
	Auth   string
}

type failure struct {
	status int
	body   string
}

type account struct {
	username string
	password string
}

// Backend mimics the REST API the dashboard talks to. All state is guarded by
// mu and may be seeded directly before issuing requests.
type Backend struct {
	Server *httptest.Server

	mu           sync.Mutex
	secret       []byte
	accounts     map[string]account
	Categories   []models.Category
	Products     []models.Product
	Transactions []models.Transaction
	Profile      models.Profile
	requests     []Recorded
	failures     map[string]failure
	nextID       int64
}

// NewBackend starts a seeded backend that is closed with the test.
func NewBackend(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		secret:   []byte("fake-backend-secret"),
		accounts: map[string]account{"admin@example.com": {username: "admin", password: "secret"}},
		failures: map[string]failure{},
		nextID:   100,
		Profile:  models.Profile{Email: "admin@example.com", FirstName: "Admin", Bio: ""},
	}
	b.Seed()

	b.Server = httptest.NewServer(b.router())
	t.Cleanup(b.Server.Close)
	return b
}

// Seed installs the default fixtures: two categories, three products (one in
// a category the backend no longer lists) and two sales on the same day.
func (b *Backend) Seed() {
	b.mu.Lock()
	defer b.mu.Unlock()

	day := time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)
	b.Categories = []models.Category{
		{ID: 1, Slug: "drinks", Name: "Drinks", Description: "Cold and hot drinks"},
		{ID: 2, Slug: "snacks", Name: "Snacks"},
	}
	b.Products = []models.Product{
		{ID: 1, Slug: "iced-tea", Name: "Iced Tea", Price: decimal.NewFromInt(5000), Stock: 10, Category: 1, CategoryName: "Drinks", UpdatedAt: models.Timestamp{Time: day}},
		{ID: 2, Slug: "coffee", Name: "Coffee", Price: decimal.NewFromInt(12000), Stock: 0, Category: 1, CategoryName: "Drinks", UpdatedAt: models.Timestamp{Time: day}},
		{ID: 3, Slug: "mystery", Name: "Mystery Box", Price: decimal.NewFromInt(1000), Stock: 3, Category: 99, UpdatedAt: models.Timestamp{Time: day}},
	}
	b.Transactions = []models.Transaction{
		{ID: 1, TransactionID: "TRX-00001", TransactionType: models.TransactionSale, Status: models.StatusCompleted, TotalAmount: decimal.NewFromInt(100), CreatedAt: models.Timestamp{Time: day}},
		{ID: 2, TransactionID: "TRX-00002", TransactionType: models.TransactionSale, Status: models.StatusPending, TotalAmount: decimal.NewFromInt(50), CreatedAt: models.Timestamp{Time: day.Add(2 * time.Hour)}},
	}
}

func (b *Backend) URL() string {
	return b.Server.URL
}

// IssueToken signs a token the backend accepts.
func (b *Backend) IssueToken(email string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.issue(email)
}

func (b *Backend) issue(email string) string {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
	if err != nil {
		panic(err)
	}
	return token
}

// RevokeTokens rotates the signing key so every issued token gets 401.
func (b *Backend) RevokeTokens() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.secret = []byte(fmt.Sprintf("rotated-%d", time.Now().UnixNano()))
}

// Fail makes every request to method+path answer status with body.
func (b *Backend) Fail(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, body: body}
}

func (b *Backend) Requests() []Recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Recorded(nil), b.requests...)
}

// CountRequests counts recorded requests for method and path.
func (b *Backend) CountRequests(method, path string) int {
	n := 0
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (b *Backend) router() http.Handler {
	r := mux.NewRouter()
	r.Use(b.record)

	r.HandleFunc("/api/login/", b.login).Methods(http.MethodPost)
	r.HandleFunc("/api/register/", b.register).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(b.authenticate)
	api.HandleFunc("/categories/", b.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/", b.createCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{slug}/", b.getCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories/{slug}/", b.updateCategory).Methods(http.MethodPut)
	api.HandleFunc("/categories/{slug}/", b.deleteCategory).Methods(http.MethodDelete)
	api.HandleFunc("/products/", b.listProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{slug}/", b.getProduct).Methods(http.MethodGet)
	api.HandleFunc("/transactions/", b.listTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions/", b.createTransaction).Methods(http.MethodPost)
	api.HandleFunc("/profile/", b.getProfile).Methods(http.MethodGet)
	api.HandleFunc("/profile/", b.updateProfile).Methods(http.MethodPut)
	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, Recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
		})
		f, failing := b.failures[r.Method+" "+r.URL.Path]
		b.mu.Unlock()

		if failing {
			w.WriteHeader(f.status)
			w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractToken(r.Header.Get("Authorization"))
		if tokenStr == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Authentication credentials were not provided."})
			return
		}

		b.mu.Lock()
		secret := b.secret
		b.mu.Unlock()

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken gets the token from the Authorization header
func extractToken(authHeader string) string {
	parts := strings.Split(authHeader, "Bearer ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Malformed request."})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	acct, ok := b.accounts[creds.Email]
	if !ok || acct.password != creds.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "No active account found with the given credentials"})
		return
	}
	writeJSON(w, http.StatusOK, models.TokenResponse{Access: b.issue(creds.Email)})
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Malformed request."})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.accounts[reg.Email]; exists {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"email": {"user with this email already exists."}})
		return
	}
	b.accounts[reg.Email] = account{username: reg.Username, password: reg.Password}
	writeJSON(w, http.StatusCreated, models.TokenResponse{Access: b.issue(reg.Email)})
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (b *Backend) listCategories(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []models.Category{}
	for _, c := range b.Categories {
		if name == "" || contains(c.Name, name) {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) findCategory(slug string) int {
	for i, c := range b.Categories {
		if c.Slug == slug {
			return i
		}
	}
	return -1
}

func (b *Backend) getCategory(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findCategory(mux.Vars(r)["slug"])
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	writeJSON(w, http.StatusOK, b.Categories[i])
}

func (b *Backend) createCategory(w http.ResponseWriter, r *http.Request) {
	var input models.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || strings.TrimSpace(input.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"name": {"This field may not be blank."}})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	slug := slugify(input.Name)
	if b.findCategory(slug) >= 0 {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"name": {"category with this name already exists."}})
		return
	}
	b.nextID++
	c := models.Category{ID: b.nextID, Slug: slug, Name: input.Name, Description: input.Description}
	b.Categories = append(b.Categories, c)
	writeJSON(w, http.StatusCreated, c)
}

func (b *Backend) updateCategory(w http.ResponseWriter, r *http.Request) {
	var input models.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || strings.TrimSpace(input.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"name": {"This field may not be blank."}})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findCategory(mux.Vars(r)["slug"])
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	b.Categories[i].Name = input.Name
	b.Categories[i].Description = input.Description
	writeJSON(w, http.StatusOK, b.Categories[i])
}

func (b *Backend) deleteCategory(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findCategory(mux.Vars(r)["slug"])
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	b.Categories = append(b.Categories[:i], b.Categories[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) listProducts(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []models.Product{}
	for _, p := range b.Products {
		if search == "" || contains(p.Name, search) || contains(p.Description, search) {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) getProduct(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.Products {
		if p.Slug == slug {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (b *Backend) listTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	txType := q.Get("transaction_type")
	status := q.Get("status")
	dateFrom := q.Get("date_from")
	dateTo := q.Get("date_to")

	b.mu.Lock()
	defer b.mu.Unlock()

	out := []models.Transaction{}
	for _, t := range b.Transactions {
		day := t.CreatedAt.Time.Format("2006-01-02")
		switch {
		case search != "" && !contains(t.TransactionID, search) && !contains(t.Notes, search):
		case txType != "" && string(t.TransactionType) != txType:
		case status != "" && string(t.Status) != status:
		case dateFrom != "" && day < dateFrom:
		case dateTo != "" && day > dateTo:
		default:
			out = append(out, t)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) createTransaction(w http.ResponseWriter, r *http.Request) {
	var input models.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Malformed request."})
		return
	}
	if len(input.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"items": {"This list may not be empty."}})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, item := range input.Items {
		if !b.hasProduct(item.Product) {
			writeJSON(w, http.StatusBadRequest, map[string][]string{
				"items": {fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", item.Product)},
			})
			return
		}
	}

	b.nextID++
	t := models.Transaction{
		ID:              b.nextID,
		TransactionID:   fmt.Sprintf("TRX-%05d", b.nextID),
		TransactionType: input.TransactionType,
		Status:          input.Status,
		Notes:           input.Notes,
		TotalAmount:     input.TotalAmount,
		CreatedAt:       models.Timestamp{Time: time.Now()},
		Items:           input.Items,
	}
	b.Transactions = append(b.Transactions, t)
	writeJSON(w, http.StatusCreated, t)
}

func (b *Backend) hasProduct(id int64) bool {
	for _, p := range b.Products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (b *Backend) getProfile(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.Profile)
}

func (b *Backend) updateProfile(w http.ResponseWriter, r *http.Request) {
	var input models.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Malformed request."})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Profile.FirstName = input.FirstName
	b.Profile.Bio = input.Bio
	writeJSON(w, http.StatusOK, b.Profile)
}
