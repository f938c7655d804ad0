package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"admindash/apiclient"
	"admindash/config"
	"admindash/handlers"
	"admindash/middleware"
)

// Server represents the dashboard web server
type Server struct {
	cfg      config.Config
	router   *mux.Router
	store    sessions.Store
	handlers *handlers.Handler
}

// NewServer creates a new dashboard server talking to the backend through client
func NewServer(cfg config.Config, client *apiclient.Client, store sessions.Store) (*Server, error) {
	h, err := handlers.New(client)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:      cfg,
		router:   mux.NewRouter(),
		store:    store,
		handlers: h,
	}
	s.RegisterRoutes()
	return s, nil
}

// RegisterRoutes registers every screen of the dashboard
func (s *Server) RegisterRoutes() {
	r := s.router
	h := s.handlers

	r.Use(middleware.RequestLogger)
	r.Use(middleware.SessionMiddleware(s.store))

	cors := middleware.EnableCORS(s.cfg.CORSOrigins, s.cfg.Development())

	// Public routes
	r.Handle("/health", cors(http.HandlerFunc(handlers.HealthCheck))).Methods("GET", "OPTIONS")
	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/login", h.LoginPage).Methods("GET")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/register", h.RegisterPage).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("GET", "POST")

	// Gated screens; each redirects to /login without a token
	r.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	r.Handle("/dashboard/charts.json", cors(http.HandlerFunc(h.DashboardCharts))).Methods("GET", "OPTIONS")

	r.HandleFunc("/categories", h.Categories).Methods("GET")
	r.HandleFunc("/categories/add", h.CategoryForm).Methods("GET")
	r.HandleFunc("/categories/add", h.SaveCategory).Methods("POST")
	r.HandleFunc("/categories/{slug}/edit", h.CategoryForm).Methods("GET")
	r.HandleFunc("/categories/{slug}/edit", h.SaveCategory).Methods("POST")
	r.HandleFunc("/categories/{slug}/delete", h.ConfirmDeleteCategory).Methods("GET")
	r.HandleFunc("/categories/{slug}/delete", h.DeleteCategory).Methods("POST")

	r.HandleFunc("/products", h.Products).Methods("GET")
	r.HandleFunc("/products/{slug}", h.Product).Methods("GET")

	r.HandleFunc("/transactions", h.Transactions).Methods("GET")
	r.HandleFunc("/transactions/create", h.NewTransaction).Methods("GET")
	r.HandleFunc("/transactions/create", h.CreateTransaction).Methods("POST")

	r.HandleFunc("/profile", h.Profile).Methods("GET")
	r.HandleFunc("/profile", h.UpdateProfile).Methods("POST")
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.router
}
