package handlers

import (
	"net/http"

	"admindash/controllers"
)

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	d := controllers.NewDashboard(sess, svc)
	d.Load(r.Context())
	if redirected(w, r, d.State) {
		return
	}
	h.render(w, r, "dashboard", "Dashboard", d)
}

// DashboardCharts serves the dashboard figures as JSON for chart widgets.
func (h *Handler) DashboardCharts(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	d := controllers.NewDashboard(sess, svc)
	switch d.Load(r.Context()) {
	case controllers.PhaseReady:
		writeJSON(w, http.StatusOK, d.State.Data())
	case controllers.PhaseRedirect:
		detail := "Authentication credentials were not provided."
		if d.State.Expired() {
			detail = controllers.ErrorMessage(d.State.Err(), "")
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": detail})
	default:
		writeJSON(w, http.StatusBadGateway, map[string]string{"detail": d.State.Message()})
	}
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
