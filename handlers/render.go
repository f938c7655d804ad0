package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"admindash/controllers"
	"admindash/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home",
	"login",
	"register",
	"dashboard",
	"categories",
	"category_form",
	"category_delete",
	"products",
	"product_detail",
	"transactions",
	"transaction_form",
	"profile",
}

// Screens rendered without the navbar and footer.
var chromeless = map[string]bool{
	"/":         true,
	"/login":    true,
	"/register": true,
}

var funcs = template.FuncMap{
	"money":      controllers.FormatMoney,
	"date":       controllers.FormatDate,
	"datetime":   controllers.FormatDateTime,
	"stockClass": controllers.StockClass,
	"inc":        func(i int) int { return i + 1 },
}

// page is what the layout sees. Data is the screen's controller.
type page struct {
	Title         string
	Chrome        bool
	Authenticated bool
	Flashes       []string
	Data          interface{}
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parsing template %s", name)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name, title string, data interface{}) {
	h.renderStatus(w, r, http.StatusOK, name, title, data)
}

func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, status int, name, title string, data interface{}) {
	tmpl, ok := h.pages[name]
	if !ok {
		zap.S().Errorw("unknown page", "page", name)
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}

	sess := middleware.SessionFromContext(r)
	p := page{
		Title:         title,
		Chrome:        !chromeless[r.URL.Path],
		Authenticated: sess.Authenticated(),
		Flashes:       middleware.FlasherFromContext(r).Flashes(),
		Data:          data,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		zap.S().Errorw("rendering page failed", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
