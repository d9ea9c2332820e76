package static

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/fjmerc/wifi-dashboard/internal/models"
)

//go:embed web/templates/*.html web/assets
var content embed.FS

// Template names
const (
	DashboardTemplate = "dashboard.html"
	LoginTemplate     = "login.html"
)

var funcs = template.FuncMap{
	"succeeded": func(a models.LoginAttempt) bool { return a.Successful() },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(content, "web/templates/*.html")
}

// FileSystem returns an http.FileSystem for the embedded CSS and JS assets
func FileSystem() http.FileSystem {
	// Strip the "web/assets" prefix from paths
	fsys, err := fs.Sub(content, "web/assets")
	if err != nil {
		panic(err)
	}
	return http.FS(fsys)
}

// Handler returns an http.Handler that serves the embedded assets.
// Mount it behind http.StripPrefix("/static", ...).
func Handler() http.Handler {
	return http.FileServer(FileSystem())
}
