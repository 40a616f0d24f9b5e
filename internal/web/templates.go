package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	inquiryModel "impressions/internal/domains/inquiry/model"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageGlob        = "templates/*.html"
	layoutGlob      = "templates/layouts/*.html"
	templatePageExt = ".html"
)

// TemplateCache holds every page parsed together with the shared layouts.
type TemplateCache struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
	funcs template.FuncMap
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		cache: make(map[string]*template.Template),
		funcs: template.FuncMap{
			"statusLabel": statusLabel,
			"statuses":    inquiryModel.Statuses,
			"initial":     initial,
		},
	}
}

func (tc *TemplateCache) AddFunc(name string, fn any) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.funcs[name] = fn
}

// Load parses every page in fsys. Each page is parsed with all layouts so it can
// pick its own.
func (tc *TemplateCache) Load(fsys fs.FS) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	pages, err := fs.Glob(fsys, pageGlob)
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), templatePageExt)

		tmpl, err := template.New(path.Base(page)).Funcs(tc.funcs).ParseFS(fsys, page, layoutGlob)
		if err != nil {
			log.Error().Err(err).Str("file", page).Msg("failed to parse template")

			return fmt.Errorf("failed to parse template %s: %w", page, err)
		}

		tc.cache[name] = tmpl

		log.Debug().Str("name", name).Msg("cached template")
	}

	return nil
}

func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	return tc.cache[name]
}

func statusLabel(status inquiryModel.Status) string {
	if status == "" {
		return ""
	}

	return strings.ToUpper(string(status[:1])) + string(status[1:])
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}

	return ""
}
