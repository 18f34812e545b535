// web — рендеринг страниц. Слой намеренно тонкий: показывает результаты
// жизненного цикла сессии и ничего не решает сам.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/auth-frontend/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer — преднагретый набор шаблонов; страница исполняется по имени файла.
type Renderer struct {
	t *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("internal/web/NewRenderer: parse templates: %w", err)
	}

	return &Renderer{t: t}, nil
}

// Page пишет страницу name с кодом status.
// Ошибка исполнения после WriteHeader не восстановима — только лог.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := rn.t.ExecuteTemplate(w, name, data); err != nil {
		log.From(r.Context()).Error("render_failed",
			slog.String("template", name),
			slog.String("err", err.Error()),
		)
	}
}
