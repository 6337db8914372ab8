package web

import (
	"io"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/view"
	"github.com/labstack/echo/v4"
)

// Renderer - view.Renderer в роли echo.Renderer
type Renderer struct {
	view *view.Renderer
}

func NewRenderer(v *view.Renderer) *Renderer {
	return &Renderer{view: v}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.view.Execute(w, name, data)
}
