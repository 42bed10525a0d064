// Package views holds the HTML templates, embedded into the binary.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var files embed.FS

// MainLayout is the layout every page renders into.
const MainLayout = "layouts/main"

// NewEngine returns the fiber view engine over the embedded templates.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
