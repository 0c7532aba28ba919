package views

import (
	"embed"
	"html/template"

	"ohio-order/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

func Funcs() template.FuncMap {
	return template.FuncMap{
		"rupiah": utils.FormatRupiah,
	}
}

// Load parses the embedded page templates for gin's HTML renderer.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}
