package page

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

const Name = "index.html"

// View is everything the page shows. Nothing carries over between page loads, so regions a request didn't touch
// render empty.
type View struct {
	Question     string
	Answer       string
	UploadStatus string
}

func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}
