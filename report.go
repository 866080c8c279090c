package main

import (
	"html/template"
	"os"
	"path/filepath"
)

// Slide is one section of the report deck: a chart frame, a text block, or
// both.
type Slide struct {
	Title string
	Frame string // relative path to an embedded chart page
	Text  string
}

var deckTemplate = template.Must(template.New("deck").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; background: #fafafa; }
section.slide { min-height: 95vh; padding: 2em; border-bottom: 2px solid #ddd; }
section.slide h2 { color: #67000d; }
iframe { width: 100%; height: 700px; border: none; background: #fff; }
pre { background: #fff; padding: 1em; overflow-x: auto; }
</style>
</head>
<body>
{{range .Slides}}<section class="slide">
<h2>{{.Title}}</h2>
{{if .Frame}}<iframe src="{{.Frame}}"></iframe>
{{end}}{{if .Text}}<pre>{{.Text}}</pre>
{{end}}</section>
{{end}}</body>
</html>
`))

// WriteDeck assembles the slides into a single HTML deck file.
func WriteDeck(path, title string, slides []Slide) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	file, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer file.Close()

	data := struct {
		Title  string
		Slides []Slide
	}{Title: title, Slides: slides}
	if err := deckTemplate.Execute(file, data); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
