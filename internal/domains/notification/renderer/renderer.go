package renderer

//go:generate go run go.uber.org/mock/mockgen -source=./renderer.go -destination=../mocks/renderer_mock.go -package=mocks

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmlTemplate "html/template"
	"strings"
	textTemplate "text/template"

	"frontdesk/internal/domains/notification/model"
)

const (
	blockSubject = "subject"
	blockText    = "text"
	blockHTML    = "html"

	missingKeyOption = "missingkey=zero"
)

var ErrUnknownTemplate = errors.New("unknown notification template")

//go:embed templates/*.tmpl
var templates embed.FS

type Renderer interface {
	Render(template model.Template, data map[string]string) (model.Rendered, error)
}

type entry struct {
	text *textTemplate.Template
	html *htmlTemplate.Template
}

type rendererImpl struct {
	entries map[model.Template]entry
}

// New parses every embedded template. Each file defines a subject, a text
// and an html block; the html block is escaped, the others are not.
func New() (Renderer, error) {
	files, err := templates.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading notification templates: %w", err)
	}

	entries := make(map[model.Template]entry, len(files))

	for _, file := range files {
		path := "templates/" + file.Name()
		name := model.Template(strings.TrimSuffix(file.Name(), ".tmpl"))

		text, err := textTemplate.New(file.Name()).Option(missingKeyOption).ParseFS(templates, path)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		html, err := htmlTemplate.New(file.Name()).Option(missingKeyOption).ParseFS(templates, path)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		entries[name] = entry{text: text, html: html}
	}

	return &rendererImpl{entries: entries}, nil
}

func (r *rendererImpl) Render(template model.Template, data map[string]string) (res model.Rendered, err error) {
	tmpl, ok := r.entries[template]
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrUnknownTemplate, template)
	}

	if data == nil {
		data = map[string]string{}
	}

	var buf bytes.Buffer

	if err = tmpl.text.ExecuteTemplate(&buf, blockSubject, data); err != nil {
		return res, fmt.Errorf("rendering %s subject: %w", template, err)
	}

	res.Subject = strings.TrimSpace(buf.String())
	buf.Reset()

	if err = tmpl.text.ExecuteTemplate(&buf, blockText, data); err != nil {
		return res, fmt.Errorf("rendering %s text: %w", template, err)
	}

	res.Text = strings.TrimSpace(buf.String())
	buf.Reset()

	if err = tmpl.html.ExecuteTemplate(&buf, blockHTML, data); err != nil {
		return res, fmt.Errorf("rendering %s html: %w", template, err)
	}

	res.HTML = strings.TrimSpace(buf.String())

	return res, nil
}
