package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/scholar-homepage/internal/types"
)

// defaultTemplateName is the embedded template used when no template path is given.
const defaultTemplateName = "templates/homepage.html.tmpl"

//go:embed templates/*.tmpl
var templateFiles embed.FS

// TemplateData represents the data structure passed to the page template
type TemplateData struct {
	Info       map[string]any
	Bio        any
	Edu        any
	Activities []any
	Papers     []types.Publication
	Preprints  []types.Publication
	Stats      types.Stats
}

// NewTemplateData binds the site config blocks, classified records and stats.
// Activities default to an empty list.
func NewTemplateData(site *types.SiteConfig, papers, preprints []types.Publication, stats types.Stats) *TemplateData {
	data := &TemplateData{
		Activities: []any{},
		Papers:     papers,
		Preprints:  preprints,
		Stats:      stats,
	}
	if site != nil {
		data.Info = site.Info
		data.Bio = site.Bio
		data.Edu = site.Education
		data.Activities = site.ActivitiesOrEmpty()
	}
	if data.Papers == nil {
		data.Papers = []types.Publication{}
	}
	if data.Preprints == nil {
		data.Preprints = []types.Publication{}
	}
	return data
}

// RenderHTML renders the page. An empty templatePath selects the embedded
// default template.
func RenderHTML(data *TemplateData, templatePath string) (string, error) {
	if data == nil {
		return "", &RenderError{Message: "no template data"}
	}

	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &RenderError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate reads and parses a page template file, or the embedded default
func parseTemplate(templatePath string) (*template.Template, error) {
	var content []byte
	var err error
	if templatePath == "" {
		content, err = templateFiles.ReadFile(defaultTemplateName)
	} else {
		content, err = os.ReadFile(templatePath)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Path:    templatePath,
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Path:    templatePath,
			Message: "failed to read template file",
			Cause:   err,
		}
	}

	tmpl, err := template.New("homepage").Funcs(funcMap).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Path:    templatePath,
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}
