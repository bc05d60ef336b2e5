// Package rendering renders the homepage HTML from a template.
package rendering

import "fmt"

// TemplateError reports a page template that could not be read or parsed.
// Path is empty for the embedded default template.
type TemplateError struct {
	Path    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	msg := "template error: " + e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("template error (%s): %s", e.Path, e.Message)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *TemplateError) Unwrap() error { return e.Cause }

// RenderError reports a failure while filling a parsed template with page data.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause == nil {
		return "render error: " + e.Message
	}
	return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }
