package actionresult

import (
	"fmt"
	"html/template"
	"io"
)

// TemplateViews renders views with html/template. Each view is the template with the view's
// name; partial views are looked up the same way.
//
// The data passed to a template is the ViewRequest, so templates refer to .Model, .ViewData and
// .TempData.
type TemplateViews struct {
	Templates *template.Template
}

func (v TemplateViews) Render(w io.Writer, view ViewRequest) error {
	if v.Templates == nil {
		return ErrNoViewEngine
	}
	t := v.Templates.Lookup(view.Name)
	if t == nil {
		return fmt.Errorf("no template named %q", view.Name)
	}
	return t.Execute(w, view)
}
