package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in templates. Kept in the binary so deployment never depends on a
// templates directory being mounted.
var builtinTemplates = map[string]string{
	"verification": `
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>¡Bienvenido a ChangaYa!</h2>
  <p>Para activar tu cuenta, confirmá tu email haciendo clic en el botón:</p>
  <p>
    <a href="{{.ActionURL}}"
       style="background: #f5a623; color: #fff; padding: 12px 24px; text-decoration: none; border-radius: 6px;">
      {{.ActionText}}
    </a>
  </p>
  <p>El enlace vence en 30 minutos. Si no creaste una cuenta, ignorá este correo.</p>
</body>
</html>`,

	"notification": `
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>{{.Subject}}</h2>
  <p>{{.Message}}</p>
</body>
</html>`,
}

// TemplateManager renders the built-in HTML templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range builtinTemplates {
		t, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		tm.templates[name] = t
	}

	return tm, nil
}

// Render produces the HTML body for one template.
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
