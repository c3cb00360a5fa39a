package generate

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"sylgen/config"
)

// Values is a struct that holds variables we make available for name template
// expansion
type Values struct {
	Context   string
	Name      string
	Index     int
	Syllables int
}

// parseTemplate prepares name template. In addition to sprig functions
// template could call "name N" to get another N syllables name and "syllable"
// to get a single syllable, both formatted the same way as .Name
func parseTemplate(name config.TemplateFieldName, field string, n *namer) (*template.Template, error) {
	funcMap := sprig.FuncMap()
	funcMap["name"] = n.name
	funcMap["syllable"] = n.syllable

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return nil, fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	return tmpl, nil
}

func expandTemplate(tmpl *template.Template, values *Values) (string, error) {
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
