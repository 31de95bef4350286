package pkg

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"
)

// DefaultPrefix is markdown heading used in front of interface names.
const DefaultPrefix = "##"

type section struct {
	Name   string
	Fields []Field
}

var tableTmpl = template.Must(template.New("table").Parse(
	"{{ range $idx, $section := .Sections }}{{ if $idx }}\n{{ end }}" +
		"{{ $.Prefix }} {{ $section.Name }}\n\n" +
		"| Field | Type |\n| --- | --- |\n" +
		"{{ range $section.Fields }}| {{ .Name }} | `{{ .Type }}` |\n{{ end }}" +
		"{{ end }}",
))

// sections sorts interfaces and their fields by name.
func sections(interfaces InterfaceMap) []section {
	names := make([]string, 0, len(interfaces))
	for name := range interfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	result := make([]section, 0, len(names))
	for _, name := range names {
		fields := make([]Field, 0, len(interfaces[name]))
		for fieldName, fieldType := range interfaces[name] {
			fields = append(fields, Field{Name: fieldName, Type: fieldType})
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
		result = append(result, section{Name: name, Fields: fields})
	}
	return result
}

// Render unpacks interfaces into markdown tables.
// Each interface gets its own heading with given prefix.
func Render(interfaces InterfaceMap, prefix string) (string, error) {
	var buf bytes.Buffer
	err := tableTmpl.Execute(&buf, struct {
		Prefix   string
		Sections []section
	}{Prefix: prefix, Sections: sections(interfaces)})
	if err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}
	return buf.String(), nil
}
