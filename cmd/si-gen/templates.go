package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"join": func(ss []string) string {
		quoted := make([]string, len(ss))
		for i, s := range ss {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return strings.Join(quoted, ", ")
	},
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	prefixesTmpl +
		unitsTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) error {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		return fmt.Errorf("template %s: %w", name, err)
	}
	return nil
}

const prefixesTmpl = `{{define "prefixes" -}}
// Code generated by si-gen. DO NOT EDIT.

package prefix
{{range .}}
// {{.Name}} is the prefix {{.Longform}} ({{.Shortform}}), 10^{{.Exponent}}.
type {{.Name}} struct{}

func ({{.Name}}) Exponent() int { return {{.Exponent}} }
func ({{.Name}}) Shortform() string { return {{quote .Shortform}} }
func ({{.Name}}) Longform() string { return {{quote .Longform}} }
{{end}}
var table = []Info{
{{- range .}}
{Name: {{quote .Name}}, Exponent: {{.Exponent}}, Shortform: {{quote .Shortform}}, Longform: {{quote .Longform}}
{{- if .Aliases}}, Aliases: []string{ {{- join .Aliases -}} }{{end}}},
{{- end}}
}
{{end}}`

const unitsTmpl = `{{define "units" -}}
// Code generated by si-gen. DO NOT EDIT.

package units

import (
"{{.Module}}/pkg/dimension"
"{{.Module}}/pkg/prefix"
"{{.Module}}/pkg/si"
)
{{range .Units}}
{{- $u := .}}
// {{.Def}} defines the {{.Longform}} ({{.Shortform}}), the base unit of {{.Dimension}}.
type {{.Def}} struct{}

func ({{.Def}}) Dimension() dimension.{{.DimType}} { return dimension.{{.DimType}}{} }
func ({{.Def}}) Shortform() string { return {{quote .Shortform}} }
func ({{.Def}}) Longform() string { return {{quote .Longform}} }

var _ si.Def[dimension.{{.DimType}}] = {{.Def}}{}

// Quantities of {{.Dimension}}.
type (
{{.Name}} = si.Base[dimension.{{.DimType}}, {{.Def}}]
{{- range .Prefixed}}
{{.Name}} = si.Prefix[dimension.{{$u.DimType}}, {{$u.Def}}, prefix.{{.Prefix}}]
{{- end}}
)
{{end -}}
{{end}}`
