package sheet

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Declaration is one custom-property declaration of a token sheet.
type Declaration struct {
	Selector string // e.g. ":root"
	Property string // e.g. "--ph-primary"
	Value    string // e.g. "#3b82f6"
}

// Declarations parses a token sheet and returns its declarations in
// document order. At-rules are skipped.
func Declarations(content string) ([]Declaration, error) {
	sheet, err := parser.Parse(content)
	if err != nil {
		return nil, err
	}
	var decls []Declaration
	for _, r := range sheet.Rules {
		if r.Kind == css.AtRule {
			continue
		}
		sel := strings.TrimSpace(r.Prelude)
		for _, d := range r.Declarations {
			decls = append(decls, Declaration{
				Selector: sel,
				Property: d.Property,
				Value:    d.Value,
			})
		}
	}
	return decls, nil
}

// Variables parses a token sheet and returns its custom properties as a
// map. Later declarations win.
func Variables(content string) (map[string]string, error) {
	decls, err := Declarations(content)
	if err != nil {
		return nil, err
	}
	vars := make(map[string]string, len(decls))
	for _, d := range decls {
		if strings.HasPrefix(d.Property, "--") {
			vars[d.Property] = d.Value
		}
	}
	return vars, nil
}
