package tokens

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// tokenFile is the layout of a token configuration file:
//
//	palette:
//	  - name: Primary
//	    color: "#3b82f6"
//	styleGuide:
//	  borderRadius: 8px
type tokenFile struct {
	Palette    []PaletteEntry    `yaml:"palette"`
	StyleGuide map[string]string `yaml:"styleGuide"`
}

// LoadYAML reads a token configuration and creates a store from it. A
// missing palette section keeps the default palette; style-guide entries
// are overlaid over the default style guide. Further options are applied
// after the file contents.
func LoadYAML(r io.Reader, opts ...Option) (*Store, error) {
	var f tokenFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("tokens: cannot read token file: %w", err)
	}
	for i, e := range f.Palette {
		if e.Name == "" {
			return nil, fmt.Errorf("tokens: palette entry #%d has no name", i)
		}
	}
	var fileOpts []Option
	if len(f.Palette) > 0 {
		fileOpts = append(fileOpts, WithPalette(f.Palette))
	}
	if len(f.StyleGuide) > 0 {
		fileOpts = append(fileOpts, WithStyleGuide(f.StyleGuide))
	}
	return NewStore(append(fileOpts, opts...)...), nil
}
