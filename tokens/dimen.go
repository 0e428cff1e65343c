package tokens

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

var absoluteUnits = map[string]bool{
	"px": true, "pt": true, "pc": true, "cm": true, "mm": true, "in": true,
}

var relativeUnits = map[string]uint32{
	"em": dimenEM, "ex": dimenEX, "ch": dimenCH, "rem": dimenREM,
	"vw": dimenVW, "vh": dimenVH, "vmin": dimenVMIN, "vmax": dimenVMAX,
	"%": dimenPercent,
}

// Dimen is an option type for CSS dimensions as they appear in style-guide
// values, e.g. "8px", "1.5rem", "50%" or "auto".
type Dimen struct {
	value float64
	unit  string
	flags uint32
}

/*
type Dimen
	= Auto
	| Inherit
	| Initial
	| Just value unit
	| Relative value unit
*/

func Auto() Dimen {
	return Dimen{flags: dimenAuto}
}

func Inherit() Dimen {
	return Dimen{flags: dimenInherit}
}

func Initial() Dimen {
	return Dimen{flags: dimenInitial}
}

// Just creates a dimension with a fixed value in an absolute unit.
func Just(x float64, unit string) Dimen {
	return Dimen{value: x, unit: unit, flags: dimenAbsolute}
}

// Percentage creates a %-relative dimension.
func Percentage(p float64) Dimen {
	return Dimen{value: p, unit: "%", flags: dimenPercent}
}

// ParseDimen parses a single CSS dimension. A unitless zero is a fixed
// dimension.
func ParseDimen(s string) (Dimen, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "":
		return Dimen{}, fmt.Errorf("empty dimension")
	}
	i := strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r == '.' || r == '-' || r == '+')
	})
	num, unit := s, ""
	if i >= 0 {
		num, unit = s[:i], s[i:]
	}
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Dimen{}, fmt.Errorf("not a dimension: %q", s)
	}
	switch {
	case unit == "" && x == 0:
		return Just(0, "px"), nil
	case absoluteUnits[unit]:
		return Just(x, unit), nil
	case relativeUnits[unit] != dimenNone:
		return Dimen{value: x, unit: unit, flags: relativeUnits[unit]}, nil
	}
	return Dimen{}, fmt.Errorf("unknown unit in dimension %q", s)
}

// IsDimensionList is a predicate wether v is a space separated list of CSS
// dimensions, like "12px 24px".
func IsDimensionList(v string) bool {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if _, err := ParseDimen(f); err != nil {
			return false
		}
	}
	return true
}

func (d Dimen) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	}
	return strconv.FormatFloat(d.value, 'f', -1, 64) + d.unit
}

// ---------------------------------------------------------------------------

func (d Dimen) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches dimensions in switch statements:
//
//	switch m := d.Match(); m {
//	case m.Just(&x):
//	case m.IsKind(tokens.Auto()):
//	}
type Matcher struct {
	dimen Dimen
}

func (m *Matcher) IsKind(d Dimen) *Matcher {
	switch {
	case (m.dimen.flags&kindMask > 0) && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	}
	return nil
}

func (m *Matcher) Just(x *float64) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if x != nil {
			*x = m.dimen.value
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.value
		}
		return m
	}
	return nil
}

// checkDimensions checks a style-guide value against the kind of key it is
// set for. Token references and CSS functions like calc() are not checked.
// Widths may be "auto" but not percentages; radii, paddings and gaps may be
// percentages but not "auto".
func checkDimensions(v string, kind valueKind) error {
	switch kind {
	case kindRadius, kindPadding, kindGap, kindWidth:
	default:
		return nil
	}
	if IsPaletteRef(v) || IsStyleRef(v) || strings.ContainsAny(v, "()") || strings.TrimSpace(v) == "" {
		return nil
	}
	for _, f := range strings.Fields(v) {
		d, err := ParseDimen(f)
		if err != nil {
			return err
		}
		switch m := d.Match(); m {
		case m.Just(nil):
		case m.IsKind(Auto()):
			if kind != kindWidth {
				return fmt.Errorf("%q: auto is allowed for widths only", v)
			}
		case m.Percentage(nil):
			if kind == kindWidth {
				return fmt.Errorf("%q: widths must not be percentages", v)
			}
		case m.IsKind(Inherit()), m.IsKind(Initial()):
		}
	}
	return nil
}
