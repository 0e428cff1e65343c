package tokens_test

import (
	"testing"

	"github.com/npillmayer/pagetree/tokens"
)

func TestDimenBasic(t *testing.T) {
	ten, err := tokens.ParseDimen("10pt")
	if err != nil {
		t.Fatal(err)
	}
	var x float64
	switch m := ten.Match(); m {
	case m.Just(&x):
		t.Logf("x = %g", x)
	default:
		t.Errorf("expected 10pt to be a fixed value, isn't: %#v", ten)
	}
	if x != 10 {
		t.Errorf("expected value 10, is %g", x)
	}

	auto, _ := tokens.ParseDimen("auto")
	switch m := auto.Match(); m {
	case m.Just(nil):
		t.Errorf("expected auto not to be a fixed value")
	case m.IsKind(tokens.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt, _ := tokens.ParseDimen("80%")
	var p float64
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %g", p)
	default:
		t.Errorf("expected 80%% to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestDimenKinds(t *testing.T) {
	rem, _ := tokens.ParseDimen("1.5rem")
	if rem.Match().IsKind(tokens.Percentage(50)) != nil {
		t.Error("expected rem not to match a percentage")
	}
	if inh := tokens.Inherit(); inh.Match().Just(nil) != nil {
		t.Error("expected inherit not to be a fixed value")
	}
	if s := rem.String(); s != "1.5rem" {
		t.Errorf("expected 1.5rem, is %s", s)
	}
}

func TestParseDimenErrors(t *testing.T) {
	for _, s := range []string{"", "px", "12", "12parsecs", "font-sans"} {
		if _, err := tokens.ParseDimen(s); err == nil {
			t.Errorf("expected %q not to parse as a dimension", s)
		}
	}
	if _, err := tokens.ParseDimen("0"); err != nil {
		t.Errorf("expected unitless zero to be a dimension, got %v", err)
	}
}

func TestIsDimensionList(t *testing.T) {
	for v, want := range map[string]bool{
		"12px 24px":   true,
		"8px":         true,
		"0 auto":      true,
		"":            false,
		"shadow-md":   false,
		"12px bolder": false,
	} {
		if got := tokens.IsDimensionList(v); got != want {
			t.Errorf("IsDimensionList(%q): expected %v, is %v", v, want, got)
		}
	}
}

func TestTailwindNegativeDimension(t *testing.T) {
	if got := tokens.ToTailwindArbitraryValue("-4px", "mt"); got != "mt-[-4px]" {
		t.Errorf("expected mt-[-4px], is %s", got)
	}
}
