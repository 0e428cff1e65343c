package tokens

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// IsRawColor is a predicate wether s is a concrete CSS color rather than
// the name of a utility color. Hex colors must be well-formed.
func IsRawColor(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) == 9 { // #rrggbbaa
			_, err := colorful.Hex(s[:7])
			return err == nil
		}
		_, err := colorful.Hex(s)
		return err == nil
	case strings.HasPrefix(s, "rgb("), strings.HasPrefix(s, "rgba("),
		strings.HasPrefix(s, "hsl("), strings.HasPrefix(s, "hsla("),
		strings.HasPrefix(s, "var("):
		return strings.HasSuffix(s, ")")
	case s == "transparent", s == "currentcolor", s == "inherit":
		return true
	}
	return false
}

// ResolveColor turns a named utility color (e.g. "blue-500", "white") into a
// concrete color string. Raw colors and names it does not know are returned
// unchanged.
func ResolveColor(name string) string {
	if IsRawColor(name) {
		return name
	}
	key := strings.TrimSpace(strings.ToLower(name))
	key = strings.TrimPrefix(key, "bg-")
	key = strings.TrimPrefix(key, "text-")
	if c, ok := utilityColors[key]; ok {
		return c
	}
	tracer().Debugf("tokens: cannot resolve color %q, passing through", name)
	return name
}

// utilityColors maps utility color names to hex values.
var utilityColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",

	"gray-50":  "#f9fafb",
	"gray-100": "#f3f4f6",
	"gray-200": "#e5e7eb",
	"gray-300": "#d1d5db",
	"gray-400": "#9ca3af",
	"gray-500": "#6b7280",
	"gray-600": "#4b5563",
	"gray-700": "#374151",
	"gray-800": "#1f2937",
	"gray-900": "#111827",

	"slate-100": "#f1f5f9",
	"slate-500": "#64748b",
	"slate-900": "#0f172a",

	"red-100": "#fee2e2",
	"red-500": "#ef4444",
	"red-700": "#b91c1c",

	"orange-100": "#ffedd5",
	"orange-500": "#f97316",
	"orange-700": "#c2410c",

	"amber-500":  "#f59e0b",
	"yellow-500": "#eab308",

	"green-100": "#dcfce7",
	"green-500": "#22c55e",
	"green-700": "#15803d",

	"emerald-500": "#10b981",
	"teal-500":    "#14b8a6",
	"cyan-500":    "#06b6d4",
	"sky-500":     "#0ea5e9",

	"blue-100": "#dbeafe",
	"blue-500": "#3b82f6",
	"blue-700": "#1d4ed8",

	"indigo-500": "#6366f1",
	"violet-500": "#8b5cf6",
	"purple-500": "#a855f7",
	"pink-500":   "#ec4899",
	"rose-500":   "#f43f5e",
}
