package emmet

import (
	"fmt"
	"strings"
)

// properties maps abbreviation keys to CSS property names.
var properties = map[string]string{
	"m":   "margin",
	"mt":  "margin-top",
	"mr":  "margin-right",
	"mb":  "margin-bottom",
	"ml":  "margin-left",
	"p":   "padding",
	"pt":  "padding-top",
	"pr":  "padding-right",
	"pb":  "padding-bottom",
	"pl":  "padding-left",
	"w":   "width",
	"h":   "height",
	"maw": "max-width",
	"mah": "max-height",
	"miw": "min-width",
	"mih": "min-height",
	"t":   "top",
	"r":   "right",
	"b":   "bottom",
	"l":   "left",
	"d":   "display",
	"pos": "position",
	"z":   "z-index",
	"fl":  "float",
	"c":   "color",
	"bg":  "background",
	"bgc": "background-color",
	"bd":  "border",
	"bdr": "border-radius",
	"fz":  "font-size",
	"fw":  "font-weight",
	"ff":  "font-family",
	"lh":  "line-height",
	"ta":  "text-align",
	"td":  "text-decoration",
	"tt":  "text-transform",
	"ls":  "letter-spacing",
	"op":  "opacity",
	"ov":  "overflow",
	"v":   "visibility",
	"cur": "cursor",
	"ct":  "content",
	"fx":  "flex",
	"fxd": "flex-direction",
	"jc":  "justify-content",
	"ai":  "align-items",
	"g":   "gap",
}

// propertyDefaults supplies the placeholder a bare key's field carries.
var propertyDefaults = map[string]string{
	"display":         "block",
	"position":        "relative",
	"float":           "left",
	"overflow":        "hidden",
	"visibility":      "hidden",
	"cursor":          "pointer",
	"text-align":      "left",
	"text-decoration": "none",
	"text-transform":  "uppercase",
	"border":          "1px solid #000",
	"flex-direction":  "row",
	"justify-content": "center",
	"align-items":     "center",
}

// unitless properties take bare numbers instead of px.
var unitlessProperties = map[string]bool{
	"z-index":     true,
	"opacity":     true,
	"font-weight": true,
	"line-height": true,
	"flex":        true,
	"order":       true,
}

var unitAliases = map[string]string{
	"p": "%",
	"e": "em",
	"r": "rem",
	"x": "ex",
}

// Property is a parsed stylesheet abbreviation.
type Property struct {
	Name      string
	Values    []Value
	Important bool
}

// Value is one value slot. A slot with Missing set had no text in the
// abbreviation and renders as a tab-stop field.
type Value struct {
	Number  string
	Unit    string
	Missing bool
}

// ParseStylesheet parses a stylesheet abbreviation such as "m10-20" or
// "fz1.5". The property key is the leading run of letters; the remainder is
// a '-'-separated value list. A bare key, or a dangling separator, produces
// a missing value slot.
func ParseStylesheet(abbr string) (*Property, error) {
	rest, important := strings.CutSuffix(abbr, "!")

	i := 0
	for i < len(rest) && isAlpha(rest[i]) {
		i++
	}
	key := rest[:i]
	name, ok := properties[key]
	if !ok {
		return nil, fmt.Errorf("unknown property %q", key)
	}

	values, err := parseValues(rest[i:])
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", key, err)
	}
	return &Property{Name: name, Values: values, Important: important}, nil
}

func parseValues(src string) ([]Value, error) {
	if src == "" {
		return []Value{{Missing: true}}, nil
	}

	var values []Value
	i := 0
	for {
		value, n, err := parseValue(src[i:])
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		i += n
		if i == len(src) {
			return values, nil
		}
		if src[i] != '-' {
			return nil, fmt.Errorf("unexpected %q in value at offset %d", src[i], i)
		}
		i++ // separator
		if i == len(src) {
			// Dangling separator: the user has committed to another
			// value but not typed it yet.
			return append(values, Value{Missing: true}), nil
		}
	}
}

func parseValue(src string) (Value, int, error) {
	i := 0
	if i < len(src) && src[i] == '-' {
		i++
	}
	start := i
	for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
		i++
	}
	if start == i {
		return Value{}, 0, fmt.Errorf("expected number, got %q", src)
	}
	value := Value{Number: src[:i]}

	unitStart := i
	for i < len(src) && (isAlpha(src[i]) || src[i] == '%') {
		i++
	}
	if unit := src[unitStart:i]; unit != "" {
		if alias, ok := unitAliases[unit]; ok {
			unit = alias
		}
		value.Unit = unit
	}
	return value, i, nil
}

// SerializeStylesheet renders a parsed property as a declaration. Missing
// value slots become tab-stop fields; a bare key's field may carry a
// property-specific placeholder.
func SerializeStylesheet(prop *Property, opts Options) string {
	var sb strings.Builder
	sb.WriteString(prop.Name)
	sb.WriteString(": ")

	index := 1
	for i, value := range prop.Values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if value.Missing {
			placeholder := ""
			if len(prop.Values) == 1 {
				placeholder = propertyDefaults[prop.Name]
			}
			if opts.Field != nil {
				sb.WriteString(opts.Field(index, placeholder))
			} else {
				sb.WriteString(placeholder)
			}
			index++
			continue
		}
		sb.WriteString(value.Number)
		sb.WriteString(valueUnit(prop.Name, value))
	}

	if prop.Important {
		sb.WriteString(" !important")
	}
	sb.WriteByte(';')
	return sb.String()
}

func valueUnit(property string, value Value) string {
	if value.Unit != "" {
		return value.Unit
	}
	trimmed := strings.TrimPrefix(value.Number, "-")
	if trimmed == "0" || unitlessProperties[property] {
		return ""
	}
	if strings.Contains(value.Number, ".") {
		return "em"
	}
	return "px"
}
