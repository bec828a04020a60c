package emmet

import (
	"fmt"
	"strings"
)

// voidElements render without a closing tag and cannot hold content.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// implicitNames resolves nameless elements from their parent tag.
var implicitNames = map[string]string{
	"ul": "li", "ol": "li",
	"table": "tr", "thead": "tr", "tbody": "tr", "tfoot": "tr",
	"tr": "td",
	"select": "option", "optgroup": "option",
}

// defaultAttrs supplies the attributes a bare tag is expected to carry. An
// entry without a value renders as a tab-stop field.
var defaultAttrs = map[string][]Attr{
	"a":      {{Name: "href"}},
	"img":    {{Name: "src"}, {Name: "alt"}},
	"input":  {{Name: "type"}},
	"label":  {{Name: "for"}},
	"link":   {{Name: "rel", Value: "stylesheet", HasValue: true}, {Name: "href"}},
	"script": {{Name: "src"}},
	"source": {{Name: "src"}},
	"iframe": {{Name: "src"}, {Name: "frameborder", Value: "0", HasValue: true}},
}

type numbering struct {
	active bool
	index  int
	total  int
}

type renderUnit struct {
	node *Node
	num  numbering
}

// SerializeMarkup renders a parsed markup tree. Tab-stop indices are
// allocated in document order starting at 1.
func SerializeMarkup(root *Node, opts Options) (string, error) {
	w := &markupWriter{opts: opts, index: 1}
	units := flattenNodes(root.Children, numbering{})
	if err := w.writeUnits(units, "", 0); err != nil {
		return "", err
	}
	return w.sb.String(), nil
}

// flattenNodes expands multipliers and grouping wrappers into the flat list
// of elements a level renders.
func flattenNodes(nodes []*Node, num numbering) []renderUnit {
	var units []renderUnit
	for _, n := range nodes {
		if n.Repeat > 0 {
			for i := 1; i <= n.Repeat; i++ {
				units = append(units, expandNode(n, numbering{active: true, index: i, total: n.Repeat})...)
			}
			continue
		}
		units = append(units, expandNode(n, num)...)
	}
	return units
}

func expandNode(n *Node, num numbering) []renderUnit {
	if n.isWrapper() {
		return flattenNodes(n.Children, num)
	}
	return []renderUnit{{node: n, num: num}}
}

type markupWriter struct {
	sb    strings.Builder
	opts  Options
	index int
}

func (w *markupWriter) field(placeholder string) string {
	index := w.index
	w.index++
	if w.opts.Field == nil {
		return placeholder
	}
	return w.opts.Field(index, placeholder)
}

func (w *markupWriter) text(s string) string {
	if w.opts.Text == nil {
		return s
	}
	return w.opts.Text(s)
}

func (w *markupWriter) writeAttr(name, value string) {
	w.sb.WriteByte(' ')
	w.sb.WriteString(name)
	w.sb.WriteString(`="`)
	w.sb.WriteString(value)
	w.sb.WriteByte('"')
}

func (w *markupWriter) writeUnits(units []renderUnit, parentName string, indent int) error {
	for i, u := range units {
		if i > 0 {
			w.newline(indent)
		}
		if err := w.writeNode(u, parentName, indent); err != nil {
			return err
		}
	}
	return nil
}

func (w *markupWriter) newline(indent int) {
	w.sb.WriteByte('\n')
	w.sb.WriteString(strings.Repeat("\t", indent))
}

func (w *markupWriter) writeNode(u renderUnit, parentName string, indent int) error {
	n := u.node

	if n.Name == "" && n.ID == "" && len(n.Classes) == 0 && len(n.Attrs) == 0 && n.HasText {
		w.sb.WriteString(w.text(applyNumbering(n.Text, u.num)))
		return w.writeNested(n, "", indent, u.num, len(n.Children) > 0)
	}

	name := applyNumbering(n.Name, u.num)
	if name == "" {
		name = implicitNames[parentName]
		if name == "" {
			name = "div"
		}
	}
	if name == "!" {
		return w.writeDoctype(n, indent)
	}

	w.sb.WriteByte('<')
	w.sb.WriteString(name)
	if n.ID != "" {
		w.writeAttr("id", w.text(applyNumbering(n.ID, u.num)))
	}
	if len(n.Classes) > 0 {
		classes := make([]string, len(n.Classes))
		for i, class := range n.Classes {
			classes[i] = w.text(applyNumbering(class, u.num))
		}
		w.writeAttr("class", strings.Join(classes, " "))
	}
	for _, attr := range mergeAttrs(defaultAttrs[name], n.Attrs) {
		value := w.field("")
		if attr.HasValue {
			value = w.text(applyNumbering(attr.Value, u.num))
		}
		w.writeAttr(attr.Name, value)
	}

	if voidElements[name] {
		if len(n.Children) > 0 || n.HasText {
			return fmt.Errorf("element <%s> cannot have content", name)
		}
		w.sb.WriteByte('>')
		return nil
	}
	w.sb.WriteByte('>')

	if n.HasText {
		w.sb.WriteString(w.text(applyNumbering(n.Text, u.num)))
	} else if len(n.Children) == 0 {
		w.sb.WriteString(w.field(""))
	}
	if err := w.writeNested(n, name, indent, u.num, len(n.Children) > 0); err != nil {
		return err
	}
	if len(n.Children) > 0 {
		w.newline(indent)
	}
	w.sb.WriteString("</")
	w.sb.WriteString(name)
	w.sb.WriteByte('>')
	return nil
}

func (w *markupWriter) writeNested(n *Node, name string, indent int, num numbering, present bool) error {
	if !present {
		return nil
	}
	units := flattenNodes(n.Children, num)
	for _, u := range units {
		w.newline(indent + 1)
		if err := w.writeNode(u, name, indent+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *markupWriter) writeDoctype(n *Node, indent int) error {
	if len(n.Children) > 0 || n.HasText || indent > 0 {
		return fmt.Errorf("%q is only valid as a bare top-level abbreviation", "!")
	}
	lines := []string{
		"<!DOCTYPE html>",
		"<html lang=\"" + w.field("en") + "\">",
		"<head>",
		"\t<meta charset=\"" + w.field("UTF-8") + "\">",
		"\t<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">",
		"\t<title>" + w.field("Document") + "</title>",
		"</head>",
		"<body>",
		"\t" + w.field(""),
		"</body>",
		"</html>",
	}
	w.sb.WriteString(strings.Join(lines, "\n"))
	return nil
}

// mergeAttrs prepends the tag's default attributes, dropping any default the
// abbreviation supplies itself.
func mergeAttrs(defaults, attrs []Attr) []Attr {
	if len(defaults) == 0 {
		return attrs
	}
	merged := make([]Attr, 0, len(defaults)+len(attrs))
	for _, def := range defaults {
		overridden := false
		for _, attr := range attrs {
			if attr.Name == def.Name {
				overridden = true
				break
			}
		}
		if !overridden {
			merged = append(merged, def)
		}
	}
	return append(merged, attrs...)
}

// applyNumbering replaces each run of '$' with the repetition index, padded
// with zeroes to the run's length. Inactive numbering leaves text untouched.
func applyNumbering(s string, num numbering) string {
	if !num.active || !strings.ContainsRune(s, '$') {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '$' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		run := 0
		for i < len(s) && s[i] == '$' {
			run++
			i++
		}
		fmt.Fprintf(&sb, "%0*d", run, num.index)
	}
	return sb.String()
}
