package emmet

import (
	"fmt"
	"strconv"
)

const maxRepeat = 1000

// Node is one element of a parsed markup abbreviation. A Node with an empty
// Name and no classes, id or attributes is either a grouping wrapper (it only
// carries Children) or, when HasText is set, a bare text node.
type Node struct {
	Name     string
	ID       string
	Classes  []string
	Attrs    []Attr
	Text     string
	HasText  bool
	Repeat   int // 0 when the node carries no multiplier
	Children []*Node
}

type Attr struct {
	Name     string
	Value    string
	HasValue bool
}

func (n *Node) isWrapper() bool {
	return n.Name == "" && n.ID == "" && len(n.Classes) == 0 && len(n.Attrs) == 0 && !n.HasText
}

// ParseMarkup parses a markup abbreviation into a tree. The returned root is
// a wrapper node; the abbreviation's top-level elements are its children.
func ParseMarkup(abbr string) (*Node, error) {
	p := &markupParser{src: abbr}
	root := &Node{}
	if err := p.parseSiblings(root); err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	if len(root.Children) == 0 {
		return nil, fmt.Errorf("empty abbreviation")
	}
	return root, nil
}

type markupParser struct {
	src string
	pos int
}

func (p *markupParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *markupParser) peek() byte {
	return p.src[p.pos]
}

// parseSiblings parses an operator-joined sequence of items into parent,
// stopping at end of input or a group-closing parenthesis.
func (p *markupParser) parseSiblings(parent *Node) error {
	parents := []*Node{parent}
	for {
		n, err := p.parseItem()
		if err != nil {
			return err
		}
		cur := parents[len(parents)-1]
		cur.Children = append(cur.Children, n)

		if p.eof() || p.peek() == ')' {
			return nil
		}
		switch op := p.src[p.pos]; op {
		case '>':
			p.pos++
			parents = append(parents, n)
		case '+':
			p.pos++
		case '^':
			for !p.eof() && p.peek() == '^' {
				p.pos++
				if len(parents) > 1 {
					parents = parents[:len(parents)-1]
				}
			}
		default:
			return fmt.Errorf("unexpected %q at offset %d", op, p.pos)
		}
	}
}

func (p *markupParser) parseItem() (*Node, error) {
	if !p.eof() && p.peek() == '(' {
		return p.parseGroup()
	}
	return p.parseElement()
}

func (p *markupParser) parseGroup() (*Node, error) {
	open := p.pos
	p.pos++ // '('
	n := &Node{}
	if err := p.parseSiblings(n); err != nil {
		return nil, err
	}
	if p.eof() || p.peek() != ')' {
		return nil, fmt.Errorf("unclosed group at offset %d", open)
	}
	p.pos++ // ')'
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("empty group at offset %d", open)
	}
	repeat, err := p.parseMultiplier()
	if err != nil {
		return nil, err
	}
	n.Repeat = repeat
	return n, nil
}

func (p *markupParser) parseElement() (*Node, error) {
	n := &Node{Name: p.readName()}

	for !p.eof() {
		switch p.peek() {
		case '.':
			p.pos++
			class := p.readWord()
			if class == "" {
				return nil, fmt.Errorf("missing class name at offset %d", p.pos)
			}
			n.Classes = append(n.Classes, class)
			continue
		case '#':
			p.pos++
			id := p.readWord()
			if id == "" {
				return nil, fmt.Errorf("missing id at offset %d", p.pos)
			}
			n.ID = id
			continue
		case '[':
			attrs, err := p.parseAttrs()
			if err != nil {
				return nil, err
			}
			n.Attrs = append(n.Attrs, attrs...)
			continue
		case '{':
			text, err := p.parseText()
			if err != nil {
				return nil, err
			}
			n.Text = text
			n.HasText = true
			continue
		}
		break
	}

	if n.Name == "" && n.ID == "" && len(n.Classes) == 0 && len(n.Attrs) == 0 && !n.HasText {
		return nil, fmt.Errorf("expected element at offset %d", p.pos)
	}

	repeat, err := p.parseMultiplier()
	if err != nil {
		return nil, err
	}
	n.Repeat = repeat
	return n, nil
}

func (p *markupParser) parseMultiplier() (int, error) {
	if p.eof() || p.peek() != '*' {
		return 0, nil
	}
	p.pos++
	start := p.pos
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("missing repeat count at offset %d", start)
	}
	count, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, fmt.Errorf("repeat count must be positive at offset %d", start)
	}
	if count > maxRepeat {
		return 0, fmt.Errorf("repeat count %d exceeds limit %d", count, maxRepeat)
	}
	return count, nil
}

func (p *markupParser) parseAttrs() ([]Attr, error) {
	open := p.pos
	p.pos++ // '['
	var attrs []Attr
	for {
		for !p.eof() && p.peek() == ' ' {
			p.pos++
		}
		if p.eof() {
			return nil, fmt.Errorf("unclosed attribute list at offset %d", open)
		}
		if p.peek() == ']' {
			p.pos++
			return attrs, nil
		}

		name := p.readWord()
		if name == "" {
			return nil, fmt.Errorf("invalid attribute at offset %d", p.pos)
		}
		attr := Attr{Name: name}
		if !p.eof() && p.peek() == '=' {
			p.pos++
			value, err := p.readAttrValue()
			if err != nil {
				return nil, err
			}
			attr.Value = value
			attr.HasValue = true
		}
		attrs = append(attrs, attr)
	}
}

func (p *markupParser) readAttrValue() (string, error) {
	if !p.eof() && (p.peek() == '"' || p.peek() == '\'') {
		quote := p.peek()
		open := p.pos
		p.pos++
		start := p.pos
		for !p.eof() && p.peek() != quote {
			p.pos++
		}
		if p.eof() {
			return "", fmt.Errorf("unclosed quote at offset %d", open)
		}
		value := p.src[start:p.pos]
		p.pos++
		return value, nil
	}
	start := p.pos
	for !p.eof() && p.peek() != ' ' && p.peek() != ']' {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *markupParser) parseText() (string, error) {
	open := p.pos
	p.pos++ // '{'
	start := p.pos
	depth := 1
	for !p.eof() {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				text := p.src[start:p.pos]
				p.pos++
				return text, nil
			}
		}
		p.pos++
	}
	return "", fmt.Errorf("unclosed text block at offset %d", open)
}

func (p *markupParser) readName() string {
	start := p.pos
	if !p.eof() && (isAlpha(p.peek()) || p.peek() == '!') {
		p.pos++
		for !p.eof() && isNameChar(p.peek()) {
			p.pos++
		}
	}
	return p.src[start:p.pos]
}

func (p *markupParser) readWord() string {
	start := p.pos
	for !p.eof() && isWordChar(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNameChar(c byte) bool {
	return isAlpha(c) || c >= '0' && c <= '9' || c == ':' || c == '-' || c == '_' || c == '$'
}

func isWordChar(c byte) bool {
	return isAlpha(c) || c >= '0' && c <= '9' || c == '-' || c == '_' || c == '$'
}
