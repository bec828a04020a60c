package completion

import (
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/acomagu/emmetls/langserver/internal/config"
	"github.com/acomagu/emmetls/langserver/internal/emmet"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func newTestCompletor() *Completor {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger)
}

func TestGrammarsFor(t *testing.T) {
	cfg := config.Config{
		HTMLFiletypes: []string{"html", "vue"},
		CSSFiletypes:  []string{"css", "vue"},
	}

	tests := map[string]struct {
		languageID string
		expect     []emmet.Syntax
	}{
		"Markup only":     {languageID: "html", expect: []emmet.Syntax{emmet.Markup}},
		"Stylesheet only": {languageID: "css", expect: []emmet.Syntax{emmet.Stylesheet}},
		"Both grammars":   {languageID: "vue", expect: []emmet.Syntax{emmet.Markup, emmet.Stylesheet}},
		"Neither grammar": {languageID: "go", expect: nil},
	}

	for n, tt := range tests {
		t.Run(n, func(t *testing.T) {
			got := GrammarsFor(tt.languageID, cfg)
			if diff := cmp.Diff(tt.expect, got); diff != "" {
				t.Errorf("GrammarsFor result diff (-expect, +got)\n%s", diff)
			}
		})
	}
}

func TestCompletor_Complete_markup(t *testing.T) {
	c := newTestCompletor()
	line := "div.container>ul>li*3"

	items := c.Complete(line, len(line), "html", config.Default())
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	item := items[0]

	if item.Abbreviation != "div.container>ul>li*3" {
		t.Errorf("abbreviation expected %q, got %q", "div.container>ul>li*3", item.Abbreviation)
	}
	if item.Start != 0 {
		t.Errorf("start expected 0, got %d", item.Start)
	}
	if !strings.Contains(item.Snippet, "${1") {
		t.Errorf("snippet should contain a first tab stop, got\n%s", item.Snippet)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(item.Preview))
	if err != nil {
		t.Fatalf("failed to parse preview: %v", err)
	}
	if got := doc.Find("div.container > ul > li").Length(); got != 3 {
		t.Errorf("expected 3 list items nested in div.container > ul, got %d:\n%s", got, item.Preview)
	}
}

func TestCompletor_Complete_stylesheet(t *testing.T) {
	c := newTestCompletor()

	items := c.Complete("m10-", 4, "css", config.Default())
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	item := items[0]

	if item.Abbreviation != "m10-" {
		t.Errorf("abbreviation expected %q, got %q", "m10-", item.Abbreviation)
	}
	expect := "margin: 10px ${1};"
	if item.Snippet != expect {
		t.Errorf("snippet expected %q, got %q", expect, item.Snippet)
	}
}

func TestCompletor_Complete_bothGrammars(t *testing.T) {
	c := newTestCompletor()
	cfg := config.Config{
		HTMLFiletypes: []string{"vue"},
		CSSFiletypes:  []string{"vue"},
	}

	// "m10" is a valid element name for markup and a margin shorthand for
	// stylesheet, so a language routed to both grammars gets two items.
	items := c.Complete("m10", 3, "vue", cfg)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Snippet == items[1].Snippet {
		t.Errorf("grammar attempts should be independent, both produced %q", items[0].Snippet)
	}
}

func TestCompletor_Complete_noMatch(t *testing.T) {
	c := newTestCompletor()

	tests := map[string]struct {
		line       string
		pos        int
		languageID string
	}{
		"Empty line":              {line: "", pos: 0, languageID: "html"},
		"Cursor at line start":    {line: "div", pos: 0, languageID: "html"},
		"Whitespace before":       {line: "   ", pos: 3, languageID: "html"},
		"Unrouted language":       {line: "div", pos: 3, languageID: "go"},
		"Unparsable abbreviation": {line: "div*", pos: 4, languageID: "html"},
		"Unknown css property":    {line: "qq10", pos: 4, languageID: "css"},
	}

	for n, tt := range tests {
		t.Run(n, func(t *testing.T) {
			items := c.Complete(tt.line, tt.pos, tt.languageID, config.Default())
			if len(items) != 0 {
				t.Errorf("expected no items, got %+v", items)
			}
		})
	}
}

func TestCompletor_Complete_idempotent(t *testing.T) {
	c := newTestCompletor()
	line := "ul>li*2"

	first := c.Complete(line, len(line), "html", config.Default())
	second := c.Complete(line, len(line), "html", config.Default())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Complete is not idempotent (-first, +second)\n%s", diff)
	}
}

func TestCompletor_extract_scannerFault(t *testing.T) {
	c := newTestCompletor()

	// An out-of-range position makes the scanner panic; the adapter must
	// contain it and report no match.
	abbr, ok := c.extract("abc", 99, emmet.Markup)
	if ok {
		t.Errorf("expected no match on scanner fault, got %+v", abbr)
	}
}

func TestCompletor_extract_scannerDecline(t *testing.T) {
	c := newTestCompletor()

	abbr, ok := c.extract("   ", 3, emmet.Markup)
	if ok {
		t.Errorf("expected scanner to decline, got %+v", abbr)
	}
}
