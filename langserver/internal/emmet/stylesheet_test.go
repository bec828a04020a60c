package emmet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandStylesheet(t *testing.T) {
	tests := map[string]struct {
		abbr          string
		expect        string
		expectPreview string
	}{
		"Integer value gets px": {
			abbr:          "m10",
			expect:        "margin: 10px;",
			expectPreview: "margin: 10px;",
		},
		"Multiple values": {
			abbr:          "m10-20",
			expect:        "margin: 10px 20px;",
			expectPreview: "margin: 10px 20px;",
		},
		"Negative value": {
			abbr:          "m-10",
			expect:        "margin: -10px;",
			expectPreview: "margin: -10px;",
		},
		"Negative second value": {
			abbr:          "m10--20",
			expect:        "margin: 10px -20px;",
			expectPreview: "margin: 10px -20px;",
		},
		"Dangling separator becomes a field": {
			abbr:          "m10-",
			expect:        "margin: 10px ${1};",
			expectPreview: "margin: 10px ;",
		},
		"Fractional value gets em": {
			abbr:          "fz1.5",
			expect:        "font-size: 1.5em;",
			expectPreview: "font-size: 1.5em;",
		},
		"Percent alias": {
			abbr:          "w100p",
			expect:        "width: 100%;",
			expectPreview: "width: 100%;",
		},
		"Rem alias": {
			abbr:          "m2r",
			expect:        "margin: 2rem;",
			expectPreview: "margin: 2rem;",
		},
		"Unitless property": {
			abbr:          "z10",
			expect:        "z-index: 10;",
			expectPreview: "z-index: 10;",
		},
		"Zero stays bare": {
			abbr:          "m0",
			expect:        "margin: 0;",
			expectPreview: "margin: 0;",
		},
		"Important": {
			abbr:          "p10!",
			expect:        "padding: 10px !important;",
			expectPreview: "padding: 10px !important;",
		},
		"Bare key with keyword placeholder": {
			abbr:          "d",
			expect:        "display: ${1:block};",
			expectPreview: "display: block;",
		},
		"Bare key without keyword placeholder": {
			abbr:          "w",
			expect:        "width: ${1};",
			expectPreview: "width: ;",
		},
		"Border shorthand placeholder": {
			abbr:          "bd",
			expect:        "border: ${1:1px solid #000};",
			expectPreview: "border: 1px solid #000;",
		},
	}

	for n, tt := range tests {
		t.Run(n, func(t *testing.T) {
			got, err := Expand(tt.abbr, Options{Syntax: Stylesheet, Field: testField})
			if err != nil {
				t.Fatalf("Expand error: %v", err)
			}
			if diff := cmp.Diff(tt.expect, got); diff != "" {
				t.Errorf("Expand result diff (-expect, +got)\n%s", diff)
			}

			preview, err := Expand(tt.abbr, Options{Syntax: Stylesheet})
			if err != nil {
				t.Fatalf("Expand error: %v", err)
			}
			if diff := cmp.Diff(tt.expectPreview, preview); diff != "" {
				t.Errorf("Expand preview diff (-expect, +got)\n%s", diff)
			}
		})
	}
}

func TestParseStylesheet_errors(t *testing.T) {
	tests := map[string]string{
		"Unknown property":    "qq10",
		"Value without digit": "m-",
		"Trailing letters":    "m10xyz10",
	}

	for n, abbr := range tests {
		t.Run(n, func(t *testing.T) {
			if _, err := Expand(abbr, Options{Syntax: Stylesheet, Field: testField}); err == nil {
				t.Errorf("Expand(%q) should return error", abbr)
			}
		})
	}
}
