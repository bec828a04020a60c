// Package completion turns the line under the cursor into abbreviation
// completion candidates.
package completion

import (
	"slices"

	"github.com/acomagu/emmetls/langserver/internal/config"
	"github.com/acomagu/emmetls/langserver/internal/emmet"
	"github.com/sirupsen/logrus"
)

type Completor struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *Completor {
	return &Completor{logger: logger}
}

// Complete attempts every grammar routed for languageID against the
// abbreviation ending at pos on line. Each grammar contributes at most one
// item; a grammar that finds nothing, or whose expansion fails, contributes
// none.
func (c *Completor) Complete(line string, pos int, languageID string, cfg config.Config) []CompletionItem {
	var items []CompletionItem
	for _, syntax := range GrammarsFor(languageID, cfg) {
		abbr, ok := c.extract(line, pos, syntax)
		if !ok {
			continue
		}
		item, err := c.render(abbr, syntax)
		if err != nil {
			c.logger.WithError(err).WithFields(logrus.Fields{
				"abbreviation": abbr.Text,
				"syntax":       syntax.String(),
			}).Debug("failed to expand abbreviation")
			continue
		}
		items = append(items, item)
	}
	return items
}

// GrammarsFor selects the grammars to attempt for a language identifier. A
// language configured into both filetype lists yields both grammars; one
// configured into neither yields none, and no extraction happens at all.
func GrammarsFor(languageID string, cfg config.Config) []emmet.Syntax {
	var syntaxes []emmet.Syntax
	if slices.Contains(cfg.HTMLFiletypes, languageID) {
		syntaxes = append(syntaxes, emmet.Markup)
	}
	if slices.Contains(cfg.CSSFiletypes, languageID) {
		syntaxes = append(syntaxes, emmet.Stylesheet)
	}
	return syntaxes
}

// extract wraps the abbreviation scanner. A scanner that declines is the
// ordinary no-match outcome; a scanner that panics is a fault, logged and
// also reported as no match so the request never fails outright.
func (c *Completor) extract(line string, pos int, syntax emmet.Syntax) (abbr emmet.Abbreviation, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.WithFields(logrus.Fields{
				"panic":  r,
				"syntax": syntax.String(),
			}).Error("abbreviation scanner fault")
			abbr = emmet.Abbreviation{}
			ok = false
		}
	}()
	return emmet.ExtractAbbreviation(line, pos, syntax)
}
