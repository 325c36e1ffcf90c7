// Package lootifier converts a load order into a LOOT userlist.
//
// A Lootifier holds the filtered plugin list of one load order. Run wires the
// whole conversion: read the load order, generate rules, write the userlist
// and clear the masterlist.
package lootifier

import (
	"io"

	"github.com/arthur-debert/lootifier/pkg/errors"
	"github.com/arthur-debert/lootifier/pkg/filesystem"
	"github.com/arthur-debert/lootifier/pkg/loadorder"
	"github.com/arthur-debert/lootifier/pkg/logging"
	"github.com/arthur-debert/lootifier/pkg/rules"
	"github.com/spf13/afero"
)

// Lootifier generates rules for one load order.
type Lootifier struct {
	plugins loadorder.PluginList
}

// New wraps an already filtered plugin list.
func New(plugins loadorder.PluginList) *Lootifier {
	return &Lootifier{plugins: plugins}
}

// FromString builds a Lootifier from load-order text.
func FromString(s string) *Lootifier {
	return New(loadorder.ParseString(s))
}

// FromReader reads load-order text from r.
func FromReader(r io.Reader) (*Lootifier, error) {
	plugins, err := loadorder.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceUnreadable, "cannot read load order")
	}
	return New(plugins), nil
}

// FromFile reads the load order at path.
func FromFile(fsys afero.Fs, path string) (*Lootifier, error) {
	content, err := filesystem.ReadSource(fsys, path)
	if err != nil {
		return nil, err
	}

	plugins := loadorder.ParseString(content)

	logger := logging.GetLogger("lootifier")
	logger.Debug().
		Str("path", path).
		Int("plugins", plugins.Len()).
		Msg("Load order read")

	return New(plugins), nil
}

// Plugins returns the filtered load order.
func (l *Lootifier) Plugins() loadorder.PluginList {
	return l.plugins
}

// Rules returns the rule set for the load order.
func (l *Lootifier) Rules() rules.RuleSet {
	return rules.Generate(l.plugins)
}

// GenerateRules returns the userlist document.
func (l *Lootifier) GenerateRules() (string, error) {
	return render(l.Rules())
}

func render(rs rules.RuleSet) (string, error) {
	logger := logging.GetLogger("lootifier")
	if logger.Trace().Enabled() {
		for _, r := range rs.Groups {
			logger.Trace().Str("rule", r.String()).Msg("Group rule")
		}
	}

	out, err := rs.Marshal()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
