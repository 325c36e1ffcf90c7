// Package rules turns a load order into LOOT userlist rules.
//
// Two rule lists are produced from the ordered plugin names:
//
//   - groups: one rule per adjacent pair, placing each plugin after the one
//     before it.
//   - plugins: one rule per plugin, assigning it to a group of its own name.
//
// The result serializes to the userlist YAML format with every value written
// as a single-quoted scalar.
package rules

import (
	"strings"

	"github.com/arthur-debert/lootifier/pkg/loadorder"
)

// Rule is one LOOT userlist entry. Exactly one of After and Group is set by
// the generator; an empty field is absent and is omitted on output.
type Rule struct {
	Name  string `yaml:"name"`
	After string `yaml:"after,omitempty"`
	Group string `yaml:"group,omitempty"`
}

// String renders the rule the way it reads in the userlist.
func (r Rule) String() string {
	switch {
	case r.After != "":
		return quote(r.Name) + " after " + quote(r.After)
	case r.Group != "":
		return quote(r.Name) + " in group " + quote(r.Group)
	default:
		return quote(r.Name)
	}
}

// RuleSet is the root of a userlist document.
type RuleSet struct {
	Groups  []Rule `yaml:"groups"`
	Plugins []Rule `yaml:"plugins"`
}

// Generate builds both rule lists for plugins.
func Generate(plugins loadorder.PluginList) RuleSet {
	return RuleSet{
		Groups:  GroupRules(plugins),
		Plugins: PluginRules(plugins),
	}
}

// GroupRules chains each plugin after its predecessor. Fewer than two
// plugins yield no rules.
func GroupRules(plugins loadorder.PluginList) []Rule {
	if len(plugins) < 2 {
		return []Rule{}
	}
	rules := make([]Rule, 0, len(plugins)-1)
	for i := 1; i < len(plugins); i++ {
		rules = append(rules, Rule{
			Name:  plugins[i],
			After: plugins[i-1],
		})
	}
	return rules
}

// PluginRules places every plugin in a group named after itself.
func PluginRules(plugins loadorder.PluginList) []Rule {
	rules := make([]Rule, 0, len(plugins))
	for _, plugin := range plugins {
		rules = append(rules, Rule{
			Name:  plugin,
			Group: plugin,
		})
	}
	return rules
}

// Escape doubles single quotes, the only escape a single-quoted YAML
// scalar has.
func Escape(name string) string {
	return strings.ReplaceAll(name, "'", "''")
}

// Unescape reverses Escape.
func Unescape(escaped string) string {
	return strings.ReplaceAll(escaped, "''", "'")
}

func quote(s string) string {
	return "'" + Escape(s) + "'"
}
