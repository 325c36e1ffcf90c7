package rules

import (
	"bytes"
	"io"

	"github.com/arthur-debert/lootifier/pkg/errors"
	"go.yaml.in/yaml/v3"
)

const yamlIndent = 2

// Marshal encodes the rule set as a userlist document. Values are written
// single-quoted, so a quote inside a plugin name comes out doubled. Sequence
// items start at their key's column.
func (rs RuleSet) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(rs.node()); err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialization, "failed to encode rules")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialization, "failed to flush rules")
	}
	return buf.Bytes(), nil
}

// NewEncoder returns a YAML encoder using the userlist layout.
func NewEncoder(w io.Writer) *yaml.Encoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	enc.CompactSeqIndent()
	return enc
}

// MarshalYAML encodes through the same node tree as Marshal.
func (rs RuleSet) MarshalYAML() (interface{}, error) {
	return rs.node(), nil
}

// MarshalYAML implements yaml.Marshaler for a single rule.
func (r Rule) MarshalYAML() (interface{}, error) {
	return r.node(), nil
}

func (rs RuleSet) node() *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		keyNode("groups"), sequenceNode(rs.Groups),
		keyNode("plugins"), sequenceNode(rs.Plugins),
	)
	return root
}

func (r Rule) node() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content, keyNode("name"), valueNode(r.Name))
	if r.After != "" {
		n.Content = append(n.Content, keyNode("after"), valueNode(r.After))
	}
	if r.Group != "" {
		n.Content = append(n.Content, keyNode("group"), valueNode(r.Group))
	}
	return n
}

func sequenceNode(rules []Rule) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, r := range rules {
		seq.Content = append(seq.Content, r.node())
	}
	return seq
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

func valueNode(value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.SingleQuotedStyle,
		Value: value,
	}
}
