package render

import (
	"io"

	"github.com/bjaus/ltsv"
	"gopkg.in/yaml.v3"
)

// yamlNode builds a mapping node in label order. Values are tagged as
// strings so "200" or "true" stay text.
func yamlNode(rec ltsv.Record) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for label, value := range rec.All() {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: label},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}
	return n
}

func writeYAML(w io.Writer, recs []ltsv.Record, o *options) error {
	enc := yaml.NewEncoder(w)
	if o.indent != "" {
		enc.SetIndent(len(o.indent))
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, rec := range recs {
		seq.Content = append(seq.Content, yamlNode(rec))
	}
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}
