package genetics

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mhalverson/goneat/neat/math"
)

// genomeYAML is the YAML wire shape for a Genome, kept separate from Genome
// itself so the struct tags don't leak into the in-memory representation.
type genomeYAML struct {
	ID      uint64   `yaml:"id"`
	Inputs  uint32   `yaml:"inputs"`
	Outputs uint32   `yaml:"outputs"`
	Fitness *float64 `yaml:"fitness,omitempty"`

	Nodes []struct {
		Kind        byte    `yaml:"kind"`
		Aggregation byte    `yaml:"aggregation"`
		Activation  byte    `yaml:"activation"`
		Bias        float64 `yaml:"bias"`
	} `yaml:"nodes"`

	Connections []struct {
		From     uint32  `yaml:"from"`
		To       uint32  `yaml:"to"`
		Weight   float64 `yaml:"weight"`
		Disabled bool    `yaml:"disabled"`
	} `yaml:"connections"`
}

// DumpYAML writes a debug-friendly YAML rendering of g to w.
func DumpYAML(w io.Writer, g *Genome) error {
	doc := genomeYAML{ID: uint64(g.ID), Inputs: g.Inputs, Outputs: g.Outputs, Fitness: g.Fitness}
	doc.Nodes = make([]struct {
		Kind        byte    `yaml:"kind"`
		Aggregation byte    `yaml:"aggregation"`
		Activation  byte    `yaml:"activation"`
		Bias        float64 `yaml:"bias"`
	}, len(g.Nodes))
	for i, n := range g.Nodes {
		doc.Nodes[i].Kind = byte(n.Kind)
		doc.Nodes[i].Aggregation = byte(n.Aggregation)
		doc.Nodes[i].Activation = byte(n.Activation)
		doc.Nodes[i].Bias = n.Bias
	}
	doc.Connections = make([]struct {
		From     uint32  `yaml:"from"`
		To       uint32  `yaml:"to"`
		Weight   float64 `yaml:"weight"`
		Disabled bool    `yaml:"disabled"`
	}, len(g.Connections))
	for i, c := range g.Connections {
		doc.Connections[i] = struct {
			From     uint32  `yaml:"from"`
			To       uint32  `yaml:"to"`
			Weight   float64 `yaml:"weight"`
			Disabled bool    `yaml:"disabled"`
		}{From: c.From, To: c.To, Weight: c.Weight, Disabled: c.Disabled}
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}

// LoadYAML reads a Genome previously written by DumpYAML.
func LoadYAML(r io.Reader) (*Genome, error) {
	var doc genomeYAML
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	g := &Genome{
		ID: GenomeID(doc.ID), Inputs: doc.Inputs, Outputs: doc.Outputs, Fitness: doc.Fitness,
		Nodes:       make([]NodeGene, len(doc.Nodes)),
		Connections: make([]ConnectionGene, len(doc.Connections)),
	}
	for i, n := range doc.Nodes {
		g.Nodes[i] = NodeGene{
			Kind: NodeKind(n.Kind), Aggregation: math.Aggregation(n.Aggregation),
			Activation: math.ActivationKind(n.Activation), Bias: n.Bias,
		}
	}
	for i, c := range doc.Connections {
		g.Connections[i] = ConnectionGene{From: c.From, To: c.To, Weight: c.Weight, Disabled: c.Disabled}
	}
	return g, nil
}
