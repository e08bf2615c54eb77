package network

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/dijkstra"
)

// Description is the format-neutral form of a network file.
//
// YAML:
//
//	nodes: [Palencia, Madrid]
//	roads:
//	  - {from: Palencia, to: Madrid, cost: 239}
//
// HCL:
//
//	node "Palencia" {}
//	node "Madrid" {}
//	road {
//	  from = "Palencia"
//	  to   = "Madrid"
//	  cost = 239
//	}
type Description struct {
	Nodes []string   `yaml:"nodes"`
	Roads []RoadSpec `yaml:"roads"`
}

// RoadSpec is one directed road of a Description.
type RoadSpec struct {
	From string  `yaml:"from" hcl:"from"`
	To   string  `yaml:"to" hcl:"to"`
	Cost float64 `yaml:"cost" hcl:"cost"`
}

// Build creates the Network described by d.
func (d Description) Build(opts ...dijkstra.Option) (*Network, error) {
	n, err := New(d.Nodes, opts...)
	if err != nil {
		return nil, err
	}
	for i, r := range d.Roads {
		if err = n.Connect(r.From, r.To, r.Cost); err != nil {
			return nil, fmt.Errorf("road #%d: %w", i, err)
		}
	}

	return n, nil
}

// DecodeYAML reads a YAML description. Unknown keys are rejected.
func DecodeYAML(r io.Reader) (Description, error) {
	var d Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Description{}, fmt.Errorf("network: decoding yaml: %w", err)
	}

	return d, nil
}

// hclFile is the top-level structure of an HCL description for decoding.
type hclFile struct {
	Nodes []hclNode   `hcl:"node,block"`
	Roads []*RoadSpec `hcl:"road,block"`
}

type hclNode struct {
	Name string `hcl:"name,label"`
}

// DecodeHCL parses an HCL description; filename is used in diagnostics only.
func DecodeHCL(src []byte, filename string) (Description, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Description{}, fmt.Errorf("network: parsing hcl %s: %w", filename, diags)
	}

	var parsed hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return Description{}, fmt.Errorf("network: decoding hcl %s: %w", filename, diags)
	}

	d := Description{
		Nodes: make([]string, 0, len(parsed.Nodes)),
		Roads: make([]RoadSpec, 0, len(parsed.Roads)),
	}
	for _, n := range parsed.Nodes {
		d.Nodes = append(d.Nodes, n.Name)
	}
	for _, r := range parsed.Roads {
		d.Roads = append(d.Roads, *r)
	}

	return d, nil
}

// LoadFile decodes path by extension (.yaml, .yml or .hcl) and builds it.
func LoadFile(path string, opts ...dijkstra.Option) (*Network, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("network: reading %s: %w", path, err)
	}

	var d Description
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		d, err = DecodeYAML(bytes.NewReader(src))
	case ".hcl":
		d, err = DecodeHCL(src, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	return d.Build(opts...)
}
