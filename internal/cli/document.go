package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densegraph/core"
)

// Document is the on-disk form of a graph. JSON documents are accepted as
// well, being valid YAML.
//
//	name: ring
//	matrix:
//	  - [0, 1]
//	  - [1, 0]
type Document struct {
	Name   string  `yaml:"name"`
	Matrix [][]int `yaml:"matrix"`
}

// ReadDocument decodes a Document from in.
func ReadDocument(in io.Reader) (*Document, error) {
	d := new(Document)
	if err := yaml.NewDecoder(in).Decode(d); err != nil {
		return nil, errors.Wrap(err, "decode graph document")
	}
	if len(d.Matrix) == 0 {
		return nil, errors.New("graph document has no matrix")
	}

	return d, nil
}

// WriteDocument encodes d as YAML, one flow-style row per line.
func WriteDocument(w io.Writer, d *Document) error {
	var node yaml.Node
	if err := node.Encode(d); err != nil {
		return errors.Wrap(err, "encode graph document")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "matrix" {
			continue
		}
		for _, row := range node.Content[i+1].Content {
			row.Style = yaml.FlowStyle
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return errors.Wrap(err, "encode graph document")
	}

	return errors.Wrap(enc.Close(), "encode graph document")
}

// Graph loads the document's matrix into a fresh core.Graph.
func (d *Document) Graph() (*core.Graph, error) {
	g, err := core.New(d.Matrix)
	if err != nil {
		return nil, errors.WithMessagef(err, "graph %q", d.Name)
	}

	return g, nil
}

// loadDocument reads path, or stdin for "-".
func loadDocument(path string, stdin io.Reader) (*Document, error) {
	if path == "-" {
		log.Debug("Reading graph from stdin")
		return ReadDocument(stdin)
	}

	log.Debugf("Reading graph from %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open graph document %s", path)
	}
	defer f.Close()

	d, err := ReadDocument(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s", path)
	}

	return d, nil
}
