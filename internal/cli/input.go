package cli

import (
	"path/filepath"
)

// Input contains the input for the root command
type Input struct {
	graphFile string
	verbose   bool
	trace     bool
}

// GraphFile returns the absolute path of the graph document, or "-" for stdin.
func (i *Input) GraphFile() string {
	if i.graphFile == "" || i.graphFile == "-" {
		return "-"
	}
	if p, err := filepath.Abs(i.graphFile); err == nil {
		return p
	}

	return i.graphFile
}
