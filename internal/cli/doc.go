// Package cli implements the densegraph command line: it reads a graph
// document (YAML or JSON) and prints the answers of the algorithms package.
//
// Persistent flags:
//
//	-f, --file     graph document, "-" (default) for stdin
//	-v, --verbose  debug logging to stderr
//	    --trace    pretty-print query spans to stderr
//
// Commands: info, connected, path SRC DST, cycle, bipartite, negcycle,
// order, weigh PATH, all. generate KIND N [M] writes a synthetic document
// instead of reading one.
package cli
