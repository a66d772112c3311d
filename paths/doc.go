// Package paths converts traversal output into vertex sequences and back.
//
// A predecessor array pred[v] (core.None for roots and unreached vertices) is
// walked from a destination back to a source by Reconstruct. Format renders a
// sequence as "0->1->2", Parse reads that form back, and Weight sums the
// matrix weights along a sequence.
//
// Reconstruct is iterative and bounded by len(pred) steps, so a corrupt or
// cyclic predecessor array terminates with ok == false instead of looping.
package paths
