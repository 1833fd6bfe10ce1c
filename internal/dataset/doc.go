// Package dataset defines the tabular data container exchanged between the
// orchestrator and its collaborators, together with the tagged result variant
// used to classify collaborator outcomes (empty, tabular, opaque) so that
// downstream logging is exhaustive rather than attribute-probing.
package dataset
