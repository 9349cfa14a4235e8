// Package style defines the data model shared by the stylesheet registry and
// the merge engine.
//
// Style input arrives loosely typed (maps, strings, nested slices). Classify
// turns it into a Fragment, a closed variant of Props, ClassName and
// Sequence, so downstream recursion can switch on the variant instead of
// sniffing types. RuleSet is the insertion-ordered result of flattening, and
// CanonicalKey derives the deduplication key from its final contents.
package style
