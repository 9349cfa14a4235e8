// Package stylesheet is the registry behind style merging.
//
// A Stylesheet issues unique identifiers, remembers which canonical key
// maps to which identifier, keeps the source fragments and resolved rules
// of every registration, and logs inserted rule sets in order so they can
// be serialized as text.
//
// Native compilation is delegated to a Compiler. Compile failures never
// reach the caller: the rule set is still logged and OnInsertRule still
// fires, but no handle is recorded.
//
// The process-wide instance returned by Instance is meant for the outermost
// composition boundary only. Library code should accept a *Stylesheet.
package stylesheet
