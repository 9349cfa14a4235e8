// Package merge resolves style fragments into registered identifiers.
//
// An Engine flattens fragments left to right into one rule set, where later
// values override earlier ones per property. Identifiers issued earlier are
// expanded back into the fragments they were registered with, margin and
// padding shorthands are expanded into their four sides, and properties
// outside the native whitelist are dropped. The rule set's canonical key
// decides whether an existing identifier is reused or a new one is minted.
//
// On top of that, Styles joins static class tokens with a resolved
// identifier, and StyleSets resolves named slots across several style sets.
//
// The package-level functions use the process-wide stylesheet and are
// meant for application entry points.
package merge
