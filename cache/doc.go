// Package cache keeps compiled native style handles across render passes.
//
// Identical resolved rule sets compile to interchangeable native styles,
// so a handle compiled once can be reused by every later registration with
// the same rules, including registrations made after the stylesheet was
// reset. BindReset ties the cache to a stylesheet's reset instead.
//
// Keys are xxhash digests of a canonical JSON form of the rules.
// CompilerMiddleware wraps a stylesheet.Compiler with the cache and
// collapses concurrent compiles of the same rules into one call.
package cache
