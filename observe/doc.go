// Package observe provides observability primitives for style registration.
//
// It is a pure instrumentation library: structured logging, OpenTelemetry
// metrics and tracing, and a middleware that wraps native style compilation.
// Consumers wire the logger and metrics into the stylesheet and merge engine,
// and wrap their compiler with Middleware.
package observe
