package observe

import "go.opentelemetry.io/otel/attribute"

// StyleMeta describes a registered style for telemetry purposes.
type StyleMeta struct {
	Identifier string // Issued identifier, e.g. "ms-root-3"
	Namespace  string // Stylesheet namespace (may be empty)
	Prefix     string // Display name or default prefix, e.g. "root"
	Properties int    // Number of resolved properties
}

// SpanName returns the deterministic span name for compiling this style.
// Format: style.compile.<prefix> or style.compile
func (m StyleMeta) SpanName() string {
	if m.Prefix != "" {
		return "style.compile." + m.Prefix
	}
	return "style.compile"
}

func (m StyleMeta) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("style.prefix", m.Prefix),
	}
	if m.Namespace != "" {
		attrs = append(attrs, attribute.String("style.namespace", m.Namespace))
	}
	return attrs
}
