package merge

import (
	"context"
	"testing"

	"github.com/jonwraymond/styleops/style"
	"github.com/jonwraymond/styleops/stylesheet"
)

func BenchmarkResolveToIdentifier_Hit(b *testing.B) {
	e := NewEngine(stylesheet.New(stylesheet.WithInjectionMode(stylesheet.InjectionNone)))
	ctx := context.Background()
	props := style.Props{"backgroundColor": "red", "color": "white", "margin": "4 8", "fontSize": 14}
	e.ResolveToIdentifier(ctx, props)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.ResolveToIdentifier(ctx, props)
	}
}

func BenchmarkResolveToIdentifier_Expand(b *testing.B) {
	e := NewEngine(stylesheet.New(stylesheet.WithInjectionMode(stylesheet.InjectionNone)))
	ctx := context.Background()
	base := e.ResolveToIdentifier(ctx, style.Props{"backgroundColor": "red", "color": "black"})
	override := style.Props{"color": "white"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.ResolveToIdentifier(ctx, base, override)
	}
}

func BenchmarkStyleSets(b *testing.B) {
	e := NewEngine(stylesheet.New(stylesheet.WithInjectionMode(stylesheet.InjectionNone)))
	ctx := context.Background()
	set := &StyleSet{Slots: []Slot{
		{Name: "root", Style: []any{"ms-Button", style.Props{"padding": 4}}},
		{Name: "label", Style: style.Props{"color": "black"}},
		{Name: "icon", Style: style.Props{"width": 16, "height": 16}},
	}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.StyleSets(ctx, set)
	}
}

func BenchmarkIsAllowedProperty(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = IsAllowedProperty("textDecorationStyle")
	}
}
