// Package builder demonstrates fluent assembly of an immutable value object:
// an HTTP-request description built step by step, validated once at Build.
//
// Required attributes (method, URL) are checked at Build time; every missing
// one is reported, not just the first. Optional attributes have documented
// defaults (30s timeout, a fresh UUID request ID).
//
// Expected usage:
//
//	req, err := builder.NewRequest().
//		Method("POST").
//		URL("https://api.example.com/v1/items").
//		Header("Content-Type", "application/json").
//		Body([]byte(`{"sku":"A-42"}`)).
//		Build()
//
// The built Request is independent of the builder: mutating the builder (or
// the maps/slices it was fed) afterwards does not change the value.
package builder
