// Package assessor answers MAN.3 questions through a hosted language model.
//
// The assessor is a thin proxy: it wraps the user's query with a fixed
// assessor persona and optional context, sends it to the configured
// Provider, and always returns a displayable message. Provider failures are
// logged and replaced with a fixed fallback text; credentials never appear
// in errors or messages.
package assessor
