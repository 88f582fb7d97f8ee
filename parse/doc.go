// Package parse converts model-generated text into typed Go values. Models
// frequently produce JSON that is close to valid but not quite (single
// quotes, trailing commas, unquoted keys); parsing here first tries strict
// decoding and then repairs the payload before retrying, so callers get a
// typed value or a real error instead of brittle string handling.
package parse
