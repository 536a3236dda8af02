// Package typeval validates untyped manifest values against declared cty
// shapes. pyproject.toml arrives as Go native values (string, bool, int64,
// float64, []any, map[string]any), so every field assignment in the
// configuration model runs through a guard here; the guards are the runtime
// residue of type checking that struct fields otherwise settle at compile
// time. A failed check reports the field, the offending value, and the
// wanted shape so manifest authoring mistakes read as such, not as opaque
// downstream failures.
package typeval

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
)

// Error reports a manifest value that does not conform to its declared shape.
type Error struct {
	Field string
	Value any
	Want  cty.Type
}

func (e *Error) Error() string {
	return fmt.Sprintf("input of %s=%#v is not a valid %q", e.Field, e.Value, e.Want.FriendlyName())
}

// Check verifies that raw's implied cty type equals want exactly and returns
// the converted value. Equality is strict: cty's permissive conversions
// (e.g. "true" to bool) would silently accept mistyped manifests, so they
// are not applied. Containers have dedicated guards (Sequence, Table)
// because TOML arrays imply tuple types, never list types.
func Check(field string, raw any, want cty.Type) (cty.Value, error) {
	val, err := fromNative(raw)
	if err != nil || !val.Type().Equals(want) {
		return cty.NilVal, &Error{Field: field, Value: raw, Want: want}
	}
	return val, nil
}

// String validates that raw is textual and returns it.
func String(field string, raw any) (string, error) {
	val, err := Check(field, raw, cty.String)
	if err != nil {
		return "", err
	}
	return val.AsString(), nil
}

// Bool validates that raw is boolean and returns it.
func Bool(field string, raw any) (bool, error) {
	val, err := Check(field, raw, cty.Bool)
	if err != nil {
		return false, err
	}
	return val.True(), nil
}

// Sequence validates that raw is an ordered collection. Element shapes are
// the caller's concern.
func Sequence(field string, raw any) ([]any, error) {
	seq, ok := raw.([]any)
	if !ok {
		return nil, &Error{Field: field, Value: raw, Want: cty.List(cty.DynamicPseudoType)}
	}
	return seq, nil
}

// Table validates that raw is a key/value table.
func Table(field string, raw any) (map[string]any, error) {
	tbl, ok := raw.(map[string]any)
	if !ok {
		return nil, &Error{Field: field, Value: raw, Want: cty.Map(cty.DynamicPseudoType)}
	}
	return tbl, nil
}

// fromNative converts a TOML-decoded Go value into its cty counterpart.
// Arrays become tuples and tables become objects, mirroring how TOML leaves
// element types free. Values with no cty counterpart (datetimes, NaN, nil)
// are unconvertible and surface as shape errors in Check.
func fromNative(v any) (cty.Value, error) {
	switch v := v.(type) {
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case float64:
		// cty numbers are big.Float underneath, which has no NaN.
		if math.IsNaN(v) {
			return cty.NilVal, fmt.Errorf("unsupported float value NaN")
		}
		return cty.NumberFloatVal(v), nil
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(v))
		for i, el := range v {
			ev, err := fromNative(el)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, ev)
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(v))
		for key, el := range v {
			ev, err := fromNative(el)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in key %q: %w", key, err)
			}
			attrs[key] = ev
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value of type %T", v)
	}
}
