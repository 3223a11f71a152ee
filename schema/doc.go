// Package schema defines column types and the typed coercion and comparison
// rules used by every other component.
//
// Values are stored uniformly as strings; typed semantics (numeric ordering,
// boolean truth) are derived on demand by consulting the declared column type,
// never stored redundantly. Coercion is the single boundary between the stored
// form and the logical form:
//
//	col := schema.Column{Name: "age", Type: schema.TypeInteger}
//	stored, err := col.Coerce("030") // "30", nil
//
// Equal and Compare operate on already-coerced stored values, so "030" and
// "30" in an INTEGER column compare equal.
package schema
