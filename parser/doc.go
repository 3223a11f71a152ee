// Package parser turns SQL text into tagged Statement values.
//
// The dialect has five statement kinds: CREATE TABLE, INSERT, SELECT,
// UPDATE and DELETE. Classification is by leading keyword, case-insensitive;
// each kind then has its own grammar in its own file, parsed with regular
// expressions. Parsing is stateless and never touches the database, so a
// malformed statement can never be partially applied.
//
// Literal rules: quoted strings (single or double quotes) are taken
// verbatim as literal text; bare tokens are interpreted later according to
// the destination column's declared type.
package parser
