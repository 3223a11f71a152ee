package schema

import (
	"strconv"
	"strings"
)

// Coerce validates a literal against the column's declared type and returns
// its canonical stored form: integers lose padding ("030" becomes "30"),
// booleans are lowercased, text passes through untouched.
func (c Column) Coerce(literal string) (string, error) {
	switch c.Type {
	case TypeInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(literal), 10, 64)
		if err != nil {
			return "", &TypeMismatchError{Column: c.Name, Type: c.Type, Value: literal}
		}
		return strconv.FormatInt(n, 10), nil
	case TypeBoolean:
		switch strings.ToLower(strings.TrimSpace(literal)) {
		case "true":
			return "true", nil
		case "false":
			return "false", nil
		}
		return "", &TypeMismatchError{Column: c.Name, Type: c.Type, Value: literal}
	default:
		return literal, nil
	}
}

// Equal compares two stored values for equality under the declared type.
func Equal(t ColumnType, a, b string) bool {
	if t == TypeInteger {
		na, errA := strconv.ParseInt(a, 10, 64)
		nb, errB := strconv.ParseInt(b, 10, 64)
		if errA == nil && errB == nil {
			return na == nb
		}
	}
	if t == TypeBoolean {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Compare orders two stored values under the declared type, returning
// -1, 0 or 1. BOOLEAN columns have no ordering.
func Compare(t ColumnType, a, b string) (int, error) {
	switch t {
	case TypeInteger:
		na, errA := strconv.ParseInt(a, 10, 64)
		nb, errB := strconv.ParseInt(b, 10, 64)
		if errA != nil || errB != nil {
			return 0, &TypeMismatchError{Type: t, Value: a}
		}
		switch {
		case na < nb:
			return -1, nil
		case na > nb:
			return 1, nil
		}
		return 0, nil
	case TypeBoolean:
		return 0, &TypeMismatchError{Type: t, Value: a}
	default:
		return strings.Compare(a, b), nil
	}
}
