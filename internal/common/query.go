package common

import (
	"net/url"
	"strconv"
)

// PageQuery reads page and size from q, falling back to the defaults when
// absent. Non-integer values are validation failures.
func PageQuery(q url.Values, defPage, defSize int) (page, size int, err error) {
	var fields []FieldError
	page, ferr := intParam(q, "page", defPage)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	size, ferr = intParam(q, "size", defSize)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	if len(fields) > 0 {
		return 0, 0, NewValidationError(fields...)
	}
	return page, size, nil
}

// OptionalParam returns nil when key is missing from q.
func OptionalParam(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}

func intParam(q url.Values, key string, def int) (int, *FieldError) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: key, Rule: "int", Message: key + " must be an integer"}
	}
	return n, nil
}
