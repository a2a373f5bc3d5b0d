package validation

import "sort"

// FieldErrors maps a field name to its human-readable violations.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	for _, existing := range fe[field] {
		if existing == msg {
			return
		}
	}
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// Only returns the subset of errors that belong to fields.
func (fe FieldErrors) Only(fields []string) FieldErrors {
	out := FieldErrors{}
	for _, f := range fields {
		if msgs, ok := fe[f]; ok {
			out[f] = append([]string(nil), msgs...)
		}
	}
	return out
}

// First returns the first message for field, or "".
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Fields returns the failing field names, sorted.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for f := range fe {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
