package dex

import "fmt"

// SchemaError is returned when loaded data fails validation. A registry is never
// constructed when one of these is returned.
type SchemaError struct {
	// Source is the logical data source, i.e. "moves.json" or "pokedex/0001.json"
	Source string
	// Record identifies the offending record inside Source, if there is one
	Record string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	msg := "invalid " + e.Source
	if e.Record != "" {
		msg += fmt.Sprintf(" record %q", e.Record)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" field %q", e.Field)
	}

	return msg + ": " + e.Reason
}

func schemaErrorf(source, record, field, format string, args ...any) *SchemaError {
	return &SchemaError{
		Source: source,
		Record: record,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

const (
	REGISTRY_MOVEDEX = "movedex"
	REGISTRY_POKEDEX = "pokedex"

	INDEX_NAME = "name"
	INDEX_ID   = "id"
)

// NotFoundError is returned by registry lookups when nothing matches.
// Key is the key exactly as the caller passed it.
type NotFoundError struct {
	Registry string
	Index    string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Index == INDEX_ID {
		return fmt.Sprintf("%s: no entry with id %s", e.Registry, e.Key)
	}

	return fmt.Sprintf("%s: no entry named %q", e.Registry, e.Key)
}
