package complaint

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the lifecycle rules. Handlers map these to HTTP
// statuses; none of them is retryable.
var (
	// ErrPermission: the caller is not allowed to perform the operation
	// on this complaint (not the owner, or not staff).
	ErrPermission = errors.New("permission denied")

	// ErrState: the complaint's current status forbids the operation
	// (editing a resolved complaint, deleting a non-pending one).
	ErrState = errors.New("operation not allowed in current status")

	// ErrNotFound: the complaint or attachment does not exist, or does
	// not belong to the implied owner.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries per-field messages. The whole request is
// rejected; nothing is saved partially.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type validation struct {
	fields map[string]string
}

func (v *validation) add(field, msg string) {
	if v.fields == nil {
		v.fields = make(map[string]string)
	}
	if _, dup := v.fields[field]; !dup {
		v.fields[field] = msg
	}
}

func (v *validation) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
