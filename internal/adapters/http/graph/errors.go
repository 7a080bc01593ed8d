package graph

import (
	"errors"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

// resolverError carries a domain error into the response errors array with
// its domain.Code and, for validation failures, the field details.
type resolverError struct {
	err error
}

func (e *resolverError) Error() string { return e.err.Error() }

func (e *resolverError) Unwrap() error { return e.err }

// Extensions implements gqlerrors.ExtendedError.
func (e *resolverError) Extensions() map[string]any {
	ext := map[string]any{"code": domain.Code(e.err)}

	var verr *domain.ValidationError
	if errors.As(e.err, &verr) {
		ext["fields"] = verr.Fields
	}
	return ext
}

// fail wraps err for the executor.
func fail(err error) (any, error) {
	return nil, &resolverError{err: err}
}

// nullOnNotFound resolves to v, to null when err reports a missing entity,
// and to an error otherwise.
func nullOnNotFound(v any, err error) (any, error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		return fail(err)
	}
	return v, nil
}
