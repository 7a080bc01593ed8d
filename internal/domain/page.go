package domain

import "fmt"

// Page holds optional offset/limit pagination. Nil fields mean "not supplied".
// Offset is applied before Limit.
type Page struct {
	Limit  *int
	Offset *int
}

// Validate rejects negative bounds.
func (p Page) Validate() error {
	fields := make(map[string]string)

	if p.Limit != nil && *p.Limit < 0 {
		fields["limit"] = fmt.Sprintf("must be non-negative, got %d", *p.Limit)
	}
	if p.Offset != nil && *p.Offset < 0 {
		fields["offset"] = fmt.Sprintf("must be non-negative, got %d", *p.Offset)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Empty reports whether the page can never yield a row (an explicit zero limit).
func (p Page) Empty() bool {
	return p.Limit != nil && *p.Limit == 0
}
