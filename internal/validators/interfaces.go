package validators

import "context"

// Validator checks the shape of a single incoming request object.
// Implementations return a [FieldError] (unwrapping to [ErrInvalidRequest])
// on the first violation found, or [ErrUnsupportedType] when given a request
// type they do not handle. Validation never touches persistence.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
