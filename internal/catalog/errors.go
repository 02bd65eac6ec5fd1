package catalog

import (
	"errors"
	"fmt"
)

// ErrDecode is returned (wrapped) when a response body is not a valid product catalog.
var ErrDecode = errors.New("catalog: decode failed")

// ErrNilPredicate is returned when Select is called without a predicate.
var ErrNilPredicate = errors.New("catalog: nil predicate")

// NotExactlyOneError reports that the predicate matched zero or several products.
type NotExactlyOneError struct {
	Found int
}

func (e *NotExactlyOneError) Error() string {
	return fmt.Sprintf("catalog: expected exactly one matching product, found %d", e.Found)
}
