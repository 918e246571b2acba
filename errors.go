package poster

import (
	"errors"
	"fmt"
)

// Sentinel errors for render input validation.
var (
	// ErrInvalidLayoutRequest is matched by every *InvalidLayoutRequestError.
	ErrInvalidLayoutRequest = errors.New("poster: invalid layout request")

	// ErrInvalidTextItem is matched by every *InvalidTextItemError.
	ErrInvalidTextItem = errors.New("poster: invalid text item")
)

// InvalidLayoutRequestError describes which LayoutRequest field was rejected.
type InvalidLayoutRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidLayoutRequestError) Error() string {
	return fmt.Sprintf("poster: invalid layout request: %s %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidLayoutRequest.
func (e *InvalidLayoutRequestError) Is(target error) bool {
	return target == ErrInvalidLayoutRequest
}

// InvalidTextItemError describes a rejected TextItem. Index is the
// position of the item in the input slice.
type InvalidTextItemError struct {
	Index  int
	Reason string
}

func (e *InvalidTextItemError) Error() string {
	return fmt.Sprintf("poster: invalid text item %d: %s", e.Index, e.Reason)
}

// Is reports whether target is ErrInvalidTextItem.
func (e *InvalidTextItemError) Is(target error) bool {
	return target == ErrInvalidTextItem
}
