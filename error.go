package polyline

import "errors"

var (
	// ErrExists indicates a line name is already in use.
	ErrExists = errors.New("line already exists")
	// ErrNotFound indicates a line name was not found.
	ErrNotFound = errors.New("line not found")
	// ErrInvalidStyle indicates a style the engine cannot draw.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrNilLine indicates a nil line was added.
	ErrNilLine = errors.New("nil line")
)
