package lazy

import "errors"

// ErrUnsupportedShape is returned when a value shape can not be projected into the requested view
var ErrUnsupportedShape = errors.New("unsupported value shape")
