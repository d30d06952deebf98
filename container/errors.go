package container

import "errors"

// ErrUnsupportedTarget is returned when value can not be converted into the requested container type
var ErrUnsupportedTarget = errors.New("unsupported container target")
