package temporal

import "errors"

// ErrDate is returned (wrapped) when value can not be converted to a date
var ErrDate = errors.New("unable to convert to date")
