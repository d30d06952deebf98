package enum

import (
	"errors"

	"github.com/viant/coercion/lazy"
)

var (
	// ErrNoMember is returned when neither name nor ordinal match a member
	ErrNoMember = errors.New("no enum member")
	// ErrUnsupportedShape is returned by Resolve when value shape can not address a member
	ErrUnsupportedShape = lazy.ErrUnsupportedShape
)
