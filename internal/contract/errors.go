package contract

import "errors"

// ErrInvalidMode is returned for modes outside classify, plan, and council.
var ErrInvalidMode = errors.New("mode must be classify, plan, or council")
