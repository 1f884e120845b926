package dp

import "errors"

// ErrInvalidParameter is returned when an Engine is constructed with
// epsilon <= 0 or delta outside the open interval (0, 1).
var ErrInvalidParameter = errors.New("invalid privacy parameter")
