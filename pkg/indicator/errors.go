package indicator

import "errors"

// ErrInvalidParameter is returned by constructors when a configuration
// value is out of range (e.g. a zero period). It is the only error this
// package produces; Next and Reset have no error path.
var ErrInvalidParameter = errors.New("invalid parameter")
