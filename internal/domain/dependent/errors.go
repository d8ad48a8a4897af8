package dependent

import "errors"

var ErrDependentNotFound = errors.New("dependent not found")
