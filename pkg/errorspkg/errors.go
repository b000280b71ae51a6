// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates a fatal processing failure.
// Details are logged where it happens; callers only see this class.
var ErrInternal = errors.New("internal")
