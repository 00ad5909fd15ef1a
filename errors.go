package attached

import "errors"

// ErrEmptyName is returned by Declare when the property name is empty.
// A property's name seeds its generated key and identifies it in
// diagnostics, so a nameless property is never valid.
var ErrEmptyName = errors.New("attached: empty property name")
