package attached

// unsetValue is the type of the Unset sentinel. Being unexported, no
// caller-supplied value can ever be of this type, which keeps the
// sentinel distinct from every real value by construction.
type unsetValue struct{}

// String returns the printable form of the sentinel.
func (unsetValue) String() string { return "<unset>" }

// Unset marks a property as explicitly cleared on a node. It is stored
// under the property's key by Clear; Read treats it exactly like an
// absent key.
var Unset = unsetValue{}

// IsUnset reports whether v is the Unset sentinel. Exposed so host-level
// merge code can treat cleared slots specially if it needs to.
func IsUnset(v any) bool {
	_, ok := v.(unsetValue)
	return ok
}
