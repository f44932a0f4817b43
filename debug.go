//go:build !release

package safeunwrap

// Debug reports whether the package was built without the "release" tag.
// Guard extra checks with `if safeunwrap.Debug {...}` so release builds drop
// them entirely.
const Debug = true

func violated(reason string, parent error) error {
	return errViolation(reason, parent)
}
