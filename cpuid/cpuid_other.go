//go:build !amd64

package cpuid

// NativeProbe fails on architectures without the identification
// instruction. Callers surface this at startup, before any probing.
func NativeProbe() (probe ProbeFunc, err error) {
	err = ErrNoNativeProbe
	return
}
