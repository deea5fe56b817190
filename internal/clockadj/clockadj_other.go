//go:build !linux && !darwin && !freebsd && !windows

package clockadj

// setLocal — заглушка для остальных платформ.
func setLocal(f Fields) error {
	_ = f
	return ErrUnsupported
}
