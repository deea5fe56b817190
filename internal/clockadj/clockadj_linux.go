//go:build linux

package clockadj

import "golang.org/x/sys/unix"

// setLocal устанавливает CLOCK_REALTIME по абсолютному моменту f.Time().
func setLocal(f Fields) error {
	ts := unix.NsecToTimespec(f.Time().UnixNano())
	return unix.ClockSettime(unix.CLOCK_REALTIME, &ts)
}
