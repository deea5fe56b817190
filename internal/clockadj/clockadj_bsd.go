//go:build darwin || freebsd

package clockadj

import "golang.org/x/sys/unix"

func setLocal(f Fields) error {
	tv := unix.NsecToTimeval(f.Time().UnixNano())
	return unix.Settimeofday(&tv)
}
