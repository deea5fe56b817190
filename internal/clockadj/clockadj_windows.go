//go:build windows

package clockadj

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var procSetLocalTime = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetLocalTime")

// setLocal вызывает SetLocalTime: календарные поля локального времени, миллисекунды = 0.
func setLocal(f Fields) error {
	st := windows.Systemtime{
		Year:      uint16(f.Year),
		Month:     uint16(f.Month),
		DayOfWeek: uint16(f.Weekday),
		Day:       uint16(f.Day),
		Hour:      uint16(f.Hour),
		Minute:    uint16(f.Minute),
		Second:    uint16(f.Second),
	}
	if err := procSetLocalTime.Find(); err != nil {
		return err
	}
	r, _, err := procSetLocalTime.Call(uintptr(unsafe.Pointer(&st)))
	if r == 0 {
		return err
	}
	return nil
}
