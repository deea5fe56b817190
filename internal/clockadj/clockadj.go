// Package clockadj — запись системных часов (скачок на заданное время).
// Запись требует прав: CAP_SYS_TIME/root на Unix, SeSystemtimePrivilege на Windows.
package clockadj

import (
	"errors"
	"time"
)

// ErrUnsupported — на этой платформе установка часов не реализована.
var ErrUnsupported = errors.New("clock set not supported on this platform")

// Fields — календарное локальное время для записи в часы ОС (миллисекунды всегда 0).
type Fields struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
	loc     *time.Location
	// unix — исходный момент; в повторяющийся час при переходе с летнего времени
	// календарные поля неоднозначны
	unix    int64
	hasUnix bool
}

// FieldsFromUnix раскладывает секунды от 1970 в календарные поля зоны loc (nil — time.Local).
func FieldsFromUnix(sec int64, loc *time.Location) Fields {
	if loc == nil {
		loc = time.Local
	}
	t := time.Unix(sec, 0).In(loc)
	return Fields{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: t.Weekday(),
		loc:     loc,
		unix:    sec,
		hasUnix: true,
	}
}

// Time возвращает момент времени: исходный для FieldsFromUnix, иначе собранный из полей.
func (f Fields) Time() time.Time {
	loc := f.loc
	if loc == nil {
		loc = time.Local
	}
	if f.hasUnix {
		return time.Unix(f.unix, 0).In(loc)
	}
	return time.Date(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, 0, loc)
}

// String — "02/01/2006 15:04:05"
func (f Fields) String() string {
	return f.Time().Format("02/01/2006 15:04:05")
}

// Setter записывает время в часы ОС.
type Setter interface {
	Set(f Fields) error
}

// System — системные часы текущей ОС.
type System struct{}

// Set выполняет скачок системных часов на время f.
func (System) Set(f Fields) error {
	return setLocal(f)
}
