package source

import (
	"errors"
	"time"

	"github.com/shiwa/timecard-mini/timentp/internal/ipaddr"
)

var (
	// ErrNetwork — сокет, отправка или приём (включая таймаут) завершились ошибкой.
	ErrNetwork = errors.New("ntp network failure")
	// ErrMalformed — ответ сервера непригоден (короче 48 байт, нулевой transmit timestamp).
	ErrMalformed = errors.New("ntp malformed reply")
)

// Transport — один запрос времени к одному серверу (без повторов).
type Transport interface {
	RequestTime(addr ipaddr.Address) (Sample, error)
}

// Sample — время сервера в целых секундах от 1970-01-01 UTC (дробная часть отброшена).
type Sample int64

// Time возвращает отсчёт как time.Time (UTC)
func (s Sample) Time() time.Time {
	return time.Unix(int64(s), 0).UTC()
}

// Unix возвращает секунды от 1970-01-01
func (s Sample) Unix() int64 {
	return int64(s)
}
