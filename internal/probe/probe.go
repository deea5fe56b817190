// Package probe — диагностический опрос серверов (stratum, смещение, RTT) без записи часов.
package probe

import (
	"time"

	"github.com/beevik/ntp"

	"github.com/shiwa/timecard-mini/timentp/internal/ipaddr"
)

// Result — ответ одного сервера
type Result struct {
	Host      ipaddr.Address
	Stratum   uint8
	Reference string
	Offset    time.Duration
	RTT       time.Duration
	Time      time.Time
	Err       error
}

// queryFunc подменяется в тестах
var queryFunc = ntp.QueryWithOptions

// Probe опрашивает серверы по очереди; ошибка одного не прерывает опрос остальных.
func Probe(hosts []ipaddr.Address, timeout time.Duration) []Result {
	out := make([]Result, 0, len(hosts))
	for _, h := range hosts {
		out = append(out, query(h, timeout))
	}
	return out
}

func query(h ipaddr.Address, timeout time.Duration) Result {
	r := Result{Host: h}
	resp, err := queryFunc(h.String(), ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		r.Err = err
		return r
	}
	r.Stratum = resp.Stratum
	r.Reference = resp.ReferenceString()
	r.Offset = resp.ClockOffset
	r.RTT = resp.RTT
	r.Time = resp.Time
	// ответ получен, но сервер непригоден (KoD, не синхронизирован)
	r.Err = resp.Validate()
	return r
}
