// Package clockselect — перебор серверов по порядку до первой успешной синхронизации.
package clockselect

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/shiwa/timecard-mini/timentp/internal/clocksync"
	"github.com/shiwa/timecard-mini/timentp/internal/config"
	"github.com/shiwa/timecard-mini/timentp/internal/ipaddr"
	"github.com/shiwa/timecard-mini/timentp/internal/logger"
)

// Synchronizer — одна попытка синхронизации с сервером (clocksync.Synchronizer).
type Synchronizer interface {
	Synchronize(addr ipaddr.Address, p config.Policy) clocksync.Result
}

// Attempt — попытка по одному серверу
type Attempt struct {
	Host   ipaddr.Address
	Result clocksync.Result
}

// Report — итог перебора
type Report struct {
	// OK — хотя бы один сервер дал Success
	OK bool
	// Host — сервер, с которым синхронизировались (при OK)
	Host     ipaddr.Address
	Attempts []Attempt
	// Err — ошибки неудачных попыток (multierr)
	Err error
}

// Failover перебирает серверы строго по порядку, без параллелизма.
type Failover struct {
	sync Synchronizer
}

// NewFailover создаёт Failover
func NewFailover(s Synchronizer) *Failover {
	return &Failover{sync: s}
}

// RunAll пробует серверы по порядку и останавливается на первом Success.
// Ошибки отдельных серверов не прерывают перебор.
func (f *Failover) RunAll(hosts []ipaddr.Address, p config.Policy) Report {
	var rep Report
	for _, h := range hosts {
		res := f.sync.Synchronize(h, p)
		rep.Attempts = append(rep.Attempts, Attempt{Host: h, Result: res})
		if res.Outcome.OK() {
			rep.OK = true
			rep.Host = h
			return rep
		}
		err := res.Err
		if err == nil {
			err = fmt.Errorf("%s", res.Outcome)
		}
		logger.Warn("сервер %s: %s: %v", h, res.Outcome, err)
		rep.Err = multierr.Append(rep.Err, fmt.Errorf("%s: %w", h, err))
	}
	return rep
}
