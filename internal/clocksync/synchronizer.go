// Package clocksync — сравнение времени сервера с локальными часами и их коррекция.
package clocksync

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/shiwa/timecard-mini/timentp/internal/clockadj"
	"github.com/shiwa/timecard-mini/timentp/internal/config"
	"github.com/shiwa/timecard-mini/timentp/internal/ipaddr"
	"github.com/shiwa/timecard-mini/timentp/internal/logger"
	"github.com/shiwa/timecard-mini/timentp/internal/source"
)

// Result — результат Synchronize.
type Result struct {
	Outcome Outcome
	// Drift — время сервера минус локальное, сек (по первому отсчёту)
	Drift int64
	// Adjusted — часы были записаны
	Adjusted bool
	// Applied — записанное время (при Adjusted)
	Applied clockadj.Fields
	Err     error
}

// Synchronizer сравнивает время сервера с локальными часами и при превышении порога
// записывает в часы ОС свежий (повторно запрошенный) отсчёт.
type Synchronizer struct {
	transport source.Transport
	clock     clock.Clock
	setter    clockadj.Setter
	loc       *time.Location
}

// Option — настройка Synchronizer
type Option func(*Synchronizer)

// WithClock задаёт источник локального времени (по умолчанию системные часы).
func WithClock(c clock.Clock) Option {
	return func(s *Synchronizer) { s.clock = c }
}

// WithLocation задаёт зону для календарных полей (по умолчанию time.Local).
func WithLocation(loc *time.Location) Option {
	return func(s *Synchronizer) { s.loc = loc }
}

// New создаёт Synchronizer
func New(t source.Transport, setter clockadj.Setter, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		transport: t,
		clock:     clock.New(),
		setter:    setter,
		loc:       time.Local,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Synchronize выполняет одну попытку синхронизации с сервером addr.
func (s *Synchronizer) Synchronize(addr ipaddr.Address, p config.Policy) Result {
	logger.Info("запрос к серверу %s", addr)

	ntpTime, err := s.transport.RequestTime(addr)
	if err != nil {
		return Result{Outcome: NetworkFailure, Err: err}
	}
	local := s.clock.Now().Unix()
	drift := ntpTime.Unix() - local

	logger.Info("  время ntp:      %s", clockadj.FieldsFromUnix(ntpTime.Unix(), s.loc))
	logger.Info("  локальное время: %s (расхождение %d с)", clockadj.FieldsFromUnix(local, s.loc), drift)

	res := Result{Outcome: Success, Drift: drift}
	if !p.AdjustEnabled() || abs(drift) < p.DiffTime {
		return res
	}

	// первый отсчёт уже устарел на время обмена — для записи нужен свежий
	fresh, err := s.transport.RequestTime(addr)
	if err != nil {
		return Result{Outcome: NetworkFailure, Drift: drift, Err: err}
	}
	f := clockadj.FieldsFromUnix(fresh.Unix(), s.loc)
	logger.Info("  коррекция времени: %s", f)
	if err := s.setter.Set(f); err != nil {
		return Result{
			Outcome: AdjustmentFailure,
			Drift:   drift,
			Err:     fmt.Errorf("set clock from %s: %w", addr, err),
		}
	}
	res.Adjusted = true
	res.Applied = f
	return res
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
