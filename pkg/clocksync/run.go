// Package clocksync предоставляет однократную синхронизацию часов с NTP серверами для встраивания.
package clocksync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiwa/timecard-mini/timentp/internal/clockadj"
	"github.com/shiwa/timecard-mini/timentp/internal/clockselect"
	internalsync "github.com/shiwa/timecard-mini/timentp/internal/clocksync"
	"github.com/shiwa/timecard-mini/timentp/internal/config"
	"github.com/shiwa/timecard-mini/timentp/internal/logger"
	"github.com/shiwa/timecard-mini/timentp/internal/source"
	pkgconfig "github.com/shiwa/timecard-mini/timentp/pkg/config"
)

// ErrNoServer — ни один сервер из списка не дал успешной синхронизации.
var ErrNoServer = errors.New("can't connect to NTP servers")

// minWait — задержки короче не выдерживаются
const minWait = 10 * time.Millisecond

// Run выполняет задержку на старте, одну попытку синхронизации по списку серверов
// и задержку на выходе. Возвращает nil при успехе, ошибку с ErrNoServer при исчерпании списка,
// ctx.Err() при отмене во время задержки.
func Run(ctx context.Context, cfg *pkgconfig.Config, quiet bool) error {
	logger.Quiet = quiet
	internalCfg := toInternalConfig(cfg)
	return run(ctx, internalCfg, runner{
		transport: source.NewNTP(internalCfg.Policy().Timeout),
		setter:    clockadj.System{},
	})
}

// runner — зависимости запуска (подменяются в тестах)
type runner struct {
	transport source.Transport
	setter    clockadj.Setter
	opts      []internalsync.Option
}

func run(ctx context.Context, cfg *config.Config, r runner) error {
	hosts, rejected := cfg.HostList()
	for _, err := range rejected {
		logger.Warn("адрес отброшен: %v", err)
	}
	p := cfg.Policy()

	if p.StartWait > minWait {
		logger.Info("ожидание %v...", p.StartWait)
		if err := wait(ctx, p.StartWait); err != nil {
			return err
		}
	}

	logger.Info("серверов: %d, порог: %d с, таймаут: %v", len(hosts), p.DiffTime, p.Timeout)
	s := internalsync.New(r.transport, r.setter, r.opts...)
	rep := clockselect.NewFailover(s).RunAll(hosts, p)

	var result error
	if rep.OK {
		logger.Info("синхронизировано с %s", rep.Host)
	} else {
		result = fmt.Errorf("%w: %v", ErrNoServer, rep.Err)
		logger.Error("%v", result)
	}

	if p.FinishWait > minWait {
		// отмена ожидания на выходе не меняет итог синхронизации
		if err := wait(ctx, p.FinishWait); err != nil {
			logger.Info("ожидание на выходе прервано: %v", err)
		}
	}
	return result
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ToPkgConfig преобразует internal config в pkg config (для вызова Run из cmd/timentp).
func ToPkgConfig(c *config.Config) *pkgconfig.Config {
	if c == nil {
		return nil
	}
	return &pkgconfig.Config{
		Delay:   pkgconfig.DelayConfig(c.Delay),
		Command: pkgconfig.CommandConfig(c.Command),
		Hosts:   append([]string(nil), c.Hosts...),
		Log:     pkgconfig.LogConfig(c.Log),
	}
}

// toInternalConfig подставляет дефолты для незаданных полей.
func toInternalConfig(c *pkgconfig.Config) *config.Config {
	out := config.Default()
	if c == nil {
		return out
	}
	out.Delay = config.DelayConfig(c.Delay)
	out.Command = config.CommandConfig(c.Command)
	if c.Command.Timeout <= 0 {
		out.Command.Timeout = config.DefaultTimeoutMs
	}
	out.Hosts = append([]string(nil), c.Hosts...)
	out.Log = config.LogConfig(c.Log)
	return out
}
