// timentp — синхронизация системных часов с NTP серверами (одна попытка за запуск).
//
// Серверы опрашиваются по порядку до первого успешного; если время сервера отличается
// от локального на diff_time секунд и больше, часы ОС устанавливаются по повторному запросу.
//
// Использование:
//
//	timentp                      — синхронизация по конфигу (timentp.yml или timentp.ini)
//	timentp -c timentp.ini sync  — то же с явным конфигом
//	timentp probe                — опрос серверов без изменения часов
//	timentp validate 010.0.0.1   — проверка адресов
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/shiwa/timecard-mini/timentp/internal/config"
	"github.com/shiwa/timecard-mini/timentp/internal/ipaddr"
	"github.com/shiwa/timecard-mini/timentp/internal/logger"
	"github.com/shiwa/timecard-mini/timentp/internal/probe"
	"github.com/shiwa/timecard-mini/timentp/pkg/clocksync"
)

func main() {
	app := &cli.App{
		Name:  "timentp",
		Usage: "time synchronization with NTP servers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to timentp.yml or timentp.ini (default: ./timentp.yml, then timentp.ini next to the binary)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only warnings and errors",
			},
			&cli.IntFlag{
				Name:  "threshold",
				Usage: "override command.diff_time, seconds (<= 0 never sets the clock)",
			},
			&cli.IntFlag{
				Name:  "timeout",
				Usage: "override command.timeout, milliseconds",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "also write logs to this file (rotated)",
			},
		},
		Action: syncAction,
		Commands: []*cli.Command{
			{
				Name:   "sync",
				Usage:  "synchronize the system clock (default)",
				Action: syncAction,
			},
			{
				Name:   "probe",
				Usage:  "query configured servers and print stratum, offset and RTT; never sets the clock",
				Action: probeAction,
			},
			{
				Name:      "validate",
				Usage:     "check IPv4 server addresses and print the canonical form",
				ArgsUsage: "ADDRESS...",
				Action:    validateAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Error("%v", err)
		logger.Sync()
		os.Exit(1)
	}
}

// loadConfig ищет и читает конфиг, применяет флаги и настраивает логгер.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := config.Resolve(c.String("config")); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}
	if c.IsSet("threshold") {
		cfg.Command.DiffTime = c.Int("threshold")
	}
	if c.IsSet("timeout") && c.Int("timeout") > 0 {
		cfg.Command.Timeout = c.Int("timeout")
	}
	if f := c.String("log-file"); f != "" {
		cfg.Log.File = f
	}
	logger.Quiet = c.Bool("quiet")
	if err := logger.Init(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File}); err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return cfg, nil
}

// syncAction — одна попытка синхронизации; по SIGINT/SIGTERM прерываются задержки.
func syncAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = clocksync.Run(ctx, clocksync.ToPkgConfig(cfg), c.Bool("quiet"))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		logger.Info("прервано")
		return cli.Exit("", 1)
	default:
		return cli.Exit(fmt.Sprintf("ERROR: %v", err), 1)
	}
}

func probeAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	hosts, rejected := cfg.HostList()
	for _, err := range rejected {
		logger.Warn("адрес отброшен: %v", err)
	}
	failed := 0
	for _, r := range probe.Probe(hosts, cfg.Policy().Timeout) {
		if r.Err != nil {
			failed++
			fmt.Printf("%-15s  error: %v\n", r.Host, r.Err)
			continue
		}
		fmt.Printf("%-15s  stratum %-2d ref %-15s offset %-12v rtt %-10v %s\n",
			r.Host, r.Stratum, r.Reference, r.Offset.Round(time.Millisecond), r.RTT.Round(time.Microsecond),
			r.Time.Local().Format("02/01/2006 15:04:05"))
	}
	if failed == len(hosts) {
		return cli.Exit("ERROR: no server answered", 1)
	}
	return nil
}

func validateAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("validate: at least one address required", 2)
	}
	bad := 0
	for _, raw := range c.Args().Slice() {
		a, err := ipaddr.Validate(raw)
		if err != nil {
			bad++
			fmt.Printf("%q: %v\n", raw, err)
			continue
		}
		fmt.Printf("%q: %s\n", raw, a)
	}
	if bad > 0 {
		return cli.Exit("", 1)
	}
	return nil
}
