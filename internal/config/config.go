package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shiwa/timecard-mini/timentp/internal/ipaddr"
)

const (
	// DefaultHost — сервер на случай, если в конфиге нет ни одного валидного адреса
	DefaultHost = "200.20.186.76"
	// DefaultDiffTime — порог расхождения (сек), при котором часы корректируются
	DefaultDiffTime = 120
	// DefaultTimeoutMs — ожидание ответа сервера
	DefaultTimeoutMs = 6000
	// MaxWaitMs — ограничение задержек на старте и выходе (1 час)
	MaxWaitMs = 3600000

	// YAMLName и ININame — имена конфигов при автопоиске
	YAMLName = "timentp.yml"
	ININame  = "timentp.ini"
)

// Config — конфигурация timentp: список серверов, задержки, порог коррекции.
type Config struct {
	Delay   DelayConfig   `yaml:"delay"`
	Command CommandConfig `yaml:"command"`
	// Hosts — адреса серверов в порядке опроса (ещё не проверенные)
	Hosts []string  `yaml:"hosts"`
	Log   LogConfig `yaml:"log"`
}

// DelayConfig — задержки на старте и на выходе, мс ([DELAY] в ini)
type DelayConfig struct {
	StartWait  int `yaml:"start_wait"`
	FinishWait int `yaml:"finish_wait"`
}

// CommandConfig — управляющие параметры ([COMMAND] в ini)
type CommandConfig struct {
	// DiffTime — порог в секундах; <= 0 — только сообщать расхождение, часы не трогать
	DiffTime int `yaml:"diff_time"`
	// Timeout — ожидание ответа сервера, мс
	Timeout int `yaml:"timeout"`
}

// LogConfig — вывод логов
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Policy — неизменяемые параметры одного запуска синхронизации.
type Policy struct {
	StartWait  time.Duration
	FinishWait time.Duration
	// DiffTime — порог расхождения в секундах; <= 0 отключает запись часов
	DiffTime int64
	// Timeout — ожидание ответа на один запрос
	Timeout time.Duration
}

// AdjustEnabled сообщает, разрешена ли запись системных часов
func (p Policy) AdjustEnabled() bool {
	return p.DiffTime > 0
}

// Default возвращает конфиг по умолчанию
func Default() *Config {
	return &Config{
		Command: CommandConfig{
			DiffTime: DefaultDiffTime,
			Timeout:  DefaultTimeoutMs,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load читает конфиг: *.ini — формат timentp.ini, иначе YAML.
func Load(path string) (*Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".ini") {
		return LoadINI(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(c)
	return c, nil
}

// Resolve выбирает путь к конфигу: явный путь; timentp.yml в текущем каталоге;
// timentp.ini рядом с исполняемым файлом. Пустая строка — конфига нет, работаем на дефолтах.
func Resolve(path string) string {
	if path != "" {
		return path
	}
	if exists(YAMLName) {
		return YAMLName
	}
	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), ININame)
		if exists(p) {
			return p
		}
	}
	return ""
}

// HostList проверяет адреса из конфига. Невалидные отбрасываются и возвращаются в rejected;
// если не осталось ни одного, список состоит из DefaultHost.
func (c *Config) HostList() (hosts []ipaddr.Address, rejected []error) {
	for _, raw := range c.Hosts {
		if raw == "" {
			continue
		}
		a, err := ipaddr.Validate(raw)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		hosts = append(hosts, a)
	}
	if len(hosts) == 0 {
		hosts = []ipaddr.Address{ipaddr.MustValidate(DefaultHost)}
	}
	return hosts, rejected
}

// Policy собирает параметры запуска из конфига.
func (c *Config) Policy() Policy {
	return Policy{
		StartWait:  time.Duration(clampWait(c.Delay.StartWait)) * time.Millisecond,
		FinishWait: time.Duration(clampWait(c.Delay.FinishWait)) * time.Millisecond,
		DiffTime:   int64(c.Command.DiffTime),
		Timeout:    time.Duration(c.Command.Timeout) * time.Millisecond,
	}
}

func applyDefaults(c *Config) {
	c.Delay.StartWait = clampWait(c.Delay.StartWait)
	c.Delay.FinishWait = clampWait(c.Delay.FinishWait)
	if c.Command.Timeout <= 0 {
		c.Command.Timeout = DefaultTimeoutMs
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func clampWait(ms int) int {
	if ms < 0 {
		return 0
	}
	if ms > MaxWaitMs {
		return MaxWaitMs
	}
	return ms
}

func exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
