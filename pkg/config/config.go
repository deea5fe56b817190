// Package config предоставляет конфигурацию timentp для встраивания в другие приложения.
// Поля совпадают с timentp.yml; неизвестные ключи игнорируются.
package config

// Config — конфигурация одного запуска синхронизации.
type Config struct {
	Delay   DelayConfig   `yaml:"delay" config:"delay"`
	Command CommandConfig `yaml:"command" config:"command"`
	// Hosts — IPv4-адреса серверов в порядке опроса; невалидные отбрасываются
	Hosts []string  `yaml:"hosts" config:"hosts"`
	Log   LogConfig `yaml:"log" config:"log"`
}

// DelayConfig — задержки на старте и на выходе, мс (0..3600000).
type DelayConfig struct {
	StartWait  int `yaml:"start_wait" config:"start_wait"`
	FinishWait int `yaml:"finish_wait" config:"finish_wait"`
}

// CommandConfig — порог коррекции (сек, <= 0 — не трогать часы) и таймаут запроса (мс).
type CommandConfig struct {
	DiffTime int `yaml:"diff_time" config:"diff_time"`
	Timeout  int `yaml:"timeout" config:"timeout"`
}

// LogConfig — файл и уровень логов.
type LogConfig struct {
	File  string `yaml:"file" config:"file"`
	Level string `yaml:"level" config:"level"`
}

// Default возвращает конфиг с порогом 120 с и таймаутом 6000 мс.
// Нулевой Config отключает коррекцию часов (DiffTime = 0).
func Default() *Config {
	return &Config{
		Command: CommandConfig{DiffTime: 120, Timeout: 6000},
	}
}
