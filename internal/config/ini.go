package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// LoadINI читает конфиг в формате timentp.ini (имена секций и ключей без учёта регистра):
//
//	[DELAY]   StartWait, FinishWait (мс)
//	[COMMAND] DiffTime (сек), Timeout (мс)
//	[HOST]    любые ключи; значения — адреса серверов в порядке следования
//
// Нечисловые значения игнорируются (остаётся значение по умолчанию).
func LoadINI(path string) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	delay := f.Section("delay")
	c.Delay.StartWait = delay.Key("startwait").MustInt(c.Delay.StartWait)
	c.Delay.FinishWait = delay.Key("finishwait").MustInt(c.Delay.FinishWait)

	cmd := f.Section("command")
	c.Command.DiffTime = cmd.Key("difftime").MustInt(c.Command.DiffTime)
	c.Command.Timeout = cmd.Key("timeout").MustInt(c.Command.Timeout)

	for _, k := range f.Section("host").Keys() {
		if v := k.String(); v != "" {
			c.Hosts = append(c.Hosts, v)
		}
	}
	applyDefaults(c)
	return c, nil
}
