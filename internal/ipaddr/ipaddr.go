// Package ipaddr — проверка и нормализация IPv4-адресов NTP серверов из конфига.
package ipaddr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid — строка не является IPv4-адресом в точечной записи.
var ErrInvalid = errors.New("invalid ipv4 address")

// Address — проверенный IPv4-адрес в канонической форме (без незначащих нулей).
type Address string

// String возвращает адрес как строку
func (a Address) String() string {
	return string(a)
}

// Validate проверяет строку на соответствие IPv4-адресу и возвращает каноническую форму:
// "192.168.001.010" -> "192.168.1.10".
func Validate(raw string) (Address, error) {
	if len(raw) < 7 || len(raw) > 15 {
		return "", fmt.Errorf("%w: %q: length %d", ErrInvalid, raw, len(raw))
	}
	parts := strings.Split(raw, ".")
	if len(parts) != 4 {
		return "", fmt.Errorf("%w: %q: %d segments", ErrInvalid, raw, len(parts))
	}
	var octets [4]uint64
	norm := make([]string, 4)
	for i, p := range parts {
		if len(p) < 1 || len(p) > 3 {
			return "", fmt.Errorf("%w: %q: segment %d length %d", ErrInvalid, raw, i+1, len(p))
		}
		p = trimZeros(p)
		for _, c := range p {
			if c < '0' || c > '9' {
				return "", fmt.Errorf("%w: %q: non-digit in segment %d", ErrInvalid, raw, i+1)
			}
		}
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil || v > 255 {
			return "", fmt.Errorf("%w: %q: segment %d out of range", ErrInvalid, raw, i+1)
		}
		octets[i] = v
		norm[i] = p
	}
	canon := fmt.Sprintf("%d.%d.%d.%d", octets[0], octets[1], octets[2], octets[3])
	// собранный обратно адрес должен совпасть с нормализованным входом
	if canon != strings.Join(norm, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	return Address(canon), nil
}

// MustValidate — как Validate, но паникует на неверном адресе (для констант).
func MustValidate(raw string) Address {
	a, err := Validate(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// trimZeros убирает ведущие нули, оставляя одиночный "0"
func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
