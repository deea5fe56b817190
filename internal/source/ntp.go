// Package source — получение времени от NTP сервера (клиент SNTP, один запрос на вызов).
package source

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/shiwa/timecard-mini/timentp/internal/ipaddr"
)

const (
	// DefaultTimeout — ожидание ответа сервера
	DefaultTimeout = 6 * time.Second
	// DefaultPort — порт NTP
	DefaultPort = 123
)

// NTP — транспорт: один UDP сокет на запрос, закрывается на любом пути выхода.
type NTP struct {
	timeout time.Duration
	port    int
}

// NewNTP создаёт NTP транспорт; timeout <= 0 — DefaultTimeout.
func NewNTP(timeout time.Duration) *NTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &NTP{timeout: timeout, port: DefaultPort}
}

// WithPort меняет порт назначения (для тестов и нестандартных серверов).
func (n *NTP) WithPort(port int) *NTP {
	n.port = port
	return n
}

// Timeout возвращает ожидание ответа
func (n *NTP) Timeout() time.Duration {
	return n.timeout
}

// RequestTime отправляет запрос серверу и возвращает transmit timestamp ответа.
func (n *NTP) RequestTime(addr ipaddr.Address) (Sample, error) {
	raddr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(addr.String(), strconv.Itoa(n.port)))
	if err != nil {
		return 0, fmt.Errorf("%w: resolve %s: %v", ErrNetwork, addr, err)
	}
	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return 0, fmt.Errorf("%w: socket: %v", ErrNetwork, err)
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(n.timeout)); err != nil {
		return 0, fmt.Errorf("%w: set deadline: %v", ErrNetwork, err)
	}
	if _, err := conn.WriteToUDP(Request(), raddr); err != nil {
		return 0, fmt.Errorf("%w: send to %s: %v", ErrNetwork, addr, err)
	}
	buf := make([]byte, 1024)
	for {
		nr, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			return 0, fmt.Errorf("%w: receive from %s: %v", ErrNetwork, addr, err)
		}
		// чужие датаграммы на несвязанный сокет пропускаем до истечения deadline
		if !from.IP.Equal(raddr.IP) || from.Port != raddr.Port {
			continue
		}
		return ParseTransmit(buf[:nr])
	}
}
