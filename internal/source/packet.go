package source

import (
	"encoding/binary"
	"fmt"
)

const (
	// PacketSize — размер NTP пакета без расширений
	PacketSize = 48
	// requestMarker — первый байт запроса (как в исходном клиенте), остальные байты нулевые
	requestMarker = 8
	// transmitOffset — смещение секунд transmit timestamp в ответе
	transmitOffset = 40
	// ntpEpochOffset — секунд между 1900-01-01 и 1970-01-01
	ntpEpochOffset = 2208988800
)

// Request возвращает 48-байтный пакет запроса.
func Request() []byte {
	req := make([]byte, PacketSize)
	req[0] = requestMarker
	return req
}

// ParseTransmit извлекает transmit timestamp (секунды) из ответа и переводит к эпохе 1970.
func ParseTransmit(resp []byte) (Sample, error) {
	if len(resp) < PacketSize {
		return 0, fmt.Errorf("%w: reply %d bytes, want >= %d", ErrMalformed, len(resp), PacketSize)
	}
	sec := binary.BigEndian.Uint32(resp[transmitOffset : transmitOffset+4])
	if sec == 0 {
		return 0, fmt.Errorf("%w: zero transmit timestamp", ErrMalformed)
	}
	// вычитание по модулю 2^32: после 2036-02-07 (эра 1) секунды начинаются с нуля
	return Sample(int64(sec - ntpEpochOffset)), nil
}
