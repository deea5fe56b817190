package source

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	req := Request()
	require.Len(t, req, PacketSize)
	assert.Equal(t, byte(8), req[0])
	for i, b := range req[1:] {
		assert.Zero(t, b, "byte %d", i+1)
	}
}

func TestParseTransmit(t *testing.T) {
	want := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	resp := reply(want, PacketSize)
	s, err := ParseTransmit(resp)
	require.NoError(t, err)
	assert.Equal(t, want.Unix(), s.Unix())
	assert.True(t, s.Time().Equal(want))

	// ответ длиннее 48 байт (extension fields) допустим
	s, err = ParseTransmit(reply(want, 68))
	require.NoError(t, err)
	assert.Equal(t, want.Unix(), s.Unix())
}

func TestParseTransmit_Era(t *testing.T) {
	tests := []struct {
		sec  uint32
		want time.Time
	}{
		{ntpEpochOffset, time.Unix(0, 0).UTC()},
		{0xffffffff, time.Date(2036, 2, 7, 6, 28, 15, 0, time.UTC)},
		// эра 1: счётчик секунд начался с нуля 2036-02-07 06:28:16 UTC
		{1, time.Date(2036, 2, 7, 6, 28, 17, 0, time.UTC)},
		{1000, time.Date(2036, 2, 7, 6, 44, 56, 0, time.UTC)},
	}
	for _, tt := range tests {
		resp := make([]byte, PacketSize)
		binary.BigEndian.PutUint32(resp[transmitOffset:], tt.sec)
		s, err := ParseTransmit(resp)
		require.NoError(t, err, "sec=%d", tt.sec)
		assert.Equal(t, tt.want, s.Time(), "sec=%d", tt.sec)
	}
}

func TestParseTransmit_Short(t *testing.T) {
	_, err := ParseTransmit(make([]byte, 47))
	assert.True(t, errors.Is(err, ErrMalformed), "%v", err)
	_, err = ParseTransmit(nil)
	assert.True(t, errors.Is(err, ErrMalformed), "%v", err)
}

func TestParseTransmit_Zero(t *testing.T) {
	_, err := ParseTransmit(make([]byte, PacketSize))
	assert.True(t, errors.Is(err, ErrMalformed), "%v", err)
}

func TestParseTransmit_IgnoresFraction(t *testing.T) {
	resp := reply(time.Unix(1700000000, 0), PacketSize)
	binary.BigEndian.PutUint32(resp[44:], 0xffffffff)
	s, err := ParseTransmit(resp)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), s.Unix())
}

// reply строит ответ сервера размером size с transmit timestamp = t
func reply(t time.Time, size int) []byte {
	resp := make([]byte, size)
	resp[0] = 0x24 // LI=0, VN=4, mode=server
	binary.BigEndian.PutUint32(resp[transmitOffset:], uint32(t.Unix()+ntpEpochOffset))
	return resp
}
