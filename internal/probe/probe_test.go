package probe

import (
	"errors"
	"testing"
	"time"

	"github.com/beevik/ntp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiwa/timecard-mini/timentp/internal/ipaddr"
)

func stubQuery(t *testing.T, fn func(string, ntp.QueryOptions) (*ntp.Response, error)) {
	t.Helper()
	orig := queryFunc
	queryFunc = fn
	t.Cleanup(func() { queryFunc = orig })
}

func TestProbe(t *testing.T) {
	now := time.Now()
	var timeouts []time.Duration
	stubQuery(t, func(host string, opt ntp.QueryOptions) (*ntp.Response, error) {
		timeouts = append(timeouts, opt.Timeout)
		if host == "10.0.0.1" {
			return nil, errors.New("i/o timeout")
		}
		return &ntp.Response{
			Time:           now,
			ClockOffset:    250 * time.Millisecond,
			RTT:            20 * time.Millisecond,
			Stratum:        2,
			ReferenceID:    0x0a000001,
			ReferenceTime:  now.Add(-time.Minute),
			RootDelay:      10 * time.Millisecond,
			RootDispersion: 10 * time.Millisecond,
			RootDistance:   20 * time.Millisecond,
			Precision:      time.Microsecond,
			Poll:           64 * time.Second,
		}, nil
	})

	hosts := []ipaddr.Address{ipaddr.MustValidate("10.0.0.1"), ipaddr.MustValidate("10.0.0.2")}
	res := Probe(hosts, 2*time.Second)
	require.Len(t, res, 2)

	assert.Error(t, res[0].Err)
	assert.Equal(t, hosts[0], res[0].Host)

	assert.NoError(t, res[1].Err)
	assert.Equal(t, uint8(2), res[1].Stratum)
	assert.Equal(t, 250*time.Millisecond, res[1].Offset)
	assert.Equal(t, 20*time.Millisecond, res[1].RTT)
	assert.Equal(t, "10.0.0.1", res[1].Reference)

	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, timeouts)
}

func TestProbe_KissOfDeath(t *testing.T) {
	stubQuery(t, func(string, ntp.QueryOptions) (*ntp.Response, error) {
		return &ntp.Response{Stratum: 0, ReferenceID: 0x52415445, KissCode: "RATE"}, nil
	})
	res := Probe([]ipaddr.Address{ipaddr.MustValidate("10.0.0.3")}, time.Second)
	require.Len(t, res, 1)
	assert.Error(t, res[0].Err)
}
