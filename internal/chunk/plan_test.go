package chunk

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/gopkg/lang/fastrand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onebrc/internal/fixedpoint"
)

var stations = []string{"Abha", "Bangkok", "Cape Town", "Dodoma", "Ürümqi", "N'Djamena", "Petropavlovsk-Kamchatsky"}

func randomMeasurements(rows int) []byte {
	var b []byte
	for i := 0; i < rows; i++ {
		b = append(b, stations[fastrand.Intn(len(stations))]...)
		b = append(b, ';')
		b = fixedpoint.AppendTenths(b, int64(fastrand.Intn(1999)-999))
		b = append(b, '\n')
	}
	return b
}

func requireAligned(t *testing.T, data []byte, ranges []ByteRange, n int) {
	t.Helper()
	require.Len(t, ranges, n)

	var rebuilt []byte
	var next int64
	for i, r := range ranges {
		require.Equal(t, next, r.Start, "range %d", i)
		require.GreaterOrEqual(t, r.Length, int64(0), "range %d", i)
		if r.Start > 0 && r.Start < int64(len(data)) {
			require.Equal(t, byte('\n'), data[r.Start-1], "range %d starts mid-record", i)
		}
		rebuilt = append(rebuilt, data[r.Start:r.End()]...)
		next = r.End()
	}
	require.Equal(t, int64(len(data)), next)
	require.True(t, bytes.Equal(data, rebuilt))
}

func TestPlan(t *testing.T) {
	for _, rows := range []int{1, 2, 10, 1000} {
		data := randomMeasurements(rows)
		for _, n := range []int{1, 2, 3, 8, 64} {
			ranges, err := Plan(bytes.NewReader(data), int64(len(data)), n)
			require.NoError(t, err)
			requireAligned(t, data, ranges, n)
		}
	}
}

func TestPlanScenario(t *testing.T) {
	data := []byte("A;5.0\nB;-3.2\nA;7.5\n")
	ranges, err := Plan(bytes.NewReader(data), int64(len(data)), 8)
	require.NoError(t, err)
	requireAligned(t, data, ranges, 8)
}

func TestPlanLongRecords(t *testing.T) {
	// records much longer than the probe
	name := strings.Repeat("x", 3*probeSize)
	data := []byte(name + ";1.0\n" + name + ";2.0\n")
	ranges, err := Plan(bytes.NewReader(data), int64(len(data)), 4)
	require.NoError(t, err)
	requireAligned(t, data, ranges, 4)
}

func TestPlanEmpty(t *testing.T) {
	ranges, err := Plan(bytes.NewReader(nil), 0, 4)
	require.NoError(t, err)
	for _, r := range ranges {
		assert.Equal(t, ByteRange{}, r)
	}
}

func TestPlanNoTerminator(t *testing.T) {
	data := []byte("A;1.0")
	ranges, err := Plan(bytes.NewReader(data), int64(len(data)), 3)
	require.NoError(t, err)
	assert.Equal(t, []ByteRange{{0, 5}, {5, 0}, {5, 0}}, ranges)
}

func TestPlanInvalidWorkers(t *testing.T) {
	_, err := Plan(bytes.NewReader(nil), 0, 0)
	assert.ErrorIs(t, err, ErrNoWorkers)
}

func TestByteRangeString(t *testing.T) {
	assert.Equal(t, "[10,15)", ByteRange{Start: 10, Length: 5}.String())
}
