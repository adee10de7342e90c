package zone

import (
	"bytes"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	mdwlog "github.com/msto63/chronox/foundation/core/log"
)

func unix(y int, m time.Month, d, h, min int) int64 {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC).Unix()
}

func TestFixed(t *testing.T) {
	z := Fixed("EST", -5*3600, "EST")
	assert.Equal(t, "EST", z.Name())

	info := z.Lookup(0)
	assert.Equal(t, int64(-5*3600), info.Offset)
	assert.Equal(t, "EST", info.Abbrev)
	assert.False(t, info.IsDST)
	assert.Equal(t, Beginning, info.Start)
	assert.Equal(t, End, info.End)

	assert.Equal(t, int64(0), UTC.Lookup(unix(2018, time.March, 25, 1, 0)).Offset)
}

func TestTZProviderBerlin(t *testing.T) {
	p := NewTZProvider(nil)
	z, err := p.Locate("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", z.Name())

	spring := unix(2018, time.March, 25, 1, 0)
	autumn := unix(2018, time.October, 28, 1, 0)

	tests := []struct {
		name   string
		sys    int64
		offset int64
		abbrev string
		dst    bool
		start  int64
		end    int64
	}{
		{"winter before spring forward", spring - 1, 3600, "CET", false, unix(2017, time.October, 29, 1, 0), spring},
		{"summer from transition", spring, 7200, "CEST", true, spring, autumn},
		{"winter after fall back", autumn, 3600, "CET", false, autumn, unix(2019, time.March, 31, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := z.Lookup(tt.sys)
			assert.Equal(t, tt.offset, info.Offset)
			assert.Equal(t, tt.abbrev, info.Abbrev)
			assert.Equal(t, tt.dst, info.IsDST)
			assert.Equal(t, tt.start, info.Start)
			assert.Equal(t, tt.end, info.End)
		})
	}
}

func TestTZProviderCaches(t *testing.T) {
	p := NewTZProvider(nil)
	a, err := p.Locate("Europe/Berlin")
	require.NoError(t, err)
	b, err := p.Locate("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, p.cache, 1)
}

func TestTZProviderUTC(t *testing.T) {
	z, err := NewTZProvider(nil).Locate("UTC")
	require.NoError(t, err)
	assert.Equal(t, UTC, z)
}

func TestTZProviderUnknownZone(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.New().WithFormat(mdwlog.FormatText).WithOutput(&buf).WithLevel(mdwlog.LevelWarn)
	p := NewTZProvider(logger)

	for _, name := range []string{"", "Mars/Olympus_Mons"} {
		z, err := p.Locate(name)
		assert.Nil(t, z)
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownZone))
	}
	assert.True(t, strings.Contains(buf.String(), "unknown zone"))
	assert.True(t, strings.Contains(buf.String(), "zone=Mars/Olympus_Mons"))
}

func TestMapProvider(t *testing.T) {
	p := MapProvider{"Test/Plus2": Fixed("Test/Plus2", 7200, "+02")}

	z, err := p.Locate("Test/Plus2")
	require.NoError(t, err)
	assert.Equal(t, int64(7200), z.Lookup(0).Offset)

	_, err = p.Locate("Europe/Berlin")
	require.Error(t, err)
	assert.Equal(t, mdwerror.CodeUnknownZone, mdwerror.GetCode(err))
	var e *mdwerror.Error
	require.ErrorAs(t, err, &e)
	name, ok := e.Detail("zone")
	require.True(t, ok)
	assert.Equal(t, "Europe/Berlin", name)
}

func TestFromLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	z := FromLocation(loc)
	assert.Equal(t, "America/New_York", z.Name())
	assert.Equal(t, int64(-5*3600), z.Lookup(unix(2018, time.January, 1, 12, 0)).Offset)
	assert.Equal(t, int64(-4*3600), z.Lookup(unix(2018, time.July, 1, 12, 0)).Offset)
}
