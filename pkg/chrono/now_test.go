package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/zone"
)

func TestFixedSource(t *testing.T) {
	instant := time.Date(2018, time.March, 25, 1, 30, 0, 1_002_003, time.UTC)
	restore := SetSource(FixedSource(instant))

	assert.Equal(t, FromTime(instant), Now())
	assert.Equal(t, "2018-03-25 01:30:00.001002003", Now().String())
	assert.Equal(t, instant, ToTime(Now()))

	r := DefaultResolver()
	assert.Equal(t, ToClock[TAI](r, Now()), NowOn[TAI](r))
	assert.Equal(t, "2018-03-25 01:30:37.001002003", NowOn[TAI](r).String())

	zt := NowIn(berlin(t))
	assert.Equal(t, "2018-03-25 03:30:00.001002003", zt.String())
	assert.Equal(t, "CEST", zt.Info().Abbrev)

	restore()
	assert.True(t, Now().After(At[System](Nanoseconds(instant.UnixNano()))))
}

func TestNowInNamed(t *testing.T) {
	restore := SetSource(FixedSource(time.Unix(0, 0)))
	defer restore()

	p := zone.MapProvider{"Asia/Kolkata": zone.Fixed("Asia/Kolkata", 19800, "IST")}
	zt, err := NowInNamed(p, "Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01 05:30:00.000000000", zt.String())

	_, err = NowInNamed(p, "Europe/Berlin")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownZone))
}

func TestTimeInterop(t *testing.T) {
	assert.Equal(t, time.Unix(-1, 500_000_000).UTC(), ToTime(At[System](Milliseconds(-500))))
	assert.Equal(t, time.Unix(90, 0).UTC(), ToTime(At[System](Of[Minute](1.5))))
	assert.Equal(t, int64(1_521_941_400_000_000_000), FromTime(time.Unix(springUTC, 0)).SinceEpoch().Count())
}
