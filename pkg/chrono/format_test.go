package chrono

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/msto63/chronox/pkg/calendar"
)

func TestTimeOfDayOf(t *testing.T) {
	tests := []struct {
		name       string
		tod        TimeOfDay[Milli, int64]
		neg        bool
		h, m, s    int64
		subseconds int64
	}{
		{"1h1m1s1ms", TimeOfDayOf(Milliseconds(3_661_001)), false, 1, 1, 1, 1},
		{"1h1m1s", TimeOfDayOf(Milliseconds(3_661_000)), false, 1, 1, 1, 0},
		{"1h1m", TimeOfDayOf(Milliseconds(3_660_000)), false, 1, 1, 0, 0},
		{"1h", TimeOfDayOf(Milliseconds(3_600_000)), false, 1, 0, 0, 0},
		{"negative", TimeOfDayOf(Milliseconds(-3_661_001)), true, 1, 1, 1, 1},
		{"overflowing fields", TimeOfDayOf(Milliseconds(25*3_600_000 + 61*60_000 + 61_000 + 1001)), false, 26, 2, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.neg, tt.tod.IsNegative())
			assert.Equal(t, Hours(tt.h), tt.tod.Hours())
			assert.Equal(t, Minutes(tt.m), tt.tod.Minutes())
			assert.Equal(t, Seconds(tt.s), tt.tod.Seconds())
			assert.Equal(t, Milliseconds(tt.subseconds), tt.tod.Subseconds())
		})
	}
}

func TestTimeOfDayRecompose(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 1000, 3_661_001, -3_661_001, 93_722_001, -1} {
		d := Milliseconds(ms)
		assert.Equal(t, d, TimeOfDayOf(d).ToDuration(), "%d ms", ms)
	}

	tod := TimeOfDayOf(Seconds(3661))
	assert.Equal(t, Milliseconds(3_661_000), TimeOfDayIn[Milli](tod))
	assert.Equal(t, Seconds(3661), TimeOfDayIn[Second](tod))
	assert.Equal(t, Minutes(61), TimeOfDayIn[Minute](tod))
	assert.Equal(t, Seconds(0), TimeOfDayOf(Seconds(3661)).Subseconds())

	assert.Equal(t, -1, TimeOfDayOf(Nanoseconds(3_600_000_000_000)).Compare(TimeOfDayOf(Nanoseconds(3_600_000_000_001))))
	assert.Equal(t, 1, TimeOfDayOf(Seconds(1)).Compare(TimeOfDayOf(Seconds(-1))))
	assert.Equal(t, 0, TimeOfDayOf(Rescale[Minute](Hours(1))).Compare(TimeOfDayOf(Minutes(60))))

	f := TimeOfDayOf(Of[Second](-3661.25))
	assert.True(t, f.IsNegative())
	assert.Equal(t, Hours(1), f.Hours())
	assert.Equal(t, Seconds(1), f.Seconds())
	assert.InDelta(t, 0.25, f.Subseconds().Count(), 1e-9)
}

func TestFractionDigits(t *testing.T) {
	assert.Equal(t, 9, TimeOfDayOf(Nanoseconds(1)).Precision())
	assert.Equal(t, 6, TimeOfDayOf(Microseconds(1)).Precision())
	assert.Equal(t, 3, TimeOfDayOf(Milliseconds(1)).Precision())
	assert.Equal(t, 3, TimeOfDayOf(Of[centi](int64(1))).Precision())
	assert.Equal(t, 0, TimeOfDayOf(Seconds(1)).Precision())
	assert.Equal(t, 0, TimeOfDayOf(Minutes(1)).Precision())
	assert.Equal(t, 9, TimeOfDayOf(Of[Minute](1.0)).Precision())

	assert.Equal(t, "00:00:01.000000000", Nanoseconds(1_000_000_000).String())
	assert.Equal(t, "00:00:01.000000", Microseconds(1_000_000).String())
	assert.Equal(t, "00:00:01.000", Milliseconds(1000).String())
	assert.Equal(t, "00:00:01", Seconds(1).String())
}

type rendered struct {
	name  string
	value interface{ String() string }
}

func renderMatrix(rows []rendered) []byte {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r.name)
		b.WriteString(": ")
		b.WriteString(r.value.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func TestRenderDurations(t *testing.T) {
	rows := []rendered{
		{"ns", Nanoseconds(93_722_001_002_003)},
		{"us", Microseconds(93_722_001_002)},
		{"ms", Milliseconds(93_722_001)},
		{"centi", Of[centi](int64(9_372_200))},
		{"s", Seconds(93_722)},
		{"min", Minutes(1562)},
		{"h", Hours(26)},
		{"d", Days(2)},
		{"negative ms", Milliseconds(-3_661_001)},
		{"float s", Of[Second](1.5)},
		{"float h", Of[Hour](1.5)},
		{"tod", TimeOfDayOf(Milliseconds(-3_661_001))},
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "durations", renderMatrix(rows))
}

func TestRenderPoints(t *testing.T) {
	// 2018-03-25 01:30:00.001002003 UTC
	const ns = 1_521_941_400_001_002_003
	sys := At[System](Nanoseconds(ns))

	rows := []rendered{
		{"ns", sys},
		{"us", RescalePoint[Micro](sys)},
		{"ms", RescalePoint[Milli](sys)},
		{"s", RescalePoint[Second](sys)},
		{"min", RescalePoint[Minute](sys)},
		{"h", RescalePoint[Hour](sys)},
		{"d", RescalePoint[Day](sys)},
		{"month", At[System](Months(578))},
		{"year", At[System](Years(48))},
		{"local", At[Local](Seconds(ns / 1_000_000_000))},
		{"before epoch", At[System](Seconds(-1))},
		{"year zero", AtDate(calendar.Date(0, calendar.January, 1))},
		{"negative year", AtDate(calendar.Date(-1, calendar.December, 31))},
		{"float", At[System](Of[Second](1.5))},
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "points", renderMatrix(rows))
}

func TestRenderReadsOwnClock(t *testing.T) {
	r := DefaultResolver()
	sys := At[System](Seconds(1_521_941_400))
	// TAI - UTC was 37 s in 2018
	assert.Equal(t, "2018-03-25 01:30:37", ToClock[TAI](r, sys).String())
	assert.Equal(t, "2018-03-25 01:30:18", ToClock[GPS](r, sys).String())
	assert.Equal(t, "2018-03-25 01:30:00", ToClock[UTC](r, sys).String())
}
