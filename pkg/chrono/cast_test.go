package chrono

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/calendar"
	"github.com/msto63/chronox/pkg/zone"
)

// 2018-03-25 01:30:00 UTC
const springUTC = 1_521_941_400

func localMinutes(ymd calendar.YearMonthDay, hh, mm int64) int64 {
	return ymd.Days()*1440 + hh*60 + mm
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"ns", UnitNanosecond},
		{"µs", UnitMicrosecond},
		{"ms", UnitMillisecond},
		{"Seconds", UnitSecond},
		{" min ", UnitMinute},
		{"hour", UnitHour},
		{"d", UnitDay},
	}
	for _, tt := range tests {
		u, err := ParseUnit(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, u)
	}

	_, err := ParseUnit("fortnight")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
	assert.Equal(t, "min", UnitMinute.String())
	assert.Equal(t, ratioHour, UnitHour.Ratio())
	assert.Equal(t, "zoned", KindZoned.String())
}

func TestConvertDuration(t *testing.T) {
	tests := []struct {
		count    int64
		from, to Unit
		want     int64
	}{
		{90, UnitSecond, UnitMinute, 1},
		{-90, UnitSecond, UnitMinute, -1},
		{90, UnitSecond, UnitMillisecond, 90_000},
		{3_599_999, UnitMillisecond, UnitHour, 0},
		{2, UnitDay, UnitHour, 48},
	}
	for _, tt := range tests {
		got, err := Convert(nil, Value{Kind: KindDuration, Unit: tt.from, Count: tt.count},
			Target{Kind: KindDuration, Unit: tt.to})
		require.NoError(t, err)
		assert.Equal(t, Value{Kind: KindDuration, Unit: tt.to, Count: tt.want}, got, "%d %v -> %v", tt.count, tt.from, tt.to)
	}
}

func TestConvertPointMatchesGeneric(t *testing.T) {
	r := DefaultResolver()
	sys := At[System](Seconds(springUTC))

	got, err := Convert(r, Value{Kind: KindPoint, Clock: ClockSystem, Unit: UnitSecond, Count: springUTC},
		Target{Kind: KindPoint, Clock: ClockTAI, Unit: UnitMillisecond})
	require.NoError(t, err)
	assert.Equal(t, RescalePoint[Milli](ToClock[TAI](r, sys)).SinceEpoch().Count(), got.Count)
	assert.Equal(t, ClockTAI, got.Clock)
	assert.Equal(t, "2018-03-25 01:30:37.000", got.String())

	gps, err := Convert(r, got, Target{Kind: KindPoint, Clock: ClockGPS, Unit: UnitMinute})
	require.NoError(t, err)
	assert.Equal(t, RescalePoint[Minute](ToClock[GPS](r, sys)).SinceEpoch().Count(), gps.Count)

	back, err := Convert(r, got, Target{Kind: KindPoint, Clock: ClockSystem, Unit: UnitSecond})
	require.NoError(t, err)
	assert.Equal(t, int64(springUTC), back.Count)
}

func TestConvertPointToZoned(t *testing.T) {
	z := berlin(t)
	ymd := calendar.Date(2018, calendar.March, 25)

	zv, err := Convert(nil, Value{Kind: KindPoint, Clock: ClockSystem, Unit: UnitSecond, Count: springUTC},
		Target{Kind: KindZoned, Unit: UnitMinute, Zone: z})
	require.NoError(t, err)
	assert.Equal(t, KindZoned, zv.Kind)
	assert.Equal(t, localMinutes(ymd, 3, 30), zv.Count)
	assert.Equal(t, int64(7200), zv.Offset)
	assert.Equal(t, "2018-03-25 03:30", zv.String())

	gap := Value{Kind: KindPoint, Clock: ClockLocal, Unit: UnitMinute, Count: localMinutes(ymd, 2, 30)}
	early, err := Convert(nil, gap, Target{Kind: KindZoned, Unit: UnitMinute, Zone: z, Choice: Earliest})
	require.NoError(t, err)
	late, err := Convert(nil, gap, Target{Kind: KindZoned, Unit: UnitMinute, Zone: z, Choice: Latest})
	require.NoError(t, err)
	assert.Equal(t, "2018-03-25 01:30", early.String())
	assert.Equal(t, "2018-03-25 03:30", late.String())
	assert.Equal(t, int64(3600), early.Offset)
	assert.Equal(t, int64(7200), late.Offset)
}

func TestConvertZoned(t *testing.T) {
	z := berlin(t)
	ymd := calendar.Date(2018, calendar.March, 25)
	zv := Value{Kind: KindZoned, Clock: ClockLocal, Unit: UnitMinute, Count: localMinutes(ymd, 3, 10), Zone: z, Offset: 7200}

	local, err := Convert(nil, zv, Target{Kind: KindPoint, Clock: ClockLocal, Unit: UnitSecond})
	require.NoError(t, err)
	assert.Equal(t, localMinutes(ymd, 3, 10)*60, local.Count)

	sys, err := Convert(nil, zv, Target{Kind: KindPoint, Clock: ClockSystem, Unit: UnitMinute})
	require.NoError(t, err)
	assert.Equal(t, "2018-03-25 01:10", sys.String())

	utc, err := Convert(nil, zv, Target{Kind: KindZoned, Unit: UnitMinute, Zone: zone.UTC})
	require.NoError(t, err)
	assert.Equal(t, "2018-03-25 01:10", utc.String())
	assert.Equal(t, int64(0), utc.Offset)

	hour, err := Convert(nil, zv, Target{Kind: KindZoned, Unit: UnitHour, Zone: z})
	require.NoError(t, err)
	assert.Equal(t, "2018-03-25 03:00", hour.String())
	assert.Equal(t, int64(7200), hour.Offset)

	// local midnight precedes the transition and takes the winter offset
	day, err := Convert(nil, zv, Target{Kind: KindZoned, Unit: UnitDay, Zone: z})
	require.NoError(t, err)
	assert.Equal(t, "2018-03-25", day.String())
	assert.Equal(t, int64(3600), day.Offset)

	// agrees with the generic zoned time
	zt := RescaleZoned[Day](MakeZoned(z, localAt(2018, calendar.March, 25, 3, 10), Earliest))
	assert.Equal(t, zt.Local().SinceEpoch().Count(), day.Count)
	assert.Equal(t, zt.Info().Offset, day.Offset)
}

// tableZone holds its rules in a slice, so values of it are not comparable
type tableZone struct {
	name  string
	rules []zone.Info
}

func (z tableZone) Name() string { return z.name }

func (z tableZone) Lookup(sys int64) zone.Info {
	for _, r := range z.rules {
		if sys >= r.Start && sys < r.End {
			return r
		}
	}
	return zone.Info{Abbrev: "UTC", Start: math.MinInt64, End: math.MaxInt64}
}

func TestConvertZonedUncomparableZone(t *testing.T) {
	plus2 := tableZone{name: "Test/Plus2", rules: []zone.Info{{Offset: 7200, Abbrev: "P2", Start: math.MinInt64, End: math.MaxInt64}}}
	minus1 := tableZone{name: "Test/Minus1", rules: []zone.Info{{Offset: -3600, Abbrev: "M1", Start: math.MinInt64, End: math.MaxInt64}}}
	ymd := calendar.Date(2018, calendar.March, 25)
	zv := Value{Kind: KindZoned, Clock: ClockLocal, Unit: UnitMinute, Count: localMinutes(ymd, 3, 30), Zone: plus2, Offset: 7200}

	same, err := Convert(nil, zv, Target{Kind: KindZoned, Unit: UnitSecond, Zone: plus2})
	require.NoError(t, err)
	assert.Equal(t, localMinutes(ymd, 3, 30)*60, same.Count)
	assert.Equal(t, int64(7200), same.Offset)

	other, err := Convert(nil, zv, Target{Kind: KindZoned, Unit: UnitMinute, Zone: minus1})
	require.NoError(t, err)
	assert.Equal(t, localMinutes(ymd, 0, 30), other.Count)
	assert.Equal(t, int64(-3600), other.Offset)
	assert.Equal(t, "Test/Minus1", other.Zone.Name())

	fromPoint, err := Convert(nil, Value{Kind: KindPoint, Clock: ClockSystem, Unit: UnitSecond, Count: springUTC},
		Target{Kind: KindZoned, Unit: UnitMinute, Zone: plus2})
	require.NoError(t, err)
	assert.Equal(t, localMinutes(ymd, 3, 30), fromPoint.Count)
}

func TestConvertRejects(t *testing.T) {
	z := berlin(t)
	tests := []struct {
		name string
		v    Value
		to   Target
	}{
		{"duration to point", Value{Kind: KindDuration, Unit: UnitSecond}, Target{Kind: KindPoint, Unit: UnitSecond}},
		{"point to duration", Value{Kind: KindPoint, Unit: UnitSecond}, Target{Kind: KindDuration, Unit: UnitSecond}},
		{"zoned to duration", Value{Kind: KindZoned, Unit: UnitSecond, Zone: z}, Target{Kind: KindDuration, Unit: UnitSecond}},
		{"unknown unit", Value{Kind: KindDuration, Unit: Unit(42)}, Target{Kind: KindDuration, Unit: UnitSecond}},
		{"unknown clock", Value{Kind: KindPoint, Clock: ClockID(9), Unit: UnitSecond}, Target{Kind: KindPoint, Unit: UnitSecond}},
		{"unknown kind", Value{Kind: Kind(7), Unit: UnitSecond}, Target{Kind: KindDuration, Unit: UnitSecond}},
		{"zoned without zone", Value{Kind: KindPoint, Unit: UnitSecond}, Target{Kind: KindZoned, Unit: UnitSecond}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(nil, tt.v, tt.to)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnsupportedConversion))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "01:01:01.001", Value{Kind: KindDuration, Unit: UnitMillisecond, Count: 3_661_001}.String())
	assert.Equal(t, "48:00", Value{Kind: KindDuration, Unit: UnitDay, Count: 2}.String())
	assert.Equal(t, "2018-03-25 01:30:00", Value{Kind: KindPoint, Clock: ClockSystem, Unit: UnitSecond, Count: springUTC}.String())
	assert.Equal(t, "1970-01-02", Value{Kind: KindPoint, Clock: ClockLocal, Unit: UnitDay, Count: 1}.String())
}
