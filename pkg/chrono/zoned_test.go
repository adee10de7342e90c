package chrono

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/calendar"
	"github.com/msto63/chronox/pkg/zone"
)

func berlin(t *testing.T) zone.Zone {
	t.Helper()
	z, err := zone.NewTZProvider(nil).Locate("Europe/Berlin")
	require.NoError(t, err)
	return z
}

func localAt(y calendar.Year, m calendar.Month, d calendar.Day, hh, mm int64) TimePoint[Local, Minute, int64] {
	return RescalePoint[Minute](AtDate(calendar.Date(y, m, d))).Add(Minutes(hh*60 + mm))
}

func TestMakeZonedUnique(t *testing.T) {
	z := berlin(t)
	midnight := RescalePoint[Hour](AtDate(calendar.Date(2018, calendar.March, 25)))

	zt, err := MakeZonedUnique(z, midnight)
	require.NoError(t, err)
	assert.Equal(t, midnight, zt.Local())
	assert.Equal(t, "CET", zt.Info().Abbrev)
	assert.Equal(t, Seconds(3600), zt.Offset())
	assert.Equal(t, "Europe/Berlin", zt.Zone().Name())
}

func TestMakeZonedInGap(t *testing.T) {
	z := berlin(t)
	ymd := calendar.Date(2018, calendar.March, 25)
	// 02:30:01.002 does not exist in Berlin on that day
	local := RescalePoint[Milli](AtDate(ymd)).Add(Milliseconds((2*3600+30*60+1)*1000 + 2))

	li := Classify(z, local)
	assert.Equal(t, Nonexistent, li.Kind)
	assert.Equal(t, "CET", li.First.Abbrev)
	assert.Equal(t, "CEST", li.Second.Abbrev)

	_, err := MakeZonedUnique(z, local)
	assert.ErrorIs(t, err, mdwerror.ErrNonexistentLocalTime)

	early := MakeZoned(z, local, Earliest)
	late := MakeZoned(z, local, Latest)
	assert.Equal(t, "2018-03-25 01:30:01.002", early.String())
	assert.Equal(t, "2018-03-25 03:30:01.002", late.String())
	assert.Equal(t, "CET", early.Info().Abbrev)
	assert.Equal(t, "CEST", late.Info().Abbrev)
	assert.Equal(t, Milliseconds(3_600_000), late.Since(early))

	// arithmetic stays consistent after snapping
	assert.Equal(t, "2018-03-25 03:30:01.002", early.Add(Milliseconds(3_600_000)).String())
	assert.True(t, early.Add(Milliseconds(3_600_000)).Equal(late))
}

func TestGapSidesOfTransition(t *testing.T) {
	z := berlin(t)
	transition := At[System](Minutes((springUTC - 1800) / 60))

	for mm := int64(0); mm < 60; mm++ {
		local := localAt(2018, calendar.March, 25, 2, mm)
		require.Equal(t, Nonexistent, Classify(z, local).Kind, "02:%02d", mm)
		assert.True(t, MakeZoned(z, local, Earliest).Sys().Before(transition), "earliest 02:%02d", mm)
		late := MakeZoned(z, local, Latest).Sys()
		if mm == 0 {
			assert.Equal(t, transition, late)
			continue
		}
		assert.True(t, late.After(transition), "latest 02:%02d", mm)
	}
}

func TestZonedAcrossSpringForward(t *testing.T) {
	z := berlin(t)
	zt := MakeZoned(z, localAt(2018, calendar.March, 25, 1, 30), Earliest)
	assert.Equal(t, Minutes(3*60+30), zt.Add(Minutes(60)).TimeOfDay().ToDuration())
	assert.Equal(t, "2018-03-25 03:30", zt.Add(Minutes(60)).String())
}

func TestZonedAcrossFold(t *testing.T) {
	z := berlin(t)

	before := localAt(2018, calendar.October, 28, 1, 30)
	early := MakeZoned(z, before, Earliest)
	late := MakeZoned(z, before, Latest)
	require.True(t, early.Equal(late), "01:30 precedes the fold")

	plus1 := early.Add(Minutes(60))
	plus2 := early.Add(Minutes(120))
	assert.Equal(t, Minutes(2*60+30), plus1.TimeOfDay().ToDuration())
	assert.Equal(t, Minutes(2*60+30), plus2.TimeOfDay().ToDuration())
	assert.Equal(t, plus1.Local(), plus2.Local())
	assert.False(t, plus1.Equal(plus2))
	assert.Equal(t, "CEST", plus1.Info().Abbrev)
	assert.Equal(t, "CET", plus2.Info().Abbrev)

	inFold := localAt(2018, calendar.October, 28, 2, 30)
	li := Classify(z, inFold)
	assert.Equal(t, Ambiguous, li.Kind)
	assert.Equal(t, int64(7200), li.First.Offset)
	assert.Equal(t, int64(3600), li.Second.Offset)

	first := MakeZoned(z, inFold, Earliest)
	second := MakeZoned(z, inFold, Latest)
	assert.False(t, first.Equal(second))
	assert.Equal(t, Minutes(60), second.Since(first))
	assert.Equal(t, -1, first.Compare(second))
	assert.Equal(t, first.Local(), second.Local())
	assert.True(t, first.Equal(plus1))
	assert.True(t, second.Equal(plus2))

	_, err := MakeZonedUnique(z, inFold)
	assert.ErrorIs(t, err, mdwerror.ErrAmbiguousLocalTime)
}

func TestZonedEqualityIsPhysical(t *testing.T) {
	z := berlin(t)
	zt := MakeZoned(z, localAt(2018, calendar.July, 1, 12, 0), Earliest)
	inUTC := ZonedFrom(nil, zone.UTC, zt.Sys())

	assert.True(t, zt.Equal(inUTC))
	assert.NotEqual(t, zt.Local(), inUTC.Local())
	assert.Equal(t, "2018-07-01 10:00", inUTC.String())
}

func TestZonedLocalMatchesOffset(t *testing.T) {
	z := berlin(t)
	start := RescalePoint[Second](At[System](Days(calendar.Date(2018, calendar.January, 1).Days())))

	for h := int64(0); h < 365*24; h += 7 {
		sys := start.Add(Seconds(h * 3600))
		zt := ZonedFrom(nil, z, sys)
		require.Equal(t, sys, zt.Sys())
		require.Equal(t, zt.Info().Offset, zt.Local().SinceEpoch().Count()-sys.SinceEpoch().Count())

		back := MakeZoned(z, zt.Local(), Earliest)
		if !back.Equal(zt) {
			require.True(t, MakeZoned(z, zt.Local(), Latest).Equal(zt), "hour %d", h)
		}
	}
}

func TestZonedFromOtherClocks(t *testing.T) {
	z := berlin(t)
	r := DefaultResolver()
	ymd := calendar.Date(2018, calendar.March, 25)
	tod := Milliseconds((2*3600+30*60+1)*1000 + 2)
	sys := RescalePoint[Milli](At[System](Days(ymd.Days()))).Add(tod)

	zt := ZonedFrom(r, z, sys)
	assert.Equal(t, ymd, zt.Date())
	assert.Equal(t, tod.Add(Milliseconds(7_200_000)), zt.TimeOfDay().ToDuration())

	fromTAI := ZonedFrom(r, z, ToClock[TAI](r, sys))
	fromGPS := ZonedFrom(r, z, ToClock[GPS](r, sys))
	assert.True(t, zt.Equal(fromTAI))
	assert.True(t, zt.Equal(fromGPS))
	assert.Equal(t, ToClock[TAI](r, sys), ZonedToClock[TAI](r, zt))
}

func TestRescaleZoned(t *testing.T) {
	z := berlin(t)
	ymd := calendar.Date(1971, calendar.January, 1)
	loc := RescalePoint[Second](AtDate(ymd))
	sys := At[System](loc.SinceEpoch())
	zt := MakeZoned(z, loc.Add(Seconds(90)), Earliest)

	assert.Equal(t, loc.Add(Seconds(90)), zt.Local())
	assert.Equal(t, sys.Add(Seconds(90-3600)), ZonedToClock[System](nil, zt))

	ms := RescaleZoned[Milli](zt)
	assert.Equal(t, RescalePoint[Milli](loc).Add(Milliseconds(90_000)), ms.Local())
	assert.Equal(t, "CET", ms.Info().Abbrev)

	minutes := RescaleZoned[Minute](zt)
	assert.Equal(t, RescalePoint[Minute](loc).Add(Minutes(1)), minutes.Local())

	hours := RescaleZoned[Hour](zt)
	assert.Equal(t, RescalePoint[Hour](loc), hours.Local())
	assert.Equal(t, ymd, hours.Date())

	spring := MakeZoned(z, localAt(2018, calendar.March, 25, 3, 10), Earliest)
	assert.Equal(t, "CEST", spring.Info().Abbrev)
	snapped := RescaleZoned[Hour](spring)
	assert.Equal(t, "2018-03-25 03:00", snapped.String())
	assert.Equal(t, "CEST", snapped.Info().Abbrev)

	// midnight precedes the transition, so the rule is resolved again
	day := RescaleZoned[Day](spring)
	assert.Equal(t, "2018-03-25", day.String())
	assert.Equal(t, "CET", day.Info().Abbrev)
	assert.Equal(t, calendar.Date(2018, calendar.March, 25), day.Date())
}

func TestZonedKeepsHalfHourOffsets(t *testing.T) {
	ist := zone.Fixed("Asia/Kolkata", 19800, "IST")
	zt := MakeZoned(ist, RescalePoint[Hour](AtDate(calendar.Date(2018, calendar.March, 25))), Earliest)

	// the local reading survives even though the offset is not whole hours
	assert.Equal(t, "2018-03-25 00:00", zt.String())
	// Sys truncates to whole hours
	utc := ZonedFrom(nil, zone.UTC, zt.Sys())
	assert.Equal(t, "2018-03-24 18:00", utc.String())
	assert.Equal(t, 1, zt.Compare(utc))
	assert.Equal(t, "2018-03-24 18:30:00", ZonedFrom(nil, zone.UTC, ZonedToClock[System](nil, RescaleZoned[Second](zt))).String())
}

func TestZonedTimeOfDay(t *testing.T) {
	z := berlin(t)
	zt := RescaleZoned[Milli](MakeZoned(z, RescalePoint[Hour](AtDate(calendar.Date(1971, calendar.January, 1))), Earliest))
	tod := zt.Add(Milliseconds(3_661_001)).TimeOfDay()
	assert.Equal(t, Hours(1), tod.Hours())
	assert.Equal(t, Minutes(1), tod.Minutes())
	assert.Equal(t, Seconds(1), tod.Seconds())
	assert.Equal(t, Milliseconds(1), tod.Subseconds())
}

func TestZonedByName(t *testing.T) {
	p := zone.NewTZProvider(nil)

	zt, err := MakeZonedByName(p, "Europe/Berlin", localAt(2018, calendar.March, 25, 2, 30), Latest)
	require.NoError(t, err)
	assert.Equal(t, "2018-03-25 03:30", zt.String())

	_, err = MakeZonedByName(p, "Mars/Olympus_Mons", localAt(2018, calendar.March, 25, 2, 30), Earliest)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownZone))
}

func TestFixedZone(t *testing.T) {
	ist := zone.Fixed("Asia/Kolkata", 19800, "IST")
	local := localAt(2018, calendar.March, 25, 10, 45)

	li := Classify(ist, local)
	assert.Equal(t, Unique, li.Kind)

	zt := MakeZoned(ist, local, Latest)
	assert.Equal(t, "2018-03-25 10:45", zt.String())
	assert.Equal(t, "2018-03-25 05:15", ZonedFrom(nil, zone.UTC, zt.Sys()).String())
}

func TestChoice(t *testing.T) {
	c, err := ParseChoice("latest")
	require.NoError(t, err)
	assert.Equal(t, Latest, c)
	assert.Equal(t, "earliest", Earliest.String())
	_, err = ParseChoice("middle")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
	assert.Equal(t, "nonexistent", Nonexistent.String())
}
