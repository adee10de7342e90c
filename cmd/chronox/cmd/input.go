package cmd

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/foundation/utils/timex"
	"github.com/msto63/chronox/pkg/chrono"
)

// parsePoint reads a time point given on clock c. Three forms are accepted:
// an RFC 3339 timestamp with offset, which is absolute and ignores c; a
// civil reading as shown by a clock c; and @N, a raw count of seconds since
// the epoch of c.
func parsePoint(r *chrono.Resolver, s string, c chrono.ClockID) (chrono.Value, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "@") {
		n, err := strconv.ParseInt(s[1:], 10, 64)
		if err != nil {
			return chrono.Value{}, mdwerror.Wrap(err, "invalid raw count").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("cmd.parsePoint").
				WithDetail("input", s)
		}
		return chrono.Value{Kind: chrono.KindPoint, Clock: c, Unit: chrono.UnitSecond, Count: n}, nil
	}
	if v, err := timex.ParseInstant(s); err == nil {
		return v, nil
	}

	v, err := timex.ParseLocal(s)
	if err != nil {
		return chrono.Value{}, err
	}
	if c == chrono.ClockLocal {
		return v, nil
	}
	return chrono.Convert(r, v, chrono.Target{Kind: chrono.KindPoint, Clock: c, Unit: v.Unit})
}

// parseUnitOr parses name, or returns def when name is empty
func parseUnitOr(name string, def chrono.Unit) (chrono.Unit, error) {
	if name == "" {
		return def, nil
	}
	return chrono.ParseUnit(name)
}
