// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     leapsec
// Description: File loading and the embedded default table
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package leapsec

import (
	_ "embed"
	"sync"
	"time"

	"github.com/spf13/afero"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	mdwlog "github.com/msto63/chronox/foundation/core/log"
)

//go:embed leapseconds.toml
var embeddedTable []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table embedded in this build
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(embeddedTable, FormatTOML)
		if err != nil {
			panic("leapsec: embedded table: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}

// LoadFile reads and decodes the table at path from fs. FormatAuto picks the
// format from the extension, then from the content. A table that has expired
// is returned normally and reported as a warning on logger, which may be nil.
func LoadFile(fs afero.Fs, path string, format Format, logger *mdwlog.Logger) (*Table, error) {
	logger = mdwlog.OrNop(logger).WithName("leapsec")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "read leap second table").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("leapsec.LoadFile").
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = FormatFromPath(path)
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "load leap second table").WithDetail("path", path)
	}

	fields := mdwlog.Fields{
		"path":    path,
		"version": t.Version(),
		"entries": t.Len(),
	}
	if exp, ok := t.ExpiresDate(); ok {
		fields["expires"] = exp.String()
	}
	logger.Debug("leap second table loaded", fields)
	if t.IsExpired(time.Now()) {
		logger.Warn("leap second table expired, offsets after expiry are extrapolated", fields)
	}
	return t, nil
}
