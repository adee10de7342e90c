package cmd

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/pkg/chrono"
	"github.com/msto63/chronox/pkg/core/config"
	"github.com/msto63/chronox/pkg/core/logging"
	"github.com/msto63/chronox/pkg/leapsec"
	"github.com/msto63/chronox/pkg/zone"
)

// app carries what every subcommand needs. It is filled by the persistent
// pre-run of the root command once flags are parsed.
type app struct {
	fs      afero.Fs
	cfgFile string
	verbose bool

	cfg      *config.Config
	logger   *mdwlog.Logger
	table    *leapsec.Table
	resolver *chrono.Resolver
	zones    zone.Provider
}

// NewRootCmd builds the command tree reading configuration and leap tables
// from fs
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "chronox",
		Short: "chronox - calendar and clock conversion",
		Long: `chronox converts between time representations.

It knows five clocks (sys, utc, tai, gps and local), resolves local civil
times in IANA zones and decomposes instants into calendar dates and times
of day. Leap seconds come from the embedded table or the file named in the
configuration.

Commands:
  now       - current time on a clock or in a zone
  convert   - convert a time point between clocks, zones and units
  duration  - convert a duration between units
  date      - calendar facts about a date
  month     - calendar grid of a month
  zoned     - resolve a local time in a zone
  leap      - show the leap second table`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $CHRONOX_CONFIG or ./chronox.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newNowCmd(a),
		newConvertCmd(a),
		newDurationCmd(a),
		newDateCmd(a),
		newMonthCmd(a),
		newZonedCmd(a),
		newLeapCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the command line against the operating system
func Execute() error {
	return NewRootCmd(afero.NewOsFs()).Execute()
}

func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.fs, a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv(a.fs)
	}
	if err != nil {
		return err
	}

	lc := logging.FromConfig(a.cfg, "chronox")
	lc.Verbose = a.verbose
	lc.Output = stderr
	a.logger = logging.NewLogger(lc)

	table, err := a.cfg.LeapTable(a.fs, a.logger)
	if err != nil {
		return err
	}
	a.table = table
	a.resolver = chrono.NewResolver(table)
	a.zones = zone.NewTZProvider(a.logger)

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"leap_table": table.Version(),
		"zone":       a.cfg.Zone.Default,
		"choice":     a.cfg.Zone.Choice,
	})
	return nil
}

// zone locates name, or the configured default zone when name is empty
func (a *app) zone(name string) (zone.Zone, error) {
	if name == "" {
		return a.cfg.DefaultZone(a.zones)
	}
	return a.zones.Locate(name)
}

// choice parses name, or returns the configured choice when name is empty
func (a *app) choice(name string) (chrono.Choice, error) {
	if name == "" {
		return a.cfg.Choice(), nil
	}
	return chrono.ParseChoice(name)
}
