package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andareed/siftly-timeline/config"
	"github.com/andareed/siftly-timeline/filter"
	"github.com/andareed/siftly-timeline/logging"
	"github.com/andareed/siftly-timeline/session"
	"github.com/andareed/siftly-timeline/timeline"
	"github.com/andareed/siftly-timeline/timerange"
)

var (
	cfgFile  string
	settings = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "sftimeline [flags] <timeline.csv>",
	Short: "Browse a Defender device timeline export in the terminal",
	Long: `sftimeline loads a Microsoft Defender for Endpoint device timeline CSV
and lets you search it, filter by action type and narrow it to a time range.

Settings come from flags, SFTIMELINE_* environment variables and an optional
.sftimeline.yaml in the home or current directory.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() { config.Init(settings, cfgFile) })

	fs := rootCmd.Flags()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sftimeline.yaml)")
	fs.String("debug", "", "write debug logs to this file")
	fs.Int("max-rows", timeline.DefaultMaxRows, "stop reading after this many events")
	fs.Int("display-cap", filter.DefaultDisplayCap, "most matching events shown at once")
	fs.String("time-reference", string(timerange.ReferenceWallclock), `what "now" means for relative ranges: wallclock or data`)
	fs.String("tz", "Local", "zone for timestamps without an offset (IANA name, Local or UTC)")

	cobra.CheckErr(bindFlags(settings, fs, map[string]string{
		"max-rows":       config.KeyMaxRows,
		"display-cap":    config.KeyDisplayCap,
		"time-reference": config.KeyTimeReference,
		"tz":             config.KeyTimeZone,
		"debug":          config.KeyLogFile,
	}))
}

// bindFlags binds each named flag to its config key so that flags set on
// the command line win over the file and environment.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("bind flags: no flag %q", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flags: %s: %w", name, err)
		}
	}
	return nil
}

func run(path string) error {
	used, err := config.Read(settings)
	if err != nil {
		return err
	}
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}

	cleanup, err := logging.SetupLogging(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()

	logging.Infof("siftly-timeline %s: started", Version)
	if used != "" {
		logging.Infof("using config file %s", used)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	store, err := timeline.Load(path, timeline.Options{MaxRows: cfg.Ingest.MaxRows, Location: loc})
	if err != nil {
		return err
	}

	indexes := timeline.BuildIndexes(store, loc)
	resolver := timerange.NewResolver(store, timerange.Options{Location: loc, Reference: cfg.Reference()})
	engine := filter.NewEngine(store, cfg.Display.Cap)
	machine := session.NewMachine(engine, indexes, resolver)

	if _, err := tea.NewProgram(newModel(store, machine), tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("tea program error: %v", err)
		return err
	}
	return nil
}
