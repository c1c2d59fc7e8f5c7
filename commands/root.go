package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yhmin/linestamp/internal/config"
	"github.com/yhmin/linestamp/internal/util"
)

var (
	// Logging related
	debug bool

	// Config file location
	configPath string

	// Per-run overrides
	layout       string
	timezone     string
	delaySeconds int
	stampLists   bool
	newlineAfter bool

	rootCmd = &cobra.Command{
		Use:   "linestamp",
		Short: "Automatic timestamp insertion on line breaks",
		Long: `linestamp inserts a formatted timestamp into the line you just finished
whenever a line break occurs: at the start of plain lines, after the bullet
marker of list lines, never on task items or code-fence boundaries, and never
twice on the same line.

Examples:
  linestamp edit notes.md                    # Interactive capture session
  linestamp watch ~/notes                    # Stamp lines as files grow
  cat log.txt | linestamp pipe               # Stamp a stream of lines
  linestamp config set timezone UTC          # Persist a setting`,
		SilenceUsage: true,
	}
)

const defaultLogFile = "~/.linestamp/logs/app.log"

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/.linestamp/config.json)")

	rootCmd.PersistentFlags().StringVar(&layout, "layout", "",
		"Stamp layout in Go reference time form (e.g. '2006-01-02 15:04:05-07:00')")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone for stamps (Local, UTC, or an IANA name like Asia/Shanghai)")
	rootCmd.PersistentFlags().IntVar(&delaySeconds, "delay", -1,
		"Minimum seconds between insertions (0 = stamp every line break)")
	rootCmd.PersistentFlags().BoolVar(&stampLists, "lists", true,
		"Append stamps to list bullet lines")
	rootCmd.PersistentFlags().BoolVar(&newlineAfter, "newline", false,
		"Put the stamp on its own line instead of suffixing a space")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// initRuntime sets up logging and returns the effective settings: persisted
// config overlaid with whatever flags the user changed on this run.
func initRuntime(cmd *cobra.Command) (config.Settings, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := util.ExpandPath(defaultLogFile)
	if err := util.EnsureDir(filepath.Dir(logFile)); err != nil {
		logFile = ""
	}
	util.InitLogger(logLevel, logFile, debug)

	path := effectiveConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		// Corrupt config degrades to defaults; say so and keep going.
		util.LogWarnf("config ignored: %v", err)
	}

	if cmd.Flags().Changed("layout") {
		cfg.Layout = layout
	}
	if cmd.Flags().Changed("timezone") {
		cfg.Timezone = timezone
	}
	if cmd.Flags().Changed("delay") {
		cfg.MinDelaySeconds = delaySeconds
	}
	if cmd.Flags().Changed("lists") {
		cfg.StampLists = stampLists
	}
	if cmd.Flags().Changed("newline") {
		cfg.NewlineAfter = newlineAfter
	}
	cfg.Normalize()
	return cfg, nil
}

func effectiveConfigPath() string {
	if configPath != "" {
		return util.ExpandPath(configPath)
	}
	return config.DefaultPath()
}
