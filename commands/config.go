package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yhmin/linestamp/internal/config"
	"github.com/yhmin/linestamp/internal/util"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and persist settings",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load(effectiveConfigPath())
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "layout            %s\n", cfg.Layout)
		fmt.Fprintf(out, "stamp_lists       %t\n", cfg.StampLists)
		fmt.Fprintf(out, "newline_after     %t\n", cfg.NewlineAfter)
		fmt.Fprintf(out, "min_delay_seconds %d\n", cfg.MinDelaySeconds)
		fmt.Fprintf(out, "timezone          %s\n", cfg.Timezone)
		fmt.Fprintf(out, "utc_offset_minutes %d\n", cfg.UTCOffsetMinutes)
		fmt.Fprintf(out, "use_utc_offset    %t\n", cfg.UseUTCOffset)
		fmt.Fprintf(out, "extensions        %s\n", strings.Join(cfg.Extensions, ","))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one setting",
	Long: `set updates a single setting in the config file. Numeric values that do
not parse, or unknown keys, leave the stored configuration unchanged.

Keys: layout, stamp_lists, newline_after, min_delay_seconds, timezone,
utc_offset_minutes, use_utc_offset, extensions`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := effectiveConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		util.LogWarnf("config ignored: %v", err)
	}

	key, value := args[0], args[1]
	if err := applySetting(&cfg, key, value); err != nil {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s saved to %s\n", key, path)
	return nil
}

// applySetting mutates one field of cfg. Bad numeric text keeps the stored
// value rather than zeroing it.
func applySetting(cfg *config.Settings, key, value string) error {
	switch key {
	case "layout":
		cfg.Layout = value
	case "timezone":
		cfg.Timezone = value
	case "stamp_lists":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("stamp_lists wants true/false, got %q", value)
		}
		cfg.StampLists = b
	case "newline_after":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("newline_after wants true/false, got %q", value)
		}
		cfg.NewlineAfter = b
	case "use_utc_offset":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("use_utc_offset wants true/false, got %q", value)
		}
		cfg.UseUTCOffset = b
	case "min_delay_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			util.LogWarnf("min_delay_seconds %q not numeric; keeping %d", value, cfg.MinDelaySeconds)
			return nil
		}
		cfg.MinDelaySeconds = n
	case "utc_offset_minutes":
		n, err := strconv.Atoi(value)
		if err != nil {
			util.LogWarnf("utc_offset_minutes %q not numeric; keeping %d", value, cfg.UTCOffsetMinutes)
			return nil
		}
		cfg.UTCOffsetMinutes = n
	case "extensions":
		exts := strings.Split(value, ",")
		for i, e := range exts {
			e = strings.TrimSpace(e)
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			exts[i] = e
		}
		cfg.Extensions = exts
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
