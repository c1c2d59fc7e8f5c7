package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yhmin/linestamp/internal/util"
	"github.com/yhmin/linestamp/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <path>...",
	Short: "Stamp newly completed lines in files as they are written",
	Long: `watch follows the given files or directories and treats every newly
completed line as a line-break event: the line before it gets a timestamp,
under the same policy the interactive session uses. Runs until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := initRuntime(cmd)
	if err != nil {
		return err
	}

	paths := make([]string, len(args))
	for i, a := range args {
		paths[i] = util.ExpandPath(a)
	}

	tracker := watch.NewTracker(cfg)
	primeExisting(paths, cfg.Extensions, tracker)

	fw, err := watch.NewFileWatcher(paths, cfg.Extensions)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fw.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	util.LogInfof("watching %d path(s)", len(paths))
	fmt.Printf("linestamp: watching %v (Ctrl+C to stop)\n", paths)

	for {
		select {
		case ev := <-fw.Events():
			inserted, err := tracker.HandleWrite(ev.Path, time.Now())
			if err != nil {
				util.LogWarnf("skip %s: %v", ev.Path, err)
				continue
			}
			if inserted {
				util.LogInfof("stamped %s", ev.Path)
			}
		case <-sigs:
			fmt.Println("\nlinestamp: stopping")
			return nil
		}
	}
}

// primeExisting records current line counts so pre-existing content is not
// stamped at startup.
func primeExisting(paths, extensions []string, tracker *watch.Tracker) {
	tracked := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		tracked[e] = struct{}{}
	}
	for _, path := range paths {
		filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			if _, ok := tracked[filepath.Ext(p)]; ok {
				tracker.Prime(p)
			}
			return nil
		})
	}
}
