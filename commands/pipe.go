package commands

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/yhmin/linestamp/internal/config"
	"github.com/yhmin/linestamp/internal/core/engine"
	"github.com/yhmin/linestamp/internal/editor"
)

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Stamp a stream of lines from stdin to stdout",
	Long: `pipe replays a line-break event after every input line and writes the
stamped result. The same insertion policy applies as in the interactive
session; with --delay set, lines arriving inside the cooldown pass through
unstamped.`,
	Args: cobra.NoArgs,
	RunE: runPipe,
}

func init() {
	rootCmd.AddCommand(pipeCmd)
}

func runPipe(cmd *cobra.Command, args []string) error {
	cfg, err := initRuntime(cmd)
	if err != nil {
		return err
	}
	return stampStream(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
}

// stampStream runs the engine over every line of in and writes the stamped
// document to out.
func stampStream(cfg config.Settings, in io.Reader, out io.Writer) error {
	buf := editor.NewBuffer("stdin")
	eng := engine.New(cfg)

	first := true
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var idx int
		if first {
			buf.SetLine(0, scanner.Text())
			first = false
		} else {
			buf.Append(scanner.Text())
			idx = buf.LineCount() - 1
		}
		if _, err := eng.OnLineBreak(buf, idx+1, time.Now()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if first {
		// Empty input produces empty output.
		return nil
	}

	_, err := io.WriteString(out, buf.Text())
	return err
}
