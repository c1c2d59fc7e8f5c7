package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yhmin/linestamp/internal/editor"
	"github.com/yhmin/linestamp/internal/util"
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Interactive capture session that stamps lines as you finish them",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := initRuntime(cmd)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("edit needs a terminal on stdin; use 'linestamp pipe' for streams")
	}

	path := util.ExpandPath(args[0])
	session, err := editor.NewSession(path, cfg)
	if err != nil {
		return err
	}

	util.LogInfof("edit session started: %s", path)
	defer util.LogInfof("edit session ended: %s", path)
	return session.Run()
}
