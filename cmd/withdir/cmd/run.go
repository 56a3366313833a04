package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/huwper/with-dir/internal/config"
	"github.com/huwper/with-dir/internal/interrupt"
	"github.com/huwper/with-dir/internal/invariant"
	"github.com/huwper/with-dir/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run dir -- command [args...]",
	Short: "Runs a command inside the specified directory.",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			cmd.Usage()
			os.Exit(1)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		interrupt.Register(ctx, cancel)

		temp, _ := cmd.Flags().GetBool("temp")

		var dir string
		var command []string
		if temp {
			command = args
		} else {
			if len(args) < 2 {
				return fmt.Errorf("run: need a directory and a command")
			}
			dir = args[0]
			command = args[1:]
		}

		opts := runner.Options{Dir: dir, Temp: temp}
		if !temp {
			create, _ := cmd.Flags().GetBool("create")
			cfg := config.GetConfig()
			if _, err := os.Stat(dir); os.IsNotExist(err) && (create || cfg.CreateMissing) {
				opts.Create = true
				opts.CreateParents = cfg.CreateParents
			}
		}

		slog.Debug("Entering directory.", "dir", dir, "temp", temp)

		var code int
		err := invariant.Recover(func() error {
			var err error
			code, err = runner.Run(ctx, opts, command[0], command[1:]...)
			return err
		})
		if err != nil {
			slog.Error("Error running command.", "error", err)
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("temp", false, "Run in a fresh temporary directory")
	runCmd.Flags().BoolP("create", "c", false, "Create the directory if it does not exist")
}
