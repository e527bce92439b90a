// Package cli implements the steward command line interface.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/steward"
	"github.com/jmgilman/go/steward/errors"
	"github.com/jmgilman/go/steward/internal/config"
	"github.com/jmgilman/go/steward/internal/logging"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	root     string
	logLevel string
	envFile  string
	stream   bool

	steward *steward.Steward
}

// NewRootCommand builds the steward command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "steward",
		Short: "Jurisdiction-scoped file operations",
		Long: `steward creates, copies, moves, removes and renames files and directories
while keeping every change inside a single root directory.

Paths are resolved against the root. Any path that escapes it is rejected
before anything is touched.

Configuration is read from STEWARD_* environment variables (and a .env file
when present); flags take precedence.

Exit Codes:
  0  - Success
  1  - Operation failed`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.root, "root", "r", "", "Root directory (default $STEWARD_ROOT or the working directory)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (default $STEWARD_LOG_LEVEL or info)")
	flags.StringVar(&a.envFile, "env-file", "", "Env file to load instead of ./.env")
	flags.BoolVar(&a.stream, "stream", false, "Stream file bytes when copying or moving (default $STEWARD_STREAM)")

	cmd.AddCommand(
		a.applyCommand(),
		a.inspectCommand(),
		a.mkdirCommand(),
		a.writeCommand(),
		a.copyCommand(),
		a.moveCommand(),
		a.removeCommand(),
		a.renameCommand(),
	)
	return cmd
}

// Execute runs the root command; canceling ctx stops the running operation.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup merges configuration and flags, then binds the steward.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var envFiles []string
	if a.envFile != "" {
		envFiles = append(envFiles, a.envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("root") {
		a.root = cfg.Root
	}
	if !flags.Changed("log-level") {
		a.logLevel = cfg.LogLevel
	}
	if !flags.Changed("stream") {
		a.stream = cfg.Stream
	}

	if _, err := logging.Init(a.logLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}

	root := a.root
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return errors.Wrap(err, errors.CodeOperationFailed, "failed to determine working directory")
		}
	}
	if root, err = filepath.Abs(root); err != nil {
		return errors.Wrapf(err, errors.CodeInvalidArgument, "failed to resolve root %q", a.root)
	}

	a.steward, err = steward.New(root, steward.WithLogger(logging.Component("steward")))
	return err
}

// streamOpt applies the global stream setting.
func (a *app) streamOpt() steward.OpOption {
	return steward.WithStream(a.stream)
}
