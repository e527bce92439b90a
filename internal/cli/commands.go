package cli

import (
	"fmt"

	"github.com/jmgilman/go/steward"
	"github.com/spf13/cobra"
)

func (a *app) mkdirCommand() *cobra.Command {
	var noParents bool

	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory",
		Long: `Create a directory inside the root. Missing parents are created unless
--no-parents is given. An existing directory is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.steward.CreateDirectory(cmd.Context(), args[0], steward.WithRecursive(!noParents))
		},
	}
	cmd.Flags().BoolVar(&noParents, "no-parents", false, "Require the parent directory to exist")
	return cmd
}

func (a *app) writeCommand() *cobra.Command {
	var (
		data      string
		noClobber bool
	)

	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Write a file",
		Long: `Write a file inside the root, creating missing parent directories.
The content is taken from --data, or streamed from standard input.

Examples:
  steward write notes/todo.txt --data "ship it"
  tar -c src | steward write backup/src.tar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := steward.WithCover(!noClobber)
			if cmd.Flags().Changed("data") {
				return a.steward.CreateFile(cmd.Context(), args[0], []byte(data), opt)
			}
			return a.steward.CreateFileFrom(cmd.Context(), args[0], cmd.InOrStdin(), opt)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "File content")
	cmd.Flags().BoolVarP(&noClobber, "no-clobber", "n", false, "Fail if the file already exists")
	return cmd
}

func (a *app) copyCommand() *cobra.Command {
	var noClobber bool

	cmd := &cobra.Command{
		Use:   "cp <src> <dest>",
		Short: "Copy a file or directory",
		Long: `Copy a file or directory to a destination inside the root. The source may
live outside the root. Directories are copied recursively.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.steward.Copy(cmd.Context(), args[0], args[1], a.streamOpt(), steward.WithCover(!noClobber))
		},
	}
	cmd.Flags().BoolVarP(&noClobber, "no-clobber", "n", false, "Fail instead of overwriting existing files")
	return cmd
}

func (a *app) moveCommand() *cobra.Command {
	var noClobber bool

	cmd := &cobra.Command{
		Use:   "mv <src> <dest>",
		Short: "Move a file or directory",
		Long: `Move a file or directory by copying it and then removing the source.
Both paths must be inside the root. The source is only removed once the
copy has succeeded.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.steward.Cut(cmd.Context(), args[0], args[1], a.streamOpt(), steward.WithCover(!noClobber))
		},
	}
	cmd.Flags().BoolVarP(&noClobber, "no-clobber", "n", false, "Fail instead of overwriting existing files")
	return cmd
}

func (a *app) removeCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Remove files or directories",
		Long: `Remove files or directories inside the root. Directories are removed with
their contents. Missing paths are ignored unless --strict is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := make([]steward.Task, 0, len(args))
			for _, p := range args {
				tasks = append(tasks, steward.Task{
					Op:      steward.OpRemove,
					Path:    p,
					Options: []steward.OpOption{steward.WithForce(!strict)},
				})
			}
			return a.steward.RunSequential(cmd.Context(), tasks)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if a path does not exist")
	return cmd
}

func (a *app) renameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename an entry within its directory",
		Long: `Rename a file or directory. Both paths must share the same parent
directory; use mv to relocate entries.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.steward.Rename(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], args[1])
			return nil
		},
	}
}
