package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jmgilman/go/steward/errors"
	"github.com/jmgilman/go/steward/plan"
	"github.com/jmgilman/go/steward/storage/billy"
	"github.com/spf13/cobra"
)

func (a *app) applyCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "apply <plan>",
		Short: "Apply a YAML or JSON task plan",
		Long: `Apply a plan of tasks in order. Execution stops at the first failing task;
tasks that already ran are not undone. The error names the failing task's
index.

Plans ending in .json are read as JSON, anything else as YAML.

Examples:
  steward apply scaffold.yaml
  steward apply cleanup.json --check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := filepath.Abs(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.CodeInvalidArgument, "failed to resolve plan path %q", args[0])
			}

			p, err := plan.Load(billy.NewLocal(), name)
			if err != nil {
				return err
			}
			tasks, err := p.ToTasks()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if check {
				fmt.Fprintf(out, "plan is valid: %d task(s)\n", len(tasks))
				return nil
			}
			if err := a.steward.RunSequential(cmd.Context(), tasks); err != nil {
				return err
			}
			fmt.Fprintf(out, "applied %d task(s)\n", len(tasks))
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Validate the plan without applying it")
	return cmd
}
