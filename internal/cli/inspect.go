package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jmgilman/go/steward"
	"github.com/jmgilman/go/steward/errors"
	"github.com/spf13/cobra"
)

// entryView is the JSON form of an entry.
type entryView struct {
	Path     string       `json:"path"`
	Kind     steward.Kind `json:"kind"`
	Size     int64        `json:"size"`
	Mode     string       `json:"mode"`
	ModTime  time.Time    `json:"mod_time"`
	Children []entryView  `json:"children,omitempty"`
}

func newEntryView(e steward.Entry) entryView {
	v := entryView{Path: e.Path, Kind: e.Kind}
	if e.Info != nil {
		v.Size = e.Info.Size()
		v.Mode = e.Info.Mode().String()
		v.ModTime = e.Info.ModTime()
	}
	for _, c := range e.Children {
		v.Children = append(v.Children, newEntryView(c))
	}
	return v
}

type inspectOptions struct {
	children  bool
	recursive bool
	absolute  bool
	asJSON    bool
	match     string
}

func (a *app) inspectCommand() *cobra.Command {
	var opts inspectOptions

	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Show an entry and optionally its children",
		Long: `Show the kind of an entry inside the root (default: the root itself).

With --children the entries of a directory are listed, one level deep or
the whole tree with --recursive. --match filters the listed entries with a
doublestar glob matched against their root-relative path.

Examples:
  steward inspect
  steward inspect src --children --recursive
  steward inspect --recursive --match "**/*.go"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return a.runInspect(cmd, path, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.children, "children", "c", false, "List the entries of a directory")
	flags.BoolVarP(&opts.recursive, "recursive", "R", false, "List the whole tree (implies --children)")
	flags.BoolVar(&opts.absolute, "absolute", false, "Print absolute paths")
	flags.BoolVar(&opts.asJSON, "json", false, "Print JSON")
	flags.StringVarP(&opts.match, "match", "m", "", "Only print entries matching a glob such as **/*.go (implies --children)")
	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, path string, opts inspectOptions) error {
	if opts.match != "" && !doublestar.ValidatePattern(opts.match) {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "invalid match pattern %q", opts.match),
			"pattern", opts.match,
		)
	}

	children := opts.children || opts.recursive || opts.match != ""
	entry, err := a.steward.Inspect(cmd.Context(), path,
		steward.WithChildren(children),
		steward.WithRecursive(opts.recursive),
		steward.WithRelative(!opts.absolute),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.match != "" {
		matched := matchEntries(entry.Children, opts.match)
		if opts.asJSON {
			views := make([]entryView, 0, len(matched))
			for _, e := range matched {
				e.Children = nil
				views = append(views, newEntryView(e))
			}
			return writeJSON(out, views)
		}
		for _, e := range matched {
			printEntry(out, e, 0)
		}
		return nil
	}

	if opts.asJSON {
		return writeJSON(out, newEntryView(*entry))
	}
	printEntry(out, *entry, 0)
	printTree(out, entry.Children, 1)
	return nil
}

// matchEntries flattens entries depth first, keeping those whose path
// matches pattern.
func matchEntries(entries []steward.Entry, pattern string) []steward.Entry {
	var out []steward.Entry
	for _, e := range entries {
		if ok, _ := doublestar.Match(pattern, e.Path); ok {
			out = append(out, e)
		}
		out = append(out, matchEntries(e.Children, pattern)...)
	}
	return out
}

func printTree(w io.Writer, entries []steward.Entry, depth int) {
	for _, e := range entries {
		printEntry(w, e, depth)
		printTree(w, e.Children, depth+1)
	}
}

func printEntry(w io.Writer, e steward.Entry, depth int) {
	size := ""
	if e.Kind == steward.KindFile && e.Info != nil {
		size = fmt.Sprintf(" (%d bytes)", e.Info.Size())
	}
	fmt.Fprintf(w, "%*s%-9s %s%s\n", depth*2, "", e.Kind, e.Path, size)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
