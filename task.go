package steward

import (
	"context"
	"fmt"
	"io"

	"github.com/jmgilman/go/steward/errors"
)

// Op names the operation a Task performs.
type Op int

const (
	// OpUnknown is the zero value and is never valid in a Task.
	OpUnknown Op = iota
	// OpCreate creates a directory or file.
	OpCreate
	// OpCopy copies a file or directory.
	OpCopy
	// OpRemove removes a file or directory.
	OpRemove
	// OpCut moves a file or directory by copy and source removal.
	OpCut
	// OpRename renames an entry within its directory.
	OpRename
)

var opNames = map[Op]string{
	OpCreate: "create",
	OpCopy:   "copy",
	OpRemove: "remove",
	OpCut:    "cut",
	OpRename: "rename",
}

func allOps() map[Op]bool {
	ops := make(map[Op]bool, len(opNames))
	for op := range opNames {
		ops[op] = true
	}
	return ops
}

// String returns the operation's name, e.g. "create".
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	if o == OpUnknown {
		return "unknown"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Op) UnmarshalText(text []byte) error {
	parsed, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOp returns the operation with the given name.
func ParseOp(name string) (Op, error) {
	for op, n := range opNames {
		if n == name {
			return op, nil
		}
	}
	return OpUnknown, errors.WithContext(
		errors.Newf(errors.CodeInvalidArgument, "unknown operation %q", name),
		"op", name,
	)
}

// Task describes one step of a bulk run. Which fields are required depends
// on Op:
//
//   - OpCreate: Path and Kind (KindDirectory or KindFile); files also need
//     Data or Source, but not both
//   - OpCopy, OpCut: SrcPath and DestPath
//   - OpRemove: Path
//   - OpRename: OldPath and NewPath
//
// Options are optional for every operation. A Source reader is consumed by
// the run and cannot be reused.
type Task struct {
	Op   Op
	Path string
	Kind Kind

	Data   []byte
	Source io.Reader

	SrcPath  string
	DestPath string

	OldPath string
	NewPath string

	Options []OpOption
}

// Validate checks that the task carries every field its operation needs.
// It never touches storage.
func (t Task) Validate() error {
	switch t.Op {
	case OpCreate:
		if err := requireField(t.Op, "path", t.Path); err != nil {
			return err
		}
		switch t.Kind {
		case KindDirectory:
		case KindFile:
			if t.Data == nil && t.Source == nil {
				return errors.Newf(errors.CodeInvalidArgument, "create task for file %q is missing data", t.Path)
			}
			if t.Data != nil && t.Source != nil {
				return errors.Newf(errors.CodeInvalidArgument, "create task for file %q has both data and a source", t.Path)
			}
		default:
			return errors.WithContext(
				errors.Newf(errors.CodeInvalidArgument, "create task cannot create a %s", t.Kind),
				"kind", t.Kind.String(),
			)
		}
		return nil
	case OpCopy, OpCut:
		if err := requireField(t.Op, "src path", t.SrcPath); err != nil {
			return err
		}
		return requireField(t.Op, "dest path", t.DestPath)
	case OpRemove:
		return requireField(t.Op, "path", t.Path)
	case OpRename:
		if err := requireField(t.Op, "old path", t.OldPath); err != nil {
			return err
		}
		return requireField(t.Op, "new path", t.NewPath)
	case OpUnknown:
		return errors.New(errors.CodeInvalidArgument, "task has no operation")
	default:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "task has unknown operation %s", t.Op),
			"op", t.Op.String(),
		)
	}
}

func requireField(op Op, field, value string) error {
	if value != "" {
		return nil
	}
	return errors.WithContextMap(
		errors.Newf(errors.CodeInvalidArgument, "%s task is missing the %s", op, field),
		map[string]interface{}{"op": op.String(), "field": field},
	)
}

// execute validates a task against the accepted operations and dispatches
// it to the matching primitive.
func (s *Steward) execute(ctx context.Context, t Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if !s.taskOps[t.Op] {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "operation %s is not enabled for tasks", t.Op),
			"op", t.Op.String(),
		)
	}

	switch t.Op {
	case OpCreate:
		if t.Kind == KindDirectory {
			return s.CreateDirectory(ctx, t.Path, t.Options...)
		}
		if t.Source != nil {
			return s.CreateFileFrom(ctx, t.Path, t.Source, t.Options...)
		}
		return s.CreateFile(ctx, t.Path, t.Data, t.Options...)
	case OpCopy:
		return s.Copy(ctx, t.SrcPath, t.DestPath, t.Options...)
	case OpCut:
		return s.Cut(ctx, t.SrcPath, t.DestPath, t.Options...)
	case OpRemove:
		return s.Remove(ctx, t.Path, t.Options...)
	default:
		return s.Rename(ctx, t.OldPath, t.NewPath)
	}
}
