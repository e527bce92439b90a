package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/steward"
	"github.com/jmgilman/go/steward/errors"
	"github.com/jmgilman/go/steward/storage"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a plan document.
type Format int

const (
	// FormatYAML decodes plans as YAML.
	FormatYAML Format = iota
	// FormatJSON decodes plans as JSON.
	FormatJSON
)

// Plan is the document form of a bulk run.
type Plan struct {
	Tasks []TaskSpec `yaml:"tasks" json:"tasks"`
}

// TaskSpec is the document form of a single steward.Task. Fields map onto
// the task fields of the same meaning; Data is a pointer so an empty file
// can be told apart from a missing payload.
type TaskSpec struct {
	Op      string  `yaml:"op" json:"op"`
	Path    string  `yaml:"path,omitempty" json:"path,omitempty"`
	Kind    string  `yaml:"kind,omitempty" json:"kind,omitempty"`
	Data    *string `yaml:"data,omitempty" json:"data,omitempty"`
	Src     string  `yaml:"src,omitempty" json:"src,omitempty"`
	Dest    string  `yaml:"dest,omitempty" json:"dest,omitempty"`
	Old     string  `yaml:"old,omitempty" json:"old,omitempty"`
	New     string  `yaml:"new,omitempty" json:"new,omitempty"`
	Options Options `yaml:"options,omitempty" json:"options,omitempty"`
}

// Options holds per-task option overrides. Unset fields keep the
// operation's defaults.
type Options struct {
	Recursive *bool `yaml:"recursive,omitempty" json:"recursive,omitempty"`
	Cover     *bool `yaml:"cover,omitempty" json:"cover,omitempty"`
	Stream    *bool `yaml:"stream,omitempty" json:"stream,omitempty"`
	Force     *bool `yaml:"force,omitempty" json:"force,omitempty"`
}

// FormatOf picks a format from a file name: ".json" is JSON, anything else
// is YAML.
func FormatOf(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes a plan document. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Plan, error) {
	var p Plan
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidArgument, "failed to decode JSON plan")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, errors.CodeInvalidArgument, "failed to decode YAML plan")
		}
	default:
		return nil, errors.Newf(errors.CodeInvalidArgument, "unknown plan format %d", int(format))
	}
	return &p, nil
}

// Load reads and decodes the plan file at name from store, choosing the
// format from the file extension.
func Load(store storage.ReadFS, name string) (*Plan, error) {
	data, err := store.ReadFile(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, errors.WithContext(
				errors.Newf(errors.CodeNotFound, "plan %q does not exist", name),
				"path", name,
			)
		}
		return nil, errors.Wrapf(err, errors.CodeOperationFailed, "failed to read plan %q", name)
	}

	p, err := Parse(data, FormatOf(name))
	if err != nil {
		return nil, errors.WithContext(err, "path", name)
	}
	return p, nil
}

// ToTasks converts the plan into steward tasks, validating each one. The
// first invalid task is reported with its index.
func (p *Plan) ToTasks() ([]steward.Task, error) {
	tasks := make([]steward.Task, 0, len(p.Tasks))
	for i, spec := range p.Tasks {
		task, err := spec.Task()
		if err != nil {
			return nil, errors.WithMessage(
				errors.WithContext(err, "index", i),
				fmt.Sprintf("%s (at tasks[%d])", errors.ToJSON(err).Message, i),
			)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Task converts a single spec into a validated steward.Task.
func (s TaskSpec) Task() (steward.Task, error) {
	if s.Op == "" {
		return steward.Task{}, errors.New(errors.CodeInvalidArgument, "task has no op")
	}
	op, err := steward.ParseOp(s.Op)
	if err != nil {
		return steward.Task{}, err
	}

	task := steward.Task{
		Op:       op,
		Path:     s.Path,
		SrcPath:  s.Src,
		DestPath: s.Dest,
		OldPath:  s.Old,
		NewPath:  s.New,
		Options:  s.Options.opOptions(),
	}
	if s.Kind != "" {
		if task.Kind, err = steward.ParseKind(s.Kind); err != nil {
			return steward.Task{}, err
		}
	}
	if s.Data != nil {
		task.Data = []byte(*s.Data)
	}

	if err := task.Validate(); err != nil {
		return steward.Task{}, err
	}
	return task, nil
}

func (o Options) opOptions() []steward.OpOption {
	var opts []steward.OpOption
	if o.Recursive != nil {
		opts = append(opts, steward.WithRecursive(*o.Recursive))
	}
	if o.Cover != nil {
		opts = append(opts, steward.WithCover(*o.Cover))
	}
	if o.Stream != nil {
		opts = append(opts, steward.WithStream(*o.Stream))
	}
	if o.Force != nil {
		opts = append(opts, steward.WithForce(*o.Force))
	}
	return opts
}
