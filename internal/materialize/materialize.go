// Package materialize writes a file plan into a project tree without ever
// overwriting existing files.
package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/layout"
	"github.com/pfgen/cli/internal/output"
)

// Status is the outcome of materializing one planned file.
type Status string

const (
	// Written means the file was created with the planned content.
	Written Status = "written"

	// SkippedExists means a file was already present and left untouched.
	SkippedExists Status = "skipped"

	// Failed means the file could not be created.
	Failed Status = "failed"
)

// Outcome records what happened to one planned file.
type Outcome struct {
	// RelativePath is the planned slash-separated path.
	RelativePath string

	// Path is the absolute filesystem path.
	Path string

	Status Status

	// Err is set when Status is Failed.
	Err error
}

// Result aggregates the outcomes of one plan, in plan order.
type Result struct {
	Outcomes []Outcome
	Written  int
	Skipped  int
	Failed   int
}

// Err joins the errors of all failed files, or returns nil.
func (r *Result) Err() error {
	if r.Failed == 0 {
		return nil
	}
	errs := make([]error, 0, r.Failed)
	for _, o := range r.Outcomes {
		if o.Status == Failed {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}

// Materializer writes plans below a project root.
type Materializer struct {
	root     string
	dirMode  fs.FileMode
	fileMode fs.FileMode
}

// New creates a materializer rooted at root. The root must already exist.
func New(root string) *Materializer {
	return &Materializer{
		root:     root,
		dirMode:  0o755,
		fileMode: 0o644,
	}
}

// Materialize writes every file in plan that does not already exist. Each
// file is handled independently; a failure is recorded on its outcome and
// processing continues with the next file.
func (m *Materializer) Materialize(plan *layout.FilePlan) *Result {
	res := &Result{Outcomes: make([]Outcome, 0, len(plan.Files))}

	for _, f := range plan.Files {
		o := m.write(f)
		switch o.Status {
		case Written:
			res.Written++
			output.Debug("created file", "path", o.RelativePath)
		case SkippedExists:
			res.Skipped++
			output.Debug("file exists, skipping", "path", o.RelativePath)
		case Failed:
			res.Failed++
			output.Debug("file write failed", "path", o.RelativePath, "error", o.Err)
		}
		res.Outcomes = append(res.Outcomes, o)
	}

	return res
}

func (m *Materializer) write(f layout.File) Outcome {
	target := filepath.Join(m.root, filepath.FromSlash(f.RelativePath))
	o := Outcome{RelativePath: f.RelativePath, Path: target}

	if err := os.MkdirAll(filepath.Dir(target), m.dirMode); err != nil {
		o.Status, o.Err = Failed, classify(fmt.Sprintf("creating directory for %s", f.RelativePath), filepath.Dir(target), err)
		return o
	}

	// O_EXCL makes the existence check and the create one step.
	fh, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, m.fileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			o.Status = SkippedExists
			return o
		}
		o.Status, o.Err = Failed, classify(fmt.Sprintf("creating %s", f.RelativePath), target, err)
		return o
	}

	_, werr := fh.WriteString(f.Content)
	cerr := fh.Close()
	if err := errors.Join(werr, cerr); err != nil {
		// Drop the partial file so a rerun can create it.
		_ = os.Remove(target)
		o.Status, o.Err = Failed, classify(fmt.Sprintf("writing %s", f.RelativePath), target, err)
		return o
	}

	o.Status = Written
	return o
}

func classify(msg, location string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &oerrors.DetailError{
			Type:     "permission denied",
			Message:  fmt.Sprintf("%s: %v", msg, err),
			Location: location,
			Cause:    errors.Join(oerrors.ErrPermission, err),
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Materialize writes plan below root with default permissions.
func Materialize(root string, plan *layout.FilePlan) *Result {
	return New(root).Materialize(plan)
}
