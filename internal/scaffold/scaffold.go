// Package scaffold runs one generator invocation: collect the options, check
// the name, resolve the project root, plan the files, write them, and report.
package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	oerrors "github.com/pfgen/cli/internal/errors"
	"github.com/pfgen/cli/internal/layout"
	"github.com/pfgen/cli/internal/materialize"
	"github.com/pfgen/cli/internal/naming"
	"github.com/pfgen/cli/internal/output"
	"github.com/pfgen/cli/internal/prompt"
	"github.com/pfgen/cli/internal/templates"
	"github.com/pfgen/cli/internal/workspace"
)

// Request holds the values known before prompting. Empty fields are asked
// for when a Prompter is available.
type Request struct {
	Kind layout.Kind

	// Name is the raw entity name.
	Name string

	// Structure and Language are raw option values (e.g. "mvc", "ts").
	Structure string
	Language  string

	// SourceRoot is the source directory below the project root.
	SourceRoot string

	// Workspace controls project root resolution.
	Workspace workspace.Options

	// DryRun prints the plan instead of writing it.
	DryRun bool

	// Format is the dry-run output format.
	Format output.Format
}

// Deps are the collaborators of a run.
type Deps struct {
	// Prompter asks for missing values. Nil means no prompts; missing values
	// are then a validation error.
	Prompter prompt.Prompter
}

// Result describes a finished run.
type Result struct {
	// Cancelled is set when the user dismissed a prompt or left the name
	// empty. Nothing else is set in that case.
	Cancelled bool

	Root workspace.Root
	Plan *layout.FilePlan

	// Files is nil for a dry run.
	Files *materialize.Result
}

// Run executes one invocation. A cancelled invocation returns a Result with
// Cancelled set and a nil error. If any file failed to write, the whole plan
// is still processed and the returned error reports the failures.
func Run(ctx context.Context, req Request, deps Deps) (*Result, error) {
	opts, name, err := collect(req, deps.Prompter)
	if err != nil {
		if oerrors.IsCancelled(err) {
			output.Debug("invocation cancelled", "kind", req.Kind)
			return &Result{Cancelled: true}, nil
		}
		return nil, err
	}
	if name == "" {
		output.Warn(nameRequired(req.Kind))
		return &Result{Cancelled: true}, nil
	}

	if err := naming.Validate(name); err != nil {
		return nil, err
	}

	root, err := workspace.Resolve(req.Workspace)
	if err != nil {
		return nil, err
	}

	plan, err := layout.Plan(name, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{Root: root, Plan: plan}

	if req.DryRun {
		return res, printPlan(plan, root, req.Format)
	}

	err = output.RunWithSpinner(ctx, func() error {
		res.Files = materialize.Materialize(root.Path, plan)
		return nil
	}, output.WithTitle("Creating files..."))
	if err != nil {
		return res, err
	}

	report(plan, res.Files)

	if failErr := res.Files.Err(); failErr != nil {
		return res, &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err: fmt.Errorf("%d of %d files could not be created: %w",
				res.Files.Failed, len(plan.Files), failErr),
		}
	}
	return res, nil
}

// collect resolves generation options and the raw name, prompting in the
// order structure, language, name.
func collect(req Request, p prompt.Prompter) (layout.Options, string, error) {
	opts := layout.Options{Kind: req.Kind, SourceRoot: req.SourceRoot}

	switch req.Kind {
	case layout.Backend:
		raw, err := ask(req.Structure, "structure", func() (string, error) {
			return p.Select("Select backend project structure", structureOptions)
		}, p)
		if err != nil {
			return opts, "", err
		}
		s, err := templates.ParseStructure(raw)
		if err != nil {
			return opts, "", invalidChoice("structure", raw, err, templates.ValidStructures())
		}
		opts.Structure = s
	case layout.ReactComponent:
	default:
		return opts, "", oerrors.NewValidationError(
			fmt.Sprintf("unknown kind %q", req.Kind), "", "kind", "")
	}

	raw, err := ask(req.Language, "language", func() (string, error) {
		return p.Select("Select language", languageOptions)
	}, p)
	if err != nil {
		return opts, "", err
	}
	l, err := templates.ParseLanguage(raw)
	if err != nil {
		return opts, "", invalidChoice("language", raw, err, templates.ValidLanguages())
	}
	opts.Language = l

	name := strings.TrimSpace(req.Name)
	if name == "" {
		if p == nil {
			return opts, "", missing("name")
		}
		title, placeholder := nameQuestion(req.Kind)
		answer, err := p.Input(title, placeholder)
		if err != nil {
			return opts, "", err
		}
		name = strings.TrimSpace(answer)
	}

	return opts, name, nil
}

// ask returns value when set, otherwise the prompt's answer.
func ask(value, field string, question func() (string, error), p prompt.Prompter) (string, error) {
	if value != "" {
		return value, nil
	}
	if p == nil {
		return "", missing(field)
	}
	return question()
}

func missing(field string) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("%s is required", field), "", field,
		fmt.Sprintf("Pass it as a flag or argument, or run in a terminal to be prompted for the %s.", field))
}

func invalidChoice(field, raw string, err error, valid []string) error {
	hint := fmt.Sprintf("Valid values: %s", strings.Join(valid, ", "))
	if s := suggest(raw, valid); s != "" {
		hint = fmt.Sprintf("Did you mean %q? %s", s, hint)
	}
	return oerrors.NewValidationError(err.Error(), "", field, hint)
}

var structureOptions = []prompt.Option{
	{Label: "MVC (controllers / routes / models)", Value: string(templates.MVC)},
	{Label: "Feature-based (module folder)", Value: string(templates.Feature)},
}

var languageOptions = []prompt.Option{
	{Label: "JavaScript", Value: string(templates.JavaScript)},
	{Label: "TypeScript", Value: string(templates.TypeScript)},
}

func nameQuestion(kind layout.Kind) (title, placeholder string) {
	if kind == layout.ReactComponent {
		return "Enter component name (e.g., UserCard)", "UserCard"
	}
	return "Enter module name (e.g., host)", "host"
}

func nameRequired(kind layout.Kind) string {
	if kind == layout.ReactComponent {
		return "Component name is required."
	}
	return "Module name is required."
}

// Summary returns the final message for a completed plan.
func Summary(plan *layout.FilePlan) string {
	if plan.Options.Kind == layout.ReactComponent {
		return fmt.Sprintf("React component %q created successfully", plan.Name.Pascal)
	}
	return fmt.Sprintf("REST backend module %q created successfully", plan.Name.Kebab)
}

func report(plan *layout.FilePlan, res *materialize.Result) {
	modLog := output.ModuleLogger(plan.Name.Kebab)

	tree := make(map[string]string, len(res.Outcomes))
	for i, o := range res.Outcomes {
		output.Println(output.FormatFileLine(o.RelativePath, fileStatus(o.Status)))

		switch o.Status {
		case materialize.SkippedExists:
			output.Warn(fmt.Sprintf("File already exists: %s", path.Base(o.RelativePath)))
		case materialize.Failed:
			modLog.Error("could not create file", "path", o.RelativePath, "error", o.Err)
			continue
		}
		rel := strings.TrimPrefix(o.RelativePath, plan.Options.SourceRoot+"/")
		tree[rel] = plan.Files[i].Description
	}

	if res.Written == 0 && res.Skipped == 0 {
		return
	}

	output.Println("")
	output.Print(output.RenderFileTree(plan.Options.SourceRoot+"/", tree))

	// A partial plan is reported by the returned error instead.
	if res.Failed > 0 {
		return
	}
	output.Println("")
	output.Println(output.FormatCheckmark(Summary(plan)))
}

func fileStatus(s materialize.Status) string {
	switch s {
	case materialize.Written:
		return output.StatusCreated
	case materialize.SkippedExists:
		return output.StatusExists
	default:
		return output.StatusFailed
	}
}

// Document converts a plan to its printable form.
func Document(plan *layout.FilePlan, root string, withContent bool) output.PlanDocument {
	doc := output.PlanDocument{
		Name:      plan.Name.Raw,
		Kind:      string(plan.Options.Kind),
		Structure: string(plan.Options.Structure),
		Language:  string(plan.Options.Language),
		Root:      root,
		Dir:       plan.Dir,
		Files:     make([]output.PlanFile, 0, len(plan.Files)),
	}
	for _, f := range plan.Files {
		pf := output.PlanFile{
			Path:     f.RelativePath,
			Artifact: string(f.Artifact),
			Status:   output.StatusPlanned,
		}
		if withContent {
			pf.Content = f.Content
		}
		doc.Files = append(doc.Files, pf)
	}
	return doc
}

func printPlan(plan *layout.FilePlan, root workspace.Root, format output.Format) error {
	if format == "" {
		format = output.FormatText
	}
	structured := format == output.FormatYAML || format == output.FormatJSON

	var buf bytes.Buffer
	if err := output.WritePlan(&buf, Document(plan, root.Path, structured), format); err != nil {
		return err
	}
	output.Print(buf.String())
	return nil
}
