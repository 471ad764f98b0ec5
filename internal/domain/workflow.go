package domain

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/fogbyte/vbafog/internal/adapter"
	"github.com/fogbyte/vbafog/internal/controller"
	m "github.com/fogbyte/vbafog/internal/model"
)

// NamingSpec selects the pool one identifier class draws its names from.
type NamingSpec struct {
	Length   int
	Alphabet string
}

// ObfuscateArgs parameterizes one obfuscation run.
type ObfuscateArgs struct {
	Paths            []m.Path
	IgnoreMethods    []string
	RenameMethods    bool
	RenameVariables  bool
	RenameParameters bool
	// Mutators lists strategy names in application order.
	Mutators       []string
	Scan           ScanOptions
	MethodNames    NamingSpec
	VariableNames  NamingSpec
	ParameterNames NamingSpec
	// Reports is the audit directory; empty disables the audit store.
	Reports m.Path
	Threads int
}

// InspectArgs parameterizes the inspect listing.
type InspectArgs struct {
	Paths []m.Path
	Scan  ScanOptions
}

// ViewArgs parameterizes redisplaying saved audits.
type ViewArgs struct {
	Reports m.Path
}

// Workflow is the top-level pipeline: scan, rename, mutate, serialize.
type Workflow interface {
	Obfuscate(args ObfuscateArgs) error
	Inspect(args InspectArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fs       adapter.ModuleFSAdapter
	audits   adapter.AuditStore
	ui       controller.UI
	gen      *NameGenerator
	log      *slog.Logger
	registry map[string]StringMutator
}

// NewWorkflow creates a Workflow instance with the provided collaborators.
// The registry maps mutator names accepted in ObfuscateArgs.Mutators to
// their strategies.
func NewWorkflow(
	fs adapter.ModuleFSAdapter,
	audits adapter.AuditStore,
	ui controller.UI,
	gen *NameGenerator,
	log *slog.Logger,
	registry map[string]StringMutator,
) Workflow {
	if log == nil {
		log = slog.Default()
	}

	return &workflow{
		fs:       fs,
		audits:   audits,
		ui:       ui,
		gen:      gen,
		log:      log,
		registry: registry,
	}
}

// Obfuscate rewrites every input file and writes each result next to its
// input. Files are independent and processed by a bounded worker pool; the
// shared name generator keeps generated names unique across all of them.
func (w *workflow) Obfuscate(args ObfuscateArgs) error {
	if len(args.Paths) == 0 {
		return fmt.Errorf("no input files")
	}

	muts, err := w.resolveMutators(args.Mutators)
	if err != nil {
		return err
	}

	for _, path := range args.Paths {
		if _, err := w.fs.FileInfo(path); err != nil {
			return fmt.Errorf("input file: %w", err)
		}
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	summaries := make([]controller.FileSummary, len(args.Paths))

	var g errgroup.Group
	g.SetLimit(threads)

	for i, path := range args.Paths {
		g.Go(func() error {
			summary, audit, err := w.obfuscateFile(path, args, muts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			summaries[i] = summary

			if args.Reports != "" {
				if err := w.audits.Save(args.Reports, audit); err != nil {
					return fmt.Errorf("%s: save audit: %w", path, err)
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.ui.DisplaySummary(summaries)
}

// obfuscateFile runs the full pipeline for one input: scan, mutate strings,
// rename, serialize. The output file is written only after every step has
// succeeded; a failed run produces no partial output.
func (w *workflow) obfuscateFile(path m.Path, args ObfuscateArgs, muts []StringMutator) (controller.FileSummary, m.Audit, error) {
	lines, err := w.fs.ReadLines(path)
	if err != nil {
		return controller.FileSummary{}, m.Audit{}, err
	}

	mod, err := NewScanner(args.Scan).Scan(path, lines)
	if err != nil {
		return controller.FileSummary{}, m.Audit{}, err
	}

	engine := NewMutationEngine(w.log, muts...)
	rewriter := NewRewriter(w.log)

	ignored := make(map[string]struct{}, len(args.IgnoreMethods))
	for _, name := range args.IgnoreMethods {
		ignored[name] = struct{}{}
	}

	for _, meth := range mod.Methods {
		if _, skip := ignored[meth.Name]; skip {
			w.log.Debug("method ignored", "file", string(path), "method", meth.Name)
			continue
		}

		if len(muts) > 0 {
			engine.Run(meth.Lines())
		}

		if args.RenameMethods {
			if err := rewriter.RenameMethod(w.gen, mod, meth, args.MethodNames.Length, args.MethodNames.Alphabet); err != nil {
				return controller.FileSummary{}, m.Audit{}, err
			}
		}

		if args.RenameParameters {
			for _, p := range meth.Params {
				if err := rewriter.RenameParameter(w.gen, meth, p, args.ParameterNames.Length, args.ParameterNames.Alphabet); err != nil {
					return controller.FileSummary{}, m.Audit{}, err
				}
			}
		}

		if args.RenameVariables {
			for _, v := range meth.Vars {
				if err := rewriter.RenameVariable(w.gen, meth, v, args.VariableNames.Length, args.VariableNames.Alphabet); err != nil {
					return controller.FileSummary{}, m.Audit{}, err
				}
			}
		}
	}

	out := w.fs.OutputPath(path)
	if err := w.fs.WriteLines(out, mod.Store.Dump()); err != nil {
		return controller.FileSummary{}, m.Audit{}, err
	}

	audit := m.Audit{
		Origin:    path,
		Output:    out,
		Renames:   rewriter.Records(),
		Mutations: engine.Records(),
	}

	summary := controller.FileSummary{
		Origin:          path,
		Output:          out,
		Methods:         len(mod.Methods),
		Renames:         len(audit.Renames),
		MutatedLiterals: len(audit.Mutations),
	}

	return summary, audit, nil
}

// Inspect scans the inputs and lists every recognized method.
func (w *workflow) Inspect(args InspectArgs) error {
	var rows []controller.InspectionRow

	for _, path := range args.Paths {
		lines, err := w.fs.ReadLines(path)
		if err != nil {
			return err
		}

		mod, err := NewScanner(args.Scan).Scan(path, lines)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		for _, meth := range mod.Methods {
			literals := 0
			for _, l := range meth.Lines() {
				literals += len(l.Literals())
			}

			rows = append(rows, controller.InspectionRow{
				Origin:   path,
				Method:   meth.Name,
				Kind:     string(meth.Kind),
				Params:   len(meth.Params),
				Vars:     len(meth.Vars),
				Literals: literals,
			})
		}
	}

	return w.ui.DisplayInspection(rows)
}

// View redisplays audits saved by a previous run.
func (w *workflow) View(args ViewArgs) error {
	audits, err := w.audits.Load(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplayAudits(audits)
}

func (w *workflow) resolveMutators(names []string) ([]StringMutator, error) {
	muts := make([]StringMutator, 0, len(names))

	for _, name := range names {
		strat, ok := w.registry[name]
		if !ok {
			return nil, fmt.Errorf("invalid string mutator %q", name)
		}

		muts = append(muts, strat)
	}

	return muts, nil
}
