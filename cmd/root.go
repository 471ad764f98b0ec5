// Package cmd provides the root command and CLI setup for vbafog.
package cmd

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fogbyte/vbafog/internal/adapter"
	"github.com/fogbyte/vbafog/internal/config"
	"github.com/fogbyte/vbafog/internal/controller"
	"github.com/fogbyte/vbafog/internal/domain"
	"github.com/fogbyte/vbafog/internal/domain/mutators"
	m "github.com/fogbyte/vbafog/internal/model"
)

var moduleFSAdapter adapter.ModuleFSAdapter
var auditStore adapter.AuditStore
var ui controller.UI
var nameGen *domain.NameGenerator
var cfg *config.Config
var logLevel *slog.LevelVar
var workflow domain.Workflow

func init() {
	logLevel = new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	loaded, err := config.LoadConfig()
	if err != nil {
		log.Warn("config load failed, using defaults", "error", err)
		loaded = config.Default()
	}
	cfg = loaded

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	moduleFSAdapter = adapter.NewLocalModuleFSAdapter()
	auditStore = adapter.NewAuditStore()
	nameGen = domain.NewNameGenerator(rand.NewSource(time.Now().UnixNano()))
	workflow = domain.NewWorkflow(
		moduleFSAdapter,
		auditStore,
		ui,
		nameGen,
		log,
		map[string]domain.StringMutator{
			"split": mutators.NewSplitter(cfg.Mutators.ChunkSize),
			"xor":   mutators.NewXor(cfg.Mutators.XorKey, cfg.Mutators.XorHelper),
		},
	)
}

var ignoreMethodFlags []string
var stripCommentsFlag bool
var stripEmptyLinesFlag bool
var renameAllFlag bool
var renameMethodsFlag bool
var renameVariablesFlag bool
var renameParametersFlag bool
var mutateFlags []string
var nameLengthFlag int
var alphabetFlag string
var methodNameLengthFlag int
var methodAlphabetFlag string
var variableNameLengthFlag int
var variableAlphabetFlag string
var parameterNameLengthFlag int
var parameterAlphabetFlag string
var parallelFlag int
var reportsOutputDirFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vbafog [files...]",
		Short: "VBA source obfuscator",
		Long: `Vbafog rewrites VBA source files to make them harder to read and to
fingerprint: method, variable, and parameter names are replaced with
randomly generated ones, and string literals are mutated by pluggable
strategies. Each input file produces a sibling output file with an
_obf suffix, plus an audit report mapping every change back to the
original.`,
		Args: cobra.MinimumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Obfuscate(buildObfuscateArgs(parsePaths(args)))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every rename and mutation")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", "", "directory for audit reports")

	cmd.Flags().StringArrayVar(&ignoreMethodFlags, "ignore-method", nil, "leave the named method untouched (can be repeated)")
	cmd.Flags().BoolVar(&stripCommentsFlag, "strip-comments", false, "remove comments from the output")
	cmd.Flags().BoolVar(&stripEmptyLinesFlag, "strip-empty-lines", false, "remove blank lines from the output")
	cmd.Flags().BoolVarP(&renameAllFlag, "rename-all", "a", false, "rename methods, variables, and parameters")
	cmd.Flags().BoolVar(&renameMethodsFlag, "rename-methods", false, "rename methods and their call sites")
	cmd.Flags().BoolVar(&renameVariablesFlag, "rename-variables", false, "rename local variables")
	cmd.Flags().BoolVar(&renameParametersFlag, "rename-parameters", false, "rename method parameters")
	cmd.Flags().StringArrayVarP(&mutateFlags, "mutate", "m", nil, "string mutator to apply, in order (split, xor; can be repeated)")
	cmd.Flags().IntVarP(&nameLengthFlag, "name-length", "n", 0, "length of generated names")
	cmd.Flags().StringVar(&alphabetFlag, "alphabet", "", "characters generated names are drawn from")
	cmd.Flags().IntVar(&methodNameLengthFlag, "method-name-length", 0, "length of generated method names")
	cmd.Flags().StringVar(&methodAlphabetFlag, "method-alphabet", "", "alphabet for generated method names")
	cmd.Flags().IntVar(&variableNameLengthFlag, "variable-name-length", 0, "length of generated variable names")
	cmd.Flags().StringVar(&variableAlphabetFlag, "variable-alphabet", "", "alphabet for generated variable names")
	cmd.Flags().IntVar(&parameterNameLengthFlag, "parameter-name-length", 0, "length of generated parameter names")
	cmd.Flags().StringVar(&parameterAlphabetFlag, "parameter-alphabet", "", "alphabet for generated parameter names")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files processed concurrently")

	return cmd
}

// buildObfuscateArgs merges command-line flags over the loaded configuration.
func buildObfuscateArgs(paths []m.Path) domain.ObfuscateArgs {
	reports := cfg.Reports
	if reportsOutputDirFlag != "" {
		reports = reportsOutputDirFlag
	}

	return domain.ObfuscateArgs{
		Paths:            paths,
		IgnoreMethods:    ignoreMethodFlags,
		RenameMethods:    renameAllFlag || renameMethodsFlag,
		RenameVariables:  renameAllFlag || renameVariablesFlag,
		RenameParameters: renameAllFlag || renameParametersFlag,
		Mutators:         mutateFlags,
		Scan: domain.ScanOptions{
			StripComments:  stripCommentsFlag,
			SkipEmptyLines: stripEmptyLinesFlag,
		},
		MethodNames:    resolveNaming(cfg.Naming.Methods, methodNameLengthFlag, methodAlphabetFlag),
		VariableNames:  resolveNaming(cfg.Naming.Variables, variableNameLengthFlag, variableAlphabetFlag),
		ParameterNames: resolveNaming(cfg.Naming.Parameters, parameterNameLengthFlag, parameterAlphabetFlag),
		Reports:        m.Path(reports),
		Threads:        parallelFlag,
	}
}

// resolveNaming layers flag values over the per-class config, which itself
// falls back to the general naming config. The general flags sit between
// the two: class config beats general flags beats general config.
func resolveNaming(class config.ClassNamingConfig, classLengthFlag int, classAlphabetFlag string) domain.NamingSpec {
	general := config.ClassNamingConfig{Length: nameLengthFlag, Alphabet: alphabetFlag}

	length, alphabet := cfg.Naming.Resolve(general)
	if class.Length > 0 {
		length = class.Length
	}
	if class.Alphabet != "" {
		alphabet = class.Alphabet
	}
	if classLengthFlag > 0 {
		length = classLengthFlag
	}
	if classAlphabetFlag != "" {
		alphabet = classAlphabetFlag
	}

	return domain.NamingSpec{Length: length, Alphabet: alphabet}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
