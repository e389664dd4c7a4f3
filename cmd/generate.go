package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/afscreen/internal/application"
	"github.com/inovacc/afscreen/internal/cli"
	"github.com/inovacc/afscreen/internal/config"
	"github.com/inovacc/afscreen/internal/core"
	"github.com/inovacc/afscreen/internal/encoding"
	"github.com/inovacc/afscreen/internal/model"
	"github.com/inovacc/afscreen/internal/output"
	"github.com/inovacc/afscreen/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Pair screening chains with CSV targets and write job payloads",
	Long: `Builds one prediction job for every (target, screening chain) pair and
writes the jobs as JSON arrays of at most --chunk-size entries.

Values not given as flags (or in the config file) are prompted for.

Examples:
  afscreen generate
  afscreen generate --chain Bait=MKVLAAGIV --csv targets.csv \
    --name-column name --sequence-column sequence --output out/screen.json
  afscreen generate --chain MKVLAAGIV --csv targets.csv \
    --name-column id --sequence-column aa --stdout`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd.Flags())
}

func addGenerateFlags(flags *pflag.FlagSet) {
	flags.StringArray("chain", nil, "screening chain as NAME=SEQUENCE or SEQUENCE (repeatable)")
	flags.String("csv", "", "CSV file with the targets")
	flags.String("name-column", "", "CSV column holding the target names")
	flags.String("sequence-column", "", "CSV column holding the target sequences")
	flags.StringP("output", "o", "", "destination file; chunks are written next to it")
	flags.Bool("stdout", false, "print the chunks instead of writing files")
	flags.Int("chunk-size", 0, "maximum jobs per chunk (default from config, 100)")
	flags.Bool("no-history", false, "do not record this run in the history")
}

type generateOptions struct {
	Chains         []string
	CSVPath        string
	NameColumn     string
	SequenceColumn string
	Output         string
	Stdout         bool
	ChunkSize      int
	NoHistory      bool
}

// generator runs one generation. Prompts and notices go to errOut so that
// console payloads on out stay machine-readable.
type generator struct {
	opts     generateOptions
	prompter cli.Prompter
	out      io.Writer
	errOut   io.Writer
	seeds    core.SeedSource
	history  store.Store
	logger   *slog.Logger
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg := currentConfig()

	opts, err := generateOptionsFrom(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	g := &generator{
		opts:     opts,
		prompter: cli.NewPrompter(os.Stdin, cmd.ErrOrStderr()),
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		seeds:    core.NewSeedSource(),
		logger:   logger,
	}

	if cfg.History.Enabled && !opts.NoHistory {
		path, err := application.Path(application.HistoryFileName)
		if err != nil {
			logger.Warn("history disabled", "error", err)
		} else {
			g.history = openHistory(cfg.History.Backend, path, logger)
		}
	}

	if g.history != nil {
		defer func() { _ = g.history.Close() }()
	}

	_, err = g.run()

	return err
}

// generateOptionsFrom layers the generate flags over the config values. The
// root command runs generation without these flags registered.
func generateOptionsFrom(flags *pflag.FlagSet, cfg *config.Config) (generateOptions, error) {
	opts := generateOptions{
		NameColumn:     cfg.Generate.NameColumn,
		SequenceColumn: cfg.Generate.SequenceColumn,
		Output:         cfg.Generate.Output,
		ChunkSize:      cfg.Generate.ChunkSize,
	}

	if flags.Lookup("chain") != nil {
		opts.Chains, _ = flags.GetStringArray("chain")
		opts.CSVPath, _ = flags.GetString("csv")
		opts.Stdout, _ = flags.GetBool("stdout")
		opts.NoHistory, _ = flags.GetBool("no-history")

		if v, _ := flags.GetString("name-column"); v != "" {
			opts.NameColumn = v
		}
		if v, _ := flags.GetString("sequence-column"); v != "" {
			opts.SequenceColumn = v
		}
		if v, _ := flags.GetString("output"); v != "" {
			opts.Output = v
		}
		if v, _ := flags.GetInt("chunk-size"); flags.Changed("chunk-size") {
			opts.ChunkSize = v
		}
	}

	if opts.ChunkSize < 1 {
		return opts, fmt.Errorf("chunk size must be at least 1, got %d", opts.ChunkSize)
	}

	return opts, nil
}

// openHistory returns nil when the store cannot be opened or does not answer;
// history is never allowed to fail a generation.
func openHistory(backend, path string, logger *slog.Logger) store.Store {
	s, err := store.Open(backend, path)
	if err != nil {
		logger.Warn("history disabled", "backend", backend, "error", err)
		return nil
	}

	if err := s.Ping(); err != nil {
		logger.Warn("history disabled", "backend", backend, "error", err)
		_ = s.Close()
		return nil
	}

	return s
}

func (g *generator) run() (*model.Run, error) {
	chains, err := g.screeningChains()
	if err != nil {
		return nil, err
	}

	csvPath, nameColumn, sequenceColumn, err := g.csvDetails()
	if err != nil {
		return nil, err
	}

	loader := core.NewTargetLoader(nameColumn, sequenceColumn, g.logger)

	loaded, err := loader.LoadFile(csvPath)
	if err != nil {
		return nil, fmt.Errorf("error while reading CSV: %w", err)
	}

	for _, s := range loaded.Skipped {
		_, _ = fmt.Fprintf(g.errOut, "Skipping row %d: %s.\n", s.Row, s.Reason)
	}

	payload := core.BuildPayload(loaded.Targets, chains, g.seeds)

	_, _ = fmt.Fprintf(g.errOut, "Loaded %s and %s: %s in %s.\n",
		plural(len(loaded.Targets), "target"),
		plural(len(chains), "screening chain"),
		plural(len(payload), "job"),
		plural(core.ChunkCount(len(payload), g.opts.ChunkSize), "chunk"))

	destination, err := g.destination()
	if err != nil {
		return nil, err
	}

	router := output.NewRouter(g.out, g.opts.ChunkSize, g.logger)

	result, err := router.Emit(payload, destination)
	if err != nil {
		return nil, err
	}

	run := &model.Run{
		ID:             uuid.New().String(),
		CreatedAt:      time.Now().UTC(),
		CSVPath:        csvPath,
		NameColumn:     nameColumn,
		SequenceColumn: sequenceColumn,
		Chains:         len(chains),
		Targets:        len(loaded.Targets),
		Jobs:           len(payload),
		SkippedRows:    loaded.SkippedRows(),
		Destination:    destination,
		Files:          result.Files,
	}

	g.logger.Info("payload generated", "run", run.ID, "jobs", run.Jobs, "chunks", result.Chunks)

	if g.history != nil {
		if err := g.history.SaveRun(run); err != nil {
			g.logger.Warn("failed to record run", "run", run.ID, "error", err)
		}
	}

	return run, nil
}

// screeningChains parses --chain values, or prompts until at least one chain
// is entered and an empty sequence ends the list.
func (g *generator) screeningChains() ([]model.SequenceEntry, error) {
	if len(g.opts.Chains) > 0 {
		return parseChains(g.opts.Chains)
	}

	_, _ = fmt.Fprintln(g.errOut, "Enter the screening chain sequences (press Enter on an empty line to finish).")

	var chains []model.SequenceEntry

	for n := 1; ; {
		raw, err := g.prompter.AskOptional(fmt.Sprintf("Sequence for screening chain #%d: ", n))
		if err != nil {
			return nil, err
		}

		sequence := core.NormalizeSequence(raw)
		if sequence == "" {
			if len(chains) == 0 {
				_, _ = fmt.Fprintln(g.errOut, "You must provide at least one screening chain.")
				continue
			}

			return chains, nil
		}

		name, err := g.prompter.AskOptional(fmt.Sprintf("Name for this chain (default Chain%d): ", n))
		if err != nil {
			return nil, err
		}

		if name == "" {
			name = fmt.Sprintf("Chain%d", n)
		}

		chains = append(chains, model.NewSequenceEntry(name, sequence))
		n++
	}
}

// parseChains converts NAME=SEQUENCE or SEQUENCE values into entries.
func parseChains(values []string) ([]model.SequenceEntry, error) {
	chains := make([]model.SequenceEntry, 0, len(values))

	for i, v := range values {
		n := i + 1
		name := fmt.Sprintf("Chain%d", n)
		raw := v

		if before, after, found := strings.Cut(v, "="); found {
			if label := strings.TrimSpace(before); label != "" {
				name = label
			}
			raw = after
		}

		sequence := core.NormalizeSequence(raw)
		if sequence == "" {
			return nil, fmt.Errorf("screening chain #%d has an empty sequence", n)
		}

		chains = append(chains, model.NewSequenceEntry(name, sequence))
	}

	return chains, nil
}

// csvDetails resolves the CSV path and column names. A path given as a flag
// must exist; a prompted path is asked again until it does.
func (g *generator) csvDetails() (string, string, string, error) {
	path := ""

	if g.opts.CSVPath != "" {
		p, err := expandPath(g.opts.CSVPath)
		if err != nil {
			return "", "", "", err
		}

		if !encoding.FileExists(p) {
			return "", "", "", fmt.Errorf("file '%s' not found", p)
		}

		path = p
	}

	for {
		if path == "" {
			p, err := g.promptCSVPath()
			if err != nil {
				return "", "", "", err
			}

			path = p
		}

		nameColumn, err := g.column(g.opts.NameColumn, "Column name that holds the target names: ")
		if err != nil {
			return "", "", "", err
		}

		sequenceColumn, err := g.column(g.opts.SequenceColumn, "Column name that holds the target sequences: ")
		if err != nil {
			return "", "", "", err
		}

		if nameColumn != "" && sequenceColumn != "" {
			return path, nameColumn, sequenceColumn, nil
		}

		_, _ = fmt.Fprintln(g.errOut, "Both the name and sequence column titles are required.")

		if g.opts.CSVPath == "" {
			path = ""
		}
	}
}

func (g *generator) promptCSVPath() (string, error) {
	for {
		raw, err := g.prompter.AskRequired("Path to CSV with targets: ")
		if err != nil {
			return "", err
		}

		path, err := expandPath(raw)
		if err != nil {
			return "", err
		}

		if encoding.FileExists(path) {
			return path, nil
		}

		_, _ = fmt.Fprintf(g.errOut, "File '%s' not found. Try again.\n", path)
	}
}

func (g *generator) column(preset, prompt string) (string, error) {
	if preset != "" {
		return preset, nil
	}

	return g.prompter.AskOptional(prompt)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

// destination returns "" for console output.
func (g *generator) destination() (string, error) {
	if g.opts.Stdout {
		return "", nil
	}

	raw := g.opts.Output
	if raw == "" {
		answer, err := g.prompter.AskOptional("Where should the JSON be saved? (Leave blank to print to stdout): ")
		if err != nil {
			return "", err
		}

		raw = answer
	}

	if raw == "" {
		return "", nil
	}

	return expandPath(raw)
}
