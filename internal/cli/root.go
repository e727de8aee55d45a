// Package cli implements the truncyate command line interface. It is thin
// glue: all truncation behavior lives in the truncate package, which never
// sees file paths or streams.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/randalmurphal/truncyate/config"
	"github.com/randalmurphal/truncyate/truncate"
)

const defaultPollInterval = 2 * time.Second

type options struct {
	tokens        int
	chars         int
	strategy      string
	keepSentences bool
	output        string
	inputFile     string
	ellipsis      string
	counter       string
	configPath    string
	watch         bool
}

// NewRootCmd builds the truncyate command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{keepSentences: true}

	cmd := &cobra.Command{
		Use:   "truncyate [text]",
		Short: "Precisely truncate text while preserving context",
		Long: `truncyate trims text to a token or character budget while keeping
sentence boundaries intact and, with the smart strategy, the sentences
that matter most.

Input is taken from the positional argument, --input-file, or stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.tokens, "tokens", "t", 0, "maximum number of tokens to keep")
	flags.IntVarP(&opts.chars, "chars", "c", 0, "maximum number of characters to keep")
	flags.StringVarP(&opts.strategy, "strategy", "s", "", "truncation strategy: start, end, middle, smart (default smart)")
	flags.BoolVar(&opts.keepSentences, "keep-sentences", true, "preserve complete sentences")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	flags.StringVarP(&opts.inputFile, "input-file", "f", "", "read input from file instead of argument or stdin")
	flags.StringVar(&opts.ellipsis, "ellipsis", "", "marker for removed content (default \"...\")")
	flags.StringVar(&opts.counter, "counter", "", "token counter: words, ratio, tiktoken, or a tiktoken encoding name")
	flags.StringVar(&opts.configPath, "config", "", "TOML or YAML file with defaults (flags override)")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "re-truncate whenever --input-file changes")

	// --no-keep-sentences reads better on the command line than
	// --keep-sentences=false; keep both spellings working.
	var noKeep bool
	flags.BoolVar(&noKeep, "no-keep-sentences", false, "disable sentence preservation (truncate exactly to the limit)")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if noKeep {
			opts.keepSentences = false
		}
		return nil
	}

	cmd.MarkFlagsMutuallyExclusive("tokens", "chars")
	cmd.MarkFlagsMutuallyExclusive("keep-sentences", "no-keep-sentences")

	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	file, err := resolveConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	tr, err := file.Truncator()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ellipsis") {
		tr.WithEllipsis(opts.ellipsis)
	}

	truncateOnce := func() error {
		text, err := readInput(cmd, args, opts.inputFile)
		if err != nil {
			return err
		}
		result, _ := tr.TruncateWith(text, tr.Strategy(), opts.keepSentences)
		return writeOutput(cmd, opts.output, result)
	}

	if opts.watch {
		if opts.inputFile == "" {
			return fmt.Errorf("--watch requires --input-file")
		}
		return watchFile(cmd.Context(), opts.inputFile, defaultPollInterval, truncateOnce)
	}
	return truncateOnce()
}

// resolveConfig merges the config file (if any) with command line flags;
// flags win.
func resolveConfig(flags *pflag.FlagSet, opts *options) (config.File, error) {
	var file config.File
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return file, err
		}
		file = loaded
	}

	if flags.Changed("tokens") {
		file.MaxTokens = opts.tokens
		file.MaxChars = 0
	}
	if flags.Changed("chars") {
		file.MaxChars = opts.chars
		file.MaxTokens = 0
	}
	if flags.Changed("strategy") {
		file.Strategy = opts.strategy
	}
	if flags.Changed("counter") {
		file.Counter = opts.counter
	}

	if file.MaxTokens == 0 && file.MaxChars == 0 {
		return file, fmt.Errorf("a budget is required: pass --tokens or --chars (or set one in --config)")
	}
	if file.Strategy != "" {
		if _, err := truncate.ParseStrategy(file.Strategy); err != nil {
			return file, err
		}
	}
	return file, nil
}

// readInput returns the text to truncate: positional argument, then
// --input-file, then stdin.
func readInput(cmd *cobra.Command, args []string, inputFile string) (string, error) {
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// writeOutput writes the result to --output or stdout. Stdout gets a
// trailing newline for shell friendliness; files get the exact text.
func writeOutput(cmd *cobra.Command, path, result string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	}
	if err := os.WriteFile(path, []byte(result), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
