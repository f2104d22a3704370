package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/studypal/internal/llm"
	"github.com/abhisek/studypal/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a quiz from a text file (or stdin) and print it as JSON",
	Long: `Generate reads study text from the given file, or from stdin when no
file is passed, asks the configured LLM provider for a quiz, and prints
the validated quiz as JSON. Useful for scripting and for checking the
provider setup without starting the TUI.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("questions")

		var source []byte
		var err error
		if len(args) == 1 {
			source, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
		} else {
			source, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}

		provider, err := llm.NewProviderFromEnv(cmd.Context())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		generator := quizgen.New(provider, quizgen.DefaultConfig())
		quiz, err := generator.Generate(cmd.Context(), string(source), count)
		if err != nil {
			var genErr *quizgen.GenerationError
			if errors.As(err, &genErr) {
				return fmt.Errorf("%w\n%s", err, genErr.Hint)
			}
			return err
		}

		out, err := json.MarshalIndent(map[string]quizgen.Quiz{"quiz": quiz}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode quiz: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("questions", "n", 5, "Number of questions to generate (3-10)")
}
