package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studypal/internal/app"
	"github.com/abhisek/studypal/internal/llm"
	"github.com/abhisek/studypal/internal/quizgen"
	"github.com/abhisek/studypal/internal/study"
)

var rootCmd = &cobra.Command{
	Use:   "studypal",
	Short: "AI study partner in your terminal",
	Long:  "StudyPal — paste study material, get an AI-generated quiz, and track how much of it stuck.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp builds the provider chain and launches the TUI.
func runApp(cmd *cobra.Command) error {
	provider, err := llm.NewProviderFromEnv(cmd.Context())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	generator := quizgen.New(provider, quizgen.DefaultConfig())
	svc := study.NewService(generator, study.NewSession())

	return app.Run(svc)
}
