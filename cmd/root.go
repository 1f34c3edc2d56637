package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/soumya721644/docqa-be/config"
	"github.com/soumya721644/docqa-be/service"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docqa-be",
	Short: "Document question-answering backend",
	Long: `docqa-be answers natural-language questions about a PDF document.

Per request it downloads and parses the document, chunks the text,
embeds the chunks into an in-memory vector index and answers each
question from the nearest retrieved chunks via a language model.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger)
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// newAIService builds the configured AI backend.
func newAIService(cfg *config.Config) (service.AIService, error) {
	switch cfg.AI.Provider {
	case "", "openai":
		if cfg.AI.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY not set")
		}
		return service.NewOpenAIService(cfg.AI.Endpoint, cfg.AI.OpenAIAPIKey, cfg.AI.Model, cfg.AI.EmbeddingModel), nil
	case "gemini":
		return service.NewGeminiService(cfg.AI.GeminiKeys(), cfg.AI.Model, cfg.AI.EmbeddingModel)
	default:
		return nil, errors.New("unknown AI provider: " + cfg.AI.Provider)
	}
}
