package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/soumya721644/docqa-be/config"
	"github.com/soumya721644/docqa-be/service"
	"github.com/soumya721644/docqa-be/types"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer questions about a document from the command line",
	Long: `Runs the full pipeline once without starting the server.
The document may be a URL or a path to a local PDF file.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		document, _ := cmd.Flags().GetString("document")
		questions, _ := cmd.Flags().GetStringArray("question")

		if document == "" || len(questions) == 0 {
			log.Fatal().Msg("Both --document and at least one --question are required")
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}

		documentService := service.NewDocumentService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.Document.MaxChunkSize,
			OverlapSize:  cfg.Document.OverlapSize,
		})

		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize AI service")
		}

		queryService := service.NewQueryService(documentService, aiService, cfg.AI.TopK)

		ctx := context.Background()
		var answers []string
		if strings.HasPrefix(document, "http://") || strings.HasPrefix(document, "https://") {
			answers, err = queryService.Process(ctx, types.QueryRequest{
				Documents: document,
				Questions: questions,
			})
		} else {
			var data []byte
			data, err = os.ReadFile(document)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to read document file")
			}
			answers, err = queryService.ProcessBytes(ctx, data, questions)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process document")
		}

		for i, answer := range answers {
			fmt.Printf("Q: %s\nA: %s\n\n", questions[i], answer)
		}
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	askCmd.Flags().StringP("document", "d", "", "document URL or local PDF path")
	askCmd.Flags().StringArrayP("question", "q", nil, "question to answer (repeatable)")
}
