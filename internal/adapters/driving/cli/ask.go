package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
)

var (
	askTopic string
	askJSON  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from the local docs",
	Long: `Answers a free-text question from the local Better Auth docs corpus.

The answer is assembled from the most relevant paragraphs, with file and
line-range citations and a confidence estimate. An optional topic hint
narrows which documents are considered first.

Examples:
  authdocs ask "how do sessions expire?"
  authdocs ask --topic database "how do I configure the drizzle adapter?"
  authdocs ask --json "what does the two-factor plugin do?"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askTopic, "topic", "t", "", "topic hint to narrow candidate documents")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	result, err := retrievalService.Retrieve(cmd.Context(), askTopic, args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAskJSON(cmd, result)
	}
	return outputAskText(cmd, result)
}

func outputAskJSON(cmd *cobra.Command, result *domain.RetrievalResult) error {
	payload := struct {
		Answer     string            `json:"answer"`
		Confidence float64           `json:"confidence"`
		Sources    []domain.Citation `json:"sources"`
	}{
		Answer:     result.Answer,
		Confidence: result.Confidence,
		Sources:    result.Sources,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAskText(cmd *cobra.Command, result *domain.RetrievalResult) error {
	cmd.Println(result.Answer)
	cmd.Println()
	if len(result.Sources) > 0 {
		cmd.Println("Sources:")
		for _, src := range result.Sources {
			cmd.Printf("  %s:%s\n", src.File, src.LineRange)
		}
	}
	cmd.Printf("Confidence: %.0f%%\n", result.Confidence*100)
	return nil
}
