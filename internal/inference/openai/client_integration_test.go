// go build +integration
package openai_test

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordleglobal/glossary/internal/inference"
	"github.com/wordleglobal/glossary/internal/inference/openai"
)

// TestClient_DefineWord_Evaluate calls the real API.
// Run with: OPENAI_API_KEY=your-key go test -v ./internal/inference/openai -run TestClient_DefineWord_Evaluate
func TestClient_DefineWord_Evaluate(t *testing.T) {
	t.Parallel()

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})),
	)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY environment variable not set, skipping integration test")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.DefaultModel
	}

	tests := []struct {
		name        string
		request     inference.DefineWordRequest
		wantUnknown bool
	}{
		{
			name:    "common Finnish noun",
			request: inference.DefineWordRequest{Word: "koira", LanguageName: "Finnish"},
		},
		{
			name:        "made-up word",
			request:     inference.DefineWordRequest{Word: "xyzzqplk", LanguageName: "Finnish"},
			wantUnknown: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := openai.NewClient(openai.Config{APIKey: apiKey, Model: model, MaxRetryAttempts: 1})
			defer func() {
				_ = client.Close()
			}()
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			result, err := client.DefineWord(ctx, tc.request)
			require.NoError(t, err)
			t.Logf("Word: %s, Answer: %s", tc.request.Word, result.Text)

			assert.Equal(t, tc.wantUnknown, strings.Contains(strings.ToUpper(result.Text), "UNKNOWN"))
		})
	}
}
