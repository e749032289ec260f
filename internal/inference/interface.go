package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	DefineWord(ctx context.Context, params DefineWordRequest) (DefineWordResponse, error)
}

// DefineWordRequest asks for a one-sentence English gloss of a word
type DefineWordRequest struct {
	Word string `json:"word"`
	// LanguageName is the English name of the word's language, e.g. "Finnish"
	LanguageName string `json:"language_name"`
}

type DefineWordResponse struct {
	// Text is the raw model answer, which may be the literal UNKNOWN
	Text string `json:"text"`
}
