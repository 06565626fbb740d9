package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// maxContextLength caps the grounding text sent with each question.
	maxContextLength = 1000

	answerMaxTokens   = 150
	answerTemperature = 0.05
	answerTopP        = 0.7
)

// answerSystemMessage keeps the model pinned to the provided context. The
// rules double as a hallucination tripwire: the post-filters below catch the
// phrasings the rules forbid.
const answerSystemMessage = `You are a helpful assistant for Brahma '26 and Ashwamedha '26 festivals at ASIET.

Answer questions using ONLY the information provided in the context. Answer naturally and conversationally when the context covers the question.

Strict rules:
1. Use ONLY information from the context provided.
2. DO NOT mention other colleges or festivals (IIT, NIT, CUSAT, Prayag, Tathva, etc.).
3. DO NOT use phrases like "typically", "usually", "generally", "most festivals".
4. If the context is insufficient, respond: "I don't have that specific information".
5. If the question is not about Brahma '26 or Ashwamedha '26, respond: "I can only help with Brahma '26 and Ashwamedha '26 events at ASIET".`

// Answers mentioning any of these are replaced wholesale: the model has
// drifted to other institutions.
var forbiddenTerms = []string{
	"prayag", "tathva", "dhwani", "iit ", "nit ", "cusat", "mec ", "rajagiri",
	"iit-", "nit-", "mec-",
}

// Hedging vocabulary that signals the model is answering from general
// knowledge instead of the context.
var genericPhrases = []string{
	"typically", "usually", "generally", "most festivals", "common events",
	"standard events", "popular activities", "traditional",
}

const (
	scopeReply  = "I can only help with Brahma '26 and Ashwamedha '26 events at ASIET."
	noInfoReply = "I don't have that specific information in the provided context."
)

// Answerer produces grounded answers for the fallback path. It wraps an
// LLMClient with the strict prompt and the post-generation filters.
type Answerer struct {
	client LLMClient
	logger *zap.Logger
}

// NewAnswerer creates an answerer over the given client.
func NewAnswerer(client LLMClient, logger *zap.Logger) *Answerer {
	return &Answerer{client: client, logger: logger.Named("answerer")}
}

// GenerateAnswer answers the question from the context text alone.
func (a *Answerer) GenerateAnswer(ctx context.Context, contextText, question string) (string, error) {
	if len(contextText) > maxContextLength {
		contextText = contextText[:maxContextLength] + "..."
	}

	prompt := fmt.Sprintf("Context (your ONLY information source):\n%s\n\nQuestion: %s\n\nAnswer (be natural and helpful if context has the info, otherwise say you don't have it):",
		contextText, question)

	answer, err := a.client.GenerateResponse(ctx, prompt, answerSystemMessage, GenerateOptions{
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
		TopP:        answerTopP,
	})
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	return a.filter(strings.TrimSpace(answer)), nil
}

// filter replaces answers that leak out of scope or hedge with general
// knowledge.
func (a *Answerer) filter(answer string) string {
	lower := strings.ToLower(answer)

	for _, term := range forbiddenTerms {
		if strings.Contains(lower, term) {
			a.logger.Warn("answer mentioned out-of-scope institution", zap.String("term", term))
			return scopeReply
		}
	}

	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			a.logger.Warn("answer looked hallucinated", zap.String("phrase", phrase))
			return noInfoReply
		}
	}

	return answer
}
