package response

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"faq-assistant-be/pkg/faq/prompt"
	"faq-assistant-be/pkg/knowledge"
	"faq-assistant-be/pkg/llm"
)

// Source cites the knowledge entry an answer was composed from.
type Source struct {
	Source  string
	Snippet string
	Score   float64
}

// ChatAnswer is the deterministic result of composition: the template content
// before any generative rewrite.
type ChatAnswer struct {
	TemplateAnswer string
	Instruction    string
	Clarify        string
	Links          []knowledge.Link
	Sources        []Source
}

// Composer turns a match result into a ChatAnswer and optionally rewrites the
// template through the generation provider.
type Composer struct {
	llmProvider llm.Provider
	model       string
	temperature float64
	logger      *log.Logger
}

func NewComposer(llmProvider llm.Provider, model string, temperature float64, logger *log.Logger) *Composer {
	if logger == nil {
		logger = log.Default()
	}
	return &Composer{
		llmProvider: llmProvider,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Compose blends the match result with the store's fallback content. A match
// below minScore (or no match at all) yields the fallback answer with no
// sources. maxSources truncates the citation list; zero truncates to empty.
func (c *Composer) Compose(store *knowledge.Store, match knowledge.MatchResult, minScore float64, maxSources int) ChatAnswer {
	if match.Entry == nil || match.Score < minScore {
		return ChatAnswer{
			TemplateAnswer: store.FallbackAnswer(),
			Instruction:    store.FallbackInstruction(),
			Links:          store.FallbackLinks(),
			Sources:        []Source{},
		}
	}

	entry := match.Entry
	answer := entry.Answer
	if answer == "" {
		answer = store.FallbackAnswer()
	}

	sources := []Source{
		{
			Source: fmt.Sprintf("faq.json::%s", entry.Id),
			Score:  math.Round(match.Score*1000) / 1000,
		},
	}
	if maxSources < 0 {
		maxSources = 0
	}
	if maxSources < len(sources) {
		sources = sources[:maxSources]
	}

	return ChatAnswer{
		TemplateAnswer: answer,
		Instruction:    entry.Instruction,
		Clarify:        entry.Clarify,
		Links:          entry.Links,
		Sources:        sources,
	}
}

// Rewrite asks the provider to rephrase the template answer for the user.
// Provider failures and empty completions degrade to the unmodified template;
// a missing credential is the one failure that propagates, so the boundary
// can answer service-unavailable instead of returning the raw template.
func (c *Composer) Rewrite(ctx context.Context, question string, answer ChatAnswer) (string, error) {
	userPrompt := prompt.NewRewriteBuilder(
		question,
		answer.TemplateAnswer,
		answer.Instruction,
		answer.Clarify,
		answer.Links,
	).Build()

	history := []llm.Message{
		{Role: "system", Content: prompt.SystemPrompt},
		{Role: "user", Content: userPrompt},
	}

	text, err := c.llmProvider.Chat(ctx, history,
		llm.WithModel(c.model),
		llm.WithTemperature(c.temperature),
	)
	if err != nil {
		var confErr *llm.ConfigurationError
		if errors.As(err, &confErr) {
			return "", err
		}
		c.logger.Printf("[WARN] Rewrite failed, serving template answer: %v", err)
		return answer.TemplateAnswer, nil
	}

	if text == "" {
		c.logger.Printf("[WARN] Rewrite returned empty completion, serving template answer")
		return answer.TemplateAnswer, nil
	}
	return text, nil
}
