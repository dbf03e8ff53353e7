package service

import (
	"context"
	"encoding/json"

	"faq-assistant-be/internal/dto"
	"faq-assistant-be/internal/mapper"
	"faq-assistant-be/internal/pkg/logger"
	"faq-assistant-be/internal/repository/memory"
	"faq-assistant-be/pkg/events"
	"faq-assistant-be/pkg/faq/response"
	"faq-assistant-be/pkg/knowledge"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IChatService answers a single FAQ question end to end.
type IChatService interface {
	Ask(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	storeProvider *knowledge.Provider
	composer      *response.Composer
	answerCache   *memory.AnswerCache
	pubSub        *gochannel.GoChannel
	minScore      float64
	sysLogger     logger.ILogger
}

func NewChatService(
	storeProvider *knowledge.Provider,
	composer *response.Composer,
	answerCache *memory.AnswerCache,
	pubSub *gochannel.GoChannel,
	minScore float64,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		storeProvider: storeProvider,
		composer:      composer,
		answerCache:   answerCache,
		pubSub:        pubSub,
		minScore:      minScore,
		sysLogger:     sysLogger,
	}
}

func (s *chatService) Ask(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	store, err := s.storeProvider.Get()
	if err != nil {
		return nil, err
	}

	match := store.Match(request.Question)

	if match.Entry == nil || match.Score < s.minScore {
		s.sysLogger.Info("CHATBOT", "No knowledge base match", map[string]interface{}{
			"question":   request.Question,
			"best_score": match.Score,
		})
		s.publishUnmatched(request.Question, match.Score)
	}

	maxSources := dto.DefaultMaxReferences
	if request.MaxReferences != nil {
		maxSources = *request.MaxReferences
	}
	answer := s.composer.Compose(store, match, s.minScore, maxSources)

	finalText, err := s.rewriteWithCache(ctx, request.Question, match, answer)
	if err != nil {
		return nil, err
	}

	return mapper.ToChatResponse(answer, finalText, request.ConversationId), nil
}

// rewriteWithCache serves a previously generated reply when the same entry
// was already rewritten for the same question.
func (s *chatService) rewriteWithCache(ctx context.Context, question string, match knowledge.MatchResult, answer response.ChatAnswer) (string, error) {
	cacheId := "fallback"
	if match.Entry != nil && match.Score >= s.minScore {
		cacheId = match.Entry.Id
	}
	normalized := knowledge.Normalize(question)

	if cached, found := s.answerCache.Get(cacheId, normalized); found {
		return cached, nil
	}

	finalText, err := s.composer.Rewrite(ctx, question, answer)
	if err != nil {
		return "", err
	}

	// Only generated replies are worth caching; the template itself is free.
	if finalText != answer.TemplateAnswer {
		s.answerCache.Save(cacheId, normalized, finalText)
	}
	return finalText, nil
}

// publishUnmatched emits a best-effort gap event; losing one never fails the
// request.
func (s *chatService) publishUnmatched(question string, bestScore float64) {
	if s.pubSub == nil {
		return
	}

	evt := events.NewQuestionUnmatched(question, bestScore)
	payload, err := json.Marshal(evt)
	if err != nil {
		s.sysLogger.Warn("CHATBOT", "Failed to marshal unmatched event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(events.TopicQuestionUnmatched, msg); err != nil {
		s.sysLogger.Warn("CHATBOT", "Failed to publish unmatched event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
