package service

import (
	"context"
	"encoding/json"
	"sync"

	"faq-assistant-be/internal/pkg/logger"
	"faq-assistant-be/pkg/events"
	"faq-assistant-be/pkg/knowledge"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains unmatched-question events so operators can see
// which questions the FAQ content is missing.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	sysLogger logger.ILogger

	mu     sync.Mutex
	counts map[string]int
}

func NewConsumerService(pubSub *gochannel.GoChannel, sysLogger logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		sysLogger: sysLogger,
		counts:    make(map[string]int),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicQuestionUnmatched)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var evt events.QuestionUnmatched
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.sysLogger.Warn("FAQ_GAPS", "Failed to unmarshal unmatched event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads must not loop forever
		return
	}

	count := cs.bump(knowledge.Normalize(evt.Question))

	cs.sysLogger.Info("FAQ_GAPS", "Question had no confident FAQ match", map[string]interface{}{
		"event_id":   evt.EventId,
		"question":   evt.Question,
		"best_score": evt.BestScore,
		"seen_count": count,
	})
	msg.Ack()
}

func (cs *consumerService) bump(question string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.counts[question]++
	return cs.counts[question]
}
