package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicQuestionUnmatched carries questions that fell back because no FAQ
// entry scored above the confidence threshold.
const TopicQuestionUnmatched = "faq.question.unmatched"

// QuestionUnmatched is published whenever a chat request degrades to the
// fallback answer. Consumers use it to spot gaps in the FAQ content.
type QuestionUnmatched struct {
	EventId    uuid.UUID `json:"event_id"`
	Question   string    `json:"question"`
	BestScore  float64   `json:"best_score"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewQuestionUnmatched(question string, bestScore float64) QuestionUnmatched {
	return QuestionUnmatched{
		EventId:    uuid.New(),
		Question:   question,
		BestScore:  bestScore,
		OccurredAt: time.Now(),
	}
}
