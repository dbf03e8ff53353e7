package mapper

import (
	"faq-assistant-be/internal/dto"
	"faq-assistant-be/pkg/faq/response"
	"faq-assistant-be/pkg/knowledge"
)

// ToChatResponse builds the outbound DTO from the composed answer and the
// final (possibly rewritten) text.
func ToChatResponse(answer response.ChatAnswer, finalText string, conversationId *string) *dto.ChatResponse {
	responseType := dto.ResponseTypeText
	if len(answer.Links) > 0 {
		responseType = dto.ResponseTypeTextLinks
	}

	return &dto.ChatResponse{
		Answer:         finalText,
		Sources:        toSourceDocuments(answer.Sources),
		ConversationId: conversationId,
		ResponseType:   responseType,
		Links:          toLinkItems(answer.Links),
		Action:         nil,
		FollowUp:       nil,
	}
}

func toSourceDocuments(sources []response.Source) []dto.SourceDocument {
	docs := make([]dto.SourceDocument, 0, len(sources))
	for _, src := range sources {
		doc := dto.SourceDocument{Source: src.Source}
		if src.Snippet != "" {
			snippet := src.Snippet
			doc.Snippet = &snippet
		}
		score := src.Score
		doc.Score = &score
		docs = append(docs, doc)
	}
	return docs
}

func toLinkItems(links []knowledge.Link) []dto.LinkItem {
	items := make([]dto.LinkItem, 0, len(links))
	for _, link := range links {
		items = append(items, dto.LinkItem{Label: link.Label, URL: link.URL})
	}
	return items
}
