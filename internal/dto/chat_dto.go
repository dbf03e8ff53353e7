package dto

// Response type tags. Only the first two are produced today; action and
// follow-up are reserved for clients that already understand them.
const (
	ResponseTypeText         = "text"
	ResponseTypeTextLinks    = "text_with_links"
	ResponseTypeTextAction   = "text_with_action"
	ResponseTypeTextFollowUp = "text_with_follow_up"
)

// DefaultMaxReferences is used when a chat request omits max_references.
const DefaultMaxReferences = 3

type ChatRequest struct {
	Question       string  `json:"question" validate:"required,min=1"`
	ConversationId *string `json:"conversation_id,omitempty"`
	// Pointer so an explicit 0 (rejected by validation) is distinguishable
	// from an absent field (defaulted).
	MaxReferences *int `json:"max_references" validate:"omitempty,min=1,max=10"`
}

type SourceDocument struct {
	Source  string   `json:"source"`
	Snippet *string  `json:"snippet"`
	Score   *float64 `json:"score"`
}

type LinkItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ActionPayload is a reserved next-step action for the client. The core
// responder never populates it.
type ActionPayload struct {
	Name       string                 `json:"name"`
	Method     string                 `json:"method"`
	Endpoint   string                 `json:"endpoint"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

// FollowUpField describes one input the client should collect from the user.
type FollowUpField struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	InputType string `json:"input_type"`
	Required  bool   `json:"required"`
}

// FollowUpRequest is a reserved prompt for additional user input.
type FollowUpRequest struct {
	Prompt string          `json:"prompt"`
	Fields []FollowUpField `json:"fields"`
}

type ChatResponse struct {
	Answer         string           `json:"answer"`
	Sources        []SourceDocument `json:"sources"`
	ConversationId *string          `json:"conversation_id"`
	ResponseType   string           `json:"response_type"`
	Links          []LinkItem       `json:"links"`
	Action         *ActionPayload   `json:"action"`
	FollowUp       *FollowUpRequest `json:"follow_up"`
}
