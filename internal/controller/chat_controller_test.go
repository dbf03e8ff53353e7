package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"faq-assistant-be/internal/dto"
	"faq-assistant-be/internal/pkg/logger"
	"faq-assistant-be/pkg/knowledge"
	"faq-assistant-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatService struct {
	response *dto.ChatResponse
	err      error
	lastReq  *dto.ChatRequest
}

func (f *fakeChatService) Ask(_ context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	f.lastReq = request
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

func newTestApp(svc *fakeChatService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewChatController(svc, nopLogger{}).RegisterRoutes(api)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/bot/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestChatHappyPath(t *testing.T) {
	convId := "conv-1"
	score := 1.0
	svc := &fakeChatService{response: &dto.ChatResponse{
		Answer:         "Use the reset link.",
		Sources:        []dto.SourceDocument{{Source: "faq.json::reset", Score: &score}},
		ConversationId: &convId,
		ResponseType:   dto.ResponseTypeText,
		Links:          []dto.LinkItem{},
	}}
	app := newTestApp(svc)

	status, body := postChat(t, app, `{"question": "how do i reset my password", "conversation_id": "conv-1"}`)

	require.Equal(t, fiber.StatusOK, status)

	var res dto.ChatResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "Use the reset link.", res.Answer)
	assert.Equal(t, dto.ResponseTypeText, res.ResponseType)
	require.NotNil(t, res.ConversationId)
	assert.Equal(t, "conv-1", *res.ConversationId)
	assert.Nil(t, res.Action)
	assert.Nil(t, res.FollowUp)
}

func TestChatDefaultsMaxReferences(t *testing.T) {
	svc := &fakeChatService{response: &dto.ChatResponse{}}
	app := newTestApp(svc)

	status, _ := postChat(t, app, `{"question": "hello"}`)

	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, svc.lastReq)
	require.NotNil(t, svc.lastReq.MaxReferences)
	assert.Equal(t, 3, *svc.lastReq.MaxReferences)
}

func TestChatRejectsMissingQuestion(t *testing.T) {
	svc := &fakeChatService{response: &dto.ChatResponse{}}
	app := newTestApp(svc)

	status, _ := postChat(t, app, `{"question": ""}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Nil(t, svc.lastReq)
}

func TestChatRejectsOutOfRangeMaxReferences(t *testing.T) {
	svc := &fakeChatService{response: &dto.ChatResponse{}}
	app := newTestApp(svc)

	// An explicit 0 is out of range too; only an absent field gets the
	// default.
	for _, body := range []string{
		`{"question": "hi", "max_references": 0}`,
		`{"question": "hi", "max_references": 11}`,
		`{"question": "hi", "max_references": -2}`,
	} {
		status, _ := postChat(t, app, body)
		assert.Equal(t, fiber.StatusBadRequest, status, "body: %s", body)
	}
}

func TestChatRejectsInvalidBody(t *testing.T) {
	svc := &fakeChatService{response: &dto.ChatResponse{}}
	app := newTestApp(svc)

	status, _ := postChat(t, app, `{not json`)

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestChatLoadErrorMapsToServiceUnavailable(t *testing.T) {
	svc := &fakeChatService{err: &knowledge.LoadError{Path: "faq.json", Err: errors.New("missing")}}
	app := newTestApp(svc)

	status, _ := postChat(t, app, `{"question": "hi"}`)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestChatMissingCredentialMapsToServiceUnavailable(t *testing.T) {
	svc := &fakeChatService{err: &llm.ConfigurationError{Reason: "OPENAI_API_KEY is not configured"}}
	app := newTestApp(svc)

	status, _ := postChat(t, app, `{"question": "hi"}`)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestChatUnexpectedErrorMapsToInternal(t *testing.T) {
	svc := &fakeChatService{err: errors.New("something odd")}
	app := newTestApp(svc)

	status, body := postChat(t, app, `{"question": "hi"}`)

	require.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, string(body), "Unexpected error while processing the chat request.")
	assert.NotContains(t, string(body), "something odd")
}
