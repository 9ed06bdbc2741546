package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeRetriever struct {
	content []string
	queries []string
	topics  []string
}

func (f *fakeRetriever) Retrieve(_ context.Context, query, topic string, _ int) []string {
	f.queries = append(f.queries, query)
	f.topics = append(f.topics, topic)
	return f.content
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Session{}, &Message{}))
	require.NoError(t, db.Exec(`CREATE TABLE quiz_sessions (id text PRIMARY KEY, topic text, difficulty text,
		total_questions integer, correct_answers integer, created_at datetime)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE quiz_answers (id integer PRIMARY KEY, session_id text,
		is_correct boolean, created_at datetime)`).Error)
	return db
}

type fixture struct {
	db        *gorm.DB
	repo      Repository
	retriever *fakeRetriever
	llm       *llm.MockProvider
	router    http.Handler
}

func newFixture(t *testing.T, generations ...llm.MockResult) *fixture {
	db := setupDB(t)
	f := &fixture{
		db:        db,
		repo:      NewRepository(db),
		retriever: &fakeRetriever{},
		llm:       llm.NewMockProvider(generations...),
	}
	svc := NewService(
		f.repo,
		f.retriever,
		adaptive.NewLoader(adaptive.NewRepository(db)),
		adaptive.NewComposer(adaptive.DefaultPolicy()),
		f.llm,
		llm.Request{Temperature: 0.7, TopP: 0.9},
	)
	r := chi.NewRouter()
	r.Mount("/api/chat", Routes(NewHandler(svc)))
	f.router = r
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestSendMessage_NewSession(t *testing.T) {
	f := newFixture(t, llm.MockResult{Text: "What do you think the degree is?"})
	f.retriever.content = []string{"The degree of a polynomial is its highest power."}

	rec := f.do(t, http.MethodPost, "/api/chat", map[string]string{
		"message": "What is the degree of 3x^2 + 1?",
		"topic":   "Polynomials",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEqual(t, uuid.Nil, resp.SessionID)
	assert.Equal(t, "What do you think the degree is?", resp.Response)
	assert.True(t, resp.RelevantContentUsed)

	require.Len(t, f.llm.Prompts, 1)
	prompt := f.llm.Prompts[0]
	assert.Contains(t, prompt, "[Content 1]: The degree of a polynomial is its highest power.")
	assert.Contains(t, prompt, "Student: What is the degree of 3x^2 + 1?")
	assert.Contains(t, prompt, "Student Question: What is the degree of 3x^2 + 1?\n\nTutor Response:")

	sess, err := f.repo.FindByID(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, sess.MessageCount)
	assert.Equal(t, "Polynomials", sess.Topic)
}

func TestSendMessage_ReusesSessionAndHistory(t *testing.T) {
	f := newFixture(t, llm.MockResult{Text: "first"}, llm.MockResult{Text: "second"})

	rec := f.do(t, http.MethodPost, "/api/chat", map[string]string{"message": "hello", "topic": "Polynomials"})
	require.Equal(t, http.StatusOK, rec.Code)
	var first MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&first))
	assert.False(t, first.RelevantContentUsed)

	rec = f.do(t, http.MethodPost, "/api/chat", map[string]interface{}{
		"message":   "and then?",
		"topic":     "Polynomials",
		"sessionId": first.SessionID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, f.llm.Prompts[1], "Student: hello\nTutor: first\nStudent: and then?")

	rec = f.do(t, http.MethodGet, "/api/chat/history/"+first.SessionID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var history HistoryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&history))
	require.Len(t, history.Messages, 4)
	assert.Equal(t, RoleUser, history.Messages[0].Role)
	assert.Equal(t, "hello", history.Messages[0].Content)
	assert.Equal(t, RoleAssistant, history.Messages[3].Role)
	assert.Equal(t, "second", history.Messages[3].Content)

	sess, err := f.repo.FindByID(context.Background(), first.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 4, sess.MessageCount)
}

func TestSendMessage_ReusedSessionKeepsItsTopic(t *testing.T) {
	f := newFixture(t, llm.MockResult{Text: "first"}, llm.MockResult{Text: "second"})

	rec := f.do(t, http.MethodPost, "/api/chat", map[string]string{"message": "hello", "topic": "Polynomials"})
	require.Equal(t, http.StatusOK, rec.Code)
	var first MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&first))

	rec = f.do(t, http.MethodPost, "/api/chat", map[string]interface{}{
		"message":   "and then?",
		"topic":     "Probability",
		"sessionId": first.SessionID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"Polynomials", "Polynomials"}, f.retriever.topics)
	assert.NotContains(t, f.llm.Prompts[1], "Probability")
}

func TestSendMessage_UnknownSession(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/chat", map[string]interface{}{
		"message":   "hello",
		"topic":     "Polynomials",
		"sessionId": uuid.New(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Chat session not found"}`, rec.Body.String())
	assert.Empty(t, f.llm.Prompts)
}

func TestSendMessage_Validation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/chat", map[string]string{"topic": "Polynomials"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString("{not json"))
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_GenerationFailure(t *testing.T) {
	f := newFixture(t, llm.MockResult{Err: errors.New("model offline")})

	rec := f.do(t, http.MethodPost, "/api/chat", map[string]string{"message": "hello", "topic": "Polynomials"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to process message"}`, rec.Body.String())

	var sessions []Session
	require.NoError(t, f.db.Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].MessageCount)
}

func TestHistory_Errors(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/chat/history/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/chat/history/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRepository_AppendMessageUnknownSession(t *testing.T) {
	repo := NewRepository(setupDB(t))

	err := repo.AppendMessage(context.Background(), &Message{SessionID: uuid.New(), Role: RoleUser, Content: "x"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
