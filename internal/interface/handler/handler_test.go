package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
	"github.com/bejranonda/ThaiGov2569/internal/interface/gateway/ai"
	"github.com/bejranonda/ThaiGov2569/internal/usecase"
)

type stubProvider struct{ text string }

func (s *stubProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return s.text, nil
}

func (s *stubProvider) Source() string { return "Gemini (test)" }

func (s *stubProvider) Configured() bool { return true }

type memoryRepo struct {
	records []*entity.SessionRecord
}

func (m *memoryRepo) Create(ctx context.Context, record *entity.SessionRecord) error {
	m.records = append(m.records, record)
	return nil
}

func (m *memoryRepo) CreateLegacy(ctx context.Context, record *entity.SessionRecord) error {
	return nil
}

func (m *memoryRepo) ListRecent(ctx context.Context, limit int) ([]*entity.SessionRecord, error) {
	if len(m.records) > limit {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *memoryRepo) Count(ctx context.Context) (int, error) {
	return len(m.records), nil
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context) (*entity.Aggregate, error) { return nil, nil }

func (noopCache) Set(ctx context.Context, agg *entity.Aggregate) error { return nil }

func (noopCache) Invalidate(ctx context.Context) error { return nil }

func handlerParties() entity.PartyList {
	return entity.PartyList{
		{ID: "ALPHA", Name: "อัลฟา", Seats: 300, Color: "#f00"},
		{ID: "BETA", Name: "เบตา", Seats: 200, Color: "#0f0"},
	}
}

func newTestHandler(repo *memoryRepo) *Handler {
	parties := handlerParties()
	ministries := entity.MinistryList{{ID: "PM", Name: "นายกรัฐมนตรี", Key: "general"}}
	policies := entity.PolicyList{{ID: "p1", Title: "นโยบาย", Party: "ALPHA", Category: "economy"}}

	gateway := ai.NewGateway(&stubProvider{text: "คำตอบ"}, nil)
	prompts := usecase.NewPromptBuilder(parties, ministries, policies)

	askUC := usecase.NewAskQuestionUseCase(gateway, prompts, parties)
	var recordUC *usecase.RecordSessionUseCase
	var aggregateUC *usecase.GetAggregateUseCase
	if repo != nil {
		recordUC = usecase.NewRecordSessionUseCase(repo, noopCache{})
		aggregateUC = usecase.NewGetAggregateUseCase(repo, noopCache{}, time.Second)
	} else {
		recordUC = usecase.NewRecordSessionUseCase(nil, noopCache{})
		aggregateUC = usecase.NewGetAggregateUseCase(nil, noopCache{}, time.Second)
	}
	return NewHandler(askUC, recordUC, aggregateUC)
}

func TestChat(t *testing.T) {
	h := newTestHandler(&memoryRepo{})

	body, _ := json.Marshal(ChatRequest{
		Message:   "ค่าแรงจะขึ้นไหม",
		Coalition: []string{"ALPHA"},
		Cabinet:   map[string]string{"PM": "ALPHA"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp usecase.AskQuestionOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Responses, 2)
	assert.Equal(t, "นายกรัฐมนตรี (อัลฟา)", resp.Responses[0].Sender)
	assert.Equal(t, "วิปฝ่ายค้าน (เบตา)", resp.Responses[1].Sender)
	assert.Equal(t, "MOF", resp.Ministry)
}

func TestChatValidation(t *testing.T) {
	h := newTestHandler(&memoryRepo{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", "{", http.StatusBadRequest},
		{"missing message", `{"coalition":["ALPHA"]}`, http.StatusBadRequest},
		{"missing coalition", `{"message":"สวัสดี"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			h.Chat(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestChatMethodNotAllowed(t *testing.T) {
	h := newTestHandler(&memoryRepo{})
	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStatsRoundTrip(t *testing.T) {
	repo := &memoryRepo{}
	h := newTestHandler(repo)

	record := map[string]interface{}{
		"pm_party":    "ALPHA",
		"coalition":   []string{"ALPHA"},
		"score_total": 72,
		"grade":       "C",
	}
	body, _ := json.Marshal(record)
	req := httptest.NewRequest(http.MethodPost, "/api/stats", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var posted map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posted))
	assert.Equal(t, true, posted["success"])
	assert.NotEmpty(t, posted["sessionId"], "a missing session ID is generated server-side")
	require.Len(t, repo.records, 1)

	req = httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec = httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var agg entity.Aggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &agg))
	assert.Equal(t, 1, agg.TotalGames)
	assert.Equal(t, 1, agg.PMDistribution["ALPHA"])
	assert.Empty(t, agg.Message)
}

func TestStatsPostWithoutStore(t *testing.T) {
	h := newTestHandler(nil)

	body := []byte(`{"pm_party":"ALPHA","coalition":["ALPHA"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/stats", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatsGetWithoutStore(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "reads degrade instead of failing")
	var agg entity.Aggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &agg))
	assert.Equal(t, "DB not connected", agg.Message)
}

func TestHandleCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	rec := httptest.NewRecorder()
	assert.True(t, HandleCORS(rec, req))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	rec = httptest.NewRecorder()
	assert.False(t, HandleCORS(rec, req))
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&memoryRepo{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
