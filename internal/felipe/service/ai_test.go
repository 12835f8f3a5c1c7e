package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wramaba/felipe/internal/felipe/ai"
)

// fakeClient records the last request and returns a canned answer.
type fakeClient struct {
	lastReq ai.GenerateRequest
	answer  string
	err     error
}

func (f *fakeClient) Generate(_ context.Context, req ai.GenerateRequest) (string, error) {
	f.lastReq = req
	return f.answer, f.err
}

func TestChatForwardsQuery(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{answer: "El artículo 239 del Código Penal..."}
	svc := &AIService{Client: client}

	queryContext := map[string]any{"case_number": "FIS-2026-001"}
	response, err := svc.Chat(ctx, "¿Qué es el hurto?", "", queryContext)
	require.NoError(t, err)
	require.Equal(t, "El artículo 239 del Código Penal...", response)

	require.Equal(t, "¿Qué es el hurto?", client.lastReq.Prompt)
	require.Equal(t, defaultChatModel, client.lastReq.Model)
	require.Equal(t, systemPrompt, client.lastReq.System)
	require.Equal(t, queryContext, client.lastReq.Context)
}

func TestChatHonorsModelOverride(t *testing.T) {
	client := &fakeClient{answer: "ok"}
	svc := &AIService{Client: client}

	_, err := svc.Chat(context.Background(), "consulta", "mistral", nil)
	require.NoError(t, err)
	require.Equal(t, "mistral", client.lastReq.Model)
}

func TestChatPropagatesDownstreamError(t *testing.T) {
	client := &fakeClient{err: ai.ErrUnavailable}
	svc := &AIService{Client: client}

	_, err := svc.Chat(context.Background(), "consulta", "", nil)
	require.ErrorIs(t, err, ai.ErrUnavailable)
}

func TestAnalyzeDocumentTruncatesInput(t *testing.T) {
	client := &fakeClient{answer: "Resumen del documento"}
	svc := &AIService{Client: client}

	doc := []byte(strings.Repeat("a", maxDocumentChars+500))
	analysis, err := svc.AnalyzeDocument(context.Background(), doc, "denuncia.txt")
	require.NoError(t, err)

	require.Equal(t, documentModel, client.lastReq.Model)
	require.Contains(t, client.lastReq.Prompt, strings.Repeat("a", maxDocumentChars))
	require.NotContains(t, client.lastReq.Prompt, strings.Repeat("a", maxDocumentChars+1))

	require.Equal(t, "Resumen del documento...", analysis.Summary)
	require.Equal(t, documentConfidence, analysis.Confidence)
	require.Equal(t, "denuncia.txt", analysis.Filename)
	require.NotEmpty(t, analysis.KeyPoints)
	require.NotNil(t, analysis.Issues)
}

func TestAnalyzeDocumentDropsInvalidUTF8(t *testing.T) {
	client := &fakeClient{answer: "ok"}
	svc := &AIService{Client: client}

	doc := []byte{'h', 'o', 'l', 0xff, 'a'}
	_, err := svc.AnalyzeDocument(context.Background(), doc, "raw.bin")
	require.NoError(t, err)
	require.Contains(t, client.lastReq.Prompt, "hola")
}

func TestAnalyzeDocumentTruncatesLongSummary(t *testing.T) {
	client := &fakeClient{answer: strings.Repeat("x", summaryMaxChars*2)}
	svc := &AIService{Client: client}

	analysis, err := svc.AnalyzeDocument(context.Background(), []byte("texto"), "doc.txt")
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("x", summaryMaxChars)+"...", analysis.Summary)
}

func TestAnalyzeDocumentPropagatesDownstreamError(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	svc := &AIService{Client: client}

	_, err := svc.AnalyzeDocument(context.Background(), []byte("texto"), "doc.txt")
	require.Error(t, err)
}
