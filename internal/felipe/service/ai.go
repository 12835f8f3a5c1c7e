package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wramaba/felipe/internal/felipe/ai"
	"github.com/wramaba/felipe/internal/felipe/domain"
)

const (
	// systemPrompt is the fixed domain instruction sent with every chat
	// query. The generation service receives it alongside the user prompt.
	systemPrompt = `Eres FELIPE, un asistente de IA especializado en derecho penal colombiano. ` +
		`Respondes de manera precisa, citando artículos específicos del Código Penal y ` +
		`Código de Procedimiento Penal colombiano. Siempre incluyes referencias ` +
		`jurisprudenciales relevantes de la Corte Suprema de Justicia y Corte Constitucional.`

	defaultChatModel = "codellama"
	documentModel    = "deepseek"

	// maxDocumentChars bounds the document prefix forwarded for analysis,
	// keeping payload size and generation cost in check.
	maxDocumentChars = 2000

	summaryMaxChars = 200

	// documentConfidence is a placeholder score; the generation service
	// reports no confidence of its own.
	documentConfidence = 85
)

// AIService forwards prompts to the external generation service and relays
// its responses. The collaborator is treated as unreliable: any failure is
// reported as a generic downstream error and nothing is retried.
type AIService struct {
	Client ai.Client
}

// Chat forwards the query with the fixed system instruction and returns the
// generated text verbatim. An empty model falls back to the default.
func (s *AIService) Chat(ctx context.Context, query, model string, queryContext map[string]any) (string, error) {
	if model == "" {
		model = defaultChatModel
	}

	return s.Client.Generate(ctx, ai.GenerateRequest{
		Prompt:  query,
		Model:   model,
		System:  systemPrompt,
		Context: queryContext,
	})
}

// AnalyzeDocument decodes the file as best-effort text (invalid bytes are
// dropped, never rejected), truncates to a bounded prefix and forwards it
// for analysis. The summary is truncated too; confidence is a fixed
// placeholder.
func (s *AIService) AnalyzeDocument(ctx context.Context, data []byte, filename string) (domain.DocumentAnalysis, error) {
	text := strings.ToValidUTF8(string(data), "")
	text = truncate(text, maxDocumentChars)

	response, err := s.Client.Generate(ctx, ai.GenerateRequest{
		Prompt: fmt.Sprintf("Analiza este documento legal: %s...", text),
		Model:  documentModel,
	})
	if err != nil {
		return domain.DocumentAnalysis{}, err
	}

	return domain.DocumentAnalysis{
		Summary:    truncate(response, summaryMaxChars) + "...",
		KeyPoints:  []string{"Documento analizado correctamente"},
		Issues:     []string{},
		Confidence: documentConfidence,
		Filename:   filename,
	}, nil
}

// truncate cuts s to at most n runes without splitting a rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
