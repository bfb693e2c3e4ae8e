package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"fleetshare/internal/entities"
	apperrors "fleetshare/internal/errors"
)

const (
	assistantModel    = "gemini-2.5-flash"
	assistantEndpoint = "https://generativelanguage.googleapis.com"

	// User-visible fallbacks. The assistant fails open: whatever goes
	// wrong, the chat keeps working for the next question.
	answerMissingKey = "API Key não configurada. Por favor, verifique a configuração."
	answerEmpty      = "Desculpe, não consegui processar sua solicitação."
	answerError      = "Ocorreu um erro ao consultar o assistente inteligente."
)

// AssistantService forwards schedule questions to the Gemini API together
// with a snapshot of the roster and booking list. It holds no logic beyond
// shaping that context into the prompt.
type AssistantService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewAssistantService(apiKey string) *AssistantService {
	return &AssistantService{
		apiKey:   apiKey,
		endpoint: assistantEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type generateContentRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask answers one free-text question about the schedule. Failures degrade
// to a fixed fallback string and are never propagated.
func (s *AssistantService) Ask(ctx context.Context, question string, roster []entities.Vehicle, bookings []entities.Booking) string {
	if s.apiKey == "" {
		logrus.Warn("GEMINI_API_KEY not set, assistant is disabled")
		return answerMissingKey
	}

	prompt, err := buildFleetPrompt(time.Now(), roster, bookings)
	if err != nil {
		logrus.Errorf("%v", &apperrors.AssistantError{Reason: "building prompt", Err: err})
		return answerError
	}

	answer, err := s.generateContent(ctx, prompt, question)
	if err != nil {
		logrus.Errorf("%v", err)
		return answerError
	}
	if answer == "" {
		return answerEmpty
	}
	return answer
}

func (s *AssistantService) generateContent(ctx context.Context, systemPrompt, question string) (string, error) {
	reqBody := generateContentRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Contents:          []content{{Parts: []part{{Text: question}}}},
		// Low temperature for factual accuracy about the schedule.
		GenerationConfig: &generationConfig{Temperature: 0.3},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &apperrors.AssistantError{Reason: "encoding request", Err: err}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.endpoint, assistantModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", &apperrors.AssistantError{Reason: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &apperrors.AssistantError{Reason: "calling model", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperrors.AssistantError{Reason: "reading response", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &apperrors.AssistantError{Reason: fmt.Sprintf("model returned status %d: %s", resp.StatusCode, body)}
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &apperrors.AssistantError{Reason: "decoding response", Err: err}
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// buildFleetPrompt serializes the current state into the FleetAI system
// prompt. The booking list goes in verbatim, store order, no deduplication.
func buildFleetPrompt(now time.Time, roster []entities.Vehicle, bookings []entities.Booking) (string, error) {
	type fleetEntry struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Plate string `json:"plate"`
	}
	entries := make([]fleetEntry, 0, len(roster))
	for _, v := range roster {
		entries = append(entries, fleetEntry{ID: v.ID, Name: v.Name, Plate: v.Plate})
	}
	fleetJSON, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	if bookings == nil {
		bookings = []entities.Booking{}
	}
	bookingsJSON, err := json.Marshal(bookings)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Você é um assistente inteligente de gestão de frota chamado "FleetAI".

Dados Atuais:
- Data de hoje: %s
- Frota: %s
- Agendamentos existentes: %s

Instruções:
1. Responda perguntas sobre disponibilidade de veículos, quem está indo para onde, e conflitos de agenda.
2. Seja conciso e útil.
3. Se alguém perguntar sobre "carona" ou "compartilhar", identifique agendamentos para o mesmo destino.
4. Formate a resposta em Markdown simples.
5. Se não souber a resposta, diga que não encontrou a informação nos dados atuais.`,
		now.Format(time.DateOnly), fleetJSON, bookingsJSON), nil
}
