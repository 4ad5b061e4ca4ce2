package foundry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jsphweid/musicability/constants"
	"github.com/jsphweid/musicability/model"
	"github.com/jsphweid/musicability/score"
)

const systemPrompt = `You are an AI-assisted composer focused on musical accessibility.
The user describes a musical idea. You must return ONLY a valid JSON object,
with no extra text, no code blocks, no explanations.

Required schema:
{
  "title": "string",
  "tempo_bpm": int,
  "key": "string",
  "length_bars": int,
  "time_signature": "string",
  "melody": [
    {
      "pitch": "string",
      "start_beat": float,
      "duration_beats": float,
      "velocity": int
    }
  ],
  "assumptions": ["string"]
}

Constraints:
- Note range: C3 to C5 only (pitch like "C4", "D#4", "Bb3").
- Singable melody: avoid consecutive leaps larger than a sixth (9 semitones).
- length_bars at most 8 unless the user asks for more.
- tempo_bpm between 40 and 200. Default 90.
- velocity between 40 and 110. Default 80.
- time_signature default "4/4".
- Return ONLY valid JSON, nothing else.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	// reasoning models spend part of this budget on internal tokens
	MaxCompletionTokens int `json:"max_completion_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// buildURL picks the right chat-completions path for the endpoint flavor:
// classic *.openai.azure.com endpoints route per deployment, AI Foundry
// project endpoints (services.ai.azure.com) use /models/chat/completions.
func buildURL(endpoint, deployment, apiVersion string) (string, error) {
	parsed, err := url.Parse(strings.TrimRight(endpoint, "/"))
	if err != nil || parsed.Host == "" {
		return "", errors.New("FOUNDRY_ENDPOINT is not a valid URL")
	}
	base := parsed.Scheme + "://" + parsed.Host
	if strings.Contains(parsed.Host, "openai.azure.com") {
		return fmt.Sprintf("%v/openai/deployments/%v/chat/completions?api-version=%v",
			base, deployment, apiVersion), nil
	}
	return fmt.Sprintf("%v/models/chat/completions?api-version=%v", base, apiVersion), nil
}

// GenerateScore asks the model to turn a free-text musical instruction into a
// validated MusicScore.
func GenerateScore(userText string) (model.MusicScore, error) {
	var blank model.MusicScore

	apiKey := constants.GetFoundryAPIKey()
	endpoint := constants.GetFoundryEndpoint()
	deployment := constants.GetModelDeployment()
	if apiKey == "" || endpoint == "" || deployment == "" {
		return blank, errors.New(
			"FOUNDRY_API_KEY, FOUNDRY_ENDPOINT or MODEL_DEPLOYMENT_NAME is not set")
	}

	reqURL, err := buildURL(endpoint, deployment, constants.GetFoundryAPIVersion())
	if err != nil {
		return blank, err
	}

	payload, err := json.Marshal(chatRequest{
		Model: constants.GetModelName(),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		MaxCompletionTokens: 16000,
	})
	if err != nil {
		return blank, err
	}

	req, err := http.NewRequest(http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return blank, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", apiKey)

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return blank, fmt.Errorf("could not reach Foundry: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return blank, fmt.Errorf("Foundry returned HTTP %v: %v",
			resp.StatusCode, truncate(string(body), 400))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return blank, fmt.Errorf("could not decode Foundry response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return blank, errors.New("Foundry response has no choices")
	}

	choice := parsed.Choices[0]
	if strings.TrimSpace(choice.Message.Content) == "" {
		// reasoning models can burn the whole token budget before emitting
		// any visible content
		return blank, fmt.Errorf(
			"model produced no content (finish_reason=%q); try a shorter instruction",
			choice.FinishReason)
	}

	clean := score.CleanResponse(choice.Message.Content)
	s, err := score.Parse([]byte(clean))
	if err != nil {
		return blank, fmt.Errorf("model did not return a usable score: %w", err)
	}
	return s, nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
