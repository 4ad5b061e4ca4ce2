package speech

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jsphweid/musicability/constants"
)

const DefaultLanguage = "es-CR"

type recognitionResult struct {
	RecognitionStatus string `json:"RecognitionStatus"`
	DisplayText       string `json:"DisplayText"`
}

// Transcribe sends recorded WAV audio to the Azure Speech-to-Text REST API
// and returns the recognized text.
func Transcribe(audio []byte, language string) (string, error) {
	key := constants.GetSpeechKey()
	region := strings.Trim(constants.GetSpeechRegion(), `"`)
	if key == "" || region == "" {
		return "", errors.New("SPEECH_KEY or AZURE_SPEECH_REGION is not set")
	}
	if language == "" {
		language = DefaultLanguage
	}

	url := fmt.Sprintf(
		"https://%v.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1?language=%v&format=detailed",
		region, language)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(audio))
	if err != nil {
		return "", err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", key)
	req.Header.Set("Content-Type", "audio/wav; codecs=audio/pcm; samplerate=48000")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not reach Speech API: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Speech API returned HTTP %v: %v",
			resp.StatusCode, string(body[:min(len(body), 400)]))
	}

	var result recognitionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("could not decode Speech API response: %w", err)
	}
	if result.RecognitionStatus != "Success" {
		return "", fmt.Errorf(
			"could not transcribe audio (status=%v); try speaking more clearly or closer to the microphone",
			result.RecognitionStatus)
	}
	return strings.TrimSpace(result.DisplayText), nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
