package essay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OracleVerdict is the oracle's classification of a prompt.
type OracleVerdict struct {
	Label string  // e.g. "POSITIVE"
	Score float64 // model confidence, 0..1
}

// Oracle is an external best-effort scoring service. Any error from Score
// triggers the local fallback; it must never fail the overall analysis.
type Oracle interface {
	Score(ctx context.Context, prompt string) (OracleVerdict, error)
}

// defaultInferenceURL targets the Indonesian BERT model on the Hugging Face
// inference API.
const defaultInferenceURL = "https://api-inference.huggingface.co/models/indonesian-nlp/indobert-base-p1"

// HuggingFaceClient calls the hosted inference API with a bearer credential.
type HuggingFaceClient struct {
	url    string
	apiKey string
	hc     *http.Client
}

func NewHuggingFaceClient(url, apiKey string) *HuggingFaceClient {
	if url == "" {
		url = defaultInferenceURL
	}
	return &HuggingFaceClient{
		url:    url,
		apiKey: apiKey,
		hc:     &http.Client{Timeout: 30 * time.Second},
	}
}

type inferenceCandidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *HuggingFaceClient) Score(ctx context.Context, prompt string) (OracleVerdict, error) {
	body, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return OracleVerdict{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return OracleVerdict{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return OracleVerdict{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return OracleVerdict{}, fmt.Errorf("inference API status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return OracleVerdict{}, err
	}
	return parseInference(data)
}

// parseInference accepts both response shapes the API produces: a list of
// candidates, or a list of lists of candidates.
func parseInference(data []byte) (OracleVerdict, error) {
	var nested [][]inferenceCandidate
	if err := json.Unmarshal(data, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return OracleVerdict{Label: nested[0][0].Label, Score: nested[0][0].Score}, nil
	}
	var flat []inferenceCandidate
	if err := json.Unmarshal(data, &flat); err == nil && len(flat) > 0 {
		return OracleVerdict{Label: flat[0].Label, Score: flat[0].Score}, nil
	}
	return OracleVerdict{}, fmt.Errorf("unexpected inference response: %s", truncate(data, 200))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
