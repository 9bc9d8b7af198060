package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"veracity/internal/evidence/providers"
)

// HuggingFaceID names the zero-shot inference backend.
const HuggingFaceID = "huggingface"

const maxResponseBytes = 1 << 20

// HuggingFace calls a hosted zero-shot classification model.
type HuggingFace struct {
	url        string
	token      string
	hypothesis string
	httpClient *http.Client
	retry      providers.RetryPolicy
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels    []string `json:"candidate_labels"`
	HypothesisTemplate string   `json:"hypothesis_template"`
}

// NewHuggingFace builds the zero-shot client from cfg.
func NewHuggingFace(cfg Config) *HuggingFace {
	return &HuggingFace{
		url:        cfg.URL,
		token:      cfg.Token,
		hypothesis: cfg.HypothesisTemplate,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retry:      cfg.Retry,
	}
}

func (h *HuggingFace) ID() string { return HuggingFaceID }

// FakeProbability asks the model to choose between "fake" and "real".
func (h *HuggingFace) FakeProbability(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(zeroShotRequest{
		Inputs: text,
		Parameters: zeroShotParameters{
			CandidateLabels:    []string{LabelFake, LabelReal},
			HypothesisTemplate: h.hypothesis,
		},
	})
	if err != nil {
		return 0, providers.NewProviderError(providers.ErrorInternal, HuggingFaceID, "encode request", err)
	}

	var score float64
	err = h.retry.Do(ctx, func(ctx context.Context) error {
		out, err := h.post(ctx, body)
		if err != nil {
			return err
		}
		score, err = ParseScores(HuggingFaceID, out.Labels, out.Scores)
		return err
	})
	return score, err
}

func (h *HuggingFace) post(ctx context.Context, body []byte) (zeroShotOutput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return zeroShotOutput{}, providers.NewProviderError(providers.ErrorInternal, HuggingFaceID, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return zeroShotOutput{}, providers.FromTransport(HuggingFaceID, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return zeroShotOutput{}, providers.FromTransport(HuggingFaceID, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zeroShotOutput{}, providers.FromStatus(HuggingFaceID, resp.StatusCode)
	}

	return decodeZeroShot(raw)
}

// decodeZeroShot accepts {labels, scores}, a list of {label, score} pairs,
// or a single-element list wrapping the first shape.
func decodeZeroShot(raw []byte) (zeroShotOutput, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return zeroShotOutput{}, providers.NewProviderError(providers.ErrorBadData, HuggingFaceID, "empty response", nil)
	}

	if raw[0] == '{' {
		var out zeroShotOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return zeroShotOutput{}, badData(err)
		}
		return out, nil
	}

	var pairs []labelScore
	if err := json.Unmarshal(raw, &pairs); err == nil && hasLabel(pairs) {
		return fromPairs(pairs), nil
	}

	var wrapped []zeroShotOutput
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return zeroShotOutput{}, badData(err)
	}
	if len(wrapped) == 0 {
		return zeroShotOutput{}, providers.NewProviderError(providers.ErrorBadData, HuggingFaceID, "empty result list", nil)
	}
	return wrapped[0], nil
}

func hasLabel(pairs []labelScore) bool {
	for _, p := range pairs {
		if p.Label != "" {
			return true
		}
	}
	return false
}

func badData(err error) error {
	return providers.NewProviderError(providers.ErrorBadData, HuggingFaceID, fmt.Sprintf("decode response: %v", err), err)
}
