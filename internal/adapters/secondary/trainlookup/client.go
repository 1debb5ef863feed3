package trainlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"train-autofill/internal/config"
	"train-autofill/internal/core/domain"
	ports "train-autofill/internal/core/ports/output"
)

const lookupPath = "/get_train_name"

type trainLookupClient struct {
	baseURL string
	client  *http.Client
}

// NewTrainLookupClient creates a client for the collaborator's /get_train_name endpoint.
// A zero cfg.Timeout leaves requests unbounded; only the caller's context can end them.
func NewTrainLookupClient(cfg *config.LookupConfig) ports.TrainNameClient {
	return &trainLookupClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newTransport(http.DefaultTransport),
		},
	}
}

type trainNameResponse struct {
	TrainName *string `json:"train_name"`
}

func (c *trainLookupClient) LookupTrainName(ctx context.Context, trainNumber string) (*domain.TrainLookup, error) {
	if trainNumber == "" {
		return nil, domain.ErrEmptyTrainNumber
	}

	params := url.Values{}
	params.Set("train_number", trainNumber)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, lookupPath, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d from %s", domain.ErrUnexpectedStatus, resp.StatusCode, lookupPath)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domain.ErrLookupFailed, err)
	}

	// Unmarshal rejects trailing data after the object.
	var body *trainNameResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrLookupFailed, err)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: null response body", domain.ErrLookupFailed)
	}

	result := &domain.TrainLookup{TrainNumber: trainNumber}
	if body.TrainName != nil && *body.TrainName != "" {
		result.TrainName = *body.TrainName
		result.Found = true
	}

	return result, nil
}
