package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tasksheet/internal/seed"
	"tasksheet/internal/sheet"
)

type (
	Response struct {
		Success bool   `json:"success"`
		Code    string `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
		Data    any    `json:"data,omitempty"`
	}

	TasksResponse struct {
		Total int              `json:"total"`
		Tasks []map[string]any `json:"tasks"`
	}
)

// APIClient fetches a shared seed dataset from a remote tasks endpoint.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// fetches the seed rows from the API
func (c *APIClient) GetSeedRows(ctx context.Context) ([]sheet.Row, error) {
	url := fmt.Sprintf("%s/api/tasks", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var errRes Response
		if err := json.NewDecoder(res.Body).Decode(&errRes); err != nil {
			return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
		}
		return nil, fmt.Errorf("%s", errRes.Message)
	}

	var apiRes Response
	if err := json.NewDecoder(res.Body).Decode(&apiRes); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	if !apiRes.Success {
		return nil, fmt.Errorf("%s", apiRes.Message)
	}

	// Data arrives as a generic map; re-encode it into TasksResponse
	dataJSON, err := json.Marshal(apiRes.Data)
	if err != nil {
		return nil, fmt.Errorf("error re-encoding data: %w", err)
	}

	var tasksRes TasksResponse
	if err := json.Unmarshal(dataJSON, &tasksRes); err != nil {
		return nil, fmt.Errorf("error decoding tasks data: %w", err)
	}

	rows := make([]sheet.Row, 0, len(tasksRes.Tasks))
	for _, task := range tasksRes.Tasks {
		rows = append(rows, seed.FromMap(task))
	}
	return rows, nil
}
