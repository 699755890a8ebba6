// Package anilist is a lightweight client for the AniList GraphQL API.
// It covers the handful of queries the app needs: title search,
// trending titles, and full media lookups for library refreshes.
package anilist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"anicouch/internal/constants"
)

// Client is a lightweight HTTP client for the AniList GraphQL API.
// The token is optional; all queries the app uses work anonymously.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient creates a new AniList client. An empty token is fine for
// read-only use.
func NewClient(token string) *Client {
	return &Client{
		endpoint: constants.AniListGraphQLURL,
		token:    token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// query posts a GraphQL document and decodes the data field into dst.
func (c *Client) query(doc string, vars map[string]any, dst interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: doc, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequest("POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("API error: %s", envelope.Errors[0].Message)
	}
	return json.Unmarshal(envelope.Data, dst)
}
