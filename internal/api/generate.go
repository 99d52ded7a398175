package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sevigo/repograph/internal/stream"
)

// GenerateRequest is the body of both the streaming generation call and the
// cost estimate. Credentials travel only to the generation service, never to
// the cache endpoints.
type GenerateRequest struct {
	Username     string `json:"username"`
	Repo         string `json:"repo"`
	Provider     string `json:"provider"`
	Instructions string `json:"instructions"`
	APIKey       string `json:"api_key,omitempty"`
	GitHubPAT    string `json:"github_pat,omitempty"`
	AzurePAT     string `json:"azure_pat,omitempty"`
}

// GenerateStream opens the streaming generation endpoint and folds the
// event stream into successive state snapshots, invoking onState for each
// one in arrival order. It returns the final state, which is terminal on a
// clean run. Reading stops at the first terminal state; the response body
// is released exactly once on every path out of the loop.
//
// A transport failure or non-success status before streaming begins is a
// start failure: the error is returned and onState is never called.
func (c *Client) GenerateStream(ctx context.Context, genReq GenerateRequest, onState func(stream.State)) (stream.State, error) {
	payload, err := json.Marshal(genReq)
	if err != nil {
		return stream.NewState(), fmt.Errorf("failed to encode generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate/stream", bytes.NewReader(payload))
	if err != nil {
		return stream.NewState(), fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return stream.NewState(), fmt.Errorf("failed to start generation stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return stream.NewState(), fmt.Errorf("failed to start generation stream: status %d", resp.StatusCode)
	}

	c.logger.Debug("generation stream opened", "repo", genReq.Username+"/"+genReq.Repo)

	dec := stream.NewDecoder(resp.Body, c.logger)
	state := stream.NewState()
	for {
		ev, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return state, fmt.Errorf("generation stream read failed: %w", err)
		}

		state = stream.Reduce(state, ev)
		if onState != nil {
			onState(state)
		}
		if state.Terminal() {
			break
		}
	}
	return state, nil
}
