package api

import (
	"context"
	"fmt"
	"time"

	"github.com/sevigo/repograph/internal/core"
)

// cachedDiagramResponse is the wire shape of a cache hit.
type cachedDiagramResponse struct {
	Diagram     string     `json:"diagram"`
	Explanation string     `json:"explanation"`
	UsedOwnKey  bool       `json:"used_own_key"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type storeDiagramRequest struct {
	Diagram     string `json:"diagram"`
	Explanation string `json:"explanation"`
	UsedOwnKey  bool   `json:"used_own_key"`
}

type lastGeneratedResponse struct {
	LastGenerated *time.Time `json:"last_generated"`
}

func cachePath(ref core.RepoRef) string {
	return fmt.Sprintf("/cache/%s/%s/%s", ref.Provider, ref.Owner, ref.Repo)
}

// CachedDiagram fetches a previously generated diagram for the repository.
// A miss is a normal outcome and returns nil, nil.
func (c *Client) CachedDiagram(ctx context.Context, ref core.RepoRef) (*core.CachedDiagram, error) {
	var resp cachedDiagramResponse
	found, err := c.getJSON(ctx, cachePath(ref), &resp)
	if err != nil {
		return nil, fmt.Errorf("cache lookup for %s failed: %w", ref.FullName(), err)
	}
	if !found {
		return nil, nil
	}
	return &core.CachedDiagram{
		Diagram:     resp.Diagram,
		Explanation: resp.Explanation,
		UsedOwnKey:  resp.UsedOwnKey,
		UpdatedAt:   resp.UpdatedAt,
	}, nil
}

// StoreDiagram writes a freshly generated result to the remote cache,
// tagged with whether a user-supplied API key paid for the run.
func (c *Client) StoreDiagram(ctx context.Context, ref core.RepoRef, diagram, explanation string, usedOwnKey bool) error {
	body := storeDiagramRequest{Diagram: diagram, Explanation: explanation, UsedOwnKey: usedOwnKey}
	if err := c.postJSON(ctx, cachePath(ref), body, nil); err != nil {
		return fmt.Errorf("cache store for %s failed: %w", ref.FullName(), err)
	}
	return nil
}

// LastGenerated returns when the repository's diagram was last generated,
// or nil, nil if the backend has no record of it.
func (c *Client) LastGenerated(ctx context.Context, ref core.RepoRef) (*time.Time, error) {
	var resp lastGeneratedResponse
	found, err := c.getJSON(ctx, cachePath(ref)+"/last-generated", &resp)
	if err != nil {
		return nil, fmt.Errorf("last-generated lookup for %s failed: %w", ref.FullName(), err)
	}
	if !found {
		return nil, nil
	}
	return resp.LastGenerated, nil
}
