// Package session orchestrates one diagram-generation lifecycle for a
// single repository: cache lookup, cost estimation, the streaming
// generation run, and the follow-up side effects (remote cache write,
// local history, free-tier accounting).
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"

	"github.com/sevigo/repograph/internal/api"
	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/storage"
	"github.com/sevigo/repograph/internal/store"
	"github.com/sevigo/repograph/internal/stream"
)

// Backend is the remote service surface the session drives.
//
//go:generate mockgen -destination=../../mocks/mock_session_backend.go -package=mocks . Backend,Exporter
type Backend interface {
	GenerateStream(ctx context.Context, req api.GenerateRequest, onState func(stream.State)) (stream.State, error)
	EstimateCost(ctx context.Context, req api.GenerateRequest) (string, error)
	CachedDiagram(ctx context.Context, ref core.RepoRef) (*core.CachedDiagram, error)
	StoreDiagram(ctx context.Context, ref core.RepoRef, diagram, explanation string, usedOwnKey bool) error
	LastGenerated(ctx context.Context, ref core.RepoRef) (*time.Time, error)
}

// Exporter renders a diagram's Mermaid source to a PNG file.
type Exporter interface {
	PNG(ctx context.Context, diagram, path string) error
}

// Snapshot is the UI-visible view of the session.
type Snapshot struct {
	State         stream.State
	Cost          string
	LastGenerated *time.Time
	Loading       bool
}

// Session drives the generation lifecycle for one repository. It is not
// safe for concurrent use; callers are expected to disable re-invocation
// while Loading reports true, mirroring how the UI serializes operations.
type Session struct {
	repo    core.RepoRef
	backend Backend
	creds   *store.Credentials
	history storage.Store
	export  Exporter
	logger  *slog.Logger

	onUpdate func(Snapshot)

	state            stream.State
	cost             string
	lastGenerated    *time.Time
	loading          bool
	lastInstructions string
}

// writeClipboard is swapped out in tests; the real implementation talks to
// the system clipboard.
var writeClipboard = clipboard.WriteAll

// New creates a session for the repository. The history store and exporter
// may be nil, which disables local history and PNG export respectively.
func New(repo core.RepoRef, backend Backend, creds *store.Credentials, history storage.Store, export Exporter, logger *slog.Logger) *Session {
	if backend == nil {
		panic("backend cannot be nil")
	}
	if creds == nil {
		panic("credentials cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Session{
		repo:    repo,
		backend: backend,
		creds:   creds,
		history: history,
		export:  export,
		logger:  logger,
		state:   stream.NewState(),
	}
}

// SetOnUpdate registers the callback invoked after every observable state
// change, including each streamed snapshot.
func (s *Session) SetOnUpdate(fn func(Snapshot)) {
	s.onUpdate = fn
}

// Snapshot returns the current UI-visible view.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:         s.state,
		Cost:          s.cost,
		LastGenerated: s.lastGenerated,
		Loading:       s.loading,
	}
}

// Loading reports whether an operation is in flight.
func (s *Session) Loading() bool {
	return s.loading
}

// Repo returns the repository this session targets.
func (s *Session) Repo() core.RepoRef {
	return s.repo
}

func (s *Session) notify() {
	if s.onUpdate != nil {
		s.onUpdate(s.Snapshot())
	}
}

func (s *Session) fail(message string) {
	s.state = stream.State{Status: stream.StatusError, Error: message}
	s.loading = false
	s.notify()
}

// InitialLoad checks the remote cache first; on a hit it populates the
// session and returns without estimating cost or opening a stream. On a
// miss it estimates the cost and runs a generation with empty instructions.
func (s *Session) InitialLoad(ctx context.Context) error {
	s.loading = true
	s.notify()

	cached, err := s.backend.CachedDiagram(ctx, s.repo)
	if err != nil {
		s.logger.Error("cache lookup failed", "repo", s.repo.FullName(), "error", err)
		s.fail("Failed to load diagram. Please try again later.")
		return err
	}

	if cached != nil {
		s.state = stream.State{
			Status:      stream.StatusComplete,
			Explanation: cached.Explanation,
			Diagram:     cached.Diagram,
		}
		s.refreshLastGenerated(ctx)
		s.loading = false
		s.notify()
		return nil
	}

	if err := s.estimateCost(ctx, ""); err != nil {
		return err
	}
	return s.generate(ctx, "")
}

// Modify starts a fresh generation run with the given instructions. There
// is no cache check and no cost pre-check.
func (s *Session) Modify(ctx context.Context, instructions string) error {
	if err := s.guard(instructions); err != nil {
		return err
	}
	return s.generate(ctx, instructions)
}

// Regenerate re-runs cost estimation and then generates with the given
// instructions.
func (s *Session) Regenerate(ctx context.Context, instructions string) error {
	if err := s.guard(instructions); err != nil {
		return err
	}
	if err := s.estimateCost(ctx, instructions); err != nil {
		return err
	}
	return s.generate(ctx, instructions)
}

// SubmitAPIKey persists the user's generation API key and immediately
// starts a generation run with the last-used instructions.
func (s *Session) SubmitAPIKey(ctx context.Context, key string) error {
	if err := s.creds.SetAPIKey(key); err != nil {
		s.logger.Error("failed to persist API key", "error", err)
		s.fail("Failed to save API key.")
		return err
	}
	return s.generate(ctx, s.lastInstructions)
}

// CopyDiagram copies the current diagram text to the system clipboard.
// Failure is logged but never surfaced as an error state.
func (s *Session) CopyDiagram() {
	if s.state.Diagram == "" {
		return
	}
	if err := writeClipboard(s.state.Diagram); err != nil {
		s.logger.Error("failed to copy diagram to clipboard", "error", err)
	}
}

// ExportPNG renders the current diagram to a PNG file. It silently no-ops
// when there is no diagram or no exporter.
func (s *Session) ExportPNG(ctx context.Context, path string) error {
	if s.state.Diagram == "" || s.export == nil {
		return nil
	}
	return s.export.PNG(ctx, s.state.Diagram, path)
}

// guard rejects operations on the designated example repositories and
// over-long instructions before any network traffic.
func (s *Session) guard(instructions string) error {
	if core.IsExampleRepo(s.repo.Repo) {
		s.fail(core.ErrExampleRepo.Error())
		return core.ErrExampleRepo
	}
	if err := core.ValidateInstructions(instructions); err != nil {
		s.fail(err.Error())
		return err
	}
	return nil
}

// estimateCost asks the backend for a price. A backend-reported message
// (repository too large, key required) is surfaced verbatim and blocks
// generation.
func (s *Session) estimateCost(ctx context.Context, instructions string) error {
	req, err := s.request(instructions)
	if err != nil {
		s.fail("Failed to read stored credentials.")
		return err
	}

	cost, err := s.backend.EstimateCost(ctx, req)
	if err != nil {
		if backendErr, ok := err.(*api.BackendError); ok {
			s.fail(backendErr.Message)
		} else {
			s.logger.Error("cost estimation failed", "repo", s.repo.FullName(), "error", err)
			s.fail("Failed to get cost estimate.")
		}
		return err
	}

	s.cost = cost
	s.notify()
	return nil
}

// generate runs one streaming generation. The state is reset at the start
// of the run; every streamed snapshot is pushed through the update
// callback in arrival order.
func (s *Session) generate(ctx context.Context, instructions string) error {
	req, err := s.request(instructions)
	if err != nil {
		s.fail("Failed to read stored credentials.")
		return err
	}

	s.lastInstructions = instructions
	s.state = stream.NewState()
	s.loading = true
	s.notify()

	final, err := s.backend.GenerateStream(ctx, req, func(st stream.State) {
		s.state = st
		s.notify()
	})
	if err != nil {
		s.logger.Error("generation stream failed", "repo", s.repo.FullName(), "error", err)
		s.fail("Failed to generate diagram. Please try again later.")
		return err
	}

	s.state = final
	s.loading = false
	if final.Status == stream.StatusComplete {
		s.completeRun(ctx, req, instructions)
	}
	s.notify()
	return nil
}

// completeRun performs the side effects of a successful generation. None
// of them may fail the run itself; failures are logged and the result the
// user already sees stays intact.
func (s *Session) completeRun(ctx context.Context, req api.GenerateRequest, instructions string) {
	usedOwnKey := req.APIKey != ""

	if err := s.backend.StoreDiagram(ctx, s.repo, s.state.Diagram, s.state.Explanation, usedOwnKey); err != nil {
		s.logger.Error("failed to store diagram in cache", "repo", s.repo.FullName(), "error", err)
	}

	// The timestamp is re-fetched rather than derived from the write: the
	// backend remains the source of truth for when a diagram was generated.
	s.refreshLastGenerated(ctx)

	if s.history != nil {
		gen := &storage.Generation{
			Owner:        s.repo.Owner,
			Repo:         s.repo.Repo,
			Provider:     string(s.repo.Provider),
			Instructions: instructions,
			Cost:         s.cost,
			UsedOwnKey:   usedOwnKey,
			Diagram:      s.state.Diagram,
			Explanation:  s.state.Explanation,
		}
		if err := s.history.SaveGeneration(ctx, gen); err != nil {
			s.logger.Error("failed to record generation history", "repo", s.repo.FullName(), "error", err)
		}
	}

	if !usedOwnKey {
		if err := s.creds.MarkFreeGenerationUsed(); err != nil {
			s.logger.Error("failed to record free generation use", "error", err)
		}
	}
}

func (s *Session) refreshLastGenerated(ctx context.Context) {
	ts, err := s.backend.LastGenerated(ctx, s.repo)
	if err != nil {
		s.logger.Error("failed to fetch last-generated timestamp", "repo", s.repo.FullName(), "error", err)
		return
	}
	s.lastGenerated = ts
}

// request assembles the generation request from the repository reference
// and stored credentials. PATs travel only on this request; the cache
// endpoints never see them.
func (s *Session) request(instructions string) (api.GenerateRequest, error) {
	apiKey, err := s.creds.APIKey()
	if err != nil {
		return api.GenerateRequest{}, fmt.Errorf("failed to read API key: %w", err)
	}

	req := api.GenerateRequest{
		Username:     s.repo.Owner,
		Repo:         s.repo.Repo,
		Provider:     string(s.repo.Provider),
		Instructions: instructions,
		APIKey:       apiKey,
	}

	switch s.repo.Provider {
	case core.ProviderGitHub:
		pat, err := s.creds.PAT(core.ProviderGitHub)
		if err != nil {
			return api.GenerateRequest{}, err
		}
		req.GitHubPAT = pat
	case core.ProviderAzure:
		pat, err := s.creds.PAT(core.ProviderAzure)
		if err != nil {
			return api.GenerateRequest{}, err
		}
		req.AzurePAT = pat
	}

	return req, nil
}
