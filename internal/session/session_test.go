package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/repograph/internal/api"
	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/storage"
	"github.com/sevigo/repograph/internal/store"
	"github.com/sevigo/repograph/internal/stream"
	"github.com/sevigo/repograph/mocks"
)

var testRepo = core.RepoRef{Owner: "sevigo", Repo: "repograph", Provider: core.ProviderGitHub}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T, repo core.RepoRef) (*Session, *mocks.MockBackend, *store.Credentials) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	creds := store.NewCredentials(store.NewMemory())
	s := New(repo, backend, creds, nil, nil, testLogger())
	return s, backend, creds
}

// playStream makes the mocked backend replay the given events through the
// reducer, exactly as the real client does.
func playStream(events []stream.Event) func(context.Context, api.GenerateRequest, func(stream.State)) (stream.State, error) {
	return func(_ context.Context, _ api.GenerateRequest, onState func(stream.State)) (stream.State, error) {
		st := stream.NewState()
		for _, ev := range events {
			st = stream.Reduce(st, ev)
			if onState != nil {
				onState(st)
			}
			if st.Terminal() {
				break
			}
		}
		return st, nil
	}
}

func TestInitialLoad_CacheHitShortCircuits(t *testing.T) {
	s, backend, _ := newTestSession(t, testRepo)

	ts := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	backend.EXPECT().CachedDiagram(gomock.Any(), testRepo).
		Return(&core.CachedDiagram{Diagram: "graph TD;", Explanation: "cached"}, nil)
	backend.EXPECT().LastGenerated(gomock.Any(), testRepo).Return(&ts, nil)
	// No EstimateCost, no GenerateStream: a cache hit never touches them.

	require.NoError(t, s.InitialLoad(context.Background()))

	snap := s.Snapshot()
	assert.Equal(t, stream.StatusComplete, snap.State.Status)
	assert.Equal(t, "graph TD;", snap.State.Diagram)
	assert.Equal(t, "cached", snap.State.Explanation)
	require.NotNil(t, snap.LastGenerated)
	assert.True(t, snap.LastGenerated.Equal(ts))
	assert.False(t, snap.Loading)
}

func TestInitialLoad_CacheMissGeneratesAndStoresOnce(t *testing.T) {
	s, backend, creds := newTestSession(t, testRepo)

	backend.EXPECT().CachedDiagram(gomock.Any(), testRepo).Return(nil, nil)
	backend.EXPECT().EstimateCost(gomock.Any(), gomock.Any()).Return("$0.04 USD", nil)
	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(playStream([]stream.Event{
		{Status: stream.StatusStarted},
		{Status: stream.StatusExplanationChunk, Chunk: "Hello "},
		{Status: stream.StatusExplanationChunk, Chunk: "world"},
		{Status: stream.StatusComplete, Explanation: "Hello world", Diagram: "graph TD;A-->B;"},
	}))
	backend.EXPECT().StoreDiagram(gomock.Any(), testRepo, "graph TD;A-->B;", "Hello world", false).Return(nil).Times(1)
	backend.EXPECT().LastGenerated(gomock.Any(), testRepo).Return(nil, nil)

	require.NoError(t, s.InitialLoad(context.Background()))

	snap := s.Snapshot()
	assert.Equal(t, stream.StatusComplete, snap.State.Status)
	assert.Equal(t, "Hello world", snap.State.Explanation)
	assert.Equal(t, "graph TD;A-->B;", snap.State.Diagram)
	assert.Equal(t, "$0.04 USD", snap.Cost)

	used, err := creds.HasUsedFreeGeneration()
	require.NoError(t, err)
	assert.True(t, used, "generating without a personal key consumes the free tier")
}

func TestInitialLoad_CostErrorBlocksGeneration(t *testing.T) {
	s, backend, _ := newTestSession(t, testRepo)

	backend.EXPECT().CachedDiagram(gomock.Any(), testRepo).Return(nil, nil)
	backend.EXPECT().EstimateCost(gomock.Any(), gomock.Any()).
		Return("", &api.BackendError{Message: "repository too large"})
	// GenerateStream must never be called.

	err := s.InitialLoad(context.Background())
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, stream.StatusError, snap.State.Status)
	assert.Equal(t, "repository too large", snap.State.Error)
}

func TestModify_ExampleRepoRejectedWithoutNetwork(t *testing.T) {
	ref := core.RepoRef{Owner: "tiangolo", Repo: "fastapi", Provider: core.ProviderGitHub}
	s, _, _ := newTestSession(t, ref)

	err := s.Modify(context.Background(), "add more detail")
	assert.ErrorIs(t, err, core.ErrExampleRepo)
	assert.Equal(t, stream.StatusError, s.Snapshot().State.Status)
	assert.Equal(t, core.ErrExampleRepo.Error(), s.Snapshot().State.Error)
}

func TestRegenerate_ExampleRepoRejectedWithoutNetwork(t *testing.T) {
	ref := core.RepoRef{Owner: "monkeytypegame", Repo: "monkeytype", Provider: core.ProviderGitHub}
	s, _, _ := newTestSession(t, ref)

	err := s.Regenerate(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrExampleRepo)
}

func TestModify_SkipsCacheAndCostCheck(t *testing.T) {
	s, backend, _ := newTestSession(t, testRepo)

	var gotReq api.GenerateRequest
	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req api.GenerateRequest, onState func(stream.State)) (stream.State, error) {
			gotReq = req
			return playStream([]stream.Event{
				{Status: stream.StatusComplete, Explanation: "exp", Diagram: "graph TD;"},
			})(ctx, req, onState)
		})
	backend.EXPECT().StoreDiagram(gomock.Any(), testRepo, "graph TD;", "exp", false).Return(nil)
	backend.EXPECT().LastGenerated(gomock.Any(), testRepo).Return(nil, nil)

	require.NoError(t, s.Modify(context.Background(), "focus on the parser"))
	assert.Equal(t, "focus on the parser", gotReq.Instructions)
}

func TestGenerate_ErrorEventIsTerminal(t *testing.T) {
	s, backend, _ := newTestSession(t, testRepo)

	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(playStream([]stream.Event{
		{Status: stream.StatusStarted},
		{Error: "Invalid or unclear instructions provided"},
	}))
	// No StoreDiagram, no LastGenerated: a failed run has no side effects.

	require.NoError(t, s.Modify(context.Background(), "gibberish"))

	snap := s.Snapshot()
	assert.Equal(t, stream.StatusError, snap.State.Status)
	assert.Equal(t, "Invalid or unclear instructions provided", snap.State.Error)
	assert.False(t, snap.Loading)
}

func TestGenerate_StartFailureSurfacesGenericError(t *testing.T) {
	s, backend, _ := newTestSession(t, testRepo)

	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(stream.NewState(), errors.New("dial tcp: connection refused"))

	err := s.Modify(context.Background(), "")
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, stream.StatusError, snap.State.Status)
	assert.NotContains(t, snap.State.Error, "dial tcp", "transport detail is logged, not shown")
}

func TestRegenerate_RunsCostEstimateFirst(t *testing.T) {
	s, backend, _ := newTestSession(t, testRepo)

	gomock.InOrder(
		backend.EXPECT().EstimateCost(gomock.Any(), gomock.Any()).Return("$0.09 USD", nil),
		backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(playStream([]stream.Event{
			{Status: stream.StatusComplete, Explanation: "exp", Diagram: "graph TD;"},
		})),
	)
	backend.EXPECT().StoreDiagram(gomock.Any(), testRepo, gomock.Any(), gomock.Any(), false).Return(nil)
	backend.EXPECT().LastGenerated(gomock.Any(), testRepo).Return(nil, nil)

	require.NoError(t, s.Regenerate(context.Background(), ""))
	assert.Equal(t, "$0.09 USD", s.Snapshot().Cost)
}

func TestSubmitAPIKey_PersistsAndRegeneratesWithOwnKey(t *testing.T) {
	s, backend, creds := newTestSession(t, testRepo)

	var gotReq api.GenerateRequest
	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req api.GenerateRequest, onState func(stream.State)) (stream.State, error) {
			gotReq = req
			return playStream([]stream.Event{
				{Status: stream.StatusComplete, Explanation: "exp", Diagram: "graph TD;"},
			})(ctx, req, onState)
		})
	backend.EXPECT().StoreDiagram(gomock.Any(), testRepo, "graph TD;", "exp", true).Return(nil)
	backend.EXPECT().LastGenerated(gomock.Any(), testRepo).Return(nil, nil)

	require.NoError(t, s.SubmitAPIKey(context.Background(), "sk-user"))

	assert.Equal(t, "sk-user", gotReq.APIKey)
	stored, err := creds.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-user", stored)

	used, err := creds.HasUsedFreeGeneration()
	require.NoError(t, err)
	assert.False(t, used, "a run on a personal key does not consume the free tier")
}

func TestGenerate_SendsStoredPAT(t *testing.T) {
	s, backend, creds := newTestSession(t, testRepo)
	require.NoError(t, creds.SetPAT(core.ProviderGitHub, "ghp_secret"))

	var gotReq api.GenerateRequest
	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req api.GenerateRequest, onState func(stream.State)) (stream.State, error) {
			gotReq = req
			return playStream([]stream.Event{{Error: "nope"}})(ctx, req, onState)
		})

	require.NoError(t, s.Modify(context.Background(), ""))
	assert.Equal(t, "ghp_secret", gotReq.GitHubPAT)
	assert.Empty(t, gotReq.AzurePAT)
}

func TestOnUpdate_SeesSnapshotsInArrivalOrder(t *testing.T) {
	s, backend, _ := newTestSession(t, testRepo)

	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(playStream([]stream.Event{
		{Status: stream.StatusStarted},
		{Status: stream.StatusExplanationChunk, Chunk: "a"},
		{Status: stream.StatusExplanationChunk, Chunk: "b"},
		{Status: stream.StatusComplete, Explanation: "ab", Diagram: "graph TD;"},
	}))
	backend.EXPECT().StoreDiagram(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	backend.EXPECT().LastGenerated(gomock.Any(), gomock.Any()).Return(nil, nil)

	var explanations []string
	s.SetOnUpdate(func(snap Snapshot) {
		explanations = append(explanations, snap.State.Explanation)
	})

	require.NoError(t, s.Modify(context.Background(), ""))

	// Later snapshots always see earlier accumulated text.
	var prev string
	for _, e := range explanations {
		assert.True(t, len(e) >= len(prev), "accumulated text must never shrink mid-run")
		if len(e) >= len(prev) {
			prev = e
		}
	}
	assert.Equal(t, "ab", explanations[len(explanations)-1])
}

func TestCopyDiagram_FailureIsSilent(t *testing.T) {
	s, backend, _ := newTestSession(t, testRepo)

	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(playStream([]stream.Event{
		{Status: stream.StatusComplete, Explanation: "exp", Diagram: "graph TD;"},
	}))
	backend.EXPECT().StoreDiagram(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	backend.EXPECT().LastGenerated(gomock.Any(), gomock.Any()).Return(nil, nil)
	require.NoError(t, s.Modify(context.Background(), ""))

	original := writeClipboard
	defer func() { writeClipboard = original }()

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return errors.New("no clipboard available")
	}

	s.CopyDiagram()
	assert.Equal(t, "graph TD;", copied)
	assert.Equal(t, stream.StatusComplete, s.Snapshot().State.Status, "clipboard failure never becomes an error state")
}

func TestExportPNG_NoopWithoutDiagram(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	exporter := mocks.NewMockExporter(ctrl)
	s := New(testRepo, backend, store.NewCredentials(store.NewMemory()), nil, exporter, testLogger())

	// No exporter expectations: nothing to render.
	assert.NoError(t, s.ExportPNG(context.Background(), "out.png"))
}

func TestExportPNG_DelegatesToExporter(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	exporter := mocks.NewMockExporter(ctrl)
	s := New(testRepo, backend, store.NewCredentials(store.NewMemory()), nil, exporter, testLogger())

	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(playStream([]stream.Event{
		{Status: stream.StatusComplete, Explanation: "exp", Diagram: "graph TD;"},
	}))
	backend.EXPECT().StoreDiagram(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	backend.EXPECT().LastGenerated(gomock.Any(), gomock.Any()).Return(nil, nil)
	require.NoError(t, s.Modify(context.Background(), ""))

	exporter.EXPECT().PNG(gomock.Any(), "graph TD;", "out.png").Return(nil)
	assert.NoError(t, s.ExportPNG(context.Background(), "out.png"))
}

func TestGenerate_HistoryRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	history := mocks.NewMockStore(ctrl)
	s := New(testRepo, backend, store.NewCredentials(store.NewMemory()), history, nil, testLogger())

	backend.EXPECT().EstimateCost(gomock.Any(), gomock.Any()).Return("$0.05 USD", nil)
	backend.EXPECT().GenerateStream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(playStream([]stream.Event{
		{Status: stream.StatusComplete, Explanation: "exp", Diagram: "graph TD;"},
	}))
	backend.EXPECT().StoreDiagram(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	backend.EXPECT().LastGenerated(gomock.Any(), gomock.Any()).Return(nil, nil)

	var saved *storage.Generation
	history.EXPECT().SaveGeneration(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, gen *storage.Generation) error {
			saved = gen
			return nil
		})

	require.NoError(t, s.Regenerate(context.Background(), "focus on storage"))

	require.NotNil(t, saved)
	assert.Equal(t, "sevigo", saved.Owner)
	assert.Equal(t, "focus on storage", saved.Instructions)
	assert.Equal(t, "$0.05 USD", saved.Cost)
	assert.Equal(t, "graph TD;", saved.Diagram)
	assert.False(t, saved.UsedOwnKey)
}
