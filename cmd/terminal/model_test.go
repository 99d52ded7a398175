package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/session"
	"github.com/sevigo/repograph/internal/store"
	"github.com/sevigo/repograph/mocks"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m := initialModel(ThemeMatrix, "")
	m.repo = core.RepoRef{Owner: "acme", Repo: "demo", Provider: core.ProviderGitHub}
	m.sess = session.New(m.repo, backend, store.NewCredentials(store.NewMemory()), nil, nil, logger)
	m.updates = make(chan session.Snapshot, 8)
	return m
}

func TestProcessInput_BlocksNewRunsWhileOneIsInFlight(t *testing.T) {
	m := newTestModel(t)
	m.isLoading = true

	assert.Nil(t, m.processInput("add the queue worker"))
	assert.Nil(t, m.processInput("/regenerate"))
	assert.Nil(t, m.processInput("/export"))
	assert.Contains(t, strings.Join(m.history, "\n"), "already in progress")
}

func TestProcessInput_QuitStillWorksWhileLoading(t *testing.T) {
	m := newTestModel(t)
	m.isLoading = true

	assert.NotNil(t, m.processInput("/quit"))
}

func TestProcessInput_DispatchesWhenIdle(t *testing.T) {
	m := newTestModel(t)

	assert.NotNil(t, m.processInput("make the diagram vertical"))
	assert.True(t, m.isLoading)
}
