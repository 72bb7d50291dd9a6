package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"produceotron/internal/llm"
)

// fakeClient returns a scripted response and records the last request.
type fakeClient struct {
	resp    *llm.GenerateResponse
	err     error
	lastReq llm.GenerateRequest
}

func (f *fakeClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeClient) Available(ctx context.Context) bool { return f.err == nil }

func TestDraft_Success(t *testing.T) {
	client := &fakeClient{resp: &llm.GenerateResponse{Text: "MEMO: ship it."}}
	svc := NewDraftService(client)

	result, err := svc.Draft(context.Background(), "announce the release", "urgent")
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Equal(t, "MEMO: ship it.", result.Text)

	assert.Equal(t, llm.TaskDraft, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "urgent")
	assert.Contains(t, client.lastReq.UserPrompt, "announce the release")
	assert.NotEmpty(t, client.lastReq.SystemPrompt)
}

func TestDraft_InputValidation(t *testing.T) {
	svc := NewDraftService(&fakeClient{resp: &llm.GenerateResponse{Text: "x"}})

	_, err := svc.Draft(context.Background(), "", "professional")
	assert.Error(t, err)

	_, err = svc.Draft(context.Background(), "write something", "sarcastic")
	assert.Error(t, err)
}

func TestDraft_AcceptsAllTones(t *testing.T) {
	svc := NewDraftService(&fakeClient{resp: &llm.GenerateResponse{Text: "x"}})
	for tone := range ValidTones {
		_, err := svc.Draft(context.Background(), "write something", tone)
		assert.NoError(t, err, "tone %q", tone)
	}
}

func TestDraft_GenerationFailureFallsBack(t *testing.T) {
	svc := NewDraftService(&fakeClient{err: errors.New("connection refused")})

	result, err := svc.Draft(context.Background(), "write something", "casual")
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, "SYSTEM ERROR: Failed to interface with the Drafting Engine.", result.Text)
}

func TestDraft_EmptyResponseFallsBack(t *testing.T) {
	svc := NewDraftService(&fakeClient{resp: &llm.GenerateResponse{Text: ""}})

	result, err := svc.Draft(context.Background(), "write something", "casual")
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, "The typewriter jammed. Please try again.", result.Text)
}

func TestOrganize_Success(t *testing.T) {
	client := &fakeClient{resp: &llm.GenerateResponse{Text: "Audio/\n  wind.wav"}}
	svc := NewDraftService(client)

	result, err := svc.Organize(context.Background(), "[audio]\n• wind.wav")
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Equal(t, llm.TaskOrganize, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "wind.wav")
}

func TestOrganize_EmptyListing(t *testing.T) {
	svc := NewDraftService(&fakeClient{resp: &llm.GenerateResponse{Text: "x"}})
	_, err := svc.Organize(context.Background(), "")
	assert.Error(t, err)
}

func TestOrganize_FailureFallsBack(t *testing.T) {
	svc := NewDraftService(&fakeClient{err: errors.New("boom")})

	result, err := svc.Organize(context.Background(), "• file.txt")
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, "The disk drive encountered a read error. Please check your data and try again.", result.Text)
}
