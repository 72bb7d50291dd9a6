package intelligence

import (
	"context"
	"fmt"

	"produceotron/internal/llm"
)

// Fixed user-facing strings for degraded outcomes. A failed generation is
// terminal for the draft only; nothing retries and nothing else is disturbed.
const (
	draftFailureMessage    = "SYSTEM ERROR: Failed to interface with the Drafting Engine."
	emptyDraftMessage      = "The typewriter jammed. Please try again."
	organizeFailureMessage = "The disk drive encountered a read error. Please check your data and try again."
)

// ValidTones is the canonical set of accepted drafting tones.
var ValidTones = map[string]bool{
	"professional": true, "casual": true, "urgent": true,
	"persuasive": true, "apologetic": true,
}

// DraftResult is the outcome of a drafting call. Fallback marks a degraded
// fixed-string result rather than generated text.
type DraftResult struct {
	Text     string
	Fallback bool
}

// DraftService composes memos and organizes inventories through the model.
type DraftService struct {
	llm llm.Client
}

// NewDraftService creates a DraftService over the given client.
func NewDraftService(client llm.Client) *DraftService {
	return &DraftService{llm: client}
}

// Draft generates a memo or email from an instruction in the given tone.
// Generation failures degrade to a fixed placeholder, never an error; only
// invalid input is reported as one.
func (s *DraftService) Draft(ctx context.Context, instruction, tone string) (*DraftResult, error) {
	if instruction == "" {
		return nil, fmt.Errorf("drafting instruction must not be empty")
	}
	if !ValidTones[tone] {
		return nil, fmt.Errorf("tone %q must be one of professional, casual, urgent, persuasive, apologetic", tone)
	}

	resp, err := s.llm.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDraft,
		SystemPrompt: draftSystemPrompt,
		UserPrompt:   draftUserPrompt(tone, instruction),
	})
	if err != nil {
		return &DraftResult{Text: draftFailureMessage, Fallback: true}, nil
	}
	if resp.Text == "" {
		return &DraftResult{Text: emptyDraftMessage, Fallback: true}, nil
	}
	return &DraftResult{Text: resp.Text}, nil
}

// Organize turns a raw file listing into an organized inventory description.
func (s *DraftService) Organize(ctx context.Context, listing string) (*DraftResult, error) {
	if listing == "" {
		return nil, fmt.Errorf("file listing must not be empty")
	}

	resp, err := s.llm.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskOrganize,
		SystemPrompt: organizeSystemPrompt,
		UserPrompt:   organizeUserPrompt(listing),
	})
	if err != nil || resp.Text == "" {
		return &DraftResult{Text: organizeFailureMessage, Fallback: true}, nil
	}
	return &DraftResult{Text: resp.Text}, nil
}
