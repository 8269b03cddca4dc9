package service

import "context"

// ContentGenerator is the boundary to the external language-model backend.
// Prompt construction stays on this side of the boundary; the generator only
// completes a prompt into text. Output structure is trusted, not validated —
// quality control lives entirely in the instruction text.
type ContentGenerator interface {
	// Complete sends one prompt to the model and returns its raw text reply.
	// The call is synchronous and blocking; cancellation comes from ctx only.
	Complete(ctx context.Context, prompt string) (string, error)
}
