// Package usecase contains the application-specific business rules.
package usecase

import "context"

// OutlineInput defines the data required to request outline suggestions.
// No project is required; this operation is purely advisory.
type OutlineInput struct {
	Topic   string `json:"topic" validate:"required"`
	DocType string `json:"doc_type" validate:"required"`
}

// OutlineUsecase suggests slide titles or section headers for a topic.
type OutlineUsecase interface {
	// SuggestOutline asks the generator for five raw titles and defensively
	// strips any list markers it still emits. A generator failure resolves
	// to an empty list, never to a failed request.
	SuggestOutline(ctx context.Context, input *OutlineInput) ([]string, error)
}
