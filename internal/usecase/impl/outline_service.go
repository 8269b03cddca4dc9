package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"go.uber.org/fx"
)

// outlineService implements the OutlineUsecase interface.
type outlineService struct {
	generator service.ContentGenerator
	logger    *slog.Logger
}

// OutlineServiceParams holds dependencies for OutlineService, injected by Fx.
type OutlineServiceParams struct {
	fx.In

	Generator service.ContentGenerator
	Logger    *slog.Logger
}

// NewOutlineService is the constructor for outlineService.
func NewOutlineService(params OutlineServiceParams) usecase.OutlineUsecase {
	return &outlineService{
		generator: params.Generator,
		logger:    params.Logger,
	}
}

// SuggestOutline asks the generator for a set of titles for the topic.
// The outline is advisory only, so a generator failure degrades to an empty
// list instead of failing the request.
func (srv *outlineService) SuggestOutline(ctx context.Context, input *usecase.OutlineInput) ([]string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Suggesting outline", slog.String("topic", input.Topic), slog.String("docType", input.DocType))

	raw, err := srv.generator.Complete(ctx, buildOutlinePrompt(input.Topic, entity.DocType(input.DocType)))
	if err != nil {
		logger.Error("Outline generation failed", slog.String("topic", input.Topic), slog.Any("error", err))

		return []string{}, nil
	}

	titles := cleanOutlineLines(raw)
	logger.Debug("Outline suggested", slog.String("topic", input.Topic), slog.Int("titles", len(titles)))

	return titles, nil
}
