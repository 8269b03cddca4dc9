package impl

import (
	"context"
	"log/slog"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Generator failures are not surfaced as request errors: the error text is
// persisted as the section content so the user sees what happened in place
// and can retry via a refinement.
const (
	generateErrorPrefix = "Error generating content: "
	refineErrorPrefix   = "Error refining content: "
)

// sectionService implements the SectionUsecase interface.
type sectionService struct {
	projectRepo      repository.ProjectRepository
	sectionRepo      repository.SectionRepository
	generator        service.ContentGenerator
	enforceOwnership bool
	logger           *slog.Logger
}

// SectionServiceParams holds dependencies for SectionService, injected by Fx.
type SectionServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	SectionRepo repository.SectionRepository
	Generator   service.ContentGenerator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSectionService is the constructor for sectionService.
func NewSectionService(params SectionServiceParams) usecase.SectionUsecase {
	enforceOwnership := false
	if params.Config != nil && params.Config.Auth != nil {
		enforceOwnership = params.Config.Auth.EnforceProjectOwnership
	}

	return &sectionService{
		projectRepo:      params.ProjectRepo,
		sectionRepo:      params.SectionRepo,
		generator:        params.Generator,
		enforceOwnership: enforceOwnership,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateSection creates a new section under the project and fills its
// content with one generator call. The project must exist before anything is
// generated or persisted; a missing project leaves no trace.
func (srv *sectionService) GenerateSection(ctx context.Context, requesterID, projectID uuid.UUID, input *usecase.GenerateSectionInput) (*entity.DocumentSection, error) {
	srv.log(ctx).Info("Generating section", slog.Any("projectID", projectID), slog.String("heading", input.Heading))

	// 1. Resolve the project; its description and doc type shape the prompt.
	project, err := srv.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProjectNotFound, "project not found")
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	if srv.enforceOwnership && project.UserID != requesterID {
		srv.log(ctx).Warn("Section generation denied",
			slog.Any("projectID", projectID),
			slog.Any("requesterID", requesterID))

		return nil, errors.Wrap(domainerrors.ErrProjectAccessDenied, "project belongs to another user")
	}

	// 2. One generator call. A failure becomes persisted error text, not a
	// failed request.
	prompt := buildSectionPrompt(project.Description, input.Heading, project.DocType)
	content, genErr := srv.generator.Complete(ctx, prompt)
	if genErr != nil {
		srv.log(ctx).Error("Content generation failed", slog.Any("projectID", projectID), slog.String("heading", input.Heading), slog.Any("error", genErr))
		content = generateErrorPrefix + genErr.Error()
	}

	// 3. Persist with an empty, non-nil history so the stored document shows
	// zero refinements rather than an absent field.
	section := &entity.DocumentSection{
		ProjectID:         projectID,
		Heading:           input.Heading,
		Content:           content,
		OrderIndex:        input.OrderIndex,
		RefinementHistory: []entity.RefinementRecord{},
	}
	if err := srv.sectionRepo.Create(ctx, section); err != nil {
		srv.log(ctx).Error("Failed to create section", slog.Any("projectID", projectID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create section")
	}

	srv.log(ctx).Debug("Section generated", slog.Any("sectionID", section.ID))

	return section, nil
}

// RefineSection rewrites the section's content under the instruction and
// appends exactly one history record. The read and the write are not
// serialized against concurrent refinements of the same section; the last
// full-row write wins.
func (srv *sectionService) RefineSection(ctx context.Context, requesterID, sectionID uuid.UUID, instruction string) (*entity.DocumentSection, error) {
	srv.log(ctx).Info("Refining section", slog.Any("sectionID", sectionID))

	// 1. Load the current state; a missing section persists nothing.
	section, err := srv.sectionRepo.FindByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, repository.ErrSectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSectionNotFound, "section not found")
		}

		return nil, errors.Wrap(err, "failed to find section by id")
	}

	// 2. Sections carry no owner themselves; with enforcement on, resolve
	// the owning project and compare against the requester.
	if srv.enforceOwnership {
		project, err := srv.projectRepo.FindByID(ctx, section.ProjectID)
		if err != nil {
			if errors.Is(err, repository.ErrProjectNotFound) {
				return nil, errors.Wrap(domainerrors.ErrProjectNotFound, "owning project not found")
			}

			return nil, errors.Wrap(err, "failed to find owning project by id")
		}

		if project.UserID != requesterID {
			srv.log(ctx).Warn("Section refinement denied",
				slog.Any("sectionID", sectionID),
				slog.Any("projectID", project.ID),
				slog.Any("requesterID", requesterID))

			return nil, errors.Wrap(domainerrors.ErrProjectAccessDenied, "project belongs to another user")
		}
	}

	// 3. One generator call over the current content.
	refined, genErr := srv.generator.Complete(ctx, buildRefinePrompt(section.Content, instruction))
	if genErr != nil {
		srv.log(ctx).Error("Content refinement failed", slog.Any("sectionID", sectionID), slog.Any("error", genErr))
		refined = refineErrorPrefix + genErr.Error()
	}

	// 4. Append the record before overwriting the content. The record's
	// Original field is the only place the prior content survives.
	section.RefinementHistory = append(section.RefinementHistory, entity.RefinementRecord{
		Original:    section.Content,
		Instruction: instruction,
		Refined:     refined,
	})
	section.Content = refined

	if err := srv.sectionRepo.Update(ctx, section); err != nil {
		srv.log(ctx).Error("Failed to update section", slog.Any("sectionID", sectionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update section")
	}

	srv.log(ctx).Debug("Section refined",
		slog.Any("sectionID", sectionID),
		slog.Int("refinements", len(section.RefinementHistory)))

	return section, nil
}
