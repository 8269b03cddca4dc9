package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

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

const (
	wordContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	slidesContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	txManager        repository.TransactionManager
	projectRepo      repository.ProjectRepository
	exporter         service.DocumentExporter
	enforceOwnership bool
	logger           *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProjectRepo repository.ProjectRepository
	Exporter    service.DocumentExporter
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	enforceOwnership := false
	if params.Config != nil && params.Config.Auth != nil {
		enforceOwnership = params.Config.Auth.EnforceProjectOwnership
	}

	return &projectService{
		txManager:        params.TxManager,
		projectRepo:      params.ProjectRepo,
		exporter:         params.Exporter,
		enforceOwnership: enforceOwnership,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkOwnership rejects cross-user access when ownership enforcement is
// enabled. With enforcement off, possession of a valid token grants access to
// any project.
func (srv *projectService) checkOwnership(ctx context.Context, project *entity.Project, requesterID uuid.UUID) error {
	if !srv.enforceOwnership {
		return nil
	}

	if project.UserID != requesterID {
		srv.log(ctx).Warn("Project access denied",
			slog.Any("projectID", project.ID),
			slog.Any("ownerID", project.UserID),
			slog.Any("requesterID", requesterID))

		return errors.Wrap(domainerrors.ErrProjectAccessDenied, "project belongs to another user")
	}

	return nil
}

// CreateProject creates a new, empty project owned by the caller.
func (srv *projectService) CreateProject(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateProjectInput) (*entity.Project, error) {
	srv.log(ctx).Info("Creating project", slog.Any("ownerID", ownerID), slog.String("docType", input.DocType))

	project := &entity.Project{
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		DocType:     entity.DocType(input.DocType),
	}

	// Single insert - use direct repository instance.
	if err := srv.projectRepo.Create(ctx, project); err != nil {
		srv.log(ctx).Error("Failed to create project", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Debug("Project created", slog.Any("projectID", project.ID))

	return project, nil
}

// ListProjects returns every project owned by the caller.
func (srv *projectService) ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list projects", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// GetProject returns a single project with its sections.
func (srv *projectService) GetProject(ctx context.Context, requesterID, projectID uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProjectNotFound, "project not found")
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	if err := srv.checkOwnership(ctx, project, requesterID); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject removes a project and all of its sections. The section
// delete and the project delete share one transaction so a failure of either
// leaves both intact.
func (srv *projectService) DeleteProject(ctx context.Context, requesterID, projectID uuid.UUID) error {
	srv.log(ctx).Info("Deleting project", slog.Any("projectID", projectID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		projectRepo := repoFactory.ProjectRepo()
		sectionRepo := repoFactory.SectionRepo()

		// 1. Verify the project exists before touching anything.
		project, findErr := projectRepo.FindByID(ctx, projectID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProjectNotFound) {
				return errors.Wrap(domainerrors.ErrProjectNotFound, "project not found")
			}

			return errors.Wrap(findErr, "failed to find project by id")
		}

		if ownErr := srv.checkOwnership(ctx, project, requesterID); ownErr != nil {
			return ownErr
		}

		// 2. Delete children first, then the project row.
		if delErr := sectionRepo.DeleteByProject(ctx, projectID); delErr != nil {
			return errors.Wrap(delErr, "failed to delete project sections")
		}
		if delErr := projectRepo.Delete(ctx, projectID); delErr != nil {
			return errors.Wrap(delErr, "failed to delete project")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute project deletion transaction", slog.Any("projectID", projectID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute project deletion transaction")
	}

	srv.log(ctx).Debug("Project deleted", slog.Any("projectID", projectID))

	return nil
}

// ExportProject renders the project's sections, sorted by order index, into
// an office document. Only the Word doc type exports as .docx; every other
// tag, known or not, exports as a slide deck.
func (srv *projectService) ExportProject(ctx context.Context, requesterID, projectID uuid.UUID) (*usecase.ExportOutput, error) {
	srv.log(ctx).Info("Exporting project", slog.Any("projectID", projectID))

	project, err := srv.GetProject(ctx, requesterID, projectID)
	if err != nil {
		return nil, err
	}

	sections := make([]*entity.DocumentSection, len(project.Sections))
	copy(sections, project.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].OrderIndex < sections[j].OrderIndex
	})

	var (
		content     []byte
		extension   string
		contentType string
	)
	if project.DocType.IsWord() {
		content, err = srv.exporter.ExportWord(project.Title, sections)
		extension, contentType = "docx", wordContentType
	} else {
		content, err = srv.exporter.ExportSlides(project.Title, sections)
		extension, contentType = "pptx", slidesContentType
	}
	if err != nil {
		srv.log(ctx).Error("Failed to render export", slog.Any("projectID", projectID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrExportFailed.WrapMessage(err.Error()), "failed to render export")
	}

	srv.log(ctx).Debug("Project exported",
		slog.Any("projectID", projectID),
		slog.Int("sections", len(sections)),
		slog.String("extension", extension))

	return &usecase.ExportOutput{
		Content:     content,
		Filename:    fmt.Sprintf("%s.%s", exportBaseName(project.Title), extension),
		ContentType: contentType,
	}, nil
}

// exportBaseName strips characters that break Content-Disposition filenames.
func exportBaseName(title string) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|', '\n', '\r':
			return '_'
		default:
			return r
		}
	}, strings.TrimSpace(title))

	if base == "" {
		return "document"
	}

	return base
}
