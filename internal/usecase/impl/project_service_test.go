package impl

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	mockSvc "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// projectServiceFixtures holds all test dependencies for project service tests.
type projectServiceFixtures struct {
	service     usecase.ProjectUsecase
	txManager   *mockRepo.MockTransactionManager
	projectRepo *mockRepo.MockProjectRepository
	exporter    *mockSvc.MockDocumentExporter
}

func createTestProjectService(t *testing.T, enforceOwnership bool) projectServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	exporter := mockSvc.NewMockDocumentExporter(t)

	service := NewProjectService(ProjectServiceParams{
		TxManager:   txManager,
		ProjectRepo: projectRepo,
		Exporter:    exporter,
		Config:      newTestConfig(enforceOwnership),
		Logger:      newDiscardLogger(),
	})

	return projectServiceFixtures{
		service:     service,
		txManager:   txManager,
		projectRepo: projectRepo,
		exporter:    exporter,
	}
}

func TestProjectService_CreateProject_Success(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.projectRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Run(func(ctx context.Context, project *entity.Project) {
			project.ID = uuid.New()
		}).
		Return(nil)

	project, err := fx.service.CreateProject(ctx, ownerID, &usecase.CreateProjectInput{
		Title:       "Q3 Strategy",
		Description: "Quarterly strategy review",
		DocType:     "pptx",
	})

	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, ownerID, project.UserID)
	assert.Equal(t, entity.DocTypeSlides, project.DocType)
	assert.NotEqual(t, uuid.Nil, project.ID)
}

func TestProjectService_CreateProject_UnknownDocTypeAccepted(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()

	fx.projectRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Return(nil)

	project, err := fx.service.CreateProject(ctx, uuid.New(), &usecase.CreateProjectInput{
		Title:       "Mystery",
		Description: "Unknown format",
		DocType:     "keynote",
	})

	// Unknown tags are stored verbatim, not rejected.
	require.NoError(t, err)
	assert.Equal(t, entity.DocType("keynote"), project.DocType)
}

// TestProjectService_CreateThenGetRoundTrip drives CreateProject and two
// GetProject calls through a stateful fake store: the fetched project carries
// the exact title, description and doc type it was created with, and its
// creation timestamp does not drift between fetches.
func TestProjectService_CreateThenGetRoundTrip(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()
	ownerID := uuid.New()
	createdAt := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

	// Stateful fake store: Create backfills the store-generated fields,
	// FindByID returns an independent copy of the stored row.
	var stored *entity.Project
	fx.projectRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Run(func(ctx context.Context, project *entity.Project) {
			project.ID = uuid.New()
			project.CreatedAt = createdAt
			project.UpdatedAt = createdAt
			clone := *project
			stored = &clone
		}).
		Return(nil)
	fx.projectRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
			clone := *stored
			return &clone, nil
		}).
		Times(2)

	created, err := fx.service.CreateProject(ctx, ownerID, &usecase.CreateProjectInput{
		Title:       "Annual Report",
		Description: "Yearly results and outlook",
		DocType:     "docx",
	})
	require.NoError(t, err)

	first, err := fx.service.GetProject(ctx, ownerID, created.ID)
	require.NoError(t, err)
	second, err := fx.service.GetProject(ctx, ownerID, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, first.ID)
	assert.Equal(t, "Annual Report", first.Title)
	assert.Equal(t, "Yearly results and outlook", first.Description)
	assert.Equal(t, entity.DocTypeWord, first.DocType)

	// The creation timestamp is set once and identical on every fetch.
	assert.Equal(t, createdAt, first.CreatedAt)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Description, second.Description)
	assert.Equal(t, first.DocType, second.DocType)
}

func TestProjectService_GetProject_NotFound(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()
	projectID := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(nil, repository.ErrProjectNotFound)

	project, err := fx.service.GetProject(ctx, uuid.New(), projectID)

	require.Error(t, err)
	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestProjectService_GetProject_OwnershipEnforced(t *testing.T) {
	fx := createTestProjectService(t, true)

	ctx := context.Background()
	projectID := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID, UserID: uuid.New()}, nil)

	project, err := fx.service.GetProject(ctx, uuid.New(), projectID)

	require.Error(t, err)
	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectAccessDenied))
}

func TestProjectService_GetProject_OwnershipDisabledAllowsCrossUser(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()
	projectID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID, UserID: owner}, nil)

	project, err := fx.service.GetProject(ctx, stranger, projectID)

	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, owner, project.UserID)
}

func TestProjectService_DeleteProject_CascadesSections(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()
	projectID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProjectRepo := mockRepo.NewMockProjectRepository(t)
			mockSectionRepo := mockRepo.NewMockSectionRepository(t)

			mockFactory.EXPECT().ProjectRepo().Return(mockProjectRepo)
			mockFactory.EXPECT().SectionRepo().Return(mockSectionRepo)

			mockProjectRepo.EXPECT().
				FindByID(ctx, projectID).
				Return(&entity.Project{ID: projectID, UserID: uuid.New()}, nil)

			// Children go first, then the project row, inside one transaction.
			mockSectionRepo.EXPECT().DeleteByProject(ctx, projectID).Return(nil)
			mockProjectRepo.EXPECT().Delete(ctx, projectID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteProject(ctx, uuid.New(), projectID)

	require.NoError(t, err)
}

func TestProjectService_DeleteProject_NotFoundDeletesNothing(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()
	projectID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProjectRepo := mockRepo.NewMockProjectRepository(t)
			mockSectionRepo := mockRepo.NewMockSectionRepository(t)

			mockFactory.EXPECT().ProjectRepo().Return(mockProjectRepo)
			mockFactory.EXPECT().SectionRepo().Return(mockSectionRepo)

			mockProjectRepo.EXPECT().
				FindByID(ctx, projectID).
				Return(nil, repository.ErrProjectNotFound)

			err := fn(mockFactory)

			// The existence check fails before any delete is attempted.
			mockSectionRepo.AssertNotCalled(t, "DeleteByProject", mock.Anything, mock.Anything)
			mockProjectRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

			return err
		})

	err := fx.service.DeleteProject(ctx, uuid.New(), projectID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestProjectService_ExportProject_WordProject(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()
	projectID := uuid.New()
	project := &entity.Project{
		ID:      projectID,
		UserID:  uuid.New(),
		Title:   "Annual Report",
		DocType: entity.DocTypeWord,
		Sections: []*entity.DocumentSection{
			{Heading: "Conclusion", OrderIndex: 2},
			{Heading: "Introduction", OrderIndex: 0},
			{Heading: "Findings", OrderIndex: 1},
		},
	}

	fx.projectRepo.EXPECT().FindByID(ctx, projectID).Return(project, nil)
	fx.exporter.EXPECT().
		ExportWord("Annual Report", mock.AnythingOfType("[]*entity.DocumentSection")).
		Run(func(title string, sections []*entity.DocumentSection) {
			// The exporter receives sections sorted by order index.
			require.Len(t, sections, 3)
			assert.Equal(t, "Introduction", sections[0].Heading)
			assert.Equal(t, "Findings", sections[1].Heading)
			assert.Equal(t, "Conclusion", sections[2].Heading)
		}).
		Return([]byte("PK-docx"), nil)

	output, err := fx.service.ExportProject(ctx, uuid.New(), projectID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Annual Report.docx", output.Filename)
	assert.Equal(t, wordContentType, output.ContentType)
	assert.Equal(t, []byte("PK-docx"), output.Content)
}

func TestProjectService_ExportProject_SlidesProject(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()
	projectID := uuid.New()
	project := &entity.Project{
		ID:      projectID,
		UserID:  uuid.New(),
		Title:   "Pitch Deck",
		DocType: entity.DocTypeSlides,
	}

	fx.projectRepo.EXPECT().FindByID(ctx, projectID).Return(project, nil)
	fx.exporter.EXPECT().
		ExportSlides("Pitch Deck", mock.AnythingOfType("[]*entity.DocumentSection")).
		Return([]byte("PK-pptx"), nil)

	output, err := fx.service.ExportProject(ctx, uuid.New(), projectID)

	require.NoError(t, err)
	assert.Equal(t, "Pitch Deck.pptx", output.Filename)
	assert.Equal(t, slidesContentType, output.ContentType)
}

func TestProjectService_ExportProject_UnknownDocTypeExportsSlides(t *testing.T) {
	fx := createTestProjectService(t, false)

	ctx := context.Background()
	projectID := uuid.New()
	project := &entity.Project{
		ID:      projectID,
		UserID:  uuid.New(),
		Title:   "Mystery",
		DocType: entity.DocType("keynote"),
	}

	fx.projectRepo.EXPECT().FindByID(ctx, projectID).Return(project, nil)
	fx.exporter.EXPECT().
		ExportSlides("Mystery", mock.AnythingOfType("[]*entity.DocumentSection")).
		Return([]byte("PK-pptx"), nil)

	output, err := fx.service.ExportProject(ctx, uuid.New(), projectID)

	// Any tag other than the Word one takes the slide path.
	require.NoError(t, err)
	assert.Equal(t, "Mystery.pptx", output.Filename)
	assert.Equal(t, slidesContentType, output.ContentType)
}

func TestExportBaseName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "plain title", title: "Annual Report", want: "Annual Report"},
		{name: "path separators replaced", title: "a/b\\c", want: "a_b_c"},
		{name: "empty falls back", title: "   ", want: "document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exportBaseName(tt.title))
		})
	}
}
