package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create persists a new project entity.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProjectCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProjectCreationFailed.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	// Update the entity with generated values
	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// FindByID retrieves a single project with its sections preloaded.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Preload("Sections").
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return toProjectDomain(&projectM), nil
}

// FindByOwner retrieves every project owned by the given user, newest first.
func (repo *projectRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Preload("Sections").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find projects by owner")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// Delete removes the project row.
func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProjectModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete project")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProjectDomain converts a GORM ProjectModel to a domain Project entity.
func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	sections := make([]*entity.DocumentSection, 0, len(data.Sections))
	for i := range data.Sections {
		sections = append(sections, toSectionDomain(&data.Sections[i]))
	}

	return &entity.Project{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		DocType:     entity.DocType(data.DocType),
		Sections:    sections,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProjectDomain converts a domain Project entity to a GORM ProjectModel.
// Sections are persisted through their own repository, never through the
// project association.
func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		DocType:     string(data.DocType),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
