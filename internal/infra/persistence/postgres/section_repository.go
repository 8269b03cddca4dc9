package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// sectionRepository implements the repository.SectionRepository interface.
type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository is the constructor for sectionRepository.
func NewSectionRepository(db *gorm.DB) repository.SectionRepository {
	return &sectionRepository{
		db: db,
	}
}

// Create persists a new section entity.
func (repo *sectionRepository) Create(ctx context.Context, section *entity.DocumentSection) error {
	sectionM := fromSectionDomain(section)

	if err := repo.db.WithContext(ctx).Create(sectionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSectionCreationFailed.WrapMessage("invalid project reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSectionCreationFailed.WrapMessage("missing required section information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create section")
	}

	// Update the entity with generated values
	section.ID = sectionM.ID
	section.CreatedAt = sectionM.CreatedAt
	section.UpdatedAt = sectionM.UpdatedAt

	return nil
}

// FindByID retrieves a single section by its unique ID.
func (repo *sectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DocumentSection, error) {
	var sectionM model.SectionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find section by ID")
	}

	return toSectionDomain(&sectionM), nil
}

// FindByProject retrieves every section of the given project.
func (repo *sectionRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.DocumentSection, error) {
	var sectionModels []*model.SectionModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&sectionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sections by project")
	}

	sections := make([]*entity.DocumentSection, 0, len(sectionModels))
	for _, sectionM := range sectionModels {
		sections = append(sections, toSectionDomain(sectionM))
	}

	return sections, nil
}

// Update overwrites the stored section with the given entity. The whole row
// is written, including the full refinement history blob; CreatedAt is
// excluded so the original creation timestamp survives every update.
func (repo *sectionRepository) Update(ctx context.Context, section *entity.DocumentSection) error {
	sectionM := fromSectionDomain(section)

	result := repo.db.WithContext(ctx).
		Model(&model.SectionModel{}).
		Where("id = ?", section.ID).
		Select("heading", "content", "order_index", "refinement_history", "user_notes", "updated_at").
		Updates(sectionM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update section")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSectionNotFound
	}

	return nil
}

// DeleteByProject removes every section belonging to the given project.
// Deleting zero rows is not an error; a project may have no sections yet.
func (repo *sectionRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&model.SectionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sections by project")
	}

	return nil
}

// --- Mapper Functions ---

// toSectionDomain converts a GORM SectionModel to a domain DocumentSection entity.
func toSectionDomain(data *model.SectionModel) *entity.DocumentSection {
	if data == nil {
		return nil
	}

	records := data.RefinementHistory.Data()
	history := make([]entity.RefinementRecord, 0, len(records))
	for _, record := range records {
		history = append(history, entity.RefinementRecord{
			Original:    record.Original,
			Instruction: record.Instruction,
			Refined:     record.Refined,
		})
	}

	return &entity.DocumentSection{
		ID:                data.ID,
		ProjectID:         data.ProjectID,
		Heading:           data.Heading,
		Content:           data.Content,
		OrderIndex:        data.OrderIndex,
		RefinementHistory: history,
		UserNotes:         data.UserNotes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromSectionDomain converts a domain DocumentSection entity to a GORM SectionModel.
func fromSectionDomain(data *entity.DocumentSection) *model.SectionModel {
	if data == nil {
		return nil
	}

	records := make([]model.RefinementRecord, 0, len(data.RefinementHistory))
	for _, record := range data.RefinementHistory {
		records = append(records, model.RefinementRecord{
			Original:    record.Original,
			Instruction: record.Instruction,
			Refined:     record.Refined,
		})
	}

	return &model.SectionModel{
		ID:                data.ID,
		ProjectID:         data.ProjectID,
		Heading:           data.Heading,
		Content:           data.Content,
		OrderIndex:        data.OrderIndex,
		RefinementHistory: datatypes.NewJSONType(records),
		UserNotes:         data.UserNotes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
