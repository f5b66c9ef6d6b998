package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crewdesk/internal/domain/organization"
	"crewdesk/internal/infrastructure/persistence/mappers"
	"crewdesk/internal/infrastructure/persistence/models"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
)

type OrganizationRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(database *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		db:     database,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepository) Save(ctx context.Context, org *organization.Organization) error {
	model := r.mapper.ToModel(org)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}

	return org.SetID(model.ID)
}

func (r *OrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	model := r.mapper.ToModel(org)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OrganizationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"logo":          model.Logo,
			"website":       model.Website,
			"billing_email": model.BillingEmail,
			"billing_name":  model.BillingName,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.OrganizationModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("organization not found")
	}
	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("organization not found")
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("organization not found")
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrganizationRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.OrganizationModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

func (r *OrganizationRepository) ListByUser(ctx context.Context, userID uint) ([]*organization.Organization, error) {
	var orgModels []models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Joins("JOIN user_organizations ON user_organizations.organization_id = organizations.id").
		Where("user_organizations.user_id = ?", userID).
		Order("organizations.created_at ASC").
		Find(&orgModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	orgs := make([]*organization.Organization, 0, len(orgModels))
	for i := range orgModels {
		org, err := r.mapper.ToDomain(&orgModels[i])
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}
