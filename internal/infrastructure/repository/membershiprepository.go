package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/infrastructure/persistence/mappers"
	"crewdesk/internal/infrastructure/persistence/models"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/errors"
)

type MembershipRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewMembershipRepository(database *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		db:     database,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *MembershipRepository) Save(ctx context.Context, membership *organization.Membership) error {
	model := r.mapper.MembershipToModel(membership)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) Update(ctx context.Context, membership *organization.Membership) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MembershipModel{}).
		Where("user_id = ? AND organization_id = ?", membership.UserID(), membership.OrganizationID()).
		Update("role", membership.Role().String())
	if result.Error != nil {
		return fmt.Errorf("failed to update membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("membership not found")
	}
	return nil
}

func (r *MembershipRepository) Delete(ctx context.Context, userID, organizationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("user_id = ? AND organization_id = ?", userID, organizationID).
		Delete(&models.MembershipModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("membership not found")
	}
	return nil
}

func (r *MembershipRepository) DeleteByOrganization(ctx context.Context, organizationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("organization_id = ?", organizationID).
		Delete(&models.MembershipModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}
	return nil
}

func (r *MembershipRepository) Get(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
	var model models.MembershipModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ? AND organization_id = ?", userID, organizationID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("membership not found")
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}

	return r.mapper.MembershipToDomain(&model)
}

func (r *MembershipRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*organization.Membership, error) {
	var membershipModels []models.MembershipModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("organization_id = ?", organizationID).
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return r.toDomainList(membershipModels)
}

func (r *MembershipRepository) ListByUser(ctx context.Context, userID uint) ([]*organization.Membership, error) {
	var membershipModels []models.MembershipModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return r.toDomainList(membershipModels)
}

func (r *MembershipRepository) CountByOrganization(ctx context.Context, organizationID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MembershipModel{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}
	return count, nil
}

func (r *MembershipRepository) CountByRole(ctx context.Context, organizationID uint, role vo.Role) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MembershipModel{}).
		Where("organization_id = ? AND role = ?", organizationID, role.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}
	return count, nil
}

func (r *MembershipRepository) toDomainList(membershipModels []models.MembershipModel) ([]*organization.Membership, error) {
	memberships := make([]*organization.Membership, 0, len(membershipModels))
	for i := range membershipModels {
		m, err := r.mapper.MembershipToDomain(&membershipModels[i])
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, nil
}
