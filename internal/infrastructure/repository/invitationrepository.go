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

type InvitationRepository struct {
	db     *gorm.DB
	mapper mappers.InvitationMapper
}

func NewInvitationRepository(database *gorm.DB) *InvitationRepository {
	return &InvitationRepository{
		db:     database,
		mapper: mappers.NewInvitationMapper(),
	}
}

func (r *InvitationRepository) Save(ctx context.Context, invitation *organization.Invitation) error {
	model := r.mapper.ToModel(invitation)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save invitation: %w", err)
	}

	return invitation.SetID(model.ID)
}

func (r *InvitationRepository) Update(ctx context.Context, invitation *organization.Invitation) error {
	model := r.mapper.ToModel(invitation)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InvitationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update invitation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("invitation not found")
	}
	return nil
}

func (r *InvitationRepository) GetByID(ctx context.Context, id uint) (*organization.Invitation, error) {
	var model models.InvitationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invitation not found")
		}
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InvitationRepository) GetByToken(ctx context.Context, token string) (*organization.Invitation, error) {
	var model models.InvitationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("token = ?", token).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invitation not found")
		}
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InvitationRepository) GetPendingByEmail(ctx context.Context, email string, organizationID uint) (*organization.Invitation, error) {
	var model models.InvitationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ? AND organization_id = ? AND status = ?", email, organizationID, vo.InvitationPending.String()).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invitation not found")
		}
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InvitationRepository) ListPendingByOrganization(ctx context.Context, organizationID uint) ([]*organization.Invitation, error) {
	var invitationModels []models.InvitationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("organization_id = ? AND status = ?", organizationID, vo.InvitationPending.String()).
		Order("created_at DESC").
		Find(&invitationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	invitations := make([]*organization.Invitation, 0, len(invitationModels))
	for i := range invitationModels {
		inv, err := r.mapper.ToDomain(&invitationModels[i])
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, nil
}

func (r *InvitationRepository) DeleteByOrganization(ctx context.Context, organizationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("organization_id = ?", organizationID).
		Delete(&models.InvitationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete invitations: %w", err)
	}
	return nil
}
