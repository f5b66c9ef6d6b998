package mappers

import (
	"crewdesk/internal/domain/user"
	vo "crewdesk/internal/domain/user/valueobjects"
	"crewdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                    u.ID(),
		Email:                 u.Email(),
		Name:                  u.Name(),
		Image:                 u.Image(),
		SystemRole:            u.SystemRole().String(),
		DefaultOrganizationID: u.DefaultOrganizationID(),
		CreatedAt:             u.CreatedAt().UnixMilli(),
		UpdatedAt:             u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.Image,
		vo.SystemRole(model.SystemRole),
		model.DefaultOrganizationID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
