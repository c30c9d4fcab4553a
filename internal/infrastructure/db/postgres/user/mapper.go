package user

import (
	domain "github.com/Tanvir1407/metb/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Username:     model.Username,
		PasswordHash: &model.Password,
		RefreshToken: model.RefreshToken,
		Email:        model.Email,
		Phone:        model.Phone,
		Image:        model.Image,
		RoleID:       model.RoleID,

		IsLogin: boolFromVarchar(model.IsLogin),
		Status:  boolFromVarchar(model.Status),

		JoinDate:       model.JoinDate,
		LeaveDate:      model.LeaveDate,
		DefaultStoreID: model.DefaultStoreID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
