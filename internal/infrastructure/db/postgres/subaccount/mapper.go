package subaccount

import (
	domain "github.com/Tanvir1407/metb/internal/domain/subaccount"
)

func fromDBModel(model *SubAccount) *domain.SubAccount {
	var sa = &domain.SubAccount{
		ID:          domain.ID(model.ID),
		Name:        model.Name,
		Code:        model.Code,
		Description: model.Description,
		AccountID:   model.AccountID,

		IsLocked: boolFromVarchar(model.IsLocked),
		Status:   boolFromVarchar(model.Status),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return sa
}

func fromDBModels(models *SubAccounts) domain.SubAccounts {
	sas := make(domain.SubAccounts, len(*models))
	for idx, sa := range *models {
		sas[idx] = fromDBModel(sa)
	}

	return sas
}
