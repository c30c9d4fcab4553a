package subaccount

import (
	domain "github.com/Tanvir1407/metb/internal/domain/subaccount"
)

func ToResponseSubAccount(saDomain domain.SubAccount) SubAccount {
	var sa = SubAccount{
		ID:          uint64(saDomain.ID),
		Name:        saDomain.Name,
		Code:        saDomain.Code,
		Description: saDomain.Description,
		AccountID:   saDomain.AccountID,
		IsLocked:    saDomain.IsLocked,
		Status:      saDomain.Status,
		CreatedAt:   saDomain.CreatedAt,
		UpdatedAt:   saDomain.UpdatedAt,
	}

	return sa
}

func ToResponseSubAccounts(sasDomain domain.SubAccounts) SubAccounts {
	sas := make(SubAccounts, len(sasDomain))
	for idx, sa := range sasDomain {
		sas[idx] = ToResponseSubAccount(*sa)
	}

	return sas
}

func ToDomainSubAccount(req CreateRequest) domain.SubAccount {
	return domain.SubAccount{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		AccountID:   req.AccountID,
		Status:      true,
	}
}

func ToDomainUpdate(req UpdateRequest) domain.Update {
	return domain.Update{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		AccountID:   req.AccountID,
	}
}
