package user

import (
	"errors"
	"time"

	domain "github.com/Tanvir1407/metb/internal/domain/user"
)

// accepted input layouts; output is always a normalized timestamp
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid date format, want YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")
}

func ToResponseUser(uDomain domain.User) User {
	var u = User{
		ID:             uint64(uDomain.ID),
		FirstName:      uDomain.FirstName,
		LastName:       uDomain.LastName,
		Username:       uDomain.Username,
		Email:          uDomain.Email,
		Phone:          uDomain.Phone,
		Image:          uDomain.Image,
		RoleID:         uDomain.RoleID,
		Status:         uDomain.Status,
		JoinDate:       uDomain.JoinDate,
		LeaveDate:      uDomain.LeaveDate,
		DefaultStoreID: uDomain.DefaultStoreID,
		CreatedAt:      uDomain.CreatedAt,
		UpdatedAt:      uDomain.UpdatedAt,
	}

	return u
}

func ToResponseUsers(usDomain domain.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// ToDomainUpdate converts a validated update request. The password, if
// any, must already be hashed by the caller. A storeId list sets
// defaultStoreId to its first element.
func ToDomainUpdate(req UpdateRequest, passwordHash *string) (domain.Update, error) {
	joinDate, err := ParseDateTime(req.JoinDate)
	if err != nil {
		return domain.Update{}, err
	}

	var leaveDate *time.Time
	if req.LeaveDate != nil {
		ld, err := ParseDateTime(*req.LeaveDate)
		if err != nil {
			return domain.Update{}, err
		}
		leaveDate = &ld
	}

	var defaultStoreID *uint64
	if len(req.StoreID) > 0 {
		defaultStoreID = &req.StoreID[0]
	}

	var upd = domain.Update{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Username:       req.Username,
		PasswordHash:   passwordHash,
		Email:          req.Email,
		Phone:          req.Phone,
		Image:          req.Image,
		RoleID:         req.RoleID,
		JoinDate:       joinDate,
		LeaveDate:      leaveDate,
		DefaultStoreID: defaultStoreID,
	}

	return upd, nil
}
