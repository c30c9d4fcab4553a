package validator

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/mail"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Tanvir1407/metb/internal/interface/api/rest/dto/auth"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/dto/subaccount"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	MaxUploadFiles = 10
	// per-file cap, 2048 KB
	MaxUploadFileSize = 2048 << 10

	defaultPage  = 1
	defaultCount = 10
)

var allowedUploadExts = map[string]struct{}{
	".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {},
	".svg": {}, ".webp": {}, ".pdf": {},
}

// Pagination converts the page/count query parameters into skip/take
// offsets. Malformed or missing values fall back to the defaults.
func Pagination(q url.Values) (skip, limit int) {
	page := defaultPage
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}
	limit = defaultCount
	if c, err := strconv.Atoi(q.Get("count")); err == nil && c > 0 {
		limit = c
	}

	return (page - 1) * limit, limit
}

func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// ValidateUploadBatch rejects the whole batch before anything is
// stored: too many files, an oversized file, or a disallowed type all
// fail with no record created.
func ValidateUploadBatch(files []*multipart.FileHeader) error {
	if len(files) > MaxUploadFiles {
		return fmt.Errorf("may not upload more than %d files at once", MaxUploadFiles)
	}

	for _, fh := range files {
		if fh.Size <= 0 || fh.Size > MaxUploadFileSize {
			return fmt.Errorf("file %s is empty or exceeds %d KB", fh.Filename, MaxUploadFileSize>>10)
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if _, ok := allowedUploadExts[ext]; !ok {
			return fmt.Errorf("file type %s is not allowed", ext)
		}
	}

	return nil
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = "firstName is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["lastName"] = "lastName is required"
	}
	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}

	if r.Email != "" {
		if _, err := mail.ParseAddress(strings.ToLower(strings.TrimSpace(r.Email))); err != nil {
			errs["email"] = "invalid email format"
		}
	}

	if r.Password == "" {
		errs["password"] = "password is required"
	} else if l := len(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if r.RoleID == 0 {
		errs["roleId"] = "roleId is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateUpdateUser(r user.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.JoinDate) == "" {
		errs["joinDate"] = "joinDate is required"
	} else if _, err := user.ParseDateTime(r.JoinDate); err != nil {
		errs["joinDate"] = "invalid joinDate format"
	}

	if r.LeaveDate != nil {
		if _, err := user.ParseDateTime(*r.LeaveDate); err != nil {
			errs["leaveDate"] = "invalid leaveDate format"
		}
	}

	if r.Password != nil {
		if l := len(*r.Password); l < minPasswordLen || l > maxPasswordLen {
			errs["password"] = "password length must be 8-72 characters"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateSubAccount(r subaccount.CreateRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	}
	if r.AccountID == 0 {
		errs["accountId"] = "accountId is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
