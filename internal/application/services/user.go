package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Tanvir1407/metb/internal/application/ports"
	domain "github.com/Tanvir1407/metb/internal/domain/user"
	"github.com/Tanvir1407/metb/internal/infrastructure/mq"
)

var (
	ErrUserNotFound         = errors.New("User not found!")
	ErrAssignSuperAdmin     = errors.New("You can not change the role to super admin")
	ErrChangeSuperAdminRole = errors.New("You can not change super admin role")
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	rabbitMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             rabbitMQ,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindActiveUsers(ctx context.Context) (domain.Users, error) {
	return us.userRepository.FetchActiveUsers(ctx)
}

func (us *UserService) SearchActiveUsers(ctx context.Context, key string, skip, limit int) (domain.Users, int64, error) {
	return us.userRepository.SearchActiveUsers(ctx, key, skip, limit)
}

func (us *UserService) FindUsersByStatus(ctx context.Context, status bool, skip, limit int) (domain.Users, int64, error) {
	return us.userRepository.FetchUsersByStatus(ctx, status, skip, limit)
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return us.userRepository.FetchUserByID(ctx, id)
}

func (us *UserService) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return us.userRepository.FetchUserByUsername(ctx, username)
}

func (us *UserService) RegisterUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.publish(http.MethodPost, uRet)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

// UpdateUser enforces the super-admin role invariant before any field
// change, then applies the update transactionally.
func (us *UserService) UpdateUser(ctx context.Context, id domain.ID, req domain.Update) (*domain.User, error) {
	current, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrUserNotFound
	}

	if req.RoleID != nil && *req.RoleID == domain.SuperAdminRoleID {
		return nil, ErrAssignSuperAdmin
	}
	if current.RoleID == domain.SuperAdminRoleID && req.RoleID != nil {
		return nil, ErrChangeSuperAdminRole
	}

	uRet, err := us.userRepository.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, ErrUserNotFound
	}

	us.publish(http.MethodPut, uRet)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) MarkLogin(ctx context.Context, id domain.ID, refreshToken string) (*domain.User, error) {
	u, err := us.userRepository.SetLoginState(ctx, id, true, &refreshToken)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	return u, nil
}

func (us *UserService) MarkLogout(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.SetLoginState(ctx, id, false, nil)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	return u, nil
}

// SetUserStatus is the soft delete: a status flip, no row removal and
// no reference checks.
func (us *UserService) SetUserStatus(ctx context.Context, id domain.ID, status bool) (*domain.User, error) {
	u, err := us.userRepository.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	us.publish(http.MethodDelete, u)
	us.mCounter.WithLabelValues("user_status_updated_total").Inc()

	return u, nil
}

func (us *UserService) publish(action string, u *domain.User) {
	us.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		Entity:   "user",
		EntityID: fmt.Sprintf("%d", u.ID),
		Payload:  u.Username,
	}
}
