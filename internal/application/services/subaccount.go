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
	domain "github.com/Tanvir1407/metb/internal/domain/subaccount"
	"github.com/Tanvir1407/metb/internal/infrastructure/mq"
)

var (
	ErrSubAccountNotFound = errors.New("Sub account not found!")
	ErrSubAccountLocked   = errors.New("This sub account is locked")
)

type SubAccountService struct {
	subAccountRepository domain.Repository
	mq                   ports.RabbitMQ
	mCounter             *prometheus.CounterVec
}

func NewSubAccountService(
	subAccountRepository domain.Repository,
	rabbitMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.SubAccountService {
	return &SubAccountService{
		subAccountRepository: subAccountRepository,
		mq:                   rabbitMQ,
		mCounter:             mCounter,
	}
}

func (ss *SubAccountService) FindAllSubAccounts(ctx context.Context) (domain.SubAccounts, error) {
	return ss.subAccountRepository.FetchAll(ctx)
}

func (ss *SubAccountService) SearchSubAccounts(ctx context.Context, key string, skip, limit int) (domain.SubAccounts, int64, error) {
	return ss.subAccountRepository.SearchByName(ctx, key, skip, limit)
}

func (ss *SubAccountService) FindSubAccountsByStatus(ctx context.Context, status bool, skip, limit int) (domain.SubAccounts, int64, error) {
	return ss.subAccountRepository.FetchPageByStatus(ctx, status, skip, limit)
}

func (ss *SubAccountService) FindSubAccountByID(ctx context.Context, id domain.ID) (*domain.SubAccount, error) {
	return ss.subAccountRepository.FetchByID(ctx, id)
}

func (ss *SubAccountService) CreateSubAccount(ctx context.Context, sa domain.SubAccount) (*domain.SubAccount, error) {
	saRet, err := ss.subAccountRepository.Create(ctx, sa)
	if err != nil {
		return nil, err
	}

	ss.publish(http.MethodPost, saRet)
	ss.mCounter.WithLabelValues("sub_account_created_total").Inc()

	return saRet, nil
}

// UpdateSubAccount rejects changes to a locked ledger entry.
func (ss *SubAccountService) UpdateSubAccount(ctx context.Context, id domain.ID, req domain.Update) (*domain.SubAccount, error) {
	current, err := ss.subAccountRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrSubAccountNotFound
	}
	if current.IsLocked {
		return nil, ErrSubAccountLocked
	}

	saRet, err := ss.subAccountRepository.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if saRet == nil {
		return nil, ErrSubAccountNotFound
	}

	ss.publish(http.MethodPut, saRet)
	ss.mCounter.WithLabelValues("sub_account_updated_total").Inc()

	return saRet, nil
}

func (ss *SubAccountService) SetSubAccountStatus(ctx context.Context, id domain.ID, status bool) (*domain.SubAccount, error) {
	current, err := ss.subAccountRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrSubAccountNotFound
	}
	if current.IsLocked {
		return nil, ErrSubAccountLocked
	}

	saRet, err := ss.subAccountRepository.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if saRet == nil {
		return nil, ErrSubAccountNotFound
	}

	ss.publish(http.MethodDelete, saRet)
	ss.mCounter.WithLabelValues("sub_account_status_updated_total").Inc()

	return saRet, nil
}

func (ss *SubAccountService) publish(action string, sa *domain.SubAccount) {
	ss.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		Entity:   "subAccount",
		EntityID: fmt.Sprintf("%d", sa.ID),
		Payload:  sa.Name,
	}
}
