package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Tanvir1407/metb/internal/domain/subaccount"
)

type fakeSubAccountRepo struct {
	nextID  uint64
	records map[domain.ID]*domain.SubAccount
	updates int
}

func newFakeSubAccountRepo() *fakeSubAccountRepo {
	return &fakeSubAccountRepo{records: make(map[domain.ID]*domain.SubAccount)}
}

func (f *fakeSubAccountRepo) seed(name string, locked bool) *domain.SubAccount {
	f.nextID++
	sa := &domain.SubAccount{
		ID:        domain.ID(f.nextID),
		Name:      name,
		AccountID: 1,
		IsLocked:  locked,
		Status:    true,
	}
	f.records[sa.ID] = sa
	return sa
}

func (f *fakeSubAccountRepo) FetchAll(ctx context.Context) (domain.SubAccounts, error) {
	var sas domain.SubAccounts
	for _, sa := range f.records {
		sas = append(sas, sa)
	}
	return sas, nil
}

func (f *fakeSubAccountRepo) SearchByName(ctx context.Context, key string, skip, limit int) (domain.SubAccounts, int64, error) {
	sas, _ := f.FetchAll(ctx)
	return sas, int64(len(sas)), nil
}

func (f *fakeSubAccountRepo) FetchPageByStatus(ctx context.Context, status bool, skip, limit int) (domain.SubAccounts, int64, error) {
	sas, _ := f.FetchAll(ctx)
	return sas, int64(len(sas)), nil
}

func (f *fakeSubAccountRepo) FetchByID(ctx context.Context, id domain.ID) (*domain.SubAccount, error) {
	return f.records[id], nil
}

func (f *fakeSubAccountRepo) Create(ctx context.Context, req domain.SubAccount) (*domain.SubAccount, error) {
	f.nextID++
	sa := req
	sa.ID = domain.ID(f.nextID)
	f.records[sa.ID] = &sa
	return &sa, nil
}

func (f *fakeSubAccountRepo) Update(ctx context.Context, id domain.ID, req domain.Update) (*domain.SubAccount, error) {
	sa, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	f.updates++
	if req.Name != nil {
		sa.Name = *req.Name
	}
	return sa, nil
}

func (f *fakeSubAccountRepo) SetStatus(ctx context.Context, id domain.ID, status bool) (*domain.SubAccount, error) {
	sa, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	sa.Status = status
	return sa, nil
}

func newSubAccountServiceForTest(repo *fakeSubAccountRepo) *SubAccountService {
	svc := NewSubAccountService(repo, newFakeRabbitMQ(), newTestCounter())
	return svc.(*SubAccountService)
}

func TestSubAccountService_UpdateSubAccount(t *testing.T) {
	ctx := context.Background()
	name := "Petty Cash"

	t.Run("locked entry rejects updates", func(t *testing.T) {
		repo := newFakeSubAccountRepo()
		locked := repo.seed("Opening Balance", true)
		svc := newSubAccountServiceForTest(repo)

		sa, err := svc.UpdateSubAccount(ctx, locked.ID, domain.Update{Name: &name})
		require.ErrorIs(t, err, ErrSubAccountLocked)
		assert.Nil(t, sa)
		assert.Zero(t, repo.updates)
	})

	t.Run("unlocked entry updates", func(t *testing.T) {
		repo := newFakeSubAccountRepo()
		open := repo.seed("Cash", false)
		svc := newSubAccountServiceForTest(repo)

		sa, err := svc.UpdateSubAccount(ctx, open.ID, domain.Update{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, sa.Name)
	})

	t.Run("missing entry", func(t *testing.T) {
		svc := newSubAccountServiceForTest(newFakeSubAccountRepo())

		sa, err := svc.UpdateSubAccount(ctx, 42, domain.Update{Name: &name})
		require.ErrorIs(t, err, ErrSubAccountNotFound)
		assert.Nil(t, sa)
	})
}

func TestSubAccountService_SetSubAccountStatus(t *testing.T) {
	ctx := context.Background()

	repo := newFakeSubAccountRepo()
	locked := repo.seed("Opening Balance", true)
	open := repo.seed("Cash", false)
	svc := newSubAccountServiceForTest(repo)

	_, err := svc.SetSubAccountStatus(ctx, locked.ID, false)
	require.ErrorIs(t, err, ErrSubAccountLocked)
	assert.True(t, repo.records[locked.ID].Status)

	sa, err := svc.SetSubAccountStatus(ctx, open.ID, false)
	require.NoError(t, err)
	assert.False(t, sa.Status)
}
