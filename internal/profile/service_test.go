package profile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"risorte/internal/domain"
	apperrors "risorte/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRepository struct {
	GetFunc    func(ctx context.Context) ([]byte, error)
	SetFunc    func(ctx context.Context, payload []byte) error
	DeleteFunc func(ctx context.Context) error
}

func (m *mockRepository) Get(ctx context.Context) ([]byte, error) {
	return m.GetFunc(ctx)
}

func (m *mockRepository) Set(ctx context.Context, payload []byte) error {
	return m.SetFunc(ctx, payload)
}

func (m *mockRepository) Delete(ctx context.Context) error {
	return m.DeleteFunc(ctx)
}

// memoryRepository backs round-trip tests without a real store.
type memoryRepository struct {
	payload []byte
}

func (m *memoryRepository) Get(ctx context.Context) ([]byte, error) {
	if m.payload == nil {
		return nil, apperrors.NewNotFoundError("no profile record stored")
	}
	return m.payload, nil
}

func (m *memoryRepository) Set(ctx context.Context, payload []byte) error {
	m.payload = payload
	return nil
}

func (m *memoryRepository) Delete(ctx context.Context) error {
	m.payload = nil
	return nil
}

func TestService_LoadMissingRecordYieldsEmptyDefault(t *testing.T) {
	svc := NewService(&memoryRepository{}, zap.NewNop())

	p, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyProfile(), p)
}

func TestService_LoadCorruptRecordYieldsEmptyDefault(t *testing.T) {
	repo := &mockRepository{
		GetFunc: func(ctx context.Context) ([]byte, error) {
			return []byte("{not json"), nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	p, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyProfile(), p)
}

func TestService_LoadStorageFailurePropagates(t *testing.T) {
	repo := &mockRepository{
		GetFunc: func(ctx context.Context) ([]byte, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Load(context.Background())
	require.Error(t, err)

	_, ok := apperrors.IsInternalError(err)
	assert.True(t, ok)
}

func TestService_SaveLoadRoundTrip(t *testing.T) {
	svc := NewService(&memoryRepository{}, zap.NewNop())
	ctx := context.Background()

	saved := domain.Profile{
		Name:  "Maria",
		Phone: "+5511988887777",
		Email: "maria@example.com",
		Address: domain.Address{
			Street:       "Rua Exemplo, 123",
			Neighborhood: "Centro",
			City:         "São Paulo - SP",
			Complement:   "Ap 42",
		},
	}

	require.NoError(t, svc.Save(ctx, saved))

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestService_SaveOverwrites(t *testing.T) {
	svc := NewService(&memoryRepository{}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, domain.Profile{Name: "First", Phone: "1"}))
	require.NoError(t, svc.Save(ctx, domain.Profile{Name: "Second", Phone: "2"}))

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.Name)
}

func TestService_DeleteThenLoadYieldsEmptyDefault(t *testing.T) {
	svc := NewService(&memoryRepository{}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, domain.Profile{Name: "Maria", Phone: "1"}))
	require.NoError(t, svc.Delete(ctx))

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyProfile(), loaded)
}

func TestService_SaveWritesFullRecord(t *testing.T) {
	var written []byte
	repo := &mockRepository{
		SetFunc: func(ctx context.Context, payload []byte) error {
			written = payload
			return nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	require.NoError(t, svc.Save(context.Background(), domain.Profile{Name: "Maria", Phone: "1"}))

	var decoded domain.Profile
	require.NoError(t, json.Unmarshal(written, &decoded))
	assert.Equal(t, "Maria", decoded.Name)
}

func TestService_SaveStorageFailureIsInternalError(t *testing.T) {
	repo := &mockRepository{
		SetFunc: func(ctx context.Context, payload []byte) error {
			return errors.New("connection refused")
		},
	}
	svc := NewService(repo, zap.NewNop())

	err := svc.Save(context.Background(), domain.Profile{Name: "Maria"})
	require.Error(t, err)

	_, ok := apperrors.IsInternalError(err)
	assert.True(t, ok)
}
