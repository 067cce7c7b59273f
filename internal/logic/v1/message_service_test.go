package v1

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edziennik/school-backend/internal/core/domain"
)

type fakeMessageRepo struct {
	created    []domain.Message
	lastFilter domain.MessageFilter
	err        error
}

func (f *fakeMessageRepo) Create(_ context.Context, m domain.Message) (*domain.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	m.ID = len(f.created) + 1
	f.created = append(f.created, m)
	return &m, nil
}

func (f *fakeMessageRepo) List(_ context.Context, filter domain.MessageFilter) ([]domain.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	return f.created, nil
}

func TestSendFillsSender(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewMessageService(repo)

	created, err := svc.Send(context.Background(), domain.Message{Content: "hello"}, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, created.FromID)

	// An explicit sender is kept as-is.
	created, err = svc.Send(context.Background(), domain.Message{FromID: 3, Content: "hi"}, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, created.FromID)
}

func TestListDefaultsToOwnMessages(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewMessageService(repo)

	_, err := svc.List(context.Background(), domain.MessageFilter{}, 7)
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.FromID)
	assert.Equal(t, 7, *repo.lastFilter.FromID)

	// Any explicit filter disables the default.
	className := "4a"
	_, err = svc.List(context.Background(), domain.MessageFilter{ClassName: &className}, 7)
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter.FromID)
}

func TestMessageStorageErrors(t *testing.T) {
	repo := &fakeMessageRepo{err: errors.New("connection refused")}
	svc := NewMessageService(repo)

	_, err := svc.Send(context.Background(), domain.Message{Content: "hello"}, 7)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.List(context.Background(), domain.MessageFilter{}, 7)
	assert.ErrorIs(t, err, ErrInternal)
}
