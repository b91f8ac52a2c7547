package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type BloomRepository struct {
	mock.Mock
}

func (_m *BloomRepository) Add(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	ret := _m.Called(ctx, ids)
	return ret.Error(0)
}

type AssetReleaser struct {
	mock.Mock
}

func (_m *AssetReleaser) Release(ctx context.Context, publicID string) error {
	ret := _m.Called(ctx, publicID)
	return ret.Error(0)
}

type Mailer struct {
	mock.Mock
}

func (_m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	ret := _m.Called(ctx, to, subject, body)
	return ret.Error(0)
}

type CounterReconciler struct {
	mock.Mock
}

func (_m *CounterReconciler) Start(ctx context.Context) {
	_m.Called(ctx)
}

func (_m *CounterReconciler) Trigger() {
	_m.Called()
}
