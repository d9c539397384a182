package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/melusi-muna/login-register-forms/internal/storage"
)

var fixedNow = time.Date(2024, 5, 17, 9, 30, 15, 123456789, time.UTC)

func useFixedClock(t *testing.T) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = orig })
}

// failingStore fails Get and/or Set with err.
type failingStore struct {
	storage.Store
	getErr error
	setErr error
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

var errDiskFull = errors.New("disk full")
