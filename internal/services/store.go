package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/melusi-muna/login-register-forms/internal/common"
	"github.com/melusi-muna/login-register-forms/internal/storage"
)

var timeNow = time.Now

// readJSON decodes the value under key into v. It reports false when the key
// is absent.
func readJSON(ctx context.Context, s storage.Store, key string, v any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: %s: %w", common.ErrCorruptedData, key, err)
	}
	return true, nil
}

func writeJSON(ctx context.Context, s storage.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
