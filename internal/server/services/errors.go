package services

import (
	"context"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/logging"
)

// internal logs err and hides it behind common.ErrorInternal.
func internal(ctx context.Context, l logging.Logger, op string, err error) error {
	l.Error(ctx, op+" failed", "error", err)
	return common.ErrorInternal
}
