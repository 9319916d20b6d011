package service

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	ierr "github.com/poolquote/poolquote/internal/errors"
)

// withRetry runs a persistence operation under a bounded exponential backoff
// and an overall timeout. Only database failures are retried; validation,
// not-found and version conflicts fail immediately.
func (p ServiceParams) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	timeout := p.Config.Retry.OperationTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	expo := backoff.NewExponentialBackOff()
	if p.Config.Retry.InitialInterval > 0 {
		expo.InitialInterval = p.Config.Retry.InitialInterval
	}
	maxAttempts := p.Config.Retry.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = 3
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(maxAttempts-1)), ctx)

	return backoff.Retry(func() error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if stderrors.Is(err, ierr.ErrDatabase) {
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}
