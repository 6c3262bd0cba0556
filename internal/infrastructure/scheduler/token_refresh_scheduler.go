package scheduler

import (
	"context"
	"log"
	"time"

	"qpay_billing/internal/usecase"
)

// TokenRefreshScheduler invokes the token refresh use case on a
// fixed interval, in-process. A failed refresh is logged and the
// schedule continues; request-path calls re-authenticate on demand
// when the cache is stale, so a missed tick never blocks them.

type TokenRefreshScheduler struct {
	refresher usecase.ITokenRefreshUseCase
	interval  time.Duration
}

func NewTokenRefreshScheduler(refresher usecase.ITokenRefreshUseCase, interval time.Duration) *TokenRefreshScheduler {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &TokenRefreshScheduler{refresher: refresher, interval: interval}
}

// Start runs the refresh loop until ctx is cancelled. The first
// refresh happens immediately so the cache is warm before traffic.
func (s *TokenRefreshScheduler) Start(ctx context.Context) {
	go func() {
		if err := s.refresher.Refresh(ctx); err != nil {
			log.Printf("[token][scheduler] initial refresh failed err=%v", err)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Printf("[token][scheduler] stopped")
				return
			case <-ticker.C:
				if err := s.refresher.Refresh(ctx); err != nil {
					log.Printf("[token][scheduler] refresh failed err=%v", err)
				}
			}
		}
	}()
}
