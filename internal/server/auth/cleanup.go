package auth

import (
	"context"
	"log/slog"
	"time"
)

// RunRevocationCleanup periodically purges expired denylist entries until ctx is done
func (s *Service) RunRevocationCleanup(ctx context.Context, interval time.Duration) {
	if s.revocations == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purgeRevocations(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Service) purgeRevocations(ctx context.Context) {
	n, err := s.revocations.DeleteExpiredRevocations(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to purge expired revocations", slog.Any("error", err))
		return
	}
	if n > 0 {
		s.logger.DebugContext(ctx, "Purged expired revocations", slog.Int("count", n))
	}
}
