package ops

import (
	"context"

	"github.com/hpungsan/rig/internal/errors"
)

// ClearOutput contains the result of the Clear operation.
type ClearOutput struct {
	Cleared int `json:"cleared"`
}

// Clear empties every slot of the build.
func (s *Session) Clear(ctx context.Context) *ClearOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.sel.Filled()
	s.sel.ClearAll()

	if s.store != nil {
		if err := s.store.Reset(ctx, s.key); err != nil {
			if !errors.Is(err, errors.ErrPersistenceWriteFailure) {
				err = errors.NewPersistenceWrite(err)
			}
			s.logger.Warn("reset failed", "error", err)
		}
	}
	s.logger.Debug("build cleared", "slots", n)
	return &ClearOutput{Cleared: n}
}
