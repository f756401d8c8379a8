package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/shopfront/shopfront-backend/internal/session"
	"github.com/shopfront/shopfront-backend/pkg/logger"
)

// SessionPruner periodically drops expired sessions from the in-memory
// store. The Redis store expires entries on its own and does not need one.
type SessionPruner struct {
	cron  *cron.Cron
	store *session.MemoryStore
}

func NewSessionPruner(store *session.MemoryStore) *SessionPruner {
	return &SessionPruner{
		cron:  cron.New(),
		store: store,
	}
}

// Start schedules pruning every 15 minutes.
func (s *SessionPruner) Start() error {
	_, err := s.cron.AddFunc("*/15 * * * *", func() {
		removed := s.store.Prune()
		if removed > 0 {
			logger.Info("Pruned expired sessions", map[string]interface{}{
				"removed":   removed,
				"remaining": s.store.Len(),
			})
		}
	})
	if err != nil {
		logger.Error("Failed to add cron job for session pruning", err, nil)
		return err
	}

	s.cron.Start()
	logger.Info("Session pruner started (every 15 minutes)", nil)

	return nil
}

func (s *SessionPruner) Stop() {
	s.cron.Stop()
	logger.Info("Session pruner stopped", nil)
}
