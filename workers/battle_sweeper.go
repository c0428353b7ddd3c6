package workers

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"game-arena-backend/services"
)

// StartBattleSweeper runs a once-a-minute job that removes waiting battles
// older than ttl. Abandoned matchmaking records otherwise pile up forever,
// since the client only ever polls and never cleans up. The returned
// scheduler should be shut down with the server.
func StartBattleSweeper(battleService *services.BattleService, log *zap.Logger, ttl time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			n, err := battleService.SweepStale(ttl)
			if err != nil {
				log.Error("battle sweep failed", zap.Error(err))
				return
			}
			if n > 0 {
				log.Info("stale battles swept", zap.Int64("count", n))
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
