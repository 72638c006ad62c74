package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

// runRecorder persists what one run of a game produces: every rated level,
// the best stars per level, and the final score.
// A nil store turns every method into a no-op apart from logging.
type runRecorder struct {
	store      *storage.Store
	gameID     string
	runID      string
	logger     *log.Logger
	scoreSaved bool
}

func newRunRecorder(store *storage.Store, gameID string) *runRecorder {
	return &runRecorder{
		store:  store,
		gameID: gameID,
		runID:  storage.NewRunID(),
		logger: log.Default().With("game", gameID),
	}
}

// restart starts a new run.
func (r *runRecorder) restart() {
	r.runID = storage.NewRunID()
	r.scoreSaved = false
}

// record handles the result of one tick.
func (r *runRecorder) record(res core.StepResult) {
	for _, ev := range res.Events {
		r.logger.Debug(ev, "run", r.runID)
	}
	for _, lr := range res.Levels {
		r.saveLevel(lr)
	}

	// Save score on game over (once)
	if res.State.GameOver && !r.scoreSaved {
		r.scoreSaved = true
		r.logger.Info("run finished", "run", r.runID, "stars", res.State.Score)
		if r.store == nil || res.State.Score <= 0 {
			return
		}
		if _, err := r.store.SaveScore(r.gameID, res.State.Score); err != nil {
			r.logger.Warn("cannot save score", "err", err)
		}
	}
}

func (r *runRecorder) saveLevel(lr core.LevelResult) {
	r.logger.Info("level rated", "level", lr.Level+1, "category", lr.Category, "stars", lr.Stars)
	if r.store == nil {
		return
	}

	_, err := r.store.SaveLevelResult(storage.LevelResult{
		RunID:    r.runID,
		GameID:   r.gameID,
		Level:    lr.Level,
		Category: lr.Category,
		Stars:    lr.Stars,
		Found:    lr.Found,
		Total:    lr.Total,
	})
	if err != nil {
		r.logger.Warn("cannot save level result", "err", err)
	}

	if _, err := r.store.RaiseStars(r.gameID, lr.Level, lr.Stars); err != nil {
		r.logger.Warn("cannot save stars", "err", err)
	}
}
