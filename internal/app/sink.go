package app

import "snake/internal/domain"

// The App is the game's event sink. Notifications arrive on the loop
// goroutine while the game is mid-call, so nothing here calls back in.

func (a *App) NotifyScore(score int) {
	a.hudMu.Lock()
	a.hud.Score = score
	a.hudMu.Unlock()

	for _, sink := range a.sinks {
		sink.NotifyScore(score)
	}
	a.runLog.Debug().Int("score", score).Msg("score")
	a.publish(AppEvent{Type: AppEventScore, Payload: score})
}

func (a *App) NotifyPeriod(period int) {
	a.hudMu.Lock()
	a.hud.Period = period
	a.hudMu.Unlock()

	a.sched.SetPeriod(period)
	for _, sink := range a.sinks {
		sink.NotifyPeriod(period)
	}
	a.runLog.Debug().Int("period_ms", period).Msg("speed up")
	a.publish(AppEvent{Type: AppEventPeriod, Payload: period})
}

func (a *App) NotifyGameOver(cause domain.Cause) {
	a.hudMu.Lock()
	a.hud.Status = domain.StatusGameOver
	a.hud.Cause = cause
	score := a.hud.Score
	a.hudMu.Unlock()

	a.sched.Pause()
	for _, sink := range a.sinks {
		sink.NotifyGameOver(cause)
	}
	a.runLog.Info().Stringer("cause", cause).Int("score", score).Bool("win", cause.Win()).Msg("game over")
	a.publish(AppEvent{Type: AppEventGameOver, Payload: cause})
}
