package engine

import (
	"context"

	"github.com/nk-nigeria/blackjack-solo/entity"
	"github.com/qmuntal/stateless"
)

const (
	triggerDeal       = "TriggerDeal"
	triggerPlayerWin  = "TriggerPlayerWin"
	triggerDealerWin  = "TriggerDealerWin"
	triggerPush       = "TriggerPush"
	triggerPlayerBust = "TriggerPlayerBust"
	triggerDealerBust = "TriggerDealerBust"
)

var outcomeTriggers = map[stateless.Trigger]entity.GameStatus{
	triggerPlayerWin:  entity.StatusPlayerWin,
	triggerDealerWin:  entity.StatusDealerWin,
	triggerPush:       entity.StatusPush,
	triggerPlayerBust: entity.StatusPlayerBust,
	triggerDealerBust: entity.StatusDealerBust,
}

func triggerFor(status entity.GameStatus) stateless.Trigger {
	for trig, dst := range outcomeTriggers {
		if dst == status {
			return trig
		}
	}
	return triggerDeal
}

// newStatusMachine configures the round lifecycle:
// waiting -> playing -> {player_win, dealer_win, push, player_bust, dealer_bust}.
// Outcome triggers stay legal from terminal statuses because the legacy
// rules let a caller keep acting on a closed round; the status simply
// follows whatever the last action resolved to. Anything else is
// swallowed, not errored.
func newStatusMachine() *stateless.StateMachine {
	m := stateless.NewStateMachine(entity.StatusWaiting)

	m.Configure(entity.StatusWaiting).
		Permit(triggerDeal, entity.StatusPlaying)

	playing := m.Configure(entity.StatusPlaying)
	for trig, dst := range outcomeTriggers {
		playing.Permit(trig, dst)
	}

	for _, status := range outcomeTriggers {
		cfg := m.Configure(status)
		for trig, dst := range outcomeTriggers {
			if dst == status {
				cfg.PermitReentry(trig)
			} else {
				cfg.Permit(trig, dst)
			}
		}
	}

	m.OnUnhandledTrigger(func(_ context.Context, _ stateless.State, _ stateless.Trigger, _ []string) error {
		return nil
	})
	return m
}
