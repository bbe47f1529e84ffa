package reset

import (
	"context"
	"log"

	"duskpact/internal/app/negotiate"
	"duskpact/internal/app/ports"
	"duskpact/internal/app/telemetry"
	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/combat"
)

// UseCase performs the new-game reset: canonical stats restored, ledger
// zeroed, profile trimmed to the preserved triggers, and every piece of
// negotiation bookkeeping dropped.
type UseCase struct {
	Ledger     *bargain.Ledger
	LedgerRepo ports.LedgerRepository
	Registry   *combat.Registry
	Player     *combat.Combatant
	Recorder   *telemetry.Recorder
	Generator  *negotiate.Generator
}

func (u UseCase) Execute(ctx context.Context) {
	if u.Player != nil && u.Registry != nil {
		if baseline, ok := u.Registry.Baseline(u.Player.Name); ok {
			*u.Player = baseline
		} else {
			log.Printf("reset: no baseline for player %q, stats left as-is", u.Player.Name)
		}
	}

	u.Ledger.Reset()
	if u.LedgerRepo != nil {
		if err := u.LedgerRepo.Save(ctx, u.Ledger.Values()); err != nil {
			log.Printf("reset: ledger save failed: %v", err)
		}
	}

	if u.Recorder != nil {
		u.Recorder.ResetForNewGame(ctx)
	}
	if u.Generator != nil {
		u.Generator.Reset()
	}
}
