package ports

import "duskpact/internal/domain/behavior"

// BargainMetrics counts the difficulty loop's externally visible outcomes.
type BargainMetrics interface {
	RecordObservation(trigger behavior.TriggerType)
	RecordCardsGenerated(n int)
	RecordAccept()
	RecordDecline()
	RecordRefresh()
}
