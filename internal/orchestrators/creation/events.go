package creation

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"
)

// Lifecycle events published on the event bus
const (
	EventSessionCreated       = "chargen.session.created"
	EventAbilityScoresRolled  = "chargen.ability_scores.rolled"
	EventAbilityScoreAssigned = "chargen.ability_score.assigned"
	EventRacialBonusApplied   = "chargen.racial_bonus.applied"
	EventCharacterCreated     = "chargen.character.created"
	EventCharacterDeleted     = "chargen.character.deleted"
)

// EventTypes lists every lifecycle event
var EventTypes = []string{
	EventSessionCreated,
	EventAbilityScoresRolled,
	EventAbilityScoreAssigned,
	EventRacialBonusApplied,
	EventCharacterCreated,
	EventCharacterDeleted,
}

// SubscribeEventLogger logs every lifecycle event at debug level and returns
// the subscription ids
func SubscribeEventLogger(bus events.EventBus, logger *zap.Logger) []string {
	logger = logger.Named("events")
	ids := make([]string, 0, len(EventTypes))
	for _, eventType := range EventTypes {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, func(_ context.Context, event events.Event) error {
			fields := []zap.Field{zap.String("event", event.Type())}
			if src := event.Source(); src != nil {
				fields = append(fields, zap.String("source_type", src.GetType()), zap.String("source_id", src.GetID()))
			}
			logger.Debug("lifecycle event", fields...)
			return nil
		}))
	}
	return ids
}

// publish sends an event and logs delivery failures. Handlers never fail the
// operation that raised the event.
func (o *Orchestrator) publish(ctx context.Context, eventType string, source core.Entity, data map[string]interface{}) {
	event := events.NewGameEvent(eventType, source, nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}
	if err := o.eventBus.Publish(ctx, event); err != nil {
		o.logger.Warn("failed to publish event",
			zap.String("event", eventType),
			zap.Error(err),
		)
	}
}
