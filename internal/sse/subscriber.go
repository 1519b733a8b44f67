package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/JobHunter_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the bridge for every tracker event type
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.handle)
	slog.Info(LogMsgSubscriberReady, "types", event.AllTypes)
}

// handle reshapes the payloads the UI renders directly and forwards the rest as published.
// It never fails: a dropped stream message must not fail the tracker operation.
func (s *Subscriber) handle(_ context.Context, evt event.Event) error {
	payload, err := ssePayload(evt)
	if err != nil {
		slog.Warn(LogMsgPayloadDecode, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}

func ssePayload(evt event.Event) (interface{}, error) {
	switch evt.Type {
	case event.LevelUp:
		p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		return LevelUpPayload{OldLevel: p.OldLevel, NewLevel: p.NewLevel, Title: p.Title}, nil

	case event.AchievementUnlocked:
		p, err := event.DecodePayload[event.AchievementUnlockedPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		a := p.Achievement
		return AchievementPayload{ID: a.ID, Title: a.Title, Description: a.Description, Icon: a.Icon}, nil

	case event.StateChanged:
		p, err := event.DecodePayload[event.StateChangedPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		return StatePayload{Operation: p.Operation, Revision: p.Revision, State: p.State}, nil

	default:
		return evt.Payload, nil
	}
}
