package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/JobHunter_Go/internal/event"
	"github.com/osse101/JobHunter_Go/internal/metrics"
	"github.com/osse101/JobHunter_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and attaches its subscribers:
// the metrics collector and the SSE bridge to hub
func InitializeEventSystem(hub *sse.Hub) (event.Bus, error) {
	bus := event.NewMemoryBus()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(hub, bus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)

	slog.Info(LogMsgEventSystemInitialized)
	return bus, nil
}
