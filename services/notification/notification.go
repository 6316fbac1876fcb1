package notification

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Service pushes events to the admin console's realtime feed.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Event is the typed payload consumed by the console's realtime hook.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// EventBuilder assembles a realtime event message.
type EventBuilder struct {
	event Event
}

func NewEventBuilder(eventType string) *EventBuilder {
	return &EventBuilder{event: Event{Type: eventType}}
}

func (b *EventBuilder) WithPayload(payload interface{}) *EventBuilder {
	b.event.Payload = payload
	return b
}

func (b *EventBuilder) Build() string {
	data, err := json.Marshal(b.event)
	if err != nil {
		return fmt.Sprintf(`{"type":%q}`, b.event.Type)
	}
	return string(data)
}
