package kafka

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/wire"
)

// Event types carried on the block topic.
const (
	EventAppend   = "append"
	EventRollback = "rollback"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event is one message of the block topic. Transactions is empty for rollbacks.
type Event struct {
	Type         string             `json:"type"`
	Tip          wire.Tip           `json:"tip"`
	Transactions []wire.Transaction `json:"transactions,omitempty"`
}

func decodeEvent(value []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(value, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	switch ev.Type {
	case EventAppend, EventRollback:
		return ev, nil
	default:
		return Event{}, fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// EncodeEvent renders an event the way the consumer expects it.
func EncodeEvent(ev Event) ([]byte, error) {
	return json.Marshal(ev)
}
