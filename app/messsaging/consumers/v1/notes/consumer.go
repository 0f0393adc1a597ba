package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/notes-api/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)

// Consumer applies note events to the note service
type Consumer struct {
	Notes *note.Service
	Log   *zap.SugaredLogger
}

// Consume receives until ctx is done, handling at most maxWorkers messages at once.
// Every message is acked, failures are only logged.
func (c Consumer) Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan struct{}, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			c.Log.Infof("message received: %s", string(m.Body))
			if err := c.Handle(ctx, m.Body); err != nil {
				c.Log.Errorw("consume", "body", string(m.Body), "ERROR", err)
			}
		}(message)
	}

	// wait for in flight messages
	for w := 0; w < maxWorkers; w++ {
		workers <- struct{}{}
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Handle applies one event body
func (c Consumer) Handle(ctx context.Context, body []byte) error {
	var e struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case EventCreate:
		var n note.NewNote
		if err := json.Unmarshal(e.Data, &n); err != nil {
			return fmt.Errorf("failed to parse %s event: %w", e.Type, err)
		}
		created, err := c.Notes.Create(ctx, n)
		if err != nil {
			return fmt.Errorf("failed to create note %q: %w", n.Title, err)
		}
		c.Log.Infow("consume", "event", e.Type, "id", created.Id)
	case EventUpdate:
		var u note.UpdateNote
		if err := json.Unmarshal(e.Data, &u); err != nil {
			return fmt.Errorf("failed to parse %s event: %w", e.Type, err)
		}
		if _, err := c.Notes.Update(ctx, u); err != nil {
			return fmt.Errorf("failed to update note %s: %w", u.Id, err)
		}
		c.Log.Infow("consume", "event", e.Type, "id", u.Id)
	case EventDelete:
		var d struct {
			Id string `json:"id"`
		}
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return fmt.Errorf("failed to parse %s event: %w", e.Type, err)
		}
		if _, err := c.Notes.Delete(ctx, d.Id); err != nil {
			return fmt.Errorf("failed to delete note %s: %w", d.Id, err)
		}
		c.Log.Infow("consume", "event", e.Type, "id", d.Id)
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}
