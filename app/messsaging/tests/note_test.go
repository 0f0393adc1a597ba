package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-api/app/messsaging/consumers/v1/notes"
	"github.com/ribgsilva/notes-api/business/v1/note"
	pnote "github.com/ribgsilva/notes-api/persistence/v1/note"
	"github.com/ribgsilva/notes-api/persistence/v1/schema"
	puser "github.com/ribgsilva/notes-api/persistence/v1/user"
	"github.com/ribgsilva/notes-api/platform/env"
	"github.com/ribgsilva/notes-api/platform/logger"
	"github.com/ribgsilva/notes-api/sys"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"testing"
	"time"

	_ "github.com/proullon/ramsql/driver"
)

type NoteTests struct {
	topic  *pubsub.Topic
	notes  *note.Service
	userId string
}

func TestNote(t *testing.T) {
	log, err := logger.New("Notes-Messaging-Tests")
	if err != nil {
		t.Fatal(err)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// mysql
	var db *sql.DB
	if err := func() error {
		ramDb, err := sql.Open("ramsql", "NotesMessagingTest")
		if err != nil {
			return fmt.Errorf("error to connecto to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := ramDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = ramDb
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// redis
	rdb := redis.NewClient(&redis.Options{Addr: sys.Configs.Cache.ConnectionURL})
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background(), db, "ramsql"); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background(), db)

	usersStore := puser.NewRepository(db, rdb, log)
	noteService := note.NewService(pnote.NewRepository(db, rdb, log), usersStore, log)

	owner, err := usersStore.Insert(context.Background(), puser.NewUser{Username: "dave"})
	if err != nil {
		t.Fatalf("insert user: %s", err)
	}

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	withCancel, cancelFunc := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		consumer := notes.Consumer{Notes: noteService, Log: log}
		done <- consumer.Consume(withCancel, subscription, 2)
	}()

	defer func() {
		cancelFunc()
		if err := <-done; err != nil {
			t.Errorf("listener error: %s", err)
		}

		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()

		_ = subscription.Shutdown(stdCtx)
	}()

	// =======================================================================================================
	// Run tests

	noteTests := NoteTests{topic: topic, notes: noteService, userId: owner.Id}

	noteTests.testCrud(t)
}

func (nt *NoteTests) testCrud(t *testing.T) {
	created := nt.testCreate(t)
	nt.testUpdate(t, created)
	nt.testDelete(t, created)
}

func (nt *NoteTests) send(t *testing.T, eventType string, data any) {
	b, err := json.Marshal(note.Event{Type: eventType, Data: data})
	if err != nil {
		t.Fatalf("marshal event: %s", err)
	}
	if err := nt.topic.Send(context.Background(), &pubsub.Message{Body: b}); err != nil {
		t.Fatalf("send event: %s", err)
	}
}

// eventually polls cond until it holds or the deadline passes
func eventually(t *testing.T, name string, cond func() bool) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("Test %s: condition not met in time", name)
}

func (nt *NoteTests) list() []note.WithUser {
	l, err := nt.notes.List(context.Background())
	if err != nil {
		return nil
	}
	return l
}

func (nt *NoteTests) testCreate(t *testing.T) string {
	// an unknown event is acked and dropped
	nt.send(t, "archive", map[string]string{"id": "any"})
	nt.send(t, notes.EventCreate, note.NewNote{User: nt.userId, Title: "Shopping", Text: "milk"})

	eventually(t, "testCreate", func() bool {
		return len(nt.list()) == 1
	})

	got := nt.list()[0]
	if got.Title != "Shopping" || got.Text != "milk" || got.Completed {
		t.Fatalf("Test testCreate: unexpected note stored: %+v", got)
	}
	if got.Username != "dave" {
		t.Fatalf("Test testCreate: Should have received \"dave\" as username: %v", got.Username)
	}
	return got.Id
}

func (nt *NoteTests) testUpdate(t *testing.T, id string) {
	completed := true
	nt.send(t, notes.EventUpdate, note.UpdateNote{
		Id: id, User: nt.userId, Title: "Shopping List", Text: "milk, eggs", Completed: &completed,
	})

	eventually(t, "testUpdate", func() bool {
		n, err := nt.notes.Find(context.Background(), id)
		return err == nil && n.Title == "Shopping List" && n.Completed
	})
}

func (nt *NoteTests) testDelete(t *testing.T, id string) {
	nt.send(t, notes.EventDelete, map[string]string{"id": id})

	eventually(t, "testDelete", func() bool {
		_, err := nt.notes.List(context.Background())
		return errors.Is(err, note.ErrNoNotes)
	})
}
