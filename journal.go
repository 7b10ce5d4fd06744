package registry

import (
	"log"
	"time"

	"github.com/viant/afs"
	"github.com/viant/registry/config"
	"github.com/viant/registry/contract"
	"github.com/viant/registry/entry"
	"github.com/viant/tapper/io/encoder"
	tlog "github.com/viant/tapper/log"
	"github.com/viant/tapper/msg"
	tjson "github.com/viant/tapper/msg/json"
)

const (
	eventRegister   = "register"
	eventConstruct  = "construct"
	eventRemove     = "remove"
	eventDetach     = "detach"
	eventReplace    = "replace"
	eventUnregister = "unregister"
)

// Event is a single lifecycle journal record.
type Event struct {
	ID    string
	Op    string
	Key   string
	Kind  string
	Alive bool
	Type  string
	Time  string
}

// journal streams lifecycle events when a stream is configured; otherwise
// every call is a no-op.
type journal struct {
	id          string
	logger      *tlog.Logger
	msgProvider *msg.Provider
	encProvider *encoder.Provider
}

func (j *journal) log(op string, key contract.Key, managed *entry.Managed) {
	if j == nil || j.logger == nil {
		return
	}
	event := &Event{
		ID:    j.id,
		Op:    op,
		Key:   key.String(),
		Kind:  managed.Kind().String(),
		Alive: managed.IsAlive(),
		Type:  managed.Type().String(),
		Time:  time.Now().UTC().Format(time.RFC3339),
	}
	if j.encProvider == nil {
		encProvider, err := encoder.New(event)
		if err != nil {
			log.Printf("failed to journal %v due to: %v", op, err)
			return
		}
		j.encProvider = encProvider
	}
	message := j.msgProvider.NewMessage()
	enc := j.encProvider.New(event)
	enc.Encode(message)
	if err := j.logger.Log(message); err != nil {
		log.Printf("failed to journal %v due to: %v", op, err)
	}
	message.Free()
}

func (j *journal) Close() error {
	if j == nil || j.logger == nil {
		return nil
	}
	logger := j.logger
	j.logger = nil
	return logger.Close()
}

func newJournal(cfg *config.Config) (*journal, error) {
	ret := &journal{id: cfg.ID}
	if cfg.Stream == nil {
		return ret, nil
	}
	logger, err := tlog.New(cfg.Stream, cfg.ID, afs.New())
	if err != nil {
		return nil, err
	}
	ret.logger = logger
	ret.msgProvider = msg.NewProvider(cfg.MaxMessageSize, cfg.Concurrency, tjson.New)
	return ret, nil
}
