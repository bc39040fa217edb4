package checkpoint

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store persists checkpoint states in a single bolt database. Each stream
// gets a bucket named by the raw 16 bytes of its uuid. Within a bucket,
// keys are the big endian leaf count, so bolt's byte order is the numeric
// order and the last cursor position is the latest checkpoint.
//
// A Store is safe for concurrent use; bolt serializes writers internally.
type Store struct {
	db    *bolt.DB
	log   *zap.Logger
	codec Codec
}

// OpenStore opens the bolt database at path, creating it as needed.
func OpenStore(path string, opts ...StoreOption) (*Store, error) {
	options := StoreOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.log == nil {
		options.log = zap.NewNop()
	}
	if options.codec == nil {
		codec, err := NewCodec()
		if err != nil {
			return nil, err
		}
		options.codec = &codec
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &Store{db: db, log: options.log, codec: *options.codec}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores state under its stream and leaf count, replacing any previous
// checkpoint at the same count. Stored states must carry their root; a
// checkpoint that cannot reproduce its own root is useless for recovery.
func (s *Store) Put(state State) error {
	id, err := state.streamUUID()
	if err != nil {
		return err
	}
	if len(state.Root) == 0 {
		return ErrStateRootMissing
	}

	value, err := s.codec.Marshal(state)
	if err != nil {
		return err
	}

	key := leafCountKey(state.LeafCount)
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(id[:])
		if err != nil {
			return err
		}
		return b.Put(key[:], value)
	})
	if err != nil {
		return err
	}

	s.log.Debug("checkpoint stored",
		zap.String("stream", id.String()),
		zap.Uint64("leafcount", state.LeafCount))
	return nil
}

// Get returns the checkpoint stored for streamID at exactly leafCount.
func (s *Store) Get(streamID uuid.UUID, leafCount uint64) (State, error) {
	var state State
	key := leafCountKey(leafCount)

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(streamID[:])
		if b == nil {
			return fmt.Errorf("%w: %s", ErrStreamNotFound, streamID)
		}
		value := b.Get(key[:])
		if value == nil {
			return fmt.Errorf(
				"%w: stream %s leaf count %d", ErrCheckpointNotFound, streamID, leafCount)
		}
		return s.codec.UnmarshalInto(value, &state)
	})
	if err != nil {
		return State{}, err
	}
	return state, nil
}

// Latest returns the checkpoint with the highest leaf count for streamID.
func (s *Store) Latest(streamID uuid.UUID) (State, error) {
	var state State

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(streamID[:])
		if b == nil {
			return fmt.Errorf("%w: %s", ErrStreamNotFound, streamID)
		}
		k, v := b.Cursor().Last()
		if k == nil {
			return fmt.Errorf("%w: stream %s is empty", ErrCheckpointNotFound, streamID)
		}
		return s.codec.UnmarshalInto(v, &state)
	})
	if err != nil {
		return State{}, err
	}

	s.log.Debug("latest checkpoint",
		zap.String("stream", streamID.String()),
		zap.Uint64("leafcount", state.LeafCount))
	return state, nil
}

// Streams enumerates the stream identities present in the store.
func (s *Store) Streams() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			id, err := uuid.FromBytes(name)
			if err != nil {
				return fmt.Errorf("%w: bucket %x", ErrStreamIDInvalid, name)
			}
			ids = append(ids, id)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func leafCountKey(leafCount uint64) [8]byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], leafCount)
	return key
}
