package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/youcisla/streamsub/internal/models"
)

const (
	dbFileMode = 0600
	dbDirMode  = 0755

	defaultDBFile = "streamsub.db"
)

var (
	bucketStreams  = []byte("streams")
	bucketCreators = []byte("creators")
	bucketHandles  = []byte("handles")
)

// BoltStore implements Store on top of a bbolt database.
type BoltStore struct {
	db *bolt.DB
}

// NewBolt opens (or creates) the bolt database at dbPath.
func NewBolt(dbPath string) (*BoltStore, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, dbFileMode, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketStreams, bucketCreators, bucketHandles} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func streamKey(platform models.Platform, id string) []byte {
	return []byte(string(platform) + "|" + id)
}

func handleKey(creatorID string, platform models.Platform) []byte {
	return []byte(creatorID + "|" + string(platform))
}

// ListLive returns live records for a platform ordered by viewer count then
// start time, both descending, capped at limit.
func (s *BoltStore) ListLive(platform models.Platform, category string, limit int) ([]LiveStream, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	prefix := []byte(string(platform) + "|")

	var streams []LiveStream
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketStreams).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var rec LiveStream
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("corrupt live record %q: %w", k, err)
			}
			if category != "" && strings.ToLower(rec.Category) != category {
				continue
			}
			streams = append(streams, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list live streams: %w", err)
	}

	sort.SliceStable(streams, func(i, j int) bool {
		if streams[i].ViewerCount != streams[j].ViewerCount {
			return streams[i].ViewerCount > streams[j].ViewerCount
		}
		return startedAtOrZero(streams[i].StartedAt).After(startedAtOrZero(streams[j].StartedAt))
	})

	if limit > 0 && len(streams) > limit {
		streams = streams[:limit]
	}
	return streams, nil
}

// ReplaceLive swaps out a platform's live set in a single transaction.
func (s *BoltStore) ReplaceLive(platform models.Platform, streams []LiveStream) error {
	prefix := []byte(string(platform) + "|")

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketStreams)

		c := b.Cursor()
		var stale [][]byte
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			stale = append(stale, append([]byte(nil), k...))
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		for _, rec := range streams {
			rec.Platform = platform
			rec.UpdatedAt = now
			data, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			if err := b.Put(streamKey(platform, rec.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace live set for %s: %w", platform, err)
	}
	return nil
}

// GetCreator returns nil without error when the creator is unknown.
func (s *BoltStore) GetCreator(id string) (*Creator, error) {
	var creator *Creator
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketCreators).Get([]byte(id))
		if v == nil {
			return nil
		}
		var rec Creator
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("corrupt creator record %q: %w", id, err)
		}
		creator = &rec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}
	return creator, nil
}

// PutCreator upserts a creator profile.
func (s *BoltStore) PutCreator(creator Creator) error {
	data, err := json.Marshal(creator)
	if err != nil {
		return fmt.Errorf("failed to encode creator: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCreators).Put([]byte(creator.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store creator: %w", err)
	}
	return nil
}

// GetHandle returns "" without error when no account is linked.
func (s *BoltStore) GetHandle(creatorID string, platform models.Platform) (string, error) {
	var handle string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketHandles).Get(handleKey(creatorID, platform)); v != nil {
			handle = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get handle: %w", err)
	}
	return handle, nil
}

// PutHandle records a creator's platform handle.
func (s *BoltStore) PutHandle(creatorID string, platform models.Platform, handle string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketHandles).Put(handleKey(creatorID, platform), []byte(handle))
	})
	if err != nil {
		return fmt.Errorf("failed to store handle: %w", err)
	}
	return nil
}

func startedAtOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
