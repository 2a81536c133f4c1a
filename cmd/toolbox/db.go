package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

var FILE_MODE_RW os.FileMode = 0600

var scoresBucket = []byte("Scores")

func DBOpen(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, FILE_MODE_RW, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open '%s' failed '%w'", path, err)
	}
	return db, nil
}

// DBInit seeds the score table without touching names that already have a score.
func DBInit(db *bolt.DB, scores map[string]int) error {
	err := db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(scoresBucket)
		if err != nil {
			return fmt.Errorf("Failed to create bucket: %w", err)
		}
		for name, score := range scores {
			if bucket.Get([]byte(name)) == nil { // don't override key/val if exists
				if err := bucket.Put([]byte(name), []byte(strconv.Itoa(score))); err != nil {
					return fmt.Errorf("Failed to insert '%s': '%w'", name, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bbolt db.Update in DBInit failed '%w'", err)
	}
	return nil
}

// DBInsert sets the score for name, replacing any previous one.
func DBInsert(db *bolt.DB, name string, score int) error {
	err := db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(scoresBucket)
		if err != nil {
			return fmt.Errorf("Failed to create bucket: %w", err)
		}
		if err := bucket.Put([]byte(name), []byte(strconv.Itoa(score))); err != nil {
			return fmt.Errorf("Failed to insert '%s': '%w'", name, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bbolt db.Update in DBInsert failed '%w'", err)
	}
	return nil
}

// DBScores loads the whole score table. A missing bucket reads as an empty table.
func DBScores(db *bolt.DB) (map[string]int, error) {
	scores := make(map[string]int)
	err := db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(scoresBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			score, err := strconv.Atoi(string(v))
			if err != nil {
				return fmt.Errorf("Failed to decode score of '%s': '%w'", k, err)
			}
			scores[string(k)] = score
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("bbolt db.View in DBScores failed '%w'", err)
	}
	return scores, nil
}
