package misc

import (
	"encoding/json"
	"errors"
	"math/big"

	"github.com/boltdb/bolt"
)

var ErrMissingKey = errors.New("missing key")

func OpenDB(path, name string) (*bolt.DB, error) {
	return bolt.Open(path+name+".db", 0600, nil)
}

// CreateBuckets makes sure every named bucket plus the shared index
// bucket exists before the server starts taking requests.
func CreateBuckets(db *bolt.DB, names []string) error {
	return db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte("index")); err != nil {
			return err
		}
		for _, n := range names {
			if _, err := tx.CreateBucketIfNotExists([]byte(n)); err != nil {
				return err
			}
		}
		return nil
	})
}

func GetBucket(tx *bolt.Tx, bucketName string) *bolt.Bucket {
	return tx.Bucket([]byte(bucketName))
}

func GetTxJson(tx *bolt.Tx, bucketName, key string, val interface{}) error {
	b := GetBucket(tx, bucketName).Get([]byte(key))
	if b == nil {
		return ErrMissingKey
	}
	return json.Unmarshal(b, val)
}

func PutTxJson(tx *bolt.Tx, bucketName, key string, val interface{}) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return GetBucket(tx, bucketName).Put([]byte(key), b)
}

func DelTxJson(tx *bolt.Tx, bucketName, key string) error {
	return GetBucket(tx, bucketName).Delete([]byte(key))
}

var one = big.NewInt(1)

// GetNextIndex increments the sequential id for the given bucket using
// the supplied R/W transaction. Ids are stored as raw big.Int bytes,
// not their string representation.
func GetNextIndex(tx *bolt.Tx, bucket string) (string, error) {
	key := []byte(bucket)
	b := GetBucket(tx, "index")
	n := new(big.Int).SetBytes(b.Get(key))
	n.Add(n, one)
	return n.String(), b.Put(key, n.Bytes())
}
