package escrow

import (
	"errors"
	"time"

	"github.com/boltdb/bolt"

	"github.com/creatorlink/creatorlink/internal/common"
	"github.com/creatorlink/creatorlink/misc"
)

// Escrow holds a gig's payout from the moment an influencer accepts a
// deal until it is resolved. Valid transitions:
//
//	locked → released  (deal completed, funds go to the influencer)
//	locked → refunded  (deal cancelled, funds go back to the sponsor)
//
// Released and refunded are terminal. Charging and paying out are the
// payment processor's problem, not this package's.
const (
	StatusLocked   = "locked"
	StatusReleased = "released"
	StatusRefunded = "refunded"
)

var (
	ErrNotFound      = errors.New("escrow entry not found")
	ErrAlreadyLocked = errors.New("escrow already locked for deal")
	ErrResolved      = errors.New("escrow already resolved")
)

type Entry struct {
	DealId       string `json:"dealId"`
	GigId        string `json:"gigId"`
	SponsorId    string `json:"sponsorId,omitempty"`
	InfluencerId string `json:"influencerId,omitempty"`

	Amount float64 `json:"amount"`
	Status string  `json:"status"`

	Locked   int32 `json:"locked,omitempty"`   // Timestamp for when funds were locked
	Resolved int32 `json:"resolved,omitempty"` // Timestamp for release or refund
}

// Store keeps escrow entries in their own bolt bucket, keyed by deal
// id. The Tx variants run inside a caller-owned R/W transaction so deal
// handlers can move entity state and escrow state atomically; the plain
// variants open their own transaction.
type Store struct {
	db     *bolt.DB
	bucket string
}

func NewStore(db *bolt.DB, bucket string) *Store {
	return &Store{db: db, bucket: bucket}
}

// LockTx creates the escrow entry for an accepted deal.
func (s *Store) LockTx(tx *bolt.Tx, deal *common.Deal) (*Entry, error) {
	if b := misc.GetBucket(tx, s.bucket).Get([]byte(deal.Id)); b != nil {
		return nil, ErrAlreadyLocked
	}

	entry := &Entry{
		DealId:       deal.Id,
		GigId:        deal.GigId,
		SponsorId:    deal.SponsorId,
		InfluencerId: deal.InfluencerId,
		Amount:       deal.Price,
		Status:       StatusLocked,
		Locked:       int32(time.Now().Unix()),
	}
	if err := misc.PutTxJson(tx, s.bucket, deal.Id, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ReleaseTx resolves the entry in the influencer's favor.
func (s *Store) ReleaseTx(tx *bolt.Tx, dealId string) (*Entry, error) {
	return s.resolveTx(tx, dealId, StatusReleased)
}

// RefundTx resolves the entry back to the sponsor.
func (s *Store) RefundTx(tx *bolt.Tx, dealId string) (*Entry, error) {
	return s.resolveTx(tx, dealId, StatusRefunded)
}

func (s *Store) resolveTx(tx *bolt.Tx, dealId, status string) (*Entry, error) {
	var entry Entry
	if err := misc.GetTxJson(tx, s.bucket, dealId, &entry); err != nil {
		return nil, ErrNotFound
	}
	if entry.Status != StatusLocked {
		return nil, ErrResolved
	}

	entry.Status = status
	entry.Resolved = int32(time.Now().Unix())
	if err := misc.PutTxJson(tx, s.bucket, dealId, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Store) Lock(deal *common.Deal) (entry *Entry, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		entry, err = s.LockTx(tx, deal)
		return err
	})
	return
}

func (s *Store) Release(dealId string) (entry *Entry, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		entry, err = s.ReleaseTx(tx, dealId)
		return err
	})
	return
}

func (s *Store) Refund(dealId string) (entry *Entry, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		entry, err = s.RefundTx(tx, dealId)
		return err
	})
	return
}

func (s *Store) Get(dealId string) (*Entry, error) {
	var entry Entry
	if err := s.db.View(func(tx *bolt.Tx) error {
		if err := misc.GetTxJson(tx, s.bucket, dealId, &entry); err != nil {
			return ErrNotFound
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &entry, nil
}
