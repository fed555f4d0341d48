package server

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/boltdb/bolt"

	"github.com/creatorlink/creatorlink/internal/common"
	"github.com/creatorlink/creatorlink/misc"
)

var (
	ErrInvalidID  = errors.New("invalid id")
	ErrGigTaken   = errors.New("gig is not open")
	ErrDealActive = errors.New("deal is not active")
)

func fetchInfluencer(s *Server, id string) (*common.Influencer, error) {
	var inf common.Influencer
	if err := s.db.View(func(tx *bolt.Tx) error {
		return misc.GetTxJson(tx, s.Cfg.Bucket.Influencer, id, &inf)
	}); err != nil {
		return nil, ErrInvalidID
	}
	return &inf, nil
}

func fetchGig(s *Server, id string) (*common.Gig, error) {
	var gig common.Gig
	if err := s.db.View(func(tx *bolt.Tx) error {
		return misc.GetTxJson(tx, s.Cfg.Bucket.Gig, id, &gig)
	}); err != nil {
		return nil, ErrInvalidID
	}
	return &gig, nil
}

func fetchSponsor(s *Server, id string) (*common.Sponsor, error) {
	var sp common.Sponsor
	if err := s.db.View(func(tx *bolt.Tx) error {
		return misc.GetTxJson(tx, s.Cfg.Bucket.Sponsor, id, &sp)
	}); err != nil {
		return nil, ErrInvalidID
	}
	return &sp, nil
}

func allInfluencers(s *Server) []*common.Influencer {
	out := make([]*common.Influencer, 0, 512)
	if err := s.db.View(func(tx *bolt.Tx) error {
		return misc.GetBucket(tx, s.Cfg.Bucket.Influencer).ForEach(func(k, v []byte) error {
			var inf common.Influencer
			if err := json.Unmarshal(v, &inf); err != nil {
				log.Println("error when unmarshalling influencer", string(k))
				return nil
			}
			out = append(out, &inf)
			return nil
		})
	}); err != nil {
		log.Println("error when reading influencer bucket:", err)
	}
	return out
}

func allGigs(s *Server) []*common.Gig {
	out := make([]*common.Gig, 0, 512)
	if err := s.db.View(func(tx *bolt.Tx) error {
		return misc.GetBucket(tx, s.Cfg.Bucket.Gig).ForEach(func(k, v []byte) error {
			var gig common.Gig
			if err := json.Unmarshal(v, &gig); err != nil {
				log.Println("error when unmarshalling gig", string(k))
				return nil
			}
			out = append(out, &gig)
			return nil
		})
	}); err != nil {
		log.Println("error when reading gig bucket:", err)
	}
	return out
}

func saveInfluencer(s *Server, tx *bolt.Tx, inf *common.Influencer) error {
	return misc.PutTxJson(tx, s.Cfg.Bucket.Influencer, inf.Id, inf)
}

func saveGig(s *Server, tx *bolt.Tx, gig *common.Gig) error {
	return misc.PutTxJson(tx, s.Cfg.Bucket.Gig, gig.Id, gig)
}

func saveSponsor(s *Server, tx *bolt.Tx, sp *common.Sponsor) error {
	return misc.PutTxJson(tx, s.Cfg.Bucket.Sponsor, sp.Id, sp)
}
