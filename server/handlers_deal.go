package server

import (
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/creatorlink/creatorlink/internal/common"
	"github.com/creatorlink/creatorlink/internal/escrow"
	"github.com/creatorlink/creatorlink/misc"
)

///////// Deals /////////

func acceptGig(s *Server) gin.HandlerFunc {
	// Influencer accepting a gig: cuts a deal at the listed price,
	// marks the gig assigned and locks the payout in escrow — all in
	// one transaction.
	return func(c *gin.Context) {
		var (
			gigId = c.Param("id")
			infId = c.Param("influencerId")
		)

		var deal *common.Deal
		if err := s.db.Update(func(tx *bolt.Tx) error {
			var gig common.Gig
			if err := misc.GetTxJson(tx, s.Cfg.Bucket.Gig, gigId, &gig); err != nil {
				return ErrInvalidID
			}
			if !gig.IsOpen() {
				return ErrGigTaken
			}

			var inf common.Influencer
			if err := misc.GetTxJson(tx, s.Cfg.Bucket.Influencer, infId, &inf); err != nil {
				return ErrInvalidID
			}

			deal = &common.Deal{
				Id:             misc.PseudoUUID(),
				GigId:          gig.Id,
				SponsorId:      gig.SponsorId,
				InfluencerId:   inf.Id,
				InfluencerName: inf.Name,
				Price:          gig.Price,
				Assigned:       int32(time.Now().Unix()),
			}

			gig.Status = common.GigStatusAssigned
			if gig.Deals == nil {
				gig.Deals = make(map[string]*common.Deal)
			}
			gig.Deals[deal.Id] = deal

			inf.ActiveDeals = append(inf.ActiveDeals, deal)

			if _, err := s.Escrow.LockTx(tx, deal); err != nil {
				return err
			}

			if err := saveInfluencer(s, tx, &inf); err != nil {
				return err
			}
			return saveGig(s, tx, &gig)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, deal)
	}
}

func completeDeal(s *Server) gin.HandlerFunc {
	// Sponsor approving the finished work. Releases escrow to the
	// influencer and moves the deal to their completed list.
	return func(c *gin.Context) {
		dealId := c.Param("dealId")

		entry, err := s.Escrow.Get(dealId)
		if err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		if err := s.db.Update(func(tx *bolt.Tx) error {
			var gig common.Gig
			if err := misc.GetTxJson(tx, s.Cfg.Bucket.Gig, entry.GigId, &gig); err != nil {
				return ErrInvalidID
			}

			deal, ok := gig.Deals[dealId]
			if !ok || !deal.IsActive() {
				return ErrDealActive
			}

			var inf common.Influencer
			if err := misc.GetTxJson(tx, s.Cfg.Bucket.Influencer, deal.InfluencerId, &inf); err != nil {
				return ErrInvalidID
			}

			deal.Completed = int32(time.Now().Unix())
			gig.Status = common.GigStatusCompleted

			inf.ActiveDeals = removeDeal(inf.ActiveDeals, dealId)
			inf.CompletedDeals = append(inf.CompletedDeals, deal)

			if _, err := s.Escrow.ReleaseTx(tx, dealId); err != nil {
				return err
			}

			if err := saveInfluencer(s, tx, &inf); err != nil {
				return err
			}
			return saveGig(s, tx, &gig)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, misc.StatusOK(dealId))
	}
}

func cancelDeal(s *Server) gin.HandlerFunc {
	// Either side backing out. Refunds escrow to the sponsor and
	// reopens the gig for matching.
	return func(c *gin.Context) {
		dealId := c.Param("dealId")

		entry, err := s.Escrow.Get(dealId)
		if err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		if err := s.db.Update(func(tx *bolt.Tx) error {
			var gig common.Gig
			if err := misc.GetTxJson(tx, s.Cfg.Bucket.Gig, entry.GigId, &gig); err != nil {
				return ErrInvalidID
			}

			deal, ok := gig.Deals[dealId]
			if !ok || !deal.IsActive() {
				return ErrDealActive
			}

			var inf common.Influencer
			if err := misc.GetTxJson(tx, s.Cfg.Bucket.Influencer, deal.InfluencerId, &inf); err != nil {
				return ErrInvalidID
			}

			deal.Cancelled = int32(time.Now().Unix())
			gig.Status = common.GigStatusOpen

			inf.ActiveDeals = removeDeal(inf.ActiveDeals, dealId)

			if _, err := s.Escrow.RefundTx(tx, dealId); err != nil {
				return err
			}

			if err := saveInfluencer(s, tx, &inf); err != nil {
				return err
			}
			return saveGig(s, tx, &gig)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, misc.StatusOK(dealId))
	}
}

func getEscrow(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, err := s.Escrow.Get(c.Param("dealId"))
		if err != nil {
			if err == escrow.ErrNotFound {
				c.JSON(404, misc.StatusErr(err.Error()))
				return
			}
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, entry)
	}
}

func removeDeal(deals []*common.Deal, dealId string) []*common.Deal {
	out := deals[:0]
	for _, d := range deals {
		if d.Id != dealId {
			out = append(out, d)
		}
	}
	return out
}
