package server

import (
	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/creatorlink/creatorlink/internal/common"
	"github.com/creatorlink/creatorlink/misc"
)

///////// Influencers /////////

func putInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inf common.Influencer
		if err := misc.BindJSON(c, &inf); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body: "+err.Error()))
			return
		}

		if inf.Name == "" {
			c.JSON(400, misc.StatusErr("Please provide a name"))
			return
		}

		if err := s.db.Update(func(tx *bolt.Tx) (err error) {
			if inf.Id, err = misc.GetNextIndex(tx, s.Cfg.Bucket.Influencer); err != nil {
				return
			}
			return saveInfluencer(s, tx, &inf)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, misc.StatusOK(inf.Id))
	}
}

func getInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		inf, err := fetchInfluencer(s, c.Param("id"))
		if err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, inf)
	}
}

func delInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.db.Update(func(tx *bolt.Tx) error {
			return misc.DelTxJson(tx, s.Cfg.Bucket.Influencer, id)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func getAllInfluencers(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, allInfluencers(s))
	}
}

///////// Gigs /////////

func putGig(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gig common.Gig
		if err := misc.BindJSON(c, &gig); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body: "+err.Error()))
			return
		}

		if gig.Name == "" {
			c.JSON(400, misc.StatusErr("Please provide a name"))
			return
		}

		if gig.SponsorId != "" {
			if _, err := fetchSponsor(s, gig.SponsorId); err != nil {
				c.JSON(400, misc.StatusErr("Please provide a valid sponsor ID"))
				return
			}
		}

		// New listings open for matching unless told otherwise
		if gig.Status == "" {
			gig.Status = common.GigStatusOpen
		}

		if err := s.db.Update(func(tx *bolt.Tx) (err error) {
			if gig.Id, err = misc.GetNextIndex(tx, s.Cfg.Bucket.Gig); err != nil {
				return
			}
			return saveGig(s, tx, &gig)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, misc.StatusOK(gig.Id))
	}
}

func getGig(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		gig, err := fetchGig(s, c.Param("id"))
		if err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, gig)
	}
}

func delGig(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.db.Update(func(tx *bolt.Tx) error {
			return misc.DelTxJson(tx, s.Cfg.Bucket.Gig, id)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func getAllGigs(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, allGigs(s))
	}
}

///////// Sponsors /////////

func putSponsor(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sp common.Sponsor
		if err := misc.BindJSON(c, &sp); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body: "+err.Error()))
			return
		}

		if sp.Name == "" {
			c.JSON(400, misc.StatusErr("Please provide a name"))
			return
		}

		if err := s.db.Update(func(tx *bolt.Tx) (err error) {
			if sp.Id, err = misc.GetNextIndex(tx, s.Cfg.Bucket.Sponsor); err != nil {
				return
			}
			return saveSponsor(s, tx, &sp)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		c.JSON(200, misc.StatusOK(sp.Id))
	}
}

func getSponsor(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		sp, err := fetchSponsor(s, c.Param("id"))
		if err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, sp)
	}
}

func delSponsor(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.db.Update(func(tx *bolt.Tx) error {
			return misc.DelTxJson(tx, s.Cfg.Bucket.Sponsor, id)
		}); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}
