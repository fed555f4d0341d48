package server

import (
	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/creatorlink/creatorlink/config"
	"github.com/creatorlink/creatorlink/internal/escrow"
	"github.com/creatorlink/creatorlink/misc"
)

type Server struct {
	Cfg *config.Config

	r  *gin.Engine
	db *bolt.DB

	Escrow *escrow.Store
}

func New(cfg *config.Config, r *gin.Engine) (*Server, error) {
	db, err := misc.OpenDB(cfg.DBPath, cfg.DBName)
	if err != nil {
		return nil, err
	}

	if err := misc.CreateBuckets(db, cfg.Bucket.All); err != nil {
		db.Close()
		return nil, err
	}

	srv := &Server{
		Cfg:    cfg,
		r:      r,
		db:     db,
		Escrow: escrow.NewStore(db, cfg.Bucket.Escrow),
	}
	srv.initializeRoutes(r)

	return srv, nil
}

func (srv *Server) initializeRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Influencers
	v1.PUT("/influencer", putInfluencer(srv))
	v1.GET("/influencer/:id", getInfluencer(srv))
	v1.DELETE("/influencer/:id", delInfluencer(srv))
	v1.GET("/getAllInfluencers", getAllInfluencers(srv))

	// Gigs
	v1.PUT("/gig", putGig(srv))
	v1.GET("/gig/:id", getGig(srv))
	v1.DELETE("/gig/:id", delGig(srv))
	v1.GET("/getAllGigs", getAllGigs(srv))

	// Sponsors
	v1.PUT("/sponsor", putSponsor(srv))
	v1.GET("/sponsor/:id", getSponsor(srv))
	v1.DELETE("/sponsor/:id", delSponsor(srv))

	// Matching
	v1.GET("/gig/:id/matches", getMatchesForGig(srv))
	v1.GET("/influencer/:id/gigs", getGigsForInfluencer(srv))
	v1.GET("/sponsor/:id/matches", getMatchesForSponsor(srv))

	// Deals & escrow
	v1.POST("/gig/:id/accept/:influencerId", acceptGig(srv))
	v1.POST("/deal/:dealId/complete", completeDeal(srv))
	v1.POST("/deal/:dealId/cancel", cancelDeal(srv))
	v1.GET("/deal/:dealId/escrow", getEscrow(srv))
}

func (srv *Server) Run() error {
	return srv.r.Run(srv.Cfg.Host + ":" + srv.Cfg.Port)
}

func (srv *Server) Close() error {
	return srv.db.Close()
}
