package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/creatorlink/creatorlink/internal/match"
	"github.com/creatorlink/creatorlink/misc"
)

// The matching endpoints are thin: fetch the records, hand them to the
// engine, render what comes back. The engine itself never touches the
// db.

func getMatchesForGig(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		gig, err := fetchGig(s, c.Param("id"))
		if err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		limit, _ := strconv.Atoi(c.Query("limit"))
		c.JSON(200, match.FindBestInfluencersForGig(allInfluencers(s), gig, limit))
	}
}

func getGigsForInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		inf, err := fetchInfluencer(s, c.Param("id"))
		if err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		limit, _ := strconv.Atoi(c.Query("limit"))
		c.JSON(200, match.FindBestGigsForInfluencer(inf, allGigs(s), limit))
	}
}

func getMatchesForSponsor(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		sp, err := fetchSponsor(s, c.Param("id"))
		if err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}

		// Budget precedence: query param, then the sponsor profile,
		// then the engine's documented default.
		budget, _ := strconv.ParseFloat(c.Query("budget"), 64)
		if budget <= 0 {
			budget = sp.Budget
		}

		limit, _ := strconv.Atoi(c.Query("limit"))
		c.JSON(200, match.FindBestInfluencersForSponsor(sp, allInfluencers(s), budget, limit))
	}
}
