package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jikgwan/companion-api/policy"
)

// myRequests lists the requests of the current senior with their proposal count
func (s *Server) myRequests(c *gin.Context) {
	actor := actorOf(c)
	if err := policy.Authorize(actor, policy.Read, policy.SeniorOnly); shouldInterupt(err, c) {
		return
	}

	requests, err := s.store.ListRequestsByOwner(actor.UserID())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// myProposals lists the proposals of the current helper with their request
func (s *Server) myProposals(c *gin.Context) {
	actor := actorOf(c)
	if err := policy.Authorize(actor, policy.Read, policy.HelperOnly); shouldInterupt(err, c) {
		return
	}

	proposals, err := s.store.ListProposalsByHelper(actor.UserID())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": proposals})
}

// myStats summarises the activity of the current user by its role
func (s *Server) myStats(c *gin.Context) {
	switch actor := actorOf(c).(type) {
	case policy.Senior:
		stats, err := s.store.SeniorStats(actor.UserID())
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": stats})
	case policy.Helper:
		stats, err := s.store.HelperStats(actor.UserID())
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": stats})
	default:
		abortWithError(c, policy.ErrUnauthorized)
	}
}
