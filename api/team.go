package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jikgwan/companion-api/store"
)

func (s *Server) listTeams(c *gin.Context) {
	teams, err := s.store.ListTeams()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": teams})
}

// listGames returns the fixtures, optionally narrowed to a date and a team
func (s *Server) listGames(c *gin.Context) {
	var params struct {
		Date string `form:"date"`
		Team string `form:"team"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	games, err := s.store.ListGames(store.GameFilter{
		Date: params.Date,
		Team: params.Team,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": games})
}
