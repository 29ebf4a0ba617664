package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jikgwan/companion-api/schema"
)

// accountDetail is the API to query the current user
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdate is the API to update the name and profile of the current user
func (s *Server) accountUpdate(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	var params struct {
		Name             string `json:"name"`
		Nickname         string `json:"nickname"`
		FavoriteTeamID   *uint  `json:"favoriteTeamId"`
		VerificationInfo string `json:"verificationInfo"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	updated, err := s.store.UpdateAccount(account.ID, strings.TrimSpace(params.Name), schema.Profile{
		Nickname:         params.Nickname,
		FavoriteTeamID:   params.FavoriteTeamID,
		VerificationInfo: params.VerificationInfo,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": updated,
	})
}
