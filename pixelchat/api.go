package pixelchat

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/strikes"
)

// strikeRouter builds the administrative strike API. Every route requires the
// admin key in the authorization header; the comparison is constant time.
func strikeRouter(store *strikes.Store, adminKey string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		if subtle.ConstantTimeCompare([]byte(c.GetHeader("authorization")), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	})
	router.GET("/strikes/:uuid", func(c *gin.Context) {
		rec, ok := store.Lookup(c.Param("uuid"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"reason": "no strike record found"})
			return
		}
		c.JSON(http.StatusOK, rec)
	})
	router.POST("/strikes/:uuid/reset", func(c *gin.Context) {
		if err := store.Reset(c.Param("uuid")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})
	router.DELETE("/strikes/:uuid", func(c *gin.Context) {
		if err := store.Remove(c.Param("uuid")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})
	return router
}

// setupGin exposes the administrative strike API. An empty admin key leaves
// the API off entirely rather than open to anyone.
func (pc *PixelChat) setupGin() {
	key := pc.conf.Service.AdminKey
	if key == "" {
		pc.log.Warn("No admin key set, the strike API is disabled")
		return
	}

	gin.SetMode(gin.ReleaseMode)
	router := strikeRouter(pc.store, key)
	go func() {
		if err := router.Run(pc.conf.Service.GinAddress); err != nil {
			pc.log.Error("strike API stopped", "error", err)
		}
	}()
}
