package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/gin-gonic/gin"
)

const agencyIDKey = "agencyID"

// AgencyAuth resolves the X-API-Key header to an active agency and stores its
// id in the request context. The services below it never see credentials,
// only the resolved agency id.
func AgencyAuth(agencies repository.AgencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no API key found in request"})
			return
		}

		agency, err := agencies.GetByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			if errors.Is(err, domain.ErrAgencyNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid API key"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "authorization failed"})
			return
		}

		c.Set(agencyIDKey, agency.ID)
		c.Next()
	}
}

func agencyID(c *gin.Context) string {
	return c.GetString(agencyIDKey)
}
