package middleware

import (
	"github.com/bekzodm/dayplan/internal/apierror"
	"github.com/bekzodm/dayplan/internal/logger"
	"github.com/gin-gonic/gin"
)

// OwnerIDHeader carries the record owner's identity on every request.
const OwnerIDHeader = "X-Owner-ID"

// OwnerKey is the gin context key handlers read the owner ID from.
const OwnerKey = "owner_id"

// Owner resolves the owner identity for the request. The header wins;
// defaultOwner covers single-user deployments where clients do not
// send one. With no header and no default the request is rejected.
func Owner(defaultOwner string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetHeader(OwnerIDHeader)
		if ownerID == "" {
			ownerID = defaultOwner
		}
		if ownerID == "" {
			log := logger.FromContext(c.Request.Context())
			log.Debug("request rejected: no owner identity")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewMissingOwnerError(requestID))
			c.Abort()
			return
		}

		c.Set(OwnerKey, ownerID)

		// Add owner ID to request context for logging
		ctx := logger.WithOwnerID(c.Request.Context(), ownerID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OwnerID reads the resolved owner identity from the gin context.
func OwnerID(c *gin.Context) string {
	if id, ok := c.Get(OwnerKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
