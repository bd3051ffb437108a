package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	ActorHeader = "X-User-ID"
	ActorKey    = "actor_id"
)

// RequireActor rejects requests without a valid X-User-ID and stores the
// acting user's id in the context.
func RequireActor() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(ActorHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "X-User-ID header is required"})
			return
		}
		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": "X-User-ID must be a uuid"})
			return
		}

		c.Set(ActorKey, id)
		c.Next()
	}
}

// ActorID returns the id stored by RequireActor.
func ActorID(c *ginext.Context) string {
	return c.GetString(ActorKey)
}
