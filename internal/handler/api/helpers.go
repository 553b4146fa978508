package api

import (
	"net/http"
	"strconv"

	"vas-broker/internal/handler/httperr"
	"vas-broker/internal/handler/middleware"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

func actorFrom(c *gin.Context) (commands.Actor, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return commands.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return commands.Actor{}, false
	}
	return commands.Actor{ID: id, Role: role}, true
}

func viewerFrom(c *gin.Context) (queries.Viewer, bool) {
	actor, ok := actorFrom(c)
	return queries.Viewer{ID: actor.ID, Role: actor.Role}, ok
}

// pathID parses the uuid path parameter name, aborting with 400 when malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func unauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
}
