package handlers

import (
	"strings"

	"brightworks/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	headerActorID   = "X-Actor-ID"
	headerActorRole = "X-Actor-Role"
)

// actorFrom resolves the caller identity from request headers set by the
// upstream auth layer. Unknown or missing roles degrade to anonymous; the
// use cases decide what an anonymous actor may do.
func actorFrom(c *gin.Context) entities.Actor {
	role := entities.ActorRole(strings.TrimSpace(c.GetHeader(headerActorRole)))
	switch role {
	case entities.RoleAdmin, entities.RoleClient:
	default:
		role = entities.RoleAnonymous
	}
	return entities.Actor{
		ID:   strings.TrimSpace(c.GetHeader(headerActorID)),
		Role: role,
	}
}
