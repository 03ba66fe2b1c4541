package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/iterator"

	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/framework/web"
	"github.com/faseops/membership/scheduled-tasks/logger"
)

type Admin struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
}

// NewAdmin creates new admin package handlers
func NewAdmin(loggerProvider logger.Provider, conn *connection.Connection) *Admin {
	return &Admin{
		loggerProvider,
		conn,
	}
}

// ListCollectionsHandler lists firestore collection ids, either at the root
// or under the document given by parentPath.
func (h *Admin) ListCollectionsHandler(ctx *gin.Context) error {
	fs := h.conn.Firestore(ctx)

	collectionsIter := fs.Collections(ctx)

	if parentPath := ctx.Query("parentPath"); parentPath != "" {
		docRef := fs.Doc(parentPath)
		if docRef == nil {
			return web.TranslateError(web.ErrBadRequest)
		}

		collectionsIter = docRef.Collections(ctx)
	}

	collections := make([]string, 0)

	for {
		collectionRef, err := collectionsIter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return web.NewRequestError(err, http.StatusInternalServerError)
		}

		collections = append(collections, collectionRef.ID)
	}

	return web.Respond(ctx, gin.H{
		"success":     true,
		"collections": collections,
	}, http.StatusOK)
}
