package handlers

import (
	"net/http"

	"daogen/internal/responses"
	"daogen/internal/schema"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SchemaHandler struct {
	maxInputBytes int64
	logger        *zap.Logger
}

func NewSchemaHandler(maxInputBytes int64, logger *zap.Logger) *SchemaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchemaHandler{
		maxInputBytes: maxInputBytes,
		logger:        logger,
	}
}

// Extract handles POST /api/v1/schema
func (h *SchemaHandler) Extract(c *gin.Context) {
	db, err := buildDatabase(c, h.maxInputBytes, schema.Config{Logger: h.logger})
	if err != nil {
		responses.Fail(c, inputStatus(err), err, "Invalid DDL input")
		return
	}

	h.logger.Info("schema extracted",
		zap.String("database", db.Name()),
		zap.Int("tables", len(db.Tables())))

	responses.Success(c, http.StatusOK, db.Snapshot(), "Schema extracted successfully")
}
