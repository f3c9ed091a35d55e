package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"daogen/internal/dialect"
	"daogen/internal/engine"
	"daogen/internal/responses"
	"daogen/internal/schema"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultSeedCount is used when the request names no count.
const DefaultSeedCount = 10

// SeedConfig bounds what a seed request may ask for.
type SeedConfig struct {
	MaxInputBytes  int64
	MaxRows        int
	DefaultDialect string
}

type SeedHandler struct {
	cfg    SeedConfig
	logger *zap.Logger
}

func NewSeedHandler(cfg SeedConfig, logger *zap.Logger) *SeedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// seedPayload is the data of a JSON seed response.
type seedPayload struct {
	Dialect string              `json:"dialect"`
	Script  string              `json:"script"`
	Results []engine.SeedResult `json:"results"`
}

// Seed handles POST /api/v1/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	d, err := dialect.GetDialect(c.DefaultQuery("dialect", h.cfg.DefaultDialect))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid dialect")
		return
	}

	count, err := h.count(c)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid count")
		return
	}

	var seed int64
	if raw := c.Query("seed"); raw != "" {
		if seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid seed")
			return
		}
	}

	db, err := buildDatabase(c, h.cfg.MaxInputBytes, schema.Config{Logger: h.logger})
	if err != nil {
		responses.Fail(c, inputStatus(err), err, "Invalid DDL input")
		return
	}

	tables := c.QueryArray("table")
	for _, name := range tables {
		if _, ok := db.Table(name); !ok {
			responses.Fail(c, http.StatusBadRequest, fmt.Errorf("no matching table found for input: %s", name), "Unknown table")
			return
		}
	}

	var buf bytes.Buffer
	results, err := engine.Seed(&buf, db, d, engine.NewGenerator(seed), engine.SeedOptions{
		Count:    count,
		Truncate: c.Query("truncate") == "true",
		Tables:   tables,
		Logger:   h.logger,
	})
	if err != nil {
		h.logger.Error("seed failed", zap.Error(err))
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to generate seed script")
		return
	}

	h.logger.Info("seed script generated",
		zap.String("database", db.Name()),
		zap.String("dialect", d.Name()),
		zap.Int("tables", len(results)))

	if c.Query("format") == "sql" {
		responses.SQL(c, http.StatusOK, buf.Bytes())
		return
	}
	responses.Success(c, http.StatusOK, seedPayload{
		Dialect: d.Name(),
		Script:  buf.String(),
		Results: results,
	}, "Seed script generated successfully")
}

func (h *SeedHandler) count(c *gin.Context) (int, error) {
	raw := c.Query("count")
	if raw == "" {
		return DefaultSeedCount, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("count must be a number: %w", err)
	}
	if n < 1 {
		return 0, fmt.Errorf("count must be positive, got %d", n)
	}
	if h.cfg.MaxRows > 0 && n > h.cfg.MaxRows {
		return 0, fmt.Errorf("count %d exceeds the limit of %d rows per table", n, h.cfg.MaxRows)
	}
	return n, nil
}
