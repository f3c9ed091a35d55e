package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"daogen/internal/schema"

	"github.com/gin-gonic/gin"
)

// formOverhead leaves room for field names and encoding around the DDL.
const formOverhead = 4096

// readDDL takes the DDL from the "ddl" form field of form posts and from
// the raw body otherwise.
func readDDL(c *gin.Context, limit int64) (string, error) {
	if limit <= 0 {
		limit = schema.DefaultMaxInputBytes
	}

	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		// Percent-encoding can triple the size of the field.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 3*limit+formOverhead)
		var err error
		if c.ContentType() == gin.MIMEMultipartPOSTForm {
			err = c.Request.ParseMultipartForm(limit + formOverhead)
		} else {
			err = c.Request.ParseForm()
		}
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return "", fmt.Errorf("%w: limit is %d bytes", schema.ErrInputTooLarge, limit)
			}
			return "", fmt.Errorf("parse form: %w", err)
		}

		values, ok := c.Request.PostForm["ddl"]
		if !ok || len(values) == 0 {
			return "", errors.New(`form field "ddl" is required`)
		}
		if int64(len(values[0])) > limit {
			return "", fmt.Errorf("%w: limit is %d bytes", schema.ErrInputTooLarge, limit)
		}
		return values[0], nil
	default:
		return schema.ReadDDL(c.Request.Body, limit)
	}
}

// buildDatabase reads the request DDL and parses it with the name,
// namespace and package query parameters.
func buildDatabase(c *gin.Context, limit int64, cfg schema.Config) (*schema.Database, error) {
	ddl, err := readDDL(c, limit)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(ddl) == "" {
		return nil, errors.New("ddl is empty")
	}

	cfg.Name = c.Query("name")
	cfg.Options = schema.NewOptions(c.Query("namespace"), c.Query("package"))
	return schema.Build(ddl, cfg), nil
}

// inputStatus maps a DDL read failure to an HTTP status.
func inputStatus(err error) int {
	if errors.Is(err, schema.ErrInputTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
