package cmd

import (
	"bytes"
	"testing"

	"daogen/internal/dialect"
	"daogen/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanDDL = `
CREATE TABLE customers (id INT NOT NULL AUTO_INCREMENT, name VARCHAR(50));
CREATE TABLE orders (id INT NOT NULL AUTO_INCREMENT, customer_id INT);
CREATE TABLE tags (label VARCHAR(20));`

func TestCleanDatabase_MySQL(t *testing.T) {
	db := schema.Build(cleanDDL, schema.Config{})
	d, err := dialect.GetDialect("mysql")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cleanDatabase(&buf, db.Tables(), d))

	assert.Equal(t, "SET FOREIGN_KEY_CHECKS = 0;\n"+
		"TRUNCATE TABLE `tags`;\n"+
		"TRUNCATE TABLE `orders`;\n"+
		"TRUNCATE TABLE `customers`;\n"+
		"SET FOREIGN_KEY_CHECKS = 1;\n", buf.String())
}

func TestCleanDatabase_MSSQLReseedsIdentity(t *testing.T) {
	db := schema.Build(cleanDDL, schema.Config{})
	d, err := dialect.GetDialect("mssql")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cleanDatabase(&buf, db.Tables(), d))

	out := buf.String()
	assert.Contains(t, out, "ALTER TABLE [orders] NOCHECK CONSTRAINT all;\n")
	assert.Contains(t, out, "DELETE FROM [orders];\nDBCC CHECKIDENT (N'orders', RESEED, 0);\n")
	assert.Contains(t, out, "DELETE FROM [tags];\nDELETE FROM [orders];")
	assert.NotContains(t, out, "CHECKIDENT (N'tags'")
	assert.Contains(t, out, "ALTER TABLE [customers] WITH CHECK CHECK CONSTRAINT all;\n")
}

func TestHasAutoIncrement(t *testing.T) {
	db := schema.Build(cleanDDL, schema.Config{})

	customers, ok := db.Table("customers")
	require.True(t, ok)
	tags, ok := db.Table("tags")
	require.True(t, ok)

	assert.True(t, hasAutoIncrement(customers))
	assert.False(t, hasAutoIncrement(tags))
}
