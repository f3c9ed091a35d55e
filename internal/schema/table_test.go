package schema_test

import (
	"testing"

	"daogen/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t schema.Table) []string {
	var names []string
	for _, f := range t.Fields() {
		names = append(names, f.Name())
	}
	return names
}

func TestExtractTable_MySQL(t *testing.T) {
	ddl := "CREATE TABLE IF NOT EXISTS `shop`.`order_items` (\n" +
		"  `id` INT(11) NOT NULL AUTO_INCREMENT,\n" +
		"  `order_id` INT(11) NOT NULL,\n" +
		"  `price` DECIMAL(10,2) NOT NULL DEFAULT '0.00',\n" +
		"  `note` VARCHAR(255) DEFAULT NULL COMMENT 'free text, optional',\n" +
		"  PRIMARY KEY (`id`),\n" +
		"  KEY `idx_order` (`order_id`),\n" +
		"  CONSTRAINT `fk_order` FOREIGN KEY (`order_id`) REFERENCES `orders` (`id`)\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;"

	tbl := schema.ExtractTable(ddl)

	assert.Equal(t, "order_items", tbl.TableName())
	assert.Equal(t, "OrderItems", tbl.ClassName())
	assert.Equal(t, []string{"id", "order_id", "price", "note"}, fieldNames(tbl))

	price, ok := tbl.Field("PRICE")
	require.True(t, ok)
	length, _ := price.Length()
	assert.Equal(t, "10,2", length)
	def, _ := price.Default()
	assert.Equal(t, "'0.00'", def)

	note, ok := tbl.Field("note")
	require.True(t, ok)
	assert.Equal(t, "free text, optional", note.Comment())
	def, _ = note.Default()
	assert.Equal(t, "NULL", def)
}

func TestExtractTable_EscapedQuotes(t *testing.T) {
	ddl := "CREATE TABLE users (id INT NOT NULL, name VARCHAR(20) COMMENT 'user\\'s name', " +
		"nick VARCHAR(20) DEFAULT 'it\\'s (me)', email VARCHAR(100) NOT NULL, age INT DEFAULT 0) ENGINE=InnoDB;"

	tbl := schema.ExtractTable(ddl)

	assert.Equal(t, "users", tbl.TableName())
	assert.Equal(t, []string{"id", "name", "nick", "email", "age"}, fieldNames(tbl))

	name, ok := tbl.Field("name")
	require.True(t, ok)
	assert.Equal(t, "user's name", name.Comment())

	nick, ok := tbl.Field("nick")
	require.True(t, ok)
	def, _ := nick.Default()
	assert.Equal(t, `'it\'s me'`, def)

	email, ok := tbl.Field("email")
	require.True(t, ok)
	assert.True(t, email.NotNull())
}

func TestExtractTable_MSSQL(t *testing.T) {
	ddl := "CREATE TABLE [dbo].[Customers](\n" +
		"\t[CustomerID] [int] IDENTITY(1,1) NOT NULL,\n" +
		"\t[Name] [nvarchar](50) NULL,\n" +
		"\t[Balance] [money] NOT NULL CONSTRAINT [DF_Balance] DEFAULT ((0)),\n" +
		" CONSTRAINT [PK_Customers] PRIMARY KEY CLUSTERED \n" +
		"(\n\t[CustomerID] ASC\n) WITH (PAD_INDEX = OFF) ON [PRIMARY]\n" +
		") ON [PRIMARY]"

	tbl := schema.ExtractTable(ddl)

	assert.Equal(t, "Customers", tbl.TableName())
	assert.Equal(t, "Customers", tbl.ClassName())
	assert.Equal(t, []string{"customerid", "name", "balance"}, fieldNames(tbl))

	name, _ := tbl.Field("name")
	assert.Equal(t, "nvarchar", name.Type())
	length, _ := name.Length()
	assert.Equal(t, "50", length)
}

func TestExtractTable_Firebird(t *testing.T) {
	ddl := `CREATE TABLE "EMPLOYEE_PROJECT" (
  "EMP_NO" SMALLINT NOT NULL,
  "PROJ_ID" CHAR( 5) NOT NULL,
  "SALARY" NUMERIC( 10, 2) DEFAULT 0 NOT NULL,
  CONSTRAINT "PK_EMPLOYEE_PROJECT" PRIMARY KEY ("EMP_NO", "PROJ_ID")
);`

	tbl := schema.ExtractTable(ddl)

	assert.Equal(t, "EMPLOYEE_PROJECT", tbl.TableName())
	assert.Equal(t, "EmployeeProject", tbl.ClassName())
	assert.Equal(t, []string{"emp_no", "proj_id", "salary"}, fieldNames(tbl))

	salary, _ := tbl.Field("salary")
	length, _ := salary.Length()
	assert.Equal(t, "10, 2", length)
	assert.True(t, salary.NotNull())
}

func TestExtractTable_Headerless(t *testing.T) {
	tbl := schema.ExtractTable("id INT NOT NULL\nemail VARCHAR(120), created DATETIME")

	assert.Equal(t, "unnamed", tbl.TableName())
	assert.Equal(t, []string{"id", "email", "created"}, fieldNames(tbl))
}

func TestExtractTable_NoBody(t *testing.T) {
	tbl := schema.ExtractTable("CREATE TABLE ghosts")

	assert.Equal(t, "ghosts", tbl.TableName())
	assert.Empty(t, tbl.Fields())
}

func TestTable_FieldsReturnsCopy(t *testing.T) {
	tbl := schema.ExtractTable("CREATE TABLE t (a INT, b INT)")

	fields := tbl.Fields()
	require.Len(t, fields, 2)
	fields[0] = schema.ParseField("z TEXT")

	assert.Equal(t, []string{"a", "b"}, fieldNames(tbl))
}

func TestClassName(t *testing.T) {
	tests := map[string]string{
		"user_accounts":    "UserAccounts",
		"Users":            "Users",
		"order-items":      "OrderItems",
		"EMPLOYEE_PROJECT": "EmployeeProject",
		"2024_sales":       "T2024Sales",
		"weird$name!":      "WeirdName",
		"camelCase_table":  "CamelCaseTable",
	}
	for name, want := range tests {
		tbl := schema.ExtractTable("CREATE TABLE `" + name + "` (a INT)")
		assert.Equal(t, want, tbl.ClassName(), name)
	}
}
