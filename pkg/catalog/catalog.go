// Package catalog is a read-only facade over the AWS Glue Data Catalog.
//
// Every call is a single round trip: fetch from Glue, reshape into one of
// the flat records below, return. The only state is the client handle,
// which is never mutated after construction and is safe to share between
// concurrent calls.
package catalog

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
)

// ErrEmptyName is returned before any backend call when a required
// database or table name is empty.
var ErrEmptyName = errors.New("name must not be empty")

// GlueAPI is the subset of *glue.Client the catalog uses.
type GlueAPI interface {
	GetDatabases(ctx context.Context, params *glue.GetDatabasesInput, optFns ...func(*glue.Options)) (*glue.GetDatabasesOutput, error)
	GetTables(ctx context.Context, params *glue.GetTablesInput, optFns ...func(*glue.Options)) (*glue.GetTablesOutput, error)
	GetTable(ctx context.Context, params *glue.GetTableInput, optFns ...func(*glue.Options)) (*glue.GetTableOutput, error)
}

// DatabaseList is the result of ListDatabases. Order is the order Glue
// reported; duplicates are kept.
type DatabaseList struct {
	Databases []string `json:"databases" jsonschema:"description=Database names in catalog order"`
}

// DatabaseMetadata is the result of GetDatabaseMetadata.
type DatabaseMetadata struct {
	Name   string   `json:"name" jsonschema:"description=The database name"`
	Tables []string `json:"tables" jsonschema:"description=Table names in the database"`
}

// TableMetadata is the result of GetTableMetadata.
type TableMetadata struct {
	Name    string   `json:"name" jsonschema:"description=The table name"`
	Columns []string `json:"columns" jsonschema:"description=Column names from the table storage descriptor"`
}

// Catalog owns the Glue client handle.
type Catalog struct {
	client    GlueAPI
	region    string
	catalogID *string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRegion records the region the client talks to. It is only used for logging.
func WithRegion(region string) Option {
	return func(c *Catalog) {
		c.region = region
	}
}

// WithCatalogID scopes every call to the catalog of the given account id.
// An empty id means the caller's own account.
func WithCatalogID(id string) Option {
	return func(c *Catalog) {
		if id != "" {
			c.catalogID = aws.String(id)
		}
	}
}

// New wraps client.
func New(client GlueAPI, opts ...Option) *Catalog {
	c := &Catalog{client: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Region returns the configured region, or "" if unknown.
func (c *Catalog) Region() string {
	return c.region
}

// HealthCheck issues one GetDatabases call and reports whether it succeeded.
func (c *Catalog) HealthCheck(ctx context.Context) error {
	_, err := c.client.GetDatabases(ctx, &glue.GetDatabasesInput{CatalogId: c.catalogID})
	return err
}

// ListDatabases returns the database names on the first page Glue returns.
// Backend errors are returned as is.
func (c *Catalog) ListDatabases(ctx context.Context) (DatabaseList, error) {
	out, err := c.client.GetDatabases(ctx, &glue.GetDatabasesInput{CatalogId: c.catalogID})
	if err != nil {
		return DatabaseList{}, err
	}

	names := make([]string, 0, len(out.DatabaseList))
	for _, db := range out.DatabaseList {
		names = append(names, aws.ToString(db.Name))
	}

	return DatabaseList{Databases: names}, nil
}

// GetDatabaseMetadata returns the tables on the first page Glue returns for
// databaseName. A missing database is a backend error like any other.
func (c *Catalog) GetDatabaseMetadata(ctx context.Context, databaseName string) (DatabaseMetadata, error) {
	if databaseName == "" {
		return DatabaseMetadata{}, ErrEmptyName
	}

	out, err := c.client.GetTables(ctx, &glue.GetTablesInput{
		CatalogId:    c.catalogID,
		DatabaseName: aws.String(databaseName),
	})
	if err != nil {
		return DatabaseMetadata{}, err
	}

	tables := make([]string, 0, len(out.TableList))
	for _, t := range out.TableList {
		tables = append(tables, aws.ToString(t.Name))
	}

	return DatabaseMetadata{Name: databaseName, Tables: tables}, nil
}

// GetTableMetadata returns the column names of the table's current storage
// descriptor. A table without a descriptor, or a descriptor without
// columns, yields an empty column list.
func (c *Catalog) GetTableMetadata(ctx context.Context, databaseName, tableName string) (TableMetadata, error) {
	if databaseName == "" || tableName == "" {
		return TableMetadata{}, ErrEmptyName
	}

	out, err := c.client.GetTable(ctx, &glue.GetTableInput{
		CatalogId:    c.catalogID,
		DatabaseName: aws.String(databaseName),
		Name:         aws.String(tableName),
	})
	if err != nil {
		return TableMetadata{}, err
	}

	columns := []string{}
	if out.Table != nil && out.Table.StorageDescriptor != nil {
		for _, col := range out.Table.StorageDescriptor.Columns {
			columns = append(columns, aws.ToString(col.Name))
		}
	}

	return TableMetadata{Name: tableName, Columns: columns}, nil
}
