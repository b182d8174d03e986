package catalog

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/theapemachine/mcp-server-glue-catalog/pkg/config"
)

// fakeGlueEndpoint answers the Glue JSON protocol for GetDatabases and GetTable.
func fakeGlueEndpoint(t *testing.T, deny bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/x-amz-json-1.1")

		if deny {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"__type":"AccessDeniedException","message":"User is not authorized"}`)
			return
		}

		switch r.Header.Get("X-Amz-Target") {
		case "AWSGlue.GetDatabases":
			_, _ = io.WriteString(w, `{"DatabaseList":[{"Name":"sales"},{"Name":"ops"}]}`)
		case "AWSGlue.GetTable":
			_, _ = io.WriteString(w, `{"Table":{"Name":"t1","DatabaseName":"db1","StorageDescriptor":{"Columns":[{"Name":"id"},{"Name":"name"}]}}}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"__type":"InvalidInputException","message":"unexpected target"}`)
		}
	}))
}

func testConfig(t *testing.T, endpoint string) *config.Config {
	t.Helper()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(t.TempDir(), "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "credentials"))

	cfg := &config.Config{}
	cfg.AWS.Region = "us-east-1"
	cfg.AWS.Endpoint = endpoint
	cfg.AWS.AccessKeyID = "AKIDEXAMPLE"
	cfg.AWS.SecretAccessKey = "secret"
	cfg.Catalog.HealthCheck = true
	cfg.Catalog.HealthCheckTimeout = 5 * time.Second
	return cfg
}

func TestNewFromConfig(t *testing.T) {
	Convey("Given a Glue endpoint that answers", t, func() {
		srv := fakeGlueEndpoint(t, false)
		defer srv.Close()

		c, err := NewFromConfig(context.Background(), testConfig(t, srv.URL))

		Convey("It should pass the health check and serve calls", func() {
			So(err, ShouldBeNil)
			So(c.Region(), ShouldEqual, "us-east-1")

			dbs, err := c.ListDatabases(context.Background())
			So(err, ShouldBeNil)
			So(dbs.Databases, ShouldResemble, []string{"sales", "ops"})

			tbl, err := c.GetTableMetadata(context.Background(), "db1", "t1")
			So(err, ShouldBeNil)
			So(tbl.Columns, ShouldResemble, []string{"id", "name"})
		})
	})

	Convey("Given a Glue endpoint that denies access", t, func() {
		srv := fakeGlueEndpoint(t, true)
		defer srv.Close()

		Convey("It should fail fast", func() {
			c, err := NewFromConfig(context.Background(), testConfig(t, srv.URL))
			So(c, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "User is not authorized")
		})

		Convey("It should skip the probe when disabled", func() {
			cfg := testConfig(t, srv.URL)
			cfg.Catalog.HealthCheck = false
			c, err := NewFromConfig(context.Background(), cfg)
			So(err, ShouldBeNil)
			So(c, ShouldNotBeNil)
		})
	})
}
