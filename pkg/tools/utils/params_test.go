package utils

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"
)

func newRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestGetStringParam(t *testing.T) {
	Convey("Given a tool call request", t, func() {
		req := newRequest(map[string]any{
			"database_name": "sales",
			"empty":         "",
			"number":        42.0,
		})

		Convey("It should return a present string", func() {
			v, err := GetRequiredStringParam(req, "database_name")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "sales")
		})

		Convey("It should fail on a missing required string", func() {
			_, err := GetRequiredStringParam(req, "table_name")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "table_name")
		})

		Convey("It should fail on an empty required string", func() {
			_, err := GetRequiredStringParam(req, "empty")
			So(err, ShouldNotBeNil)
		})

		Convey("It should fail on a non-string value", func() {
			_, err := GetStringParam(req, "number", false)
			So(err, ShouldNotBeNil)
		})

		Convey("It should allow a missing optional string", func() {
			v, err := GetStringParam(req, "table_name", false)
			So(err, ShouldBeNil)
			So(v, ShouldBeEmpty)
		})

		Convey("It should cope with no arguments at all", func() {
			_, err := GetRequiredStringParam(mcp.CallToolRequest{}, "database_name")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestGetRequiredPromptArg(t *testing.T) {
	Convey("Given a prompt request", t, func() {
		req := mcp.GetPromptRequest{}
		req.Params.Arguments = map[string]string{"message": "hi"}

		Convey("It should return the argument", func() {
			v, err := GetRequiredPromptArg(req, "message")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "hi")
		})

		Convey("It should fail when the argument is absent", func() {
			_, err := GetRequiredPromptArg(mcp.GetPromptRequest{}, "message")
			So(err, ShouldNotBeNil)
		})
	})
}
