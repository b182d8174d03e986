package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools/utils"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(
		mcp.NewPrompt(
			"echo",
			mcp.WithPromptDescription("Echo the message back as a user message"),
			mcp.WithArgument(
				"message",
				mcp.RequiredArgument(),
				mcp.ArgumentDescription("The message to echo"),
			),
		),
		handleEcho,
	)
}

func handleEcho(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	message, err := utils.GetRequiredPromptArg(request, "message")
	if err != nil {
		return nil, tools.NewInvalidParamsError(err)
	}

	return mcp.NewGetPromptResult(
		"Echo",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(message)),
		},
	), nil
}
