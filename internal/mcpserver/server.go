// Package mcpserver exposes the questionnaire, the type profiles and
// classification as MCP tools over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abhisek/keizoku/internal/session"
)

// New creates the MCP server with every tool registered.
func New(classifier session.Classifier, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"keizoku",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	questionsTool := NewQuestionsTool()
	s.AddTool(questionsTool.Definition(), questionsTool.Handle)

	typesTool := NewTypesTool()
	s.AddTool(typesTool.Definition(), typesTool.Handle)

	classifyTool := NewClassifyTool(classifier)
	s.AddTool(classifyTool.Definition(), classifyTool.Handle)

	return s
}

// Serve runs s on stdin/stdout until the client disconnects or the process
// is signalled.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

const instructions = `keizoku diagnoses which of eight continuity types fits a person.
Call list_questions, ask the person to rate each statement from 1 (strongly disagree)
to 5 (strongly agree), then call classify_responses with the ten ratings in order.
Use list_types to explain a type in depth.`
