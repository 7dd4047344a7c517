// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the bookmark list as tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/sitemarks/internal/apperr"
	"github.com/starford/sitemarks/internal/bookmarks"
	"github.com/starford/sitemarks/internal/render"
	"github.com/starford/sitemarks/internal/validator"
)

// Server wraps the MCP server with bookmark tools.
type Server struct {
	mcp *server.MCPServer
	ctl *bookmarks.Controller
}

// New creates a new MCP server with all bookmark tools registered.
func New(ctl *bookmarks.Controller, version string) *Server {
	s := &Server{ctl: ctl}

	s.mcp = server.NewMCPServer(
		"Sitemarks",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_bookmarks",
		mcp.WithDescription("List all bookmarks with their 1-based position, name and visit URL."),
	), s.listBookmarks)

	s.mcp.AddTool(mcp.NewTool("add_bookmark",
		mcp.WithDescription("Add a bookmark. The name and URL MUST follow the bookmark rules; "+
			"read them first via the get_bookmark_rules tool or the "+RulesURI+" resource."),
		mcp.WithString("site_name", mcp.Required(), mcp.Description("Site name, e.g. Google")),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("Site URL, e.g. google.com")),
	), s.addBookmark)

	s.mcp.AddTool(mcp.NewTool("delete_bookmark",
		mcp.WithDescription("Delete the bookmark at the given position."),
		mcp.WithNumber("position", mcp.Required(), mcp.Description("1-based position as shown by list_bookmarks")),
	), s.deleteBookmark)

	s.mcp.AddTool(mcp.NewTool("visit_bookmark",
		mcp.WithDescription("Return the URL that visiting the bookmark at the given position opens."),
		mcp.WithNumber("position", mcp.Required(), mcp.Description("1-based position as shown by list_bookmarks")),
	), s.visitBookmark)

	s.mcp.AddTool(mcp.NewTool("get_bookmark_rules",
		mcp.WithDescription("Returns the rules a site name and URL must follow to be accepted."),
	), s.getBookmarkRules)

	s.mcp.AddResource(
		mcp.NewResource(RulesURI, "Bookmark Rules",
			mcp.WithResourceDescription("Name and URL grammar plus uniqueness rules for bookmarks."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRulesResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listBookmarks(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rows := render.Rows(s.ctl.Bookmarks())
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addBookmark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("site_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	url, err := req.RequireString("site_url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	form := bookmarks.NewForm(name, url)
	res, err := s.ctl.Submit(ctx, form)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res.Notice != nil {
		return mcp.NewToolResultError(noticeText(res, form)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("added %s at position %d", res.Bookmark.SiteName, res.Index+1)), nil
}

func (s *Server) deleteBookmark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos, err := req.RequireInt("position")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	removed, err := s.ctl.Delete(ctx, pos-1)
	if err != nil {
		return positionError(pos, err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted %s", removed.SiteName)), nil
}

func (s *Server) visitBookmark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos, err := req.RequireInt("position")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target, err := s.ctl.Visit(ctx, pos-1)
	if err != nil {
		return positionError(pos, err), nil
	}
	return mcp.NewToolResultText(target), nil
}

func (s *Server) getBookmarkRules(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(BookmarkRules), nil
}

func (s *Server) readRulesResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      RulesURI,
			MIMEType: "text/markdown",
			Text:     BookmarkRules,
		},
	}, nil
}

// positionError reports a bad position as such and passes storage
// failures through unchanged.
func positionError(pos int, err error) *mcp.CallToolResult {
	if errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("no bookmark at position %d", pos))
	}
	return mcp.NewToolResultError(err.Error())
}

// noticeText flattens a rejection notice, naming the inputs that failed.
func noticeText(res *bookmarks.Result, form *bookmarks.Form) string {
	var b strings.Builder
	b.WriteString(res.Notice.Title)
	for _, line := range res.Notice.Lines {
		b.WriteString("\n- ")
		b.WriteString(line)
	}
	if form.Name.Mark == validator.MarkInvalid {
		b.WriteString("\ninvalid: site_name")
	}
	if form.URL.Mark == validator.MarkInvalid {
		b.WriteString("\ninvalid: site_url")
	}
	return b.String()
}
