// Package lsp implements a minimal language server exposing the class
// sorter as textDocument/formatting over stdio.
package lsp

import (
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"bennypowers.dev/twsort/internal/config"
	"bennypowers.dev/twsort/internal/documents"
	"bennypowers.dev/twsort/internal/format"
	"bennypowers.dev/twsort/internal/log"
	"bennypowers.dev/twsort/internal/parser"
	"bennypowers.dev/twsort/internal/position"
	"bennypowers.dev/twsort/internal/sorter"
	"bennypowers.dev/twsort/internal/uriutil"
)

const serverName = "twsort"

// Server is the twsort language server
type Server struct {
	documents  *documents.Manager
	glspServer *glspserver.Server
	handler    protocol.Handler
	version    string
}

// NewServer creates a new twsort LSP server
func NewServer(version string) *Server {
	commonlog.Configure(1, nil)

	s := &Server{
		documents: documents.NewManager(),
		version:   version,
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.didOpen,
		TextDocumentDidChange:  s.didChange,
		TextDocumentDidClose:   s.didClose,
		TextDocumentFormatting: s.formatting,
	}

	s.glspServer = glspserver.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio starts the LSP server using stdio transport
func (s *Server) RunStdio() error {
	return s.glspServer.RunStdio()
}

// Close releases pooled parser resources.
func (s *Server) Close() error {
	parser.ClosePools()
	return nil
}

// Documents exposes the document manager, primarily for tests.
func (s *Server) Documents() *documents.Manager {
	return s.documents
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	clientName := "unknown"
	if params.ClientInfo != nil {
		clientName = params.ClientInfo.Name
	}
	log.Info("Initializing for client: %s", clientName)

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
	}
	capabilities.DocumentFormattingProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(*glsp.Context, *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(*glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(_ *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := params.TextDocument
	return s.documents.DidOpen(td.URI, td.LanguageID, int(td.Version), td.Text)
}

func (s *Server) didChange(_ *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	// ContentChanges mixes whole-document and ranged events.
	changes := make([]protocol.TextDocumentContentChangeEvent, 0, len(params.ContentChanges))
	for _, change := range params.ContentChanges {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, protocol.TextDocumentContentChangeEvent{Text: change.Text})
		case protocol.TextDocumentContentChangeEvent:
			changes = append(changes, change)
		}
	}
	return s.documents.DidChange(params.TextDocument.URI, int(params.TextDocument.Version), changes)
}

func (s *Server) didClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return s.documents.DidClose(params.TextDocument.URI)
}

// formatting rewrites the document's class lists and returns one edit
// covering the whole document, or nil when nothing changed.
func (s *Server) formatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	if !parser.IsSupportedLanguage(doc.LanguageID()) {
		return nil, nil
	}

	path := uriutil.URIToPath(doc.URI())
	opts, err := config.LoadForFile(path)
	if err != nil {
		log.Warn("Config for %s unusable, using defaults: %v", path, err)
		opts = config.DefaultOptions()
	}

	srt, err := resolveSorter(opts)
	if err != nil {
		log.Warn("Order file unusable, leaving class order alone: %v", err)
		srt = sorter.Identity{}
	}

	content := doc.Content()
	rewritten, err := parser.RewriteDocument(content, doc.LanguageID(), &opts, srt)
	if err != nil {
		return nil, err
	}
	if rewritten == content {
		return nil, nil
	}

	return []protocol.TextEdit{
		{
			Range:   fullRange(content),
			NewText: rewritten,
		},
	}, nil
}

// resolveSorter picks the ordering policy configured for a document.
func resolveSorter(opts config.Options) (format.Sorter, error) {
	if opts.OrderFile == "" {
		return sorter.Identity{}, nil
	}
	return sorter.LoadPolicy(opts.OrderFile)
}

// fullRange spans content from its first byte to its last. The end
// column is measured in UTF-16 code units per the LSP spec.
func fullRange(content string) protocol.Range {
	lines := strings.Split(content, "\n")
	lastLine := lines[len(lines)-1]
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End: protocol.Position{
			Line:      protocol.UInteger(len(lines) - 1),
			Character: protocol.UInteger(position.StringLengthUTF16(lastLine)),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
