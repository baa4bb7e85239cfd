package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/figura/internal/interfaces"
)

// handleExtractFigures implements the extract_figures tool
func handleExtractFigures(extractionService interfaces.ExtractionService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Parse pdf_path parameter (required)
		pdfPath, err := request.RequireString("pdf_path")
		if err != nil || pdfPath == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: pdf_path parameter is required"),
				},
			}, nil
		}

		// Run extraction
		figures, err := extractionService.Extract(ctx, interfaces.ExtractionRequest{Path: pdfPath})
		if err != nil {
			logger.Error().Err(err).Str("pdf_path", pdfPath).Msg("Extraction failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(formatExtractionError(pdfPath, err)),
				},
			}, nil
		}

		// Format results as markdown
		markdown := formatFigures(pdfPath, figures)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleInspectPDF implements the inspect_pdf tool
func handleInspectPDF(inspectorService interfaces.PDFInspector, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Parse pdf_path parameter (required)
		pdfPath, err := request.RequireString("pdf_path")
		if err != nil || pdfPath == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: pdf_path parameter is required"),
				},
			}, nil
		}

		// Read metadata
		info, err := inspectorService.Inspect(ctx, pdfPath)
		if err != nil {
			logger.Error().Err(err).Str("pdf_path", pdfPath).Msg("Inspect failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(formatInspectError(pdfPath, err)),
				},
			}, nil
		}

		// Format as markdown
		markdown := formatPDFInfo(info)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}
