package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createExtractFiguresTool returns the extract_figures tool definition
func createExtractFiguresTool() mcp.Tool {
	return mcp.NewTool("extract_figures",
		mcp.WithDescription("Extract figures and tables from a PDF using the pdffigures2 engine"),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Path to the PDF file on the server filesystem"),
		),
	)
}

// createInspectPDFTool returns the inspect_pdf tool definition
func createInspectPDFTool() mcp.Tool {
	return mcp.NewTool("inspect_pdf",
		mcp.WithDescription("Read PDF metadata (page count, encryption, file size) without running extraction"),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Path to the PDF file on the server filesystem"),
		),
	)
}
