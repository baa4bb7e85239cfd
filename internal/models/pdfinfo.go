package models

// PDFInfo summarizes a PDF document without running figure extraction.
type PDFInfo struct {
	Path      string `json:"path"`
	Pages     int    `json:"pages"`
	Encrypted bool   `json:"encrypted"`
	FileSize  int64  `json:"file_size"`
}
