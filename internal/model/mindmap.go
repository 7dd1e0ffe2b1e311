package model

import "time"

// Mindmap is the result of one document-to-mindmap conversion.
// It is a pure domain model shared across layers (HTTP, service, session
// store) with no transport- or storage-specific coupling.
type Mindmap struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	Markdown     string    `json:"markdown"`
	Model        string    `json:"model"`
	PageCount    int       `json:"page_count"`
	PagesSkipped int       `json:"pages_skipped"`
	SourceChars  int       `json:"source_chars"`
	Truncated    bool      `json:"truncated"`
	CreatedAt    time.Time `json:"created_at"`

	// SourceText is the extracted document text the markdown was generated
	// from. It is kept in the session store so follow-up generation (study
	// questions) can reuse it, and is never serialized to clients.
	SourceText string `json:"-"`
}
