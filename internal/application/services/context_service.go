package services

import (
	"fmt"
	"strings"

	"github.com/detakmedis/backend/internal/domain/entities"
)

// Sentinel strings substituted when retrieval returns nothing; the
// personas are written against these exact phrases.
const (
	noChatContext      = "Tidak ada informasi relevan yang ditemukan di database."
	noDiagnosisContext = "tidak ada informasi dokumen relevan yang ditemukan di database."

	diagnosisContextHeader = "INFORMASI DOKUMEN TEKSTUAL TENTANG KELUHAN PENGGUNA (dari database):"
)

// BuildChatContext assembles the chat context block from retrieved
// documents.
func BuildChatContext(docs []entities.RetrievedDocument) string {
	if len(docs) == 0 {
		return noChatContext
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, fmt.Sprintf("Sumber: %s\nKonten: %s", doc.Source, doc.Content))
	}
	return strings.Join(parts, "\n\n")
}

// BuildDiagnosisContext assembles the diagnosis context: the image
// label first (when present), then the retrieved document block, the
// sections separated so the model can tell them apart.
func BuildDiagnosisContext(imageLabel string, docs []entities.RetrievedDocument) string {
	docBlock := noDiagnosisContext
	if len(docs) > 0 {
		parts := make([]string, 0, len(docs))
		for _, doc := range docs {
			parts = append(parts, fmt.Sprintf("Sumber Dokumen: %s\nKonten Dokumen: %s", doc.Source, doc.Content))
		}
		docBlock = strings.Join(parts, "\n\n")
	}

	sections := []string{}
	if imageLabel != "" {
		sections = append(sections, imageLabel)
	}
	sections = append(sections, diagnosisContextHeader+"\n"+docBlock)

	return strings.Join(sections, "\n\n---\n\n")
}
