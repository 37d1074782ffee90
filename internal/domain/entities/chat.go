package entities

// ChatRequest is a free-text medical question from a patient.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse pairs the sanitized assistant answer with the documents
// that grounded it, so clients can show provenance.
type ChatResponse struct {
	Answer            string              `json:"answer"`
	RetrievedContexts []RetrievedDocument `json:"retrieved_contexts"`
}
