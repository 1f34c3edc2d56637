package types

// QueryRequest is the document-plus-questions contract the pipeline is
// invoked with. Documents is the URL of the PDF to process; Questions
// are answered in order against that single document.
type QueryRequest struct {
	Documents string   `json:"documents"`
	Questions []string `json:"questions"`
}
