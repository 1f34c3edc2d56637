package types

// QueryResponse carries one answer per question, in request order.
type QueryResponse struct {
	Answers []string `json:"answers"`
}

type DataResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
