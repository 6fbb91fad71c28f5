package llmreq

// Message is the body of the ask-a-question endpoint.
type Message struct {
	Question string `json:"question" binding:"required"`
}
