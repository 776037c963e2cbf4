package llm

import "fmt"

// TransportError reports a non-success HTTP status from a completion endpoint.
type TransportError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *TransportError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API request failed: %d %s: %s", e.StatusCode, e.Status, e.Body)
	}
	return fmt.Sprintf("API request failed: %d %s", e.StatusCode, e.Status)
}

// EmptyResponseError indicates the completion endpoint returned no choices.
type EmptyResponseError struct {
	Model string
}

func (e *EmptyResponseError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("no response generated by model %s", e.Model)
	}
	return "no response generated"
}
