package usage

import "time"

// Outcome classifies how a generation attempt ended.
type Outcome string

const (
	// OutcomeOK means a valid document was returned to the caller.
	OutcomeOK Outcome = "ok"
	// OutcomeInvalidOutput means the model responded but the sanitized
	// output failed document validation.
	OutcomeInvalidOutput Outcome = "invalid_output"
	// OutcomeUpstreamError means the completion call itself failed.
	OutcomeUpstreamError Outcome = "upstream_error"
	// OutcomeRejected means the request was rejected before any outbound
	// call (missing or too-short prompt).
	OutcomeRejected Outcome = "rejected"
)

// Entry is a single generation log record. Prompt text is truncated to an
// excerpt and the generated markup is never recorded.
type Entry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	PromptExcerpt string    `json:"prompt_excerpt"`
	Model         string    `json:"model"`
	Outcome       Outcome   `json:"outcome"`
	Detail        string    `json:"detail,omitempty"`
	Duration      int64     `json:"duration_ms"`
	InputTokens   int       `json:"input_tokens"`
	OutputTokens  int       `json:"output_tokens"`
	CostUSD       float64   `json:"cost_usd"`
}

// Stats summarizes the generation log.
type Stats struct {
	Total        int     `json:"total"`
	Succeeded    int     `json:"succeeded"`
	Failed       int     `json:"failed"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
}
