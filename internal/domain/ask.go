package domain

// AnswerKind tells callers which path produced an answer.
type AnswerKind string

const (
	// KindInstant is an exact match against the canned instant-answer table.
	KindInstant AnswerKind = "instant"
	// KindPlaceholder is the fixed stand-in reply returned for everything else
	// until real retrieval and generation exist.
	KindPlaceholder AnswerKind = "placeholder"
)

// Question is the caller-supplied input. It lives for a single request.
type Question struct {
	Text string `json:"question"`
}

// Answer is the transport-agnostic response shape. Voice is nil until
// speech synthesis exists; it is reserved for a reference to generated audio.
type Answer struct {
	Question string     `json:"question"`
	Text     string     `json:"text"`
	Voice    *string    `json:"voice"`
	Kind     AnswerKind `json:"type"`
}
