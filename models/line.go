package models

// MessageEvent is a text message received from the LINE webhook, reduced to
// the fields the command pipeline needs. Non-text and non-message events are
// filtered out before this type is constructed.
type MessageEvent struct {
	// LineUserID identifies the sender ("U..." string).
	LineUserID string `json:"line_user_id"`

	// ReplyToken is the one-shot token used to answer this event.
	ReplyToken string `json:"reply_token"`

	// Text is the raw message text, leading and trailing space untrimmed.
	Text string `json:"text"`
}
