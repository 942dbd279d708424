package domain

import (
	"encoding/json"
	"html"
)

// Selectors understood by Format. Anything else renders plain text.
const (
	FormatJSON = "json"
	FormatHTML = "html"
)

const (
	ContentTypeJSON  = "application/json; charset=utf-8"
	ContentTypeHTML  = "text/html; charset=utf-8"
	ContentTypePlain = "text/plain; charset=utf-8"
)

// Message is a rendered response body with its media type.
type Message struct {
	ContentType string
	Body        []byte
}

// Format renders "<word>!" as JSON, HTML or plain text. Only an exact selector picks
// JSON or HTML.
func Format(selector, word string) Message {
	text := word + "!"
	switch selector {
	case FormatJSON:
		body, _ := json.Marshal(struct {
			Message string `json:"message"`
		}{Message: text})
		return Message{ContentType: ContentTypeJSON, Body: body}
	case FormatHTML:
		doc := "<html><head><title>Some HTML in here</title></head><body><h1>" + html.EscapeString(text) + "</h1></body></html>"
		return Message{ContentType: ContentTypeHTML, Body: []byte(doc)}
	default:
		return Message{ContentType: ContentTypePlain, Body: []byte(text)}
	}
}
