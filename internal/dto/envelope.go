package dto

// Envelope is the wire shape of every response, success or failure.
// Count is set for list responses only; Error carries diagnostic detail and
// is never the sole carrier of the failure category.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// OK wraps a successful payload.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKList wraps a list payload with its length.
func OKList(data interface{}, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}

// OKMessage wraps a successful mutation with a confirmation message.
func OKMessage(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail builds an error envelope with a stable category message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// FailDetail adds lower-level diagnostic detail to a Fail envelope.
func FailDetail(message, detail string) Envelope {
	return Envelope{Success: false, Message: message, Error: detail}
}
