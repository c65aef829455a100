package ws

// --- Inbound frames ---

type inboundFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// --- Outbound frames ---

type thinkingFrame struct {
	Type    string `json:"type"`
	Step    string `json:"step"`
	Message string `json:"message"`
}

type responseFrame struct {
	Type      string `json:"type"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func newThinkingFrame(step, message string) thinkingFrame {
	return thinkingFrame{Type: "thinking", Step: step, Message: message}
}

func newResponseFrame(content, timestamp string) responseFrame {
	return responseFrame{Type: "response", Role: "ai", Content: content, Timestamp: timestamp}
}

func newErrorFrame(message string) errorFrame {
	return errorFrame{Type: "error", Message: message}
}
