package request

// InboundFrame is what a relay participant may send: either a control
// frame (type END_SESSION) or a plain content message.
type InboundFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const TypeEndSession = "END_SESSION"
