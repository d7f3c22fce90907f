package model

// Assistant modes. HELP answers usage questions, INVENTORY forces the
// live-summary intent regardless of keywords.
const (
	ModeHelp      = "HELP"
	ModeInventory = "INVENTORY"
)

// ChatRequest is the incoming assistant message. Mode is optional and
// defaults to HELP.
type ChatRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

// ChatResponse carries the assistant's reply together with the mode it was
// answered in.
type ChatResponse struct {
	Reply string `json:"reply"`
	Mode  string `json:"mode"`
}
