package worker

import "github.com/AnyUserName/imgconv/internal/encoder"

// Request is one conversion job. ImageData is base64 in JSON.
type Request struct {
	ImageData  []byte         `json:"imageData"`
	FileName   string         `json:"fileName"`
	InputType  string         `json:"inputType"`
	OutputType string         `json:"outputType"`
	Options    encoder.Tuning `json:"options"`
}

// Ready is posted once when the loop starts accepting requests.
type Ready struct {
	Type string `json:"type"`
}

// Done carries a successful conversion back to the host.
type Done struct {
	Type       string `json:"type"`
	ImageData  []byte `json:"imageData"`
	FileName   string `json:"fileName"`
	OutputType string `json:"outputType"`
	Digest     string `json:"digest"` // xxhash64 of ImageData, hex
}

// Failure reports a failed request.
type Failure struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	TypeReady = "ready"
	TypeDone  = "done"
	TypeError = "error"
)
