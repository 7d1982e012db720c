package worker

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/AnyUserName/imgconv/internal/codec"
	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/AnyUserName/imgconv/internal/hasher"
	"github.com/AnyUserName/imgconv/internal/progress"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func requestLine(t *testing.T, req map[string]any) string {
	t.Helper()
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	return string(b) + "\n"
}

type line struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	ImageData  []byte `json:"imageData"`
	FileName   string `json:"fileName"`
	OutputType string `json:"outputType"`
	Digest     string `json:"digest"`
}

func runWorker(t *testing.T, cfg Config, input string) []line {
	t.Helper()
	var out bytes.Buffer
	if err := New(progress.NewJSONLines(&out), cfg).Run(strings.NewReader(input)); err != nil {
		t.Fatalf("run: %v", err)
	}
	var lines []line
	dec := json.NewDecoder(&out)
	for dec.More() {
		var l line
		if err := dec.Decode(&l); err != nil {
			t.Fatalf("decode output: %v", err)
		}
		lines = append(lines, l)
	}
	return lines
}

func TestWorker_Conversion(t *testing.T) {
	in := requestLine(t, map[string]any{
		"imageData":  pngBytes(t),
		"fileName":   "photo.png",
		"inputType":  "image/png",
		"outputType": "image/jpeg",
		"options":    map[string]any{"quality": 70, "compression": nil, "filter": nil},
	})
	lines := runWorker(t, Config{Identifiers: format.MIMETypes}, in)

	wantTypes := []string{"ready", "progress", "progress", "progress", "done"}
	if len(lines) != len(wantTypes) {
		t.Fatalf("got %d messages: %+v", len(lines), lines)
	}
	for i, typ := range wantTypes {
		if lines[i].Type != typ {
			t.Errorf("message %d: got type %q, want %q", i, lines[i].Type, typ)
		}
	}
	if lines[1].Message != progress.Loading || lines[3].Message != progress.Completed {
		t.Errorf("progress text: %q, %q", lines[1].Message, lines[3].Message)
	}
	done := lines[4]
	if done.FileName != "photo.png" || done.OutputType != "image/jpeg" {
		t.Errorf("done: %+v", done)
	}
	if got, err := codec.Guess(done.ImageData); err != nil || got != format.Jpeg {
		t.Errorf("output sniffed as %s, %v", got, err)
	}
	if done.Digest != hasher.ContentHash(done.ImageData, 0) {
		t.Errorf("digest mismatch")
	}
}

func TestWorker_Errors(t *testing.T) {
	in := "not json\n" +
		requestLine(t, map[string]any{
			"imageData": pngBytes(t), "inputType": "png", "outputType": "bogus",
			"options": map[string]any{},
		}) +
		"\n" +
		requestLine(t, map[string]any{
			"imageData": []byte("garbage"), "inputType": "png", "outputType": "gif",
			"options": map[string]any{},
		})
	lines := runWorker(t, Config{}, in)

	var types []string
	for _, l := range lines {
		types = append(types, l.Type)
	}
	want := "ready error error progress error"
	if got := strings.Join(types, " "); got != want {
		t.Fatalf("types: got %q, want %q", got, want)
	}
	if !strings.HasPrefix(lines[1].Message, "Malformed request") {
		t.Errorf("malformed: %q", lines[1].Message)
	}
	if lines[2].Message != "Unsupported output format: bogus" {
		t.Errorf("unsupported: %q", lines[2].Message)
	}
	if !strings.HasPrefix(lines[4].Message, "Image processing error: ") {
		t.Errorf("decode: %q", lines[4].Message)
	}
}

type panicCodec struct{ codec.ImageCodec }

func (panicCodec) Decode([]byte, format.Format) (*codec.PixelBuffer, error) {
	panic("codec blew up")
}

func TestWorker_RecoversPanics(t *testing.T) {
	w := New(progress.Discard, Config{Codec: panicCodec{}})
	reply := w.Handle([]byte(`{"imageData":"","inputType":"png","outputType":"png","options":{}}`))
	f, ok := reply.(Failure)
	if !ok || f.Message != "Unexpected exception: codec blew up" {
		t.Fatalf("got %#v", reply)
	}
}
