// Package bformtest provides helpers for testing code that produces
// multipart/form-data request bodies.
package bformtest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Capture is one multipart request recorded by the capture server.
type Capture struct {
	ContentType string
	Boundary    string
	Fields      map[string]string
	Files       map[string]string // field name -> filename
	Raw         []byte
}

// Recorder accumulates the captures of a server started with [NewServer].
type Recorder struct {
	mu       sync.Mutex
	captures []Capture
}

// Last returns the most recent capture, failing the test when the server
// saw no parseable multipart request yet.
func (r *Recorder) Last(tb testing.TB) Capture {
	tb.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.captures) == 0 {
		tb.Fatal("bformtest: no multipart request captured")
	}

	return r.captures[len(r.captures)-1]
}

func (r *Recorder) record(c Capture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.captures = append(r.captures, c)
}

// NewServer starts an httptest server that parses multipart/form-data
// requests, records them on the returned Recorder, and echoes the parsed
// fields and filenames back as JSON:
//
//	{"fields": {"name": "Ada"}, "files": {"bio": "bio.txt"}}
//
// Unparseable requests fail with 400. The server is closed via tb.Cleanup.
func NewServer(tb testing.TB) (*httptest.Server, *Recorder) {
	tb.Helper()

	rec := &Recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capture, err := parseRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec.record(capture)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"fields": capture.Fields,
			"files":  capture.Files,
		})
	}))

	tb.Cleanup(srv.Close)

	return srv, rec
}

func parseRequest(r *http.Request) (Capture, error) {
	capture := Capture{
		ContentType: r.Header.Get("Content-Type"),
		Fields:      map[string]string{},
		Files:       map[string]string{},
	}

	_, params, err := mime.ParseMediaType(capture.ContentType)
	if err != nil {
		return capture, err
	}
	capture.Boundary = params["boundary"]

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return capture, err
	}
	capture.Raw = raw

	reader := multipart.NewReader(bytes.NewReader(raw), capture.Boundary)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return capture, err
		}

		data, err := io.ReadAll(part)
		if err != nil {
			return capture, err
		}

		if part.FileName() != "" {
			capture.Files[part.FormName()] = part.FileName()
		} else {
			capture.Fields[part.FormName()] = string(data)
		}
	}

	return capture, nil
}
