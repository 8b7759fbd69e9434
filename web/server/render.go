package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// ProgressUpdate reports completed scanlines via SSE
type ProgressUpdate struct {
	RenderID      string `json:"renderId"`
	RowsCompleted int    `json:"rowsCompleted"`
	TotalRows     int    `json:"totalRows"`
}

// CompleteUpdate carries the finished image and its statistics
type CompleteUpdate struct {
	RenderID    string  `json:"renderId"`
	PPM         string  `json:"ppm"` // Full P3 image text
	TotalPixels int     `json:"totalPixels"`
	Hits        int     `json:"hits"`
	HitRatio    float64 `json:"hitRatio"`
	ElapsedMs   int64   `json:"elapsedMs"`
}

// handleRender renders a scene and streams the result over SSE: console
// events as the renderer logs, progress events as rows finish, and a
// final complete event carrying the PPM text. Closing the connection
// cancels the render through the request context.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.New(req.Scene)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	// Tag the render so interleaved server logs stay attributable
	renderID := uuid.New().String()
	consoleChan := make(chan ConsoleMessage, 100)
	logger := NewWebLogger(renderID, consoleChan)

	config := renderer.MergeConfig(renderer.DefaultConfig(), renderer.Config{
		Width:  req.Width,
		Height: req.Height,
	})
	rend := renderer.NewRenderer(sceneObj, renderer.NewCamera(config), logger)

	ctx := r.Context()
	start := time.Now()
	progressChan, resultChan, errChan := rend.RenderStreaming(ctx, req.Workers)

	// This loop is the only writer on the connection, so events never
	// interleave. The render goroutine closes its channels when it
	// finishes; the console channel drains before the final event.
	for {
		select {
		case msg := <-consoleChan:
			s.sendSSEJSON(w, "console", msg)

		case progress, ok := <-progressChan:
			if !ok {
				progressChan = nil
				continue
			}
			s.sendSSEJSON(w, "progress", ProgressUpdate{
				RenderID:      renderID,
				RowsCompleted: progress.RowsCompleted,
				TotalRows:     progress.TotalRows,
			})

		case result, ok := <-resultChan:
			if !ok {
				resultChan = nil
				if errChan == nil {
					return
				}
				continue
			}
			s.drainConsole(w, consoleChan)
			s.sendSSEJSON(w, "complete", CompleteUpdate{
				RenderID:    renderID,
				PPM:         result.Canvas.PPM(),
				TotalPixels: result.Stats.TotalPixels,
				Hits:        result.Stats.Hits,
				HitRatio:    result.Stats.HitRatio(),
				ElapsedMs:   time.Since(start).Milliseconds(),
			})
			return

		case renderErr, ok := <-errChan:
			if !ok {
				errChan = nil
				if resultChan == nil {
					return
				}
				continue
			}
			s.sendSSEError(w, fmt.Sprintf("Render error: %v", renderErr))
			return

		case <-ctx.Done():
			return
		}
	}
}

// drainConsole forwards any console messages still queued, without blocking
func (s *Server) drainConsole(w http.ResponseWriter, consoleChan <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendSSEJSON(w, "console", msg)
		default:
			return
		}
	}
}

// setSSEHeaders marks the response as a server-sent event stream
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEJSON marshals data and sends it as an SSE event
func (s *Server) sendSSEJSON(w http.ResponseWriter, event string, data interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, event, string(encoded))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
