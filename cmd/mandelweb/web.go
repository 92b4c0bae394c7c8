package main

import (
	"embed"
	"image/png"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

//go:embed static
var staticFiles embed.FS

// progress is the message pushed to websocket clients while the
// rendering runs.
type progress struct {
	TilesDone  int `json:"tilesDone"`
	TilesTotal int `json:"tilesTotal"`
	Workers    int `json:"workers"`
}

// webServer serves the progress page, the websocket progress feed and
// the current state of the rendering as a PNG.
func webServer(addr string, sched *tileScheduler) *http.Server {
	page, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", progressHandler(sched))
	mux.HandleFunc("/image.png", imageHandler(sched))
	mux.Handle("/", http.FileServer(http.FS(page)))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// progressHandler upgrades the connection to a websocket and pushes
// progress messages every 250ms until the render completes or the
// client goes away.
func progressHandler(sched *tileScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			p := sched.progress()
			if err := wsjson.Write(r.Context(), c, p); err != nil {
				return
			}
			if p.TilesDone == p.TilesTotal {
				c.Close(websocket.StatusNormalClosure, "render complete")
				return
			}

			select {
			case <-ticker.C:
			case <-r.Context().Done():
				return
			}
		}
	}
}

// imageHandler encodes whatever the scheduler has composed so far.
// Unfinished tiles show up black.
func imageHandler(sched *tileScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		if err := png.Encode(w, sched.snapshot()); err != nil {
			log.Printf("encode snapshot: %v", err)
		}
	}
}
