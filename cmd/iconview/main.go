// iconview serves a gallery page of the microphone icon at every configured
// size so the rendering can be checked in a browser.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"micicon/icon"
	"micicon/iconset"
	"micicon/utils"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/amalfra/etag/v3"
)

//go:embed index.html
var indexHTML string

const (
	title       = "Microphone icon preview"
	faviconSize = 64
	maxSize     = 4096
)

func main() {
	var port int
	var sizesStr string
	flag.IntVar(&port, "p", 9528, "port")
	flag.StringVar(&sizesStr, "s", iconset.FormatSizes(iconset.DefaultSizes), "icon sizes, comma separated")
	flag.Parse()

	sizes, err := iconset.ParseSizes(sizesStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	port, err = utils.GetFreePort(port, 100)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	ip, ipMsg := utils.GetIP()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("----------%s----------\n", title)
	fmt.Printf("sizes: %s\n", iconset.FormatSizes(sizes))
	fmt.Printf("url: http://%s:%d %s\n", ip, port, ipMsg)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", port),
		Handler:     newEngine(sizes),
		IdleTimeout: 10 * time.Second,
	}
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			fmt.Println("start failed:", err)
			signalChannel <- syscall.SIGTERM
		}
	}()

	sigReceived := <-signalChannel
	fmt.Printf("received %s, shutting down...\n", sigReceived)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

type Ctx struct {
	W   http.ResponseWriter
	R   *http.Request
	Log utils.Logger
}

type asset struct {
	data []byte
	etag string
}

// Engine routes requests and caches encoded icons by size. Rendering is
// pure, so a cached entry never goes stale.
type Engine struct {
	index asset

	mu    sync.RWMutex
	icons map[int]asset
}

func newEngine(sizes []int) *Engine {
	var gallery strings.Builder
	for _, size := range sizes {
		// small sizes are shown magnified so their pixels stay visible
		shown := max(size, 120)
		fmt.Fprintf(&gallery, `<figure><img src="/icon/%d.png" width="%d" height="%d" alt="%dx%d"><figcaption>%s</figcaption></figure>`+"\n",
			size, shown, shown, size, size, iconset.FileName(size))
	}
	page := strings.ReplaceAll(indexHTML, "{{.Title}}", title)
	page = strings.ReplaceAll(page, "{{.Gallery}}", gallery.String())

	return &Engine{
		index: asset{data: []byte(page), etag: etag.Generate(page, true)},
		icons: make(map[int]asset),
	}
}

func (e *Engine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var c = &Ctx{W: w, R: r}
	c.Log.ID = strings.Split(r.RemoteAddr, ":")[0]
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeErrorRsp(c, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	switch {
	case r.URL.Path == "/":
		writeAsset(c, e.index, "text/html; charset=utf-8")
	case r.URL.Path == "/app.png":
		e.iconHandler(c, faviconSize)
	case strings.HasPrefix(r.URL.Path, "/icon/"):
		name := strings.TrimPrefix(r.URL.Path, "/icon/")
		size, err := strconv.Atoi(strings.TrimSuffix(name, ".png"))
		if err != nil || !strings.HasSuffix(name, ".png") || size <= 0 || size > maxSize {
			writeErrorRsp(c, http.StatusBadRequest, "invalid icon size", err)
			return
		}
		e.iconHandler(c, size)
	default:
		writeErrorRsp(c, http.StatusNotFound, "not found", nil)
	}
}

func (e *Engine) iconHandler(c *Ctx, size int) {
	a, err := e.icon(size)
	if err != nil {
		writeErrorRsp(c, http.StatusInternalServerError, "encode icon failed", err)
		return
	}
	writeAsset(c, a, "image/png")
}

func (e *Engine) icon(size int) (asset, error) {
	e.mu.RLock()
	a, ok := e.icons[size]
	e.mu.RUnlock()
	if ok {
		return a, nil
	}

	data, err := iconset.Encode(icon.Render(size))
	if err != nil {
		return asset{}, err
	}
	a = asset{data: data, etag: etag.Generate(string(data), true)}

	e.mu.Lock()
	e.icons[size] = a
	e.mu.Unlock()
	return a, nil
}

func writeAsset(c *Ctx, a asset, contentType string) {
	if c.R.Header.Get("If-None-Match") == a.etag {
		c.W.WriteHeader(http.StatusNotModified)
		return
	}
	c.W.Header().Set("Content-Type", contentType)
	c.W.Header().Set("ETag", a.etag)
	c.W.WriteHeader(http.StatusOK)
	if c.R.Method == http.MethodGet {
		c.W.Write(a.data)
	}
}

func writeErrorRsp(c *Ctx, code int, msg string, err error) {
	if err != nil {
		c.Log.Errorf("%s %s: %s: %v", c.R.Method, c.R.URL.Path, msg, err)
	} else {
		c.Log.Warnf("%s %s: %s", c.R.Method, c.R.URL.Path, msg)
	}
	c.W.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.W.WriteHeader(code)
	c.W.Write([]byte(msg))
}
