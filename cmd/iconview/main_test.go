package main

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serve(t *testing.T, e *Engine, method, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	e := newEngine([]int{20, 1024})
	rec := serve(t, e, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`src="/icon/20.png"`, `src="/icon/1024.png"`, "icon_20x20.png", title} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(body, "{{.") {
		t.Error("index has unreplaced placeholders")
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("index has no ETag")
	}
}

func TestIcon(t *testing.T) {
	e := newEngine(nil)
	rec := serve(t, e, http.MethodGet, "/icon/40.png", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Errorf("icon is %dx%d, want 40x40", b.Dx(), b.Dy())
	}
}

func TestFavicon(t *testing.T) {
	rec := serve(t, newEngine(nil), http.MethodGet, "/app.png", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != faviconSize {
		t.Errorf("favicon width = %d, want %d", img.Bounds().Dx(), faviconSize)
	}
}

func TestNotModified(t *testing.T) {
	e := newEngine([]int{20})
	for _, target := range []string{"/", "/icon/20.png"} {
		t.Run(target, func(t *testing.T) {
			first := serve(t, e, http.MethodGet, target, nil)
			tag := first.Header().Get("ETag")
			if tag == "" {
				t.Fatal("no ETag")
			}
			second := serve(t, e, http.MethodGet, target, map[string]string{"If-None-Match": tag})
			if second.Code != http.StatusNotModified {
				t.Errorf("status = %d, want 304", second.Code)
			}
			if second.Body.Len() != 0 {
				t.Errorf("304 carried %d body bytes", second.Body.Len())
			}
		})
	}
}

func TestBadRequests(t *testing.T) {
	e := newEngine(nil)
	tests := []struct {
		method, target string
		want           int
	}{
		{http.MethodGet, "/icon/0.png", http.StatusBadRequest},
		{http.MethodGet, "/icon/-3.png", http.StatusBadRequest},
		{http.MethodGet, "/icon/abc.png", http.StatusBadRequest},
		{http.MethodGet, "/icon/20.jpg", http.StatusBadRequest},
		{http.MethodGet, "/icon/99999.png", http.StatusBadRequest},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodPost, "/", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			if rec := serve(t, e, tt.method, tt.target, nil); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestIconCached(t *testing.T) {
	e := newEngine(nil)
	a := serve(t, e, http.MethodGet, "/icon/58.png", nil)
	b := serve(t, e, http.MethodGet, "/icon/58.png", nil)
	if !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Error("second response differs from the first")
	}
	e.mu.RLock()
	n := len(e.icons)
	e.mu.RUnlock()
	if n != 1 {
		t.Errorf("cache holds %d entries, want 1", n)
	}
}
