package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	for i := 0; i < 2; i++ {
		got, err := EnsureDir(dir)
		if err != nil {
			t.Fatalf("EnsureDir call %d: %v", i+1, err)
		}
		if got != dir {
			t.Errorf("EnsureDir call %d = %q, want %q", i+1, got, dir)
		}
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestEnsureDirOnFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureDir(f); err == nil {
		t.Error("EnsureDir on a regular file returned nil error")
	}
}

func TestIsIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"icon_20x20.png", ".DS_Store"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"icon_20x20.png", false},
		{".DS_Store", true},
		{"sub", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := os.Lstat(filepath.Join(dir, tt.name))
			if err != nil {
				t.Fatal(err)
			}
			if got := IsIgnoreFile(info); got != tt.want {
				t.Errorf("IsIgnoreFile(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{ID: "192.0.2.1", Out: &buf}
	l.Printf("GET %s", "/icon/20.png")
	l.Error("boom", 42)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	for i, want := range []string{"|inf|utils_test.go:", "|err|utils_test.go:"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
	if !strings.HasSuffix(lines[0], "|192.0.2.1|GET /icon/20.png") {
		t.Errorf("line 0 = %q, missing id and message", lines[0])
	}
	if !strings.HasSuffix(lines[1], "|boom 42") {
		t.Errorf("line 1 = %q, params not space separated", lines[1])
	}
}

func TestPrinterPlainWhenRedirected(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	p := NewPrinter(f)
	p.Println("✅", "created", 20)
	p.Printf("🎉", "done %d\n", 1)

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "created 20\ndone 1\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestGetFreePort(t *testing.T) {
	port, err := GetFreePort(20000, 100)
	if err != nil {
		t.Fatal(err)
	}
	if port < 20000 || port >= 20100 {
		t.Errorf("GetFreePort = %d, want in [20000, 20100)", port)
	}
}
