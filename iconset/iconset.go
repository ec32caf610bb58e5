// Package iconset writes the microphone icon at a list of sizes into an
// output directory, one PNG per size.
package iconset

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/png"
	"micicon/icon"
	"micicon/utils"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/hymkor/trash-go"
	"golang.org/x/crypto/blake2b"
)

// DefaultDir is created relative to the working directory.
const DefaultDir = "generated_icons"

// DefaultSizes are the pixel sizes an iOS app icon set needs.
var DefaultSizes = []int{20, 29, 40, 58, 60, 76, 80, 87, 120, 152, 167, 180, 1024}

var iconFilePattern = regexp.MustCompile(`^icon_(\d+)x(\d+)\.png$`)

func FileName(size int) string {
	return fmt.Sprintf("icon_%dx%d.png", size, size)
}

// ParseSizes parses a comma separated list of positive sizes.
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}

func FormatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, v := range sizes {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Result describes one written icon file.
type Result struct {
	Size   int
	Path   string
	Bytes  int
	Digest string // first 8 hex digits of the BLAKE2b-256 sum
}

// Generator renders Sizes into Dir. With Resample set, the icon is drawn
// once at the reference size and scaled down instead of drawn per size.
type Generator struct {
	Dir      string
	Sizes    []int
	Resample bool
	OnWrite  func(Result)
}

// Run writes every size in order and stops at the first failure, leaving
// any files already written in place.
func (g *Generator) Run() ([]Result, error) {
	for _, size := range g.Sizes {
		if size <= 0 {
			return nil, fmt.Errorf("invalid icon size %d", size)
		}
	}
	if _, err := utils.EnsureDir(g.Dir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var ref *image.NRGBA
	results := make([]Result, 0, len(g.Sizes))
	for _, size := range g.Sizes {
		var img *image.NRGBA
		if g.Resample {
			if ref == nil {
				ref = icon.Render(icon.ReferenceSize)
			}
			img = ref
			if size != icon.ReferenceSize {
				img = icon.Resample(ref, size)
			}
		} else {
			img = icon.Render(size)
		}

		res, err := writePNG(filepath.Join(g.Dir, FileName(size)), img)
		if err != nil {
			return results, err
		}
		res.Size = size
		results = append(results, res)
		if g.OnWrite != nil {
			g.OnWrite(res)
		}
	}
	return results, nil
}

// Encode returns img as PNG bytes.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:4])
}

func writePNG(path string, img image.Image) (Result, error) {
	data, err := Encode(img)
	if err != nil {
		return Result{}, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}
	return Result{Path: path, Bytes: len(data), Digest: Digest(data)}, nil
}

// Stale lists icon files in dir that the given sizes would not produce.
// Other files are never reported.
func Stale(dir string, sizes []int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]struct{}, len(sizes))
	for _, size := range sizes {
		keep[FileName(size)] = struct{}{}
	}

	var stale []string
	for _, e := range entries {
		info, err := e.Info()
		if err != nil || utils.IsIgnoreFile(info) {
			continue
		}
		if !iconFilePattern.MatchString(e.Name()) {
			continue
		}
		if _, ok := keep[e.Name()]; ok {
			continue
		}
		stale = append(stale, filepath.Join(dir, e.Name()))
	}
	return stale, nil
}

// Remove deletes paths, moving them to the recycle bin when useTrash is
// set. It attempts every path and returns the joined errors.
func Remove(paths []string, useTrash bool) error {
	var errs []error
	for _, p := range paths {
		var err error
		if useTrash {
			err = trash.Throw(p)
		} else {
			err = os.Remove(p)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}
