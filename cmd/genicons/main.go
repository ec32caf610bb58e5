// genicons draws the microphone app icon at every iOS icon size and writes
// the PNGs into an output directory.
// Usage: go run ./cmd/genicons [-o dir] [-s 20,29,...] [-r] [-c [-t]]
package main

import (
	"flag"
	"fmt"
	"micicon/iconset"
	"micicon/utils"
	"os"
)

func main() {
	var outDir, sizesStr string
	var resample, clean, useTrash bool
	flag.StringVar(&outDir, "o", iconset.DefaultDir, "output directory")
	flag.StringVar(&sizesStr, "s", iconset.FormatSizes(iconset.DefaultSizes), "icon sizes, comma separated")
	flag.BoolVar(&resample, "r", false, "draw once at 1024px and scale down")
	flag.BoolVar(&clean, "c", false, "remove icon files not in the size list")
	flag.BoolVar(&useTrash, "t", false, "move removed icons to the recycle bin")
	flag.Parse()

	sizes, err := iconset.ParseSizes(sizesStr)
	if err != nil {
		fail(err)
	}

	out := utils.NewPrinter(os.Stdout)
	out.Println("🎨", "Generating app icons...")

	g := iconset.Generator{
		Dir:      outDir,
		Sizes:    sizes,
		Resample: resample,
		OnWrite: func(r iconset.Result) {
			out.Printf("✅", "created icon %dx%d - %s (%d bytes, %s)\n", r.Size, r.Size, r.Path, r.Bytes, r.Digest)
		},
	}
	results, err := g.Run()
	if err != nil {
		fail(err)
	}

	if clean {
		stale, err := iconset.Stale(outDir, sizes)
		if err != nil {
			fail(err)
		}
		for _, p := range stale {
			out.Println("🗑", "removing stale", p)
		}
		if err := iconset.Remove(stale, useTrash); err != nil {
			fail(err)
		}
	}

	fmt.Println()
	out.Printf("🎉", "All %d icons created in '%s'!\n", len(results), outDir)
	fmt.Println()
	out.Println("📱", "Next steps:")
	fmt.Println("1. Open the project in Xcode")
	fmt.Println("2. Drag the icons into AppIcon.appiconset")
	fmt.Println("3. Or replace the existing files in Assets.xcassets")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
