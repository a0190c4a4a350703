// Command glyphrast renders every glyph of one or more fonts to PNM
// images and optionally validates the raw RGBA bytes against stored
// CRC-32 checksums ("<font>.crc32" files of "<glyph_index> <checksum>"
// lines next to the font file).
package main

import (
	"flag"
	"fmt"
	"hash/crc32"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphrast"
	"github.com/gogpu/glyphrast/fontload"
)

func main() {
	var (
		fontList    = flag.String("fonts", "goregular", "comma-separated font files; \"goregular\" selects the embedded Go Regular face")
		size        = flag.Int("size", 64, "pixel size of the EM-scaled font box")
		outDir      = flag.String("out", "output", "output directory for images")
		validate    = flag.Bool("validate", true, "compare checksums when a .crc32 file exists")
		writeImages = flag.Bool("write", true, "write PNM images")
		update      = flag.Bool("update", false, "rewrite the .crc32 file from this run")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	glyphrast.SetLogger(logger)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Error("cannot create output directory", "dir", *outDir, "err", err)
		os.Exit(1)
	}

	exit := 0
	for _, name := range strings.Split(*fontList, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		job := fontJob{
			name:        name,
			outDir:      *outDir,
			size:        int32(*size),
			validate:    *validate,
			writeImages: *writeImages,
			update:      *update,
		}
		if err := job.run(logger); err != nil {
			logger.Error("font failed", "font", name, "err", err)
			exit = 1
		}
	}
	os.Exit(exit)
}

type fontJob struct {
	name        string
	outDir      string
	size        int32
	validate    bool
	writeImages bool
	update      bool
}

func (j fontJob) run(logger *slog.Logger) error {
	data, base, crcPath, err := j.resolve()
	if err != nil {
		return err
	}
	face, err := fontload.Load(data)
	if err != nil {
		return err
	}
	info, err := face.Info()
	if err != nil {
		return err
	}
	sums, err := readChecksums(crcPath)
	if err != nil {
		return err
	}

	logger.Info("rendering font", "font", base, "glyphs", face.NumGlyphs())
	start := time.Now()
	var good, bad, unvalidated, failed int

	for idx := 0; idx < face.NumGlyphs(); idx++ {
		outline, metrics, err := face.GlyphOutline(fontload.GlyphID(idx)) //nolint:gosec // NumGlyphs fits uint16
		if err != nil {
			logger.Warn("glyph load failed", "font", base, "glyph", idx, "err", err)
			failed++
			continue
		}
		g, err := glyphrast.NewGlyph(outline, metrics)
		if err != nil {
			// Empty outlines (spaces etc.) land here; keep going.
			logger.Debug("glyph skipped", "font", base, "glyph", idx, "err", err)
			failed++
			continue
		}
		img, err := glyphrast.Render(info, g, 0, j.size)
		if err != nil {
			logger.Warn("render failed", "font", base, "glyph", idx, "err", err)
			failed++
			continue
		}
		img.Name = filepath.Join(j.outDir, fmt.Sprintf("%s_%d.pnm", base, idx))

		if j.writeImages {
			if err := img.SavePNM(img.Name); err != nil {
				return err
			}
		}

		sum := crc32.ChecksumIEEE(img.Data())
		if j.validate {
			switch want, ok := sums[idx]; {
			case !ok:
				unvalidated++
			case want == sum:
				good++
			default:
				bad++
				logger.Warn("checksum mismatch",
					"font", base, "glyph", idx,
					"want", want, "got", sum)
			}
		}
		if j.update {
			sums[idx] = sum
		}
	}

	logger.Info("font done",
		"font", base,
		"elapsed", time.Since(start),
		"good", good,
		"bad", bad,
		"unvalidated", unvalidated,
		"skipped", failed)

	if j.update {
		if err := writeChecksums(crcPath, sums); err != nil {
			return err
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d checksum mismatches", bad)
	}
	return nil
}

// resolve returns the font bytes, the base name used for output files,
// and the path of the checksum file belonging to the font.
func (j fontJob) resolve() (data []byte, base, crcPath string, err error) {
	if j.name == "goregular" {
		return goregular.TTF, "goregular", "goregular.crc32", nil
	}
	data, err = os.ReadFile(j.name)
	if err != nil {
		return nil, "", "", err
	}
	base = strings.TrimSuffix(filepath.Base(j.name), filepath.Ext(j.name))
	crcPath = strings.TrimSuffix(j.name, filepath.Ext(j.name)) + ".crc32"
	return data, base, crcPath, nil
}
