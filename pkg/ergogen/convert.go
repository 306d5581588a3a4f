package ergogen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/kicad2ergogen/pkg/kicad/sexp"
)

// modExt is the KiCad footprint file extension
const modExt = ".kicad_mod"

// Converter runs the rewrite-and-classify pipeline over footprint files
type Converter struct {
	log *zap.Logger
}

// NewConverter creates a converter logging through the given logger
func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{log: log}
}

// Convert transforms footprint source text into ergogen module source. Each
// call uses a fresh rewriter so parameters never leak between footprints.
func (c *Converter) Convert(content string) (string, error) {
	exprs, err := sexp.ParseString(content)
	if err != nil {
		return "", err
	}
	if len(exprs) == 0 {
		return "", fmt.Errorf("no expressions in input")
	}
	root, ok := exprs[0].(*sexp.List)
	if !ok {
		return "", fmt.Errorf("top-level expression is not a list")
	}

	rw := NewRewriter(c.log)
	lines := dropEmpty(rw.Flatten(root))
	buckets := Classify(lines)
	c.logStatus(len(lines), buckets)

	blocks := AssembleBlocks(buckets)
	return RenderModule(blocks, rw.Params()), nil
}

// ConvertFile converts one footprint file and writes
// <outdir>/<basename>.js. The output directory must already exist.
func (c *Converter) ConvertFile(path, outdir string) error {
	c.log.Info("Processing footprint", zap.String("file", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	out, err := c.Convert(string(data))
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outdir, base+".js")
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	c.log.Info("Wrote ergogen footprint", zap.String("file", outPath))
	return nil
}

// ConvertDir converts every .kicad_mod file under dir. Conversions are
// independent and run in parallel; a failing file is reported and skipped
// without aborting the batch.
func (c *Converter) ConvertDir(dir, outdir string) error {
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), modExt) {
			return nil
		}
		g.Go(func() error {
			if err := c.ConvertFile(path, outdir); err != nil {
				c.log.Error("Conversion failed", zap.String("file", path), zap.Error(err))
			}
			return nil
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if walkErr != nil {
		return fmt.Errorf("walk %s: %w", dir, walkErr)
	}
	return nil
}

// logStatus reports bucket sizes after classification
func (c *Converter) logStatus(flattened int, buckets map[Layer][]string) {
	if !c.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	c.log.Debug("Flattened footprint", zap.Int("lines", flattened))
	for _, layer := range classifyOrder {
		if bucket, ok := buckets[layer]; ok {
			c.log.Debug("Classified layer", zap.String("layer", string(layer)), zap.Int("lines", len(bucket)))
		}
	}
	c.log.Debug("Classified layer", zap.String("layer", string(LayerOpening)), zap.Int("lines", len(buckets[LayerOpening])))
}
