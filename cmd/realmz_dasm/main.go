package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"realmz-dasm/internal/batch"
	"realmz-dasm/internal/config"
	"realmz-dasm/internal/scenario"
	"realmz-dasm/internal/tiles"
)

func newLogger(debug bool) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if debug {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a YAML/JSON config file")
	scenarioDir := flag.String("scenario", "", "Scenario directory (or first argument)")
	outputDir := flag.String("output", "", "Output directory (default: <scenario>.out)")
	defaultAssets := flag.String("assets", "", "Directory of exported default tile images")
	scenarioAssets := flag.String("scenario-assets", "", "Directory of exported scenario tile images")
	format := flag.String("format", "", "Image format: bmp, png or webp (default: bmp)")
	style := flag.String("dungeon-style", "", "Dungeon maps: auto, pattern or plain")
	noMaps := flag.Bool("no-maps", false, "Write text reports only")
	layout := flag.Bool("layout", false, "Also stitch land levels into layout maps")
	debug := flag.Bool("debug", false, "Verbose development logging")

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Positional form: realmz_dasm scenario_dir [out_dir]
	if *scenarioDir == "" && flag.NArg() > 0 {
		*scenarioDir = flag.Arg(0)
	}
	if *outputDir == "" && flag.NArg() > 1 {
		*outputDir = flag.Arg(1)
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		ScenarioDir:       *scenarioDir,
		OutputDir:         *outputDir,
		DefaultAssetsDir:  *defaultAssets,
		ScenarioAssetsDir: *scenarioAssets,
		ImageFormat:       *format,
		DungeonStyle:      *style,
		NoMaps:            *noMaps,
		Layout:            *layout,
		Debug:             *debug,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	log := newLogger(cfg.Debug)
	defer log.Sync()

	scn, err := scenario.LoadDir(cfg.ScenarioDir, log)
	if err != nil {
		log.Fatal("cannot load scenario", zap.String("dir", cfg.ScenarioDir), zap.Error(err))
	}

	// Build tile caches
	cache := tiles.NewCache(log)
	if cfg.RenderMaps {
		defIndex := tiles.BuildIndex(cfg.DefaultAssetsDir)
		scnIndex := tiles.BuildIndex(cfg.ScenarioAssetsDir)
		fmt.Printf("Tile images: %d default, %d scenario indexed\n", defIndex.Len(), scnIndex.Len())
		cache.Populate(defIndex, scnIndex)
	}

	fmt.Printf("Realmz scenario disassembler: %s\n", scn.Name)
	fmt.Printf("Output: %s (%s)\n", cfg.OutputDir, cfg.ImageFormat)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:    cfg.OutputDir,
		Format:       cfg.Format(),
		DungeonStyle: cfg.DungeonStyle,
		RenderMaps:   cfg.RenderMaps,
		LayoutMaps:   cfg.LayoutMaps,
		LayoutScale:  cfg.LayoutScale,
		Tiles:        cache,
	}

	results := batch.Run(batchCfg, scn, log)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Written: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		log.Warn("manifest write failed", zap.Error(err))
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	// substitute tileset renders do not count against the run
	if batch.Failures(results) > 0 {
		log.Sync()
		os.Exit(1)
	}
}
