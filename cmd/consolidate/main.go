// Command consolidate is the CLI front door for the case consolidation
// engine: given a folder of case documents, it runs the full
// pipeline — decode and process, consolidate, validate, render — and
// writes the result under the configured output root.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"case-consolidator-fiber/internal/config"
	"case-consolidator-fiber/pkg/consolidator"
	"case-consolidator-fiber/pkg/events"
	"case-consolidator-fiber/pkg/extractor"
	"case-consolidator-fiber/pkg/models"
	"case-consolidator-fiber/pkg/output"
	"case-consolidator-fiber/pkg/processor"
	"case-consolidator-fiber/pkg/schema"
	"case-consolidator-fiber/pkg/settings"
	"case-consolidator-fiber/pkg/validator"
)

func main() {
	caseFolder := flag.String("folder", "", "path to a folder of case documents to consolidate")
	settingsPath := flag.String("settings", "", "path to the firm settings YAML file (defaults to the configured SETTINGS_PATH)")
	flag.Parse()

	if *caseFolder == "" {
		log.Fatal("[CONSOLIDATE] ❌ -folder is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("[CONSOLIDATE] ⚠️ .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[CONSOLIDATE] ❌ failed to load configuration: %v", err)
	}

	path := cfg.Output.SettingsPath
	if *settingsPath != "" {
		path = *settingsPath
	}
	s, err := settings.Load(path)
	if err != nil {
		log.Fatalf("[CONSOLIDATE] ❌ failed to load settings: %v", err)
	}

	broadcaster := events.New(buildSink(cfg))

	files, err := listCaseFiles(*caseFolder)
	if err != nil {
		log.Fatalf("[CONSOLIDATE] ❌ failed to list case folder: %v", err)
	}
	log.Printf("[CONSOLIDATE] 📋 processing %d documents from %s", len(files), *caseFolder)

	reg := extractor.NewRegistry(
		extractor.NewTextDecoder(),
		extractor.NewPDFDecoder(),
		extractor.NewDOCXDecoder(),
		extractor.NewOCRDecoder(),
	)
	proc := processor.New(reg, broadcaster)
	results := proc.ProcessAll(files)

	consolidated := consolidator.Consolidate(results, s, broadcaster)
	log.Printf("[CONSOLIDATE] ✅ consolidated case %s (confidence %.0f/100)", consolidated.CaseID, consolidated.ExtractionConfidence)

	issues := validator.Validate(consolidated)
	if !issues.IsValid {
		log.Printf("[CONSOLIDATE] ⚠️ validation found %d issue(s)", len(issues.Issues))
		for _, issue := range issues.Issues {
			log.Printf("[CONSOLIDATE]   - %s", issue)
		}
	}

	if err := writeOutput(cfg, consolidated, results); err != nil {
		log.Fatalf("[CONSOLIDATE] ❌ failed to write output: %v", err)
	}
}

func listCaseFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(folder, e.Name()))
	}
	return files, nil
}

func writeOutput(cfg *config.Config, c *models.ConsolidatedCase, results []models.ExtractionResult) error {
	backend := buildOutputBackend(cfg)

	mgr, err := output.NewManager(backend, cfg.Output.Root, c.CaseID)
	if err != nil {
		return fmt.Errorf("prepare output directory: %w", err)
	}

	opts := output.WriteOptions{Policy: output.PolicyVersion}
	for _, r := range results {
		if !r.Success {
			continue
		}
		if err := mgr.WriteDocument(r, opts); err != nil {
			return fmt.Errorf("write document %s: %w", r.FileName, err)
		}
	}

	if err := mgr.WriteCaseRoot(c, opts); err != nil {
		return fmt.Errorf("write case root: %w", err)
	}

	caseDir := output.CaseDirAbsolute(cfg.Output.Root, c.CaseID)
	warnings, err := schema.WriteHydrated(c, caseDir, c.CaseID)
	for _, w := range warnings {
		log.Printf("[CONSOLIDATE] ⚠️ schema: %s", w)
	}
	if err != nil {
		return fmt.Errorf("write hydrated record: %w", err)
	}

	log.Printf("[CONSOLIDATE] ✅ wrote case output to %s", caseDir)
	return nil
}

// buildSink always logs events; when ENABLE_OPENSEARCH_SINK is set it
// also indexes case_complete events for downstream search.
func buildSink(cfg *config.Config) events.Sink {
	logSink := events.NewLogSink()
	if !cfg.Features.EnableOpenSearchSink {
		return logSink
	}

	osSink, err := events.NewOpenSearchSink(cfg.OpenSearch.Addresses, cfg.OpenSearch.Username, cfg.OpenSearch.Password, cfg.OpenSearch.Index)
	if err != nil {
		log.Printf("[CONSOLIDATE] ⚠️ OpenSearch event sink disabled: %v", err)
		return logSink
	}
	return events.NewMultiSink(logSink, osSink)
}

// buildOutputBackend wires the optional S3-mirroring output backend when
// ENABLE_S3_MIRROR is set, else the plain local filesystem backend.
func buildOutputBackend(cfg *config.Config) output.Backend {
	local := output.NewLocalBackend(cfg.Output.Root)
	if !cfg.Features.EnableS3Mirror {
		return local
	}

	s3Backend, err := output.NewS3Backend(context.Background(), cfg.Output.S3Bucket, cfg.Output.S3Region)
	if err != nil {
		log.Printf("[CONSOLIDATE] ⚠️ S3 mirror disabled: %v", err)
		return local
	}
	return &output.MirroredBackend{Primary: local, Secondary: s3Backend}
}
