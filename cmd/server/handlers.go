package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"case-consolidator-fiber/internal/config"
	"case-consolidator-fiber/pkg/consolidator"
	"case-consolidator-fiber/pkg/events"
	"case-consolidator-fiber/pkg/extractor"
	"case-consolidator-fiber/pkg/output"
	"case-consolidator-fiber/pkg/processor"
	"case-consolidator-fiber/pkg/schema"
	"case-consolidator-fiber/pkg/settings"
	"case-consolidator-fiber/pkg/validator"
)

type handlers struct {
	cfg      *config.Config
	settings *settings.Settings
	registry *extractor.Registry
}

func newHandlers(cfg *config.Config) *handlers {
	s, err := settings.Load(cfg.Output.SettingsPath)
	if err != nil {
		log.Printf("[SERVER] ⚠️ failed to load settings, using placeholders: %v", err)
		s = settings.Default()
	}

	return &handlers{
		cfg:      cfg,
		settings: s,
		registry: extractor.NewRegistry(
			extractor.NewTextDecoder(),
			extractor.NewPDFDecoder(),
			extractor.NewDOCXDecoder(),
			extractor.NewOCRDecoder(),
		),
	}
}

// healthReport is the /health response shape: host CPU/memory plus a
// liveness flag, matching the teacher's host-metrics habit without
// reimplementing its in-process queue/throughput metrics, which have
// no analogue in this synchronous, single-case-at-a-time pipeline.
type healthReport struct {
	Status     string  `json:"status"`
	CPUPercent float64 `json:"cpu_percent"`
	MemoryUsed float64 `json:"memory_used_percent"`
}

func (h *handlers) health(c *fiber.Ctx) error {
	report := healthReport{Status: "ok"}

	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		report.CPUPercent = percentages[0]
	} else if err != nil {
		log.Printf("[SERVER] ⚠️ cpu.Percent failed: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		report.MemoryUsed = vm.UsedPercent
	} else {
		log.Printf("[SERVER] ⚠️ mem.VirtualMemory failed: %v", err)
	}

	return c.JSON(report)
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
		log.Printf("[SERVER] ⚠️ OpenSearch event sink disabled: %v", err)
		return logSink
	}
	return events.NewMultiSink(logSink, osSink)
}

// consolidateRequest is the POST /api/v1/consolidate request body: a
// path to a folder of already-staged case documents, readable by this
// process. There is no file-upload handling here — that belongs to the
// external pre-processing pipeline the consolidator sits behind.
type consolidateRequest struct {
	Folder string `json:"folder"`
}

// consolidateResponse carries the consolidated case (the in-memory
// models.ConsolidatedCase, not the hydrated wire shape) plus the
// validation issues found, so a caller gets the full picture in one
// response even though the hydrated record was also written to disk.
type consolidateResponse struct {
	Case       interface{} `json:"case"`
	ValidIssue []string    `json:"validation_issues"`
}

func (h *handlers) consolidate(c *fiber.Ctx) error {
	var req consolidateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if req.Folder == "" {
		return fiber.NewError(fiber.StatusBadRequest, "folder is required")
	}

	entries, err := os.ReadDir(req.Folder)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read folder: "+err.Error())
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(req.Folder, e.Name()))
		}
	}

	broadcaster := events.New(buildSink(h.cfg))
	proc := processor.New(h.registry, broadcaster)
	results := proc.ProcessAll(files)

	consolidated := consolidator.Consolidate(results, h.settings, broadcaster)
	issues := validator.Validate(consolidated)

	mgr, err := output.NewManager(output.NewLocalBackend(h.cfg.Output.Root), h.cfg.Output.Root, consolidated.CaseID)
	if err != nil {
		log.Printf("[SERVER] ⚠️ failed to prepare output directory: %v", err)
	} else {
		opts := output.WriteOptions{Policy: output.PolicyVersion}
		for _, r := range results {
			if r.Success {
				if err := mgr.WriteDocument(r, opts); err != nil {
					log.Printf("[SERVER] ⚠️ failed to write document %s: %v", r.FileName, err)
				}
			}
		}
		if err := mgr.WriteCaseRoot(consolidated, opts); err != nil {
			log.Printf("[SERVER] ⚠️ failed to write case root: %v", err)
		}
		caseDir := output.CaseDirAbsolute(h.cfg.Output.Root, consolidated.CaseID)
		if warnings, err := schema.WriteHydrated(consolidated, caseDir, consolidated.CaseID); err != nil {
			log.Printf("[SERVER] ⚠️ failed to write hydrated record: %v", err)
		} else {
			for _, w := range warnings {
				log.Printf("[SERVER] ⚠️ schema: %s", w)
			}
		}
	}

	return c.JSON(consolidateResponse{Case: consolidated, ValidIssue: issues.Issues})
}
