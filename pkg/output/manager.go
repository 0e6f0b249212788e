package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"case-consolidator-fiber/pkg/models"
)

// ConflictPolicy governs what happens when a target path already
// exists.
type ConflictPolicy string

const (
	// PolicyVersion appends "_vN" with N the smallest unused integer.
	PolicyVersion ConflictPolicy = "version"
	// PolicyOverwrite replaces the existing file.
	PolicyOverwrite ConflictPolicy = "overwrite"
	// PolicyError refuses the write.
	PolicyError ConflictPolicy = "error"
)

// WriteOptions is the caller-supplied overwrite policy (§4.8).
type WriteOptions struct {
	Policy ConflictPolicy
}

// Manager owns one case's output directory tree under root.
type Manager struct {
	root    Backend
	caseDir string
}

// NewManager prepares the documented directory layout under
// <outputRoot>/cases/<caseName>/ and returns a Manager scoped to it.
func NewManager(backend Backend, outputRoot, caseName string) (*Manager, error) {
	caseDir := filepath.Join("cases", caseName)
	for _, sub := range []string{"processed", "raw_text", "metadata"} {
		if err := os.MkdirAll(filepath.Join(outputRoot, caseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("output: create %s directory: %w", sub, err)
		}
	}
	return &Manager{root: backend, caseDir: caseDir}, nil
}

// CaseDirAbsolute returns the absolute case-root directory, for
// components (like pkg/schema) that write directly rather than
// through a Backend.
func CaseDirAbsolute(outputRoot, caseName string) string {
	return filepath.Join(outputRoot, "cases", caseName)
}

// WriteDocument writes one successfully-processed document's three
// processed/ renditions, its raw text, and its metadata JSON.
func (m *Manager) WriteDocument(r models.ExtractionResult, opts WriteOptions) error {
	base := strings.TrimSuffix(r.FileName, filepath.Ext(r.FileName))

	if err := m.writeVersioned(filepath.Join(m.caseDir, "processed", base+".txt"), []byte(r.ExtractedText), opts); err != nil {
		return err
	}

	docJSON, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("output: marshal document JSON for %s: %w", r.FileName, err)
	}
	if err := m.writeVersioned(filepath.Join(m.caseDir, "processed", base+".json"), docJSON, opts); err != nil {
		return err
	}

	md := documentMarkdown(r)
	if err := m.writeVersioned(filepath.Join(m.caseDir, "processed", base+".md"), []byte(md), opts); err != nil {
		return err
	}

	if err := m.writeVersioned(filepath.Join(m.caseDir, "raw_text", base+"_raw.txt"), []byte(r.ExtractedText), opts); err != nil {
		return err
	}

	metaJSON, err := json.MarshalIndent(r.Metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("output: marshal metadata for %s: %w", r.FileName, err)
	}
	return m.writeVersioned(filepath.Join(m.caseDir, "metadata", base+"_metadata.json"), metaJSON, opts)
}

// WriteCaseRoot writes case_info.json, complaint.json, and
// case_summary.md at the case root.
func (m *Manager) WriteCaseRoot(c *models.ConsolidatedCase, opts WriteOptions) error {
	caseInfoJSON, err := json.MarshalIndent(c.CaseInformation, "", "  ")
	if err != nil {
		return fmt.Errorf("output: marshal case_info.json: %w", err)
	}
	if err := m.writeVersioned(filepath.Join(m.caseDir, "case_info.json"), caseInfoJSON, opts); err != nil {
		return err
	}

	complaint := struct {
		CaseInformation   models.CaseInformation   `json:"case_information"`
		Plaintiff         models.Plaintiff         `json:"plaintiff"`
		Defendants        []models.Defendant       `json:"defendants"`
		PlaintiffCounsel  models.PlaintiffCounsel  `json:"plaintiff_counsel"`
		FactualBackground models.FactualBackground `json:"factual_background"`
		CausesOfAction    []models.CauseOfAction   `json:"causes_of_action"`
		Damages           models.Damages           `json:"damages"`
	}{
		c.CaseInformation, c.Plaintiff, c.Defendants, c.PlaintiffCounsel,
		c.FactualBackground, c.CausesOfAction, c.Damages,
	}
	complaintJSON, err := json.MarshalIndent(complaint, "", "  ")
	if err != nil {
		return fmt.Errorf("output: marshal complaint.json: %w", err)
	}
	if err := m.writeVersioned(filepath.Join(m.caseDir, "complaint.json"), complaintJSON, opts); err != nil {
		return err
	}

	return m.writeVersioned(filepath.Join(m.caseDir, "case_summary.md"), []byte(caseSummaryMarkdown(c)), opts)
}

// writeVersioned applies the overwrite policy before delegating to the
// backend.
func (m *Manager) writeVersioned(relPath string, data []byte, opts WriteOptions) error {
	resolved, err := m.resolvePath(relPath, opts)
	if err != nil {
		return err
	}
	return m.root.WriteFile(resolved, data)
}

// resolvePath checks whether relPath already exists under the local
// filesystem view of the backend and applies the conflict policy.
// Existence is checked via the absolute path on disk — versioning only
// makes sense relative to what's actually there, and the local
// filesystem is always the authoritative copy (the S3 mirror, if any,
// follows the local backend's decision).
func (m *Manager) resolvePath(relPath string, opts WriteOptions) (string, error) {
	local, ok := m.root.(*LocalBackend)
	if !ok {
		if mb, ok := m.root.(*MirroredBackend); ok {
			if l, ok := mb.Primary.(*LocalBackend); ok {
				local = l
			}
		}
	}
	if local == nil {
		return relPath, nil
	}

	full := filepath.Join(local.Root, relPath)
	if _, err := os.Stat(full); os.IsNotExist(err) {
		return relPath, nil
	}

	switch opts.Policy {
	case PolicyOverwrite, "":
		return relPath, nil
	case PolicyError:
		return "", fmt.Errorf("output: %s already exists", relPath)
	case PolicyVersion:
		return versionedPath(local.Root, relPath), nil
	default:
		return "", fmt.Errorf("output: unknown conflict policy %q", opts.Policy)
	}
}

// versionedPath finds the smallest unused "_vN" suffix for relPath.
func versionedPath(root, relPath string) string {
	ext := filepath.Ext(relPath)
	base := strings.TrimSuffix(relPath, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_v%d%s", base, n, ext)
		if _, err := os.Stat(filepath.Join(root, candidate)); os.IsNotExist(err) {
			return candidate
		}
	}
}

func documentMarkdown(r models.ExtractionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.FileName)
	fmt.Fprintf(&b, "- Quality score: %d\n", r.QualityMetrics.Score)
	fmt.Fprintf(&b, "- Engine: %s\n\n", r.EngineName)
	b.WriteString(r.ExtractedText)
	return b.String()
}

func caseSummaryMarkdown(c *models.ConsolidatedCase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.CaseID)
	fmt.Fprintf(&b, "**Court:** %s (%s)\n\n", c.CaseInformation.CourtName, c.CaseInformation.CourtDistrict)
	fmt.Fprintf(&b, "**Case number:** %s\n\n", c.CaseInformation.CaseNumber)
	fmt.Fprintf(&b, "**Plaintiff:** %s\n\n", c.Plaintiff.Name)
	b.WriteString("## Defendants\n\n")
	for _, d := range c.Defendants {
		fmt.Fprintf(&b, "- %s\n", d.Name)
	}
	b.WriteString("\n## Factual background\n\n")
	b.WriteString(c.FactualBackground.Summary)
	fmt.Fprintf(&b, "\n\n**Extraction confidence:** %.0f/100\n", c.ExtractionConfidence)
	if len(c.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range c.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}
