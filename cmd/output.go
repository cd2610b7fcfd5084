package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nikogura/resume-forge/pkg/config"
	"github.com/nikogura/resume-forge/pkg/renderer"
	"github.com/nikogura/resume-forge/pkg/tailor"
)

// outputRequest describes where and how to write a rendered resume.
type outputRequest struct {
	template   string
	content    tailor.Content
	name       string
	outputFlag string
	suffix     string
	pdf        bool
}

// writeResume renders content into the template, writes the HTML file and,
// when requested, converts it to PDF. A PDF failure is reported, not returned.
func writeResume(ctx context.Context, cfg config.Config, req outputRequest) (htmlPath string, err error) {
	html := renderer.Render(req.template, req.content.Complete())

	if unreplaced := renderer.Unreplaced(html); len(unreplaced) > 0 {
		printWarning("template placeholders left unreplaced: %s", strings.Join(unreplaced, ", "))
	}

	htmlPath = resolveOutputPath(req.outputFlag, cfg.OutputDir, req.name, req.suffix)

	if getVerbose() {
		fmt.Printf("Writing resume to: %s\n", htmlPath)
	}

	err = renderer.WriteHTML(html, htmlPath)
	if err != nil {
		return htmlPath, err
	}

	printSuccess("Resume saved at: %s", htmlPath)

	if !req.pdf {
		return htmlPath, err
	}

	pdfPath := strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".pdf"
	pdfErr := renderer.RenderPDF(ctx, htmlPath, pdfPath, cfg.Pandoc.PDFEngine)
	if pdfErr != nil {
		printWarning("failed to render PDF: %v", pdfErr)
		printDetail("HTML resume kept at: %s", htmlPath)
		return htmlPath, err
	}

	printSuccess("Resume PDF saved at: %s", pdfPath)

	return htmlPath, err
}

// resolveOutputPath returns the explicit output path, or
// <outputDir>/<name>-<suffix>.html.
func resolveOutputPath(outputFlag, outputDir, name, suffix string) (path string) {
	if outputFlag != "" {
		path = outputFlag
		return path
	}

	base := sanitizeFilename(name)
	if base == "" {
		base = "resume"
	}
	if suffix != "" {
		base = base + "-" + suffix
	}

	if outputDir == "" {
		outputDir = config.DefaultOutputDir
	}

	path = filepath.Join(outputDir, base+".html")
	return path
}

// sanitizeFilename lowercases name and replaces every run of characters
// outside [a-z0-9] with a single hyphen.
func sanitizeFilename(name string) (sanitized string) {
	sanitized = strings.ToLower(name)

	sanitized = strings.Map(func(r rune) (result rune) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = r
			return result
		}
		result = '-'
		return result
	}, sanitized)

	// Remove consecutive hyphens
	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}

	sanitized = strings.Trim(sanitized, "-")

	return sanitized
}
