package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultPDFEngine is the pandoc engine used for HTML input.
const DefaultPDFEngine = "wkhtmltopdf"

// RenderPDF converts a rendered HTML resume to PDF using pandoc.
func RenderPDF(ctx context.Context, htmlPath, pdfPath, engine string) (err error) {
	err = checkPandocExists(ctx)
	if err != nil {
		return err
	}

	err = validateFiles(htmlPath)
	if err != nil {
		return err
	}

	if engine == "" {
		engine = DefaultPDFEngine
	}

	err = ensureDir(pdfPath)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx,
		"pandoc",
		"-f", "html",
		"-o", pdfPath,
		"--pdf-engine="+engine,
		htmlPath,
	)

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists(ctx context.Context) (err error) {
	cmd := exec.CommandContext(ctx, "pandoc", "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate PDFs)")
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

func ensureDir(path string) (err error) {
	outputDir := filepath.Dir(path)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}
	return err
}

// WriteHTML writes a rendered resume to outputPath, creating parent directories.
func WriteHTML(content, outputPath string) (err error) {
	err = ensureDir(outputPath)
	if err != nil {
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write HTML file: %s", outputPath)
		return err
	}

	return err
}

// WriteTemplate writes the default template to path for customization. It
// refuses to overwrite an existing file.
func WriteTemplate(path string) (err error) {
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("template already exists: %s", path)
		return err
	}

	err = WriteHTML(DefaultTemplate, path)
	return err
}
