package excel2cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/parser"
	"github.com/xuri/excelize/v2"
)

// WorkbookExt is the only accepted workbook file extension.
const WorkbookExt = ".xlsx"

// ConfigPrefix derives the artifact name prefix from a workbook file name:
// the part between the first underscore and the extension.
// "01_item.xlsx" yields "item"; a name without underscore keeps its stem.
func ConfigPrefix(fileName string) string {
	name := filepath.Base(fileName)
	start := strings.Index(name, "_") + 1
	end := strings.LastIndex(name, ".")
	if end < 0 {
		end = len(name)
	}
	if start > end {
		start, end = end, start
	}
	return name[start:end]
}

// Convert converts the workbook at configDir/relPath and writes its
// artifacts under every output root, mirroring relPath's directory.
//
// Only configuration errors and a workbook that cannot be opened are
// returned as errors. Sheet data errors and render or write failures are
// logged and recorded on the returned report.
func Convert(configDir, relPath string, opts Options) (*models.WorkbookReport, error) {
	log := opts.logger()

	if len(opts.OutputDirs) == 0 {
		log.Log("output directories are empty, conversion aborted", "file", relPath, "error", ErrNoOutputDirs)
		return nil, ErrNoOutputDirs
	}
	if !strings.HasSuffix(relPath, WorkbookExt) {
		err := fmt.Errorf("%w: %s", ErrInvalidFormat, relPath)
		log.Log("conversion aborted", "file", relPath, "error", err)
		return nil, err
	}

	path := filepath.Join(configDir, relPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c := &converter{
		bookName: filepath.Base(relPath),
		relDir:   filepath.Dir(relPath),
		prefix:   ConfigPrefix(relPath),
		opts:     opts,
		log:      log,
		renderer: opts.renderer(),
	}

	report := &models.WorkbookReport{
		BookName:     c.bookName,
		RelativePath: relPath,
		Prefix:       c.prefix,
	}

	for _, sheetName := range f.GetSheetList() {
		if sheetName == parser.EndSheetName {
			break
		}
		if strings.HasPrefix(sheetName, parser.CommentPrefix) {
			report.Sheets = append(report.Sheets, models.SheetReport{
				Name:    sheetName,
				Skipped: true,
				Reason:  "commented out",
			})
			continue
		}

		ws, err := parser.NewWorksheet(f, sheetName)
		if err != nil {
			serr := &SheetError{BookName: c.bookName, SheetName: sheetName, Stage: "load", Err: err}
			log.Log("sheet could not be read", "file", c.bookName, "sheet", sheetName, "error", serr)
			report.Sheets = append(report.Sheets, models.SheetReport{Name: sheetName, Err: serr})
			continue
		}
		report.Sheets = append(report.Sheets, c.handleSheet(ws))
	}

	return report, nil
}

// ConvertDir converts every workbook below configDir. Entries whose name
// starts with "." are skipped, as are Excel lock files ("~$" prefix).
// A workbook that fails to convert does not stop the walk; all such
// failures are joined into the returned error.
func ConvertDir(configDir string, opts Options) ([]*models.WorkbookReport, error) {
	if len(opts.OutputDirs) == 0 {
		opts.logger().Log("output directories are empty, conversion aborted", "dir", configDir, "error", ErrNoOutputDirs)
		return nil, ErrNoOutputDirs
	}

	var reports []*models.WorkbookReport
	var errs []error
	walkErr := filepath.WalkDir(configDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == configDir {
				return err
			}
			errs = append(errs, err)
			return nil
		}

		name := d.Name()
		if path != configDir && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(name, WorkbookExt) || strings.HasPrefix(name, "~$") {
			return nil
		}

		rel, err := filepath.Rel(configDir, path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}

		report, err := Convert(configDir, rel, opts)
		if err != nil {
			opts.logger().Log("workbook conversion failed", "file", rel, "error", err)
			errs = append(errs, err)
			return nil
		}
		reports = append(reports, report)
		return nil
	})
	if walkErr != nil {
		return reports, walkErr
	}

	return reports, errors.Join(errs...)
}
