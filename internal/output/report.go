package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/growth-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for report format names that match no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport writes report in the named format to a timestamped file in
// dir and returns the written paths. "all" writes every registered format.
func GenerateReport(report *domain.ProjectionReport, format, dir string) ([]string, error) {
	if report == nil {
		return nil, fmt.Errorf("no projection report to write")
	}
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, name := range AvailableFormatterNames() {
			f := GetFormatterByName(name)
			// formats sharing an extension keep their name in the file name
			ext := ExtensionFor(f)
			if ext != name {
				ext = name + "." + ext
			}
			path, err := WriteFormatted(f, report, dir, ext)
			if err != nil {
				return written, err
			}
			written = append(written, path)
		}
		return written, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, report, dir, ExtensionFor(f))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveConfiguration writes a projection request as a YAML request file.
func SaveConfiguration(req *domain.ProjectionRequest, filename string) error {
	b, err := yaml.Marshal(req)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
