/*
Copyright © 2018 the nc-validate authors.
This file is part of nc-validate.

nc-validate is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

nc-validate is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with nc-validate.  If not, see <http://www.gnu.org/licenses/>.
*/

package ncvalidateutil

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	ncvalidate "github.com/kerfoot/nc-validate"
)

// newLogger returns a logger writing to out. Each ValidateFiles call
// gets its own logger so interleaved calls don't share an output sink.
func newLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Out = out
	logger.Formatter = &logrus.TextFormatter{
		FullTimestamp:  true,
		DisableSorting: true,
	}
	return logger
}

// ValidateFiles validates each NetCDF file in files against the
// template at templatePath, writing per-file verdicts and summary
// counts to stdout and discrepancy diagnostics to stderr. A candidate
// that cannot be opened is logged and skipped; the remaining files are
// still processed. An error is returned only if no files are given or
// the template itself cannot be read.
func ValidateFiles(templatePath string, files []string, stdout, stderr io.Writer) error {
	if len(files) == 0 {
		return fmt.Errorf("no NetCDF files specified for validation")
	}
	template, err := ncvalidate.OpenDataFile(templatePath)
	if err != nil {
		return fmt.Errorf("nc-validate: opening template: %v", err)
	}
	logger := newLogger(stderr)
	for _, file := range files {
		candidate, err := ncvalidate.OpenDataFile(file)
		if err != nil {
			logger.WithError(err).Errorf("Invalid NetCDF file specified: %s", file)
			continue
		}
		fmt.Fprintf(stdout, "Validating file   : %s\n", file)
		fmt.Fprintf(stdout, "Validating against: %s\n", templatePath)
		report := ncvalidate.Validate(template, candidate)
		WriteReport(report, stdout, stderr)
		if report.Valid {
			fmt.Fprintf(stdout, "Valid file: %s\n", file)
		} else {
			fmt.Fprintf(stdout, "INVALID file: %s\n", file)
		}
	}
	return nil
}

// WriteReport writes the discrepancies in r to stderr as indented,
// kind-labeled lines and the summary counts to stdout.
func WriteReport(r *ncvalidate.Report, stdout, stderr io.Writer) {
	for _, d := range r.Discrepancies {
		fmt.Fprintf(stderr, "%s%s: %s\n", indent(d.Kind), d.Kind.Label(), d.Detail)
	}
	fmt.Fprintf(stdout, "%d/%d required global attributes validated\n",
		r.GlobalAttributesMatched, r.GlobalAttributesRequired)
	fmt.Fprintf(stdout, "%d/%d required dimensions validated\n",
		r.DimensionsMatched, r.DimensionsRequired)
}

// indent returns the leading whitespace for a diagnostic line: one
// space for file-level checks, two for variable sub-checks, and three
// for variable attribute checks.
func indent(k ncvalidate.DiscrepancyKind) string {
	switch k {
	case ncvalidate.DatatypeMismatch, ncvalidate.DimensionOrderMismatch:
		return "  "
	case ncvalidate.MissingVariableAttribute:
		return "   "
	default:
		return " "
	}
}
