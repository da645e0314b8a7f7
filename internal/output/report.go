package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/finlab/finance-lab/internal/domain"
)

// Lookup resolves a format name or alias, listing the alternatives when it is unknown.
func Lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats the simulation and writes it to w.
func Render(w io.Writer, sim *domain.Simulation, format string) error {
	f, err := Lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(sim)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport formats the simulation and saves it in dir, returning the file path.
func GenerateReport(sim *domain.Simulation, format, dir string) (string, error) {
	f, err := Lookup(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, sim, dir)
}
