package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
)

const (
	RegionalFileName   = "report_1_regional_summary.csv"
	ContractorFileName = "report_2_contractor_ranking.csv"
)

var (
	regionalHeader   = []string{"Region", "MainIsland", "TotalBudget", "MedianSavings", "AvgDelayDays", "DelayOver30Pct", "EfficiencyScore"}
	contractorHeader = []string{"Rank", "Contractor", "TotalCost", "NumProjects", "AvgDelay", "TotalSavings", "ReliabilityIndex", "RiskFlag"}
)

// FileWriter writes both report tables as CSV files into a directory.
type FileWriter struct {
	dir    string
	rename func(oldpath, newpath string) error
}

func NewFileWriter(dir string) *FileWriter {
	if dir == "" {
		dir = "."
	}
	return &FileWriter{dir: dir, rename: os.Rename}
}

type install struct {
	staged string
	target string
	backup string // empty when the target did not exist
}

// Write stages both files next to their targets, then swaps them in.
// Existing targets are kept aside until both swaps succeeded and are put
// back otherwise, so a failure never leaves a mixed report set.
func (w *FileWriter) Write(reports *domain.Reports) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	tables := []struct {
		name string
		rows [][]string
	}{
		{RegionalFileName, regionalRecords(reports.Regional)},
		{ContractorFileName, contractorRecords(reports.Contractors)},
	}

	installs := make([]install, 0, len(tables))
	discard := func() {
		for _, in := range installs {
			_ = os.Remove(in.staged)
		}
	}

	for _, table := range tables {
		tmp, err := writeTemp(w.dir, table.name, table.rows)
		if err != nil {
			discard()
			return nil, fmt.Errorf("write %s: %w", table.name, err)
		}
		installs = append(installs, install{staged: tmp, target: filepath.Join(w.dir, table.name)})
	}

	for i := range installs {
		if err := w.swapIn(&installs[i]); err != nil {
			w.rollback(installs[:i])
			discard()
			return nil, fmt.Errorf("install %s: %w", filepath.Base(installs[i].target), err)
		}
	}

	paths := make([]string, len(installs))
	for i, in := range installs {
		paths[i] = in.target
		if in.backup != "" {
			_ = os.Remove(in.backup)
		}
	}
	return paths, nil
}

// swapIn moves an existing target aside and the staged file into its place.
// On failure the target is left as it was.
func (w *FileWriter) swapIn(in *install) error {
	if _, err := os.Stat(in.target); err == nil {
		backup := in.staged + ".bak"
		if err := w.rename(in.target, backup); err != nil {
			return err
		}
		in.backup = backup
	}

	if err := w.rename(in.staged, in.target); err != nil {
		if in.backup != "" {
			_ = w.rename(in.backup, in.target)
			in.backup = ""
		}
		return err
	}
	return nil
}

// rollback restores the previous state of already installed targets.
func (w *FileWriter) rollback(done []install) {
	for i := len(done) - 1; i >= 0; i-- {
		in := done[i]
		if in.backup != "" {
			_ = w.rename(in.backup, in.target)
		} else {
			_ = os.Remove(in.target)
		}
	}
}

func writeTemp(dir, name string, rows [][]string) (string, error) {
	f, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return "", err
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func regionalRecords(rows []domain.RegionalSummaryRow) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, regionalHeader)
	for _, r := range rows {
		out = append(out, []string{
			r.Region,
			r.MainIsland,
			r.TotalBudget.StringFixed(2),
			r.MedianSavings.StringFixed(2),
			strconv.FormatFloat(r.AvgDelayDays, 'f', 2, 64),
			strconv.FormatFloat(r.DelayOver30Pct, 'f', 1, 64),
			strconv.FormatFloat(r.EfficiencyScore, 'f', 2, 64),
		})
	}
	return out
}

func contractorRecords(rows []domain.ContractorRankingRow) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, contractorHeader)
	for i, r := range rows {
		out = append(out, []string{
			strconv.Itoa(i + 1),
			r.Contractor,
			r.TotalCost.StringFixed(2),
			strconv.Itoa(r.NumProjects),
			strconv.FormatFloat(r.AvgDelayDays, 'f', 2, 64),
			r.TotalSavings.StringFixed(2),
			strconv.FormatFloat(r.ReliabilityIndex, 'f', 2, 64),
			string(r.RiskFlag),
		})
	}
	return out
}
