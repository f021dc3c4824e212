package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/planar/config"
	"github.com/pthm-cable/planar/systems"
)

// FrameRecord is one row of trace.csv: the writes made by the pipeline in a
// single frame.
type FrameRecord struct {
	Frame           uint64  `csv:"frame"`
	Elapsed         float64 `csv:"elapsed"`
	KinematicsSkips int     `csv:"kinematics_skips"`
	DirectionWrites int     `csv:"direction_writes"`
	RotationWrites  int     `csv:"rotation_writes"`
	RotationPushes  int     `csv:"rotation_pushes"`
	DirectionPushes int     `csv:"direction_pushes"`
	PositionPushes  int     `csv:"position_pushes"`
	RotationPulls   int     `csv:"rotation_pulls"`
	DirectionPulls  int     `csv:"direction_pulls"`
	PositionPulls   int     `csv:"position_pulls"`
	SyncSkips       int     `csv:"sync_skips"`
}

// NewFrameRecord flattens the sync counters of one frame.
func NewFrameRecord(frame uint64, elapsed float64, kinematicsSkips int, s systems.SyncStats) FrameRecord {
	return FrameRecord{
		Frame:           frame,
		Elapsed:         elapsed,
		KinematicsSkips: kinematicsSkips,
		DirectionWrites: s.DirectionWrites,
		RotationWrites:  s.RotationWrites,
		RotationPushes:  s.RotationPushes,
		DirectionPushes: s.DirectionPushes,
		PositionPushes:  s.PositionPushes,
		RotationPulls:   s.RotationPulls,
		DirectionPulls:  s.DirectionPulls,
		PositionPulls:   s.PositionPulls,
		SyncSkips:       s.Skipped,
	}
}

// OutputManager writes trace.csv, perf.csv and config.yaml into one directory.
type OutputManager struct {
	dir       string
	traceFile *os.File
	perfFile  *os.File

	// Track if headers have been written
	traceHeaderWritten bool
	perfHeaderWritten  bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "trace.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating trace.csv: %w", err)
	}
	om.traceFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.traceFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrame appends a record to trace.csv.
func (om *OutputManager) WriteFrame(rec FrameRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRows(om.traceFile, []FrameRecord{rec}, &om.traceHeaderWritten); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// WritePerf appends a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd uint64) error {
	if om == nil {
		return nil
	}
	if err := writeRows(om.perfFile, []PerfStatsCSV{stats.ToCSV(windowEnd)}, &om.perfHeaderWritten); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// writeRows marshals records, with a header only on the first call.
func writeRows(f *os.File, records any, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(records, f)
	}
	if err := gocsv.Marshal(records, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.traceFile, om.perfFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
