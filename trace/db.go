package trace

import "github.com/sarchlab/vbench/datarecording"

// waveformTable is the table that DB-backed probes write into.
const waveformTable = "waveform"

// A DBWriter stores waveform rows through a DataRecorder.
type DBWriter struct {
	recorder datarecording.DataRecorder
}

// NewDBWriter creates a writer that stores rows in the given recorder. The
// waveform table is created on first use.
func NewDBWriter(recorder datarecording.DataRecorder) *DBWriter {
	recorder.CreateTable(waveformTable, Row{})

	return &DBWriter{recorder: recorder}
}

// WriteRow stores one row.
func (w *DBWriter) WriteRow(row Row) {
	w.recorder.InsertData(waveformTable, row)
}

// Flush flushes the underlying recorder.
func (w *DBWriter) Flush() {
	w.recorder.Flush()
}
