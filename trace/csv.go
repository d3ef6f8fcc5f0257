package trace

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"
)

// A CSVWriter stores waveform rows in a CSV file.
type CSVWriter struct {
	path string
	file *os.File

	rows       []Row
	bufferSize int
}

// NewCSVWriter creates a new CSVWriter.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the waveform csv file. If the file already exists, it will be
// overwritten.
func (w *CSVWriter) Init() {
	file, err := os.Create(w.path)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file, "Cycle, Time, Signal, Value\n")

	atexit.Register(func() {
		w.Flush()
		err := w.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// WriteRow buffers a row for the CSV file.
func (w *CSVWriter) WriteRow(row Row) {
	w.rows = append(w.rows, row)
	if len(w.rows) >= w.bufferSize {
		w.Flush()
	}
}

// Flush flushes the rows to the CSV file.
func (w *CSVWriter) Flush() {
	for _, row := range w.rows {
		fmt.Fprintf(w.file, "%d, %.10f, %s, %d\n",
			row.Cycle,
			row.Time,
			row.Signal,
			row.Value,
		)
	}

	w.rows = nil
}
