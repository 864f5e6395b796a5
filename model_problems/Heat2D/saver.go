package Heat2D

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/efvlib/goefv/utils"
)

// Saver is the result sink: one Save per iteration with the full field,
// one Finalize at shutdown.
type Saver interface {
	Save(field utils.Vector, currentTime float64) error
	Finalize() error
}

// CSVSaver writes one row per iteration: simulated time followed by the
// temperature of every vertex in handle order.
type CSVSaver struct {
	Path string

	file   *os.File
	writer *csv.Writer
}

func NewCSVSaver(path string) (s *CSVSaver, err error) {
	var file *os.File
	if file, err = os.Create(path); err != nil {
		err = fmt.Errorf("unable to create result file %s: %w", path, err)
		return
	}
	s = &CSVSaver{
		Path:   path,
		file:   file,
		writer: csv.NewWriter(file),
	}
	return
}

func (s *CSVSaver) Save(field utils.Vector, currentTime float64) (err error) {
	record := make([]string, 0, field.Len()+1)
	record = append(record, strconv.FormatFloat(currentTime, 'e', 8, 64))
	for _, val := range field.DataP {
		record = append(record, strconv.FormatFloat(val, 'e', 8, 64))
	}
	return s.writer.Write(record)
}

func (s *CSVSaver) Finalize() (err error) {
	s.writer.Flush()
	if err = s.writer.Error(); err != nil {
		s.file.Close()
		return
	}
	return s.file.Close()
}

// NoopSaver discards every field; used when only the terminal state is of
// interest.
type NoopSaver struct{}

func (NoopSaver) Save(utils.Vector, float64) error { return nil }
func (NoopSaver) Finalize() error                  { return nil }
