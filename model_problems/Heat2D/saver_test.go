package Heat2D

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/efvlib/goefv/utils"
)

func TestCSVSaverWritesOneRowPerIteration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	saver, err := NewCSVSaver(path)
	assert.NoError(t, err)

	field := utils.NewVector(3, []float64{10, 20, 30})
	assert.NoError(t, saver.Save(field, 0.))
	field.Set(1, 25)
	assert.NoError(t, saver.Save(field, 0.5))
	assert.NoError(t, saver.Finalize())

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)

	assert.Len(t, records, 2)
	assert.Len(t, records[0], 4)
	timeVal, err := strconv.ParseFloat(records[1][0], 64)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, timeVal, 0.000000000001)
	tempVal, err := strconv.ParseFloat(records[1][2], 64)
	assert.NoError(t, err)
	assert.InDelta(t, 25., tempVal, 0.000000000001)
}

func TestCSVSaverBadPath(t *testing.T) {
	_, err := NewCSVSaver(filepath.Join(t.TempDir(), "missing", "results.csv"))
	assert.Error(t, err)
}
