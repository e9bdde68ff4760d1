package land

import (
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-tools/latlon"
)

// Land is a bit mask of land cells: one bit per cell, row by row from the
// south pole, each row from 180°W eastward, most significant bit first.
type Land struct {
	lat0 float64
	lon0 float64
	rows int
	cols int
	step float64
	data []byte
}

// New wraps a mask whose cells are step degrees wide.
func New(data []byte, step float64) (*Land, error) {
	if !(step > 0) || step > 180 {
		return nil, fmt.Errorf("%w: land step %v", latlon.ErrInvalidInput, step)
	}

	return &Land{
		lat0: -90.0,
		lon0: -180.0,
		rows: int(math.Round(180.0/step)) + 1,
		cols: int(math.Round(360.0 / step)),
		step: step,
		data: data,
	}, nil
}

// Load reads a land mask file
func Load(file string, step float64) (*Land, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		log.Errorf("Error reading file '%s'", file)
		return nil, fmt.Errorf("load land %s: %w", file, err)
	}

	l, err := New(b, step)
	if err != nil {
		return nil, fmt.Errorf("load land %s: %w", file, err)
	}

	if expected := (l.rows*l.cols + 7) / 8; len(b) < expected {
		log.WithFields(log.Fields{"file": file, "size": len(b), "expected": expected}).Warn("Land mask is truncated")
	}

	log.WithFields(log.Fields{"file": file, "step": step, "rows": l.rows, "cols": l.cols}).Info("Land loaded")

	return l, nil
}

// IsLand check if location is land or sea. Positions outside the mask are sea.
func (l Land) IsLand(lat float64, lon float64) bool {
	di := int(math.Round((lat - l.lat0) / l.step))
	dj := int(math.Round((latlon.Fold(lon) - l.lon0) / l.step))

	if di < 0 || di >= l.rows {
		return false
	}
	// 180°E is 180°W
	dj %= l.cols

	p := di*l.cols + dj

	pB := p / 8
	pb := uint(p % 8)

	if pB >= len(l.data) {
		return false
	}

	return ((l.data[pB] >> (7 - pb)) & 0x01) == 0x01
}
