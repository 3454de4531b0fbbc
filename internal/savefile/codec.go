// Package savefile reads and writes the run snapshot and the high score in
// their fixed little-endian binary layouts.
//
// Snapshot layout, in order:
//
//	actor position   2 x float64
//	actor velocity   2 x float64
//	health           int32
//	score            int32
//	elapsed seconds  float64
//	valid            uint8
//	hostile count    uint64
//	per hostile      float64 x, float64 y, int32 variant
//	wave             int32
//	to spawn         int32
//	alive            int32
//	phase            int32
//
// There is no version tag and no checksum.
package savefile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vovakirdan/nightfall/internal/core"
	"github.com/vovakirdan/nightfall/internal/sim"
)

// MaxHostiles bounds the hostile count accepted on decode.
const MaxHostiles = 1 << 16

// ErrTooManyHostiles is returned when a record claims more than MaxHostiles hostiles.
var ErrTooManyHostiles = errors.New("savefile: hostile count out of range")

// ErrNonFinite is returned when a position, velocity or time field is NaN or infinite.
var ErrNonFinite = errors.New("savefile: non-finite value")

const (
	headerSize  = 4*8 + 4 + 4 + 8 + 1 + 8
	hostileSize = 8 + 8 + 4
	trailerSize = 4 * 4
)

// Size returns the encoded length of a snapshot with n hostiles.
func Size(n int) int {
	return headerSize + n*hostileSize + trailerSize
}

// Encode writes snap to w.
func Encode(w io.Writer, snap sim.RunSnapshot) error {
	buf := make([]byte, 0, Size(len(snap.Hostiles)))
	le := binary.LittleEndian

	buf = le.AppendUint64(buf, math.Float64bits(snap.ActorPos.X))
	buf = le.AppendUint64(buf, math.Float64bits(snap.ActorPos.Y))
	buf = le.AppendUint64(buf, math.Float64bits(snap.ActorVel.X))
	buf = le.AppendUint64(buf, math.Float64bits(snap.ActorVel.Y))
	buf = le.AppendUint32(buf, uint32(int32(snap.Health)))
	buf = le.AppendUint32(buf, uint32(int32(snap.Score)))
	buf = le.AppendUint64(buf, math.Float64bits(snap.Elapsed))
	if snap.Valid {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = le.AppendUint64(buf, uint64(len(snap.Hostiles)))
	for _, h := range snap.Hostiles {
		buf = le.AppendUint64(buf, math.Float64bits(h.X))
		buf = le.AppendUint64(buf, math.Float64bits(h.Y))
		buf = le.AppendUint32(buf, uint32(int32(h.Variant)))
	}
	buf = le.AppendUint32(buf, uint32(int32(snap.Wave)))
	buf = le.AppendUint32(buf, uint32(int32(snap.ToSpawn)))
	buf = le.AppendUint32(buf, uint32(int32(snap.Alive)))
	buf = le.AppendUint32(buf, uint32(int32(snap.Phase)))

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("savefile: write snapshot: %w", err)
	}
	return nil
}

// Decode reads a snapshot from r. The result is valid only when every field
// was read. On any failure it returns sim.InvalidSnapshot and the cause.
func Decode(r io.Reader) (sim.RunSnapshot, error) {
	d := decoder{r: r}
	var snap sim.RunSnapshot

	snap.ActorPos = core.V(d.f64(), d.f64())
	snap.ActorVel = core.V(d.f64(), d.f64())
	snap.Health = d.i32()
	snap.Score = d.i32()
	snap.Elapsed = d.f64()
	d.u8() // stored flag; validity is decided by this read

	n := d.u64()
	if d.err == nil && n > MaxHostiles {
		d.err = fmt.Errorf("%w: %d", ErrTooManyHostiles, n)
	}
	if d.err == nil && n > 0 {
		snap.Hostiles = make([]sim.HostileRecord, n)
		for i := range snap.Hostiles {
			snap.Hostiles[i] = sim.HostileRecord{X: d.f64(), Y: d.f64(), Variant: sim.Variant(d.i32())}
		}
	}

	snap.Wave = d.i32()
	snap.ToSpawn = d.i32()
	snap.Alive = d.i32()
	snap.Phase = sim.Phase(d.i32())

	if d.err == nil && !snap.Finite() {
		d.err = ErrNonFinite
	}
	if d.err != nil {
		return sim.InvalidSnapshot(), d.err
	}
	snap.Valid = true
	return snap, nil
}

// decoder reads fixed-width fields and remembers the first error.
// Once failed, every read returns zero.
type decoder struct {
	r   io.Reader
	buf [8]byte
	err error
}

func (d *decoder) read(n int) []byte {
	if d.err != nil {
		return nil
	}
	if _, err := io.ReadFull(d.r, d.buf[:n]); err != nil {
		d.err = fmt.Errorf("savefile: read snapshot: %w", err)
		return nil
	}
	return d.buf[:n]
}

func (d *decoder) u8() uint8 {
	b := d.read(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *decoder) i32() int {
	b := d.read(4)
	if b == nil {
		return 0
	}
	return int(int32(binary.LittleEndian.Uint32(b)))
}

func (d *decoder) u64() uint64 {
	b := d.read(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (d *decoder) f64() float64 {
	return math.Float64frombits(d.u64())
}
