package savefile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/nightfall/internal/sim"
)

// Save writes snap to path. The file is replaced atomically.
func Save(path string, snap sim.RunSnapshot) error {
	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

// Load reads the snapshot at path. A missing or unreadable file yields
// sim.InvalidSnapshot together with the cause.
func Load(path string) (sim.RunSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return sim.InvalidSnapshot(), fmt.Errorf("savefile: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}

// Exists reports whether a save file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes the save at path. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("savefile: remove %s: %w", path, err)
	}
	return nil
}

// LoadHighScore reads the single int32 high-score record.
// A missing file means no high score yet.
func LoadHighScore(path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("savefile: read high score: %w", err)
	}
	if len(data) < 4 {
		return 0, fmt.Errorf("savefile: high score record is %d bytes", len(data))
	}
	return int(int32(binary.LittleEndian.Uint32(data))), nil
}

// SaveHighScore overwrites the high-score record.
func SaveHighScore(path string, score int) error {
	return writeAtomic(path, binary.LittleEndian.AppendUint32(nil, uint32(int32(score))))
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("savefile: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("savefile: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("savefile: write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("savefile: sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("savefile: close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("savefile: replace %s: %w", path, err)
	}
	return nil
}
