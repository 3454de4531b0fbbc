package tui

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
	"github.com/vovakirdan/nightfall/internal/logging"
	"github.com/vovakirdan/nightfall/internal/savefile"
	"github.com/vovakirdan/nightfall/internal/storage"
	"github.com/vovakirdan/nightfall/internal/survival"
)

// Launcher holds everything needed to start runs for one player.
type Launcher struct {
	Config  config.SurvivalConfig
	Runtime core.RuntimeConfig
	DataDir string
	Store   *storage.Store // optional run history
	Logger  *log.Logger
}

// Paths returns the save and high-score locations.
func (l Launcher) Paths() survival.Paths {
	return survival.ResolvePaths(l.Config.Files, l.DataDir)
}

// HasSave reports whether a continue is possible.
func (l Launcher) HasSave() bool {
	return savefile.Exists(l.Paths().Save)
}

// Start creates a run for player, restoring the save when cont is set.
func (l Launcher) Start(player string, cont bool) (*survival.Run, error) {
	logger := l.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	opts := survival.Options{
		Config:   l.Config,
		Runtime:  l.Runtime,
		Paths:    l.Paths(),
		Player:   player,
		Continue: cont,
		Logger:   logger,
	}
	if l.Store != nil {
		opts.Recorder = l.Store
	}
	return survival.NewRun(opts)
}

// ForUser returns a launcher whose files live in a per-user directory
// under the data directory.
func (l Launcher) ForUser(user string) Launcher {
	u := l
	u.DataDir = filepath.Join(l.DataDir, "users", safeName(user))
	if l.Logger != nil {
		u.Logger = l.Logger.With("user", user)
	}
	return u
}

// safeName maps a user name onto a single path element. Names that had to
// be rewritten get a hash of the raw name so they stay distinct.
func safeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	safe := b.String()
	if safe == "" {
		safe = "anonymous"
	}
	if safe == name {
		return safe
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return fmt.Sprintf("%s-%08x", safe, h.Sum32())
}
