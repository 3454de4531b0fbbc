// Package survival is the run controller. It owns one simulation, maps
// platform actions onto it, handles pause, save and quit, and records the
// high score and run history when the run ends.
package survival

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
	"github.com/vovakirdan/nightfall/internal/logging"
	"github.com/vovakirdan/nightfall/internal/savefile"
	"github.com/vovakirdan/nightfall/internal/sim"
	"github.com/vovakirdan/nightfall/internal/storage"
)

// MaxNameLength is the longest accepted player name, in runes.
const MaxNameLength = 10

// DefaultPlayer is used when no name is given.
const DefaultPlayer = "player"

var (
	// ErrRunOver is returned when saving a run that has already ended.
	ErrRunOver = errors.New("survival: run is over")
	// ErrNoSave reports a continue request without a save file.
	ErrNoSave = errors.New("survival: no save file")
)

// Recorder stores finished runs. *storage.Store satisfies it.
type Recorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// Paths locates the save and high-score files.
type Paths struct {
	Save      string
	HighScore string
}

// ResolvePaths places relative file names from the config under dataDir.
func ResolvePaths(files config.FilesConfig, dataDir string) Paths {
	dataDir = config.ExpandHome(dataDir)
	resolve := func(name string) string {
		name = config.ExpandHome(name)
		if filepath.IsAbs(name) || dataDir == "" {
			return name
		}
		return filepath.Join(dataDir, name)
	}
	return Paths{Save: resolve(files.Save), HighScore: resolve(files.HighScore)}
}

// Options configures a new run.
type Options struct {
	Config   config.SurvivalConfig
	Runtime  core.RuntimeConfig // TickRate and Seed are used
	Paths    Paths
	Player   string
	Continue bool // restore from Paths.Save when it holds a valid snapshot
	Recorder Recorder
	Logger   *log.Logger
}

// Run is one survival session.
type Run struct {
	world    *sim.World
	paths    Paths
	player   string
	recorder Recorder
	log      *log.Logger
	rate     int

	paused     bool
	restored   bool
	restoreErr error
	finished   bool
	recorded   bool
	highScore  int
	newHigh    bool

	frames      int64
	notice      string
	noticeUntil int64
}

// NewRun creates a run. An unusable save silently falls back to a fresh run.
// An invalid config is an error and no run starts.
func NewRun(opts Options) (*Run, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	rate := opts.Runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := sim.NewWorld(opts.Config, rate, sim.NewRand(seed), logger)
	if err != nil {
		return nil, fmt.Errorf("survival: %w", err)
	}

	r := &Run{
		world:    world,
		paths:    opts.Paths,
		player:   SanitizeName(opts.Player),
		recorder: opts.Recorder,
		log:      logger,
		rate:     rate,
	}

	if opts.Paths.HighScore != "" {
		high, err := savefile.LoadHighScore(opts.Paths.HighScore)
		if err != nil {
			logger.Warn("ignoring unreadable high score", "path", opts.Paths.HighScore, "error", err)
		}
		r.highScore = high
	}

	if opts.Continue {
		if err := r.restore(); err != nil {
			r.restoreErr = err
			logger.Warn("starting a fresh run", "path", r.paths.Save, "error", err)
		}
	}
	return r, nil
}

func (r *Run) restore() error {
	if r.paths.Save == "" || !savefile.Exists(r.paths.Save) {
		return ErrNoSave
	}
	snap, err := savefile.Load(r.paths.Save)
	if err != nil {
		return err
	}
	if err := r.world.Restore(snap); err != nil {
		return err
	}
	r.restored = true
	r.log.Info("run restored", "wave", snap.Wave, "score", snap.Score, "hostiles", len(snap.Hostiles))
	return nil
}

// SanitizeName trims a player name and cuts it to MaxNameLength runes.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayer
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}

// Step applies one frame of platform input. While paused the simulation
// does not advance; a finished run only reports its state.
func (r *Run) Step(in core.InputFrame) core.StepResult {
	r.frames++

	if r.finished {
		return core.StepResult{State: r.State()}
	}

	if in.Has(core.ActionPause) {
		r.paused = !r.paused
	}
	if in.Has(core.ActionSave) {
		if err := r.Save(); err != nil {
			r.log.Error("save failed", "path", r.paths.Save, "error", err)
			r.flash("Save failed")
		}
	}
	if r.paused {
		return core.StepResult{State: r.State()}
	}

	out := r.world.Tick(sim.Intents{
		Left:        in.Has(core.ActionLeft),
		Right:       in.Has(core.ActionRight),
		Jump:        in.Has(core.ActionJump),
		JumpRelease: in.Has(core.ActionJumpRelease),
		Attack:      in.Has(core.ActionAttack),
	})
	if out.Terminal() {
		r.finish(out)
	}
	return core.StepResult{State: r.State()}
}

// finish updates the high score and history once and drops the save.
func (r *Run) finish(out sim.Outcome) {
	r.finished = true
	r.paused = false
	score := r.world.Score()

	if score > r.highScore {
		r.highScore = score
		r.newHigh = true
		if r.paths.HighScore != "" {
			if err := savefile.SaveHighScore(r.paths.HighScore, score); err != nil {
				r.log.Error("could not write high score", "path", r.paths.HighScore, "error", err)
			}
		}
	}
	if r.paths.Save != "" {
		if err := savefile.Remove(r.paths.Save); err != nil {
			r.log.Warn("could not remove finished save", "path", r.paths.Save, "error", err)
		}
	}
	r.record(out.String())
}

// record stores the run in the history. Best effort.
func (r *Run) record(outcome string) {
	if r.recorded || r.recorder == nil || r.world.Score() <= 0 {
		return
	}
	r.recorded = true
	_, err := r.recorder.SaveRun(storage.RunRecord{
		Player:   r.player,
		Score:    r.world.Score(),
		Wave:     r.world.Waves().Wave,
		Outcome:  outcome,
		Duration: int(r.world.Elapsed()),
	})
	if err != nil {
		r.log.Error("could not record run", "error", err)
	}
}

// Save writes the current snapshot to the save file.
func (r *Run) Save() error {
	if r.finished {
		return ErrRunOver
	}
	if err := savefile.Save(r.paths.Save, r.world.Snapshot()); err != nil {
		return err
	}
	r.log.Info("run saved", "path", r.paths.Save, "wave", r.world.Waves().Wave)
	r.flash("Game saved")
	return nil
}

// Quit leaves the run. An unfinished run is recorded as quit.
func (r *Run) Quit() {
	if !r.finished {
		r.record("quit")
	}
}

func (r *Run) flash(msg string) {
	r.notice = msg
	r.noticeUntil = r.frames + int64(2*r.rate)
}

// Notice returns the current flash message, if any.
func (r *Run) Notice() string {
	if r.frames >= r.noticeUntil {
		return ""
	}
	return r.notice
}

// State returns the platform-facing summary.
func (r *Run) State() core.GameState {
	out := r.world.Outcome()
	return core.GameState{
		Score:    r.world.Score(),
		Wave:     r.world.Waves().Wave,
		GameOver: out.Terminal(),
		Victory:  out == sim.Victory,
		Paused:   r.paused,
	}
}

// View returns the simulation view for rendering.
func (r *Run) View() sim.View {
	return r.world.View()
}

// Outcome returns the simulation outcome.
func (r *Run) Outcome() sim.Outcome {
	return r.world.Outcome()
}

// Phase returns the current day/night phase.
func (r *Run) Phase() sim.Phase {
	return r.world.Phase()
}

// Paused reports whether the run is paused.
func (r *Run) Paused() bool {
	return r.paused
}

// Restored reports whether the run continued from a save.
func (r *Run) Restored() bool {
	return r.restored
}

// RestoreErr reports why a continue request fell back to a fresh run.
func (r *Run) RestoreErr() error {
	return r.restoreErr
}

// HighScore returns the best score including this run.
func (r *Run) HighScore() int {
	return r.highScore
}

// NewHighScore reports whether this run set the high score.
func (r *Run) NewHighScore() bool {
	return r.newHigh
}

// Player returns the sanitized player name.
func (r *Run) Player() string {
	return r.player
}
