// Package controller turns user intents and clock ticks into board changes.
// A Controller is not safe for concurrent use; Run serializes every event onto one goroutine.
package controller

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-gol-board/model"
	"github.com/sheikhrachel/go-gol-board/utils"
)

// Frame is everything a front end needs to draw the board and its controls
type Frame struct {
	Grid       model.Snapshot
	Width      int // pending width used by the next Generate
	Height     int // pending height used by the next Generate
	Threshold  float64
	Running    bool
	Generation int
	Population int
	Stats      utils.Stats
}

// Controller owns the current generation and the clock state
type Controller struct {
	config utils.Config
	logger *slog.Logger
	rng    *rand.Rand
	pool   *model.GridPool
	stats  *utils.Stats

	grid          *model.Grid
	width, height int
	threshold     float64
	active        bool
	generation    int
}

// New creates an idle Controller with an empty 0x0 board. The configured size only
// takes effect on the first Generate, GenerateRandom or Resize.
func New(config utils.Config, logger *slog.Logger, rng *rand.Rand) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if rng == nil {
		rng = model.NewRNG(config.Seed)
	}
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}
	return &Controller{
		config:    config,
		logger:    logger,
		rng:       rng,
		pool:      pool,
		stats:     utils.NewStats(),
		grid:      model.NewGrid(0, 0),
		width:     min(utils.MaxDimension, max(0, config.Width)),
		height:    min(utils.MaxDimension, max(0, config.Height)),
		threshold: min(1, max(0, config.RandomThreshold)),
	}
}

// Apply handles one intent and reports whether the front end should render again
func (c *Controller) Apply(in Intent) bool {
	if in == nil {
		return false
	}
	c.logger.Debug("intent", "intent", in.String(), "running", c.active)

	switch in := in.(type) {
	case Resize:
		if !validDimension(in.Width) || !validDimension(in.Height) {
			return false
		}
		c.width, c.height = in.Width, in.Height
		c.regenerate(model.NewGrid(c.width, c.height), "resize")
		return true
	case SetWidth:
		if !validDimension(in.Width) {
			return false
		}
		c.width = in.Width
		return true
	case SetHeight:
		if !validDimension(in.Height) {
			return false
		}
		c.height = in.Height
		return true
	case Generate:
		c.regenerate(model.NewGrid(c.width, c.height), "generate")
		return true
	case GenerateRandom:
		c.regenerate(model.NewRandomGrid(c.width, c.height, c.threshold, c.rng), "generate-random")
		return true
	case ToggleCell:
		return c.grid.Toggle(in.X, in.Y)
	case Step:
		c.advance()
		return true
	case ToggleClock:
		c.active = !c.active
		c.logger.Info("clock toggled", "running", c.active, "generation", c.generation)
		return true
	case Tick:
		// Checked when the tick is processed, so a tick queued before a stop is dropped
		if !c.active {
			return false
		}
		c.advance()
		return true
	case SetThreshold:
		if !validThreshold(in.Threshold) {
			return false
		}
		c.threshold = in.Threshold
		return true
	default:
		c.logger.Warn("unknown intent dropped", "intent", in.String())
		return false
	}
}

// regenerate installs a wholesale new board and stops the clock
func (c *Controller) regenerate(g *model.Grid, reason string) {
	c.active = false
	c.replace(g)
	c.generation = 0
	c.stats.Restart()
	c.logger.Info("board regenerated",
		"reason", reason,
		"width", g.GetWidth(),
		"height", g.GetHeight(),
		"population", g.CountLivingCells(),
	)
}

// advance replaces the board with its next generation
func (c *Controller) advance() {
	start := time.Now()
	c.replace(model.NextGeneration(c.grid, c.config, c.pool))
	c.generation++

	duration := time.Since(start)
	population := c.grid.CountLivingCells()
	c.stats.Update(c.generation, population, duration)
	c.logger.Debug("generation",
		"generation", c.generation,
		"population", population,
		"duration", duration,
	)
}

func (c *Controller) replace(g *model.Grid) {
	old := c.grid
	c.grid = g
	model.GridToPool(old, c.pool)
}

// Active reports whether automatic ticks advance the board
func (c *Controller) Active() bool { return c.active }

// Generation returns the number of generations since the board was last regenerated
func (c *Controller) Generation() int { return c.generation }

// Threshold returns the probability GenerateRandom uses
func (c *Controller) Threshold() float64 { return c.threshold }

// Dimensions returns the pending width and height, which can differ from the grid's
// until the next Generate.
func (c *Controller) Dimensions() (width, height int) { return c.width, c.height }

// Snapshot returns a copy of the current generation
func (c *Controller) Snapshot() model.Snapshot { return c.grid.Snapshot() }

// Frame collects the state a front end renders
func (c *Controller) Frame() Frame {
	snap := c.grid.Snapshot()
	return Frame{
		Grid:       snap,
		Width:      c.width,
		Height:     c.height,
		Threshold:  c.threshold,
		Running:    c.active,
		Generation: c.generation,
		Population: snap.Population(),
		Stats:      *c.stats,
	}
}
