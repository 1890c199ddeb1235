// Package jetpack implements Jetpack Raid: a side-scrolling jetpack shooter.
// The pilot flies through an endless battlefield, dodging obstacles and
// enemy fire, collecting power-ups and fighting a boss every cycle.
package jetpack

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/core"
	"github.com/vovakirdan/jetpack-arcade/internal/registry"
)

// Mode is the top-level screen the game is on.
type Mode uint8

const (
	ModeStart Mode = iota
	ModePlaying
	ModeGameOver
	ModeScoreboard
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	case ModeScoreboard:
		return "scoreboard"
	default:
		return "?"
	}
}

// Options configures a Game. Zero values are valid: the default tuning,
// muted sound, no score store and a discarded log.
type Options struct {
	Config config.JetpackConfig
	Preset config.DifficultyPreset
	Sound  core.SoundPlayer
	Scores core.ScoreStore
	Logger *log.Logger
	Pilot  core.Pilot
	Now    func() time.Time // Clock for score dates
}

// Run is the state of one session from reset to game over. A new run is
// built from scratch; nothing carries over.
type Run struct {
	TimeMs   float64 // Elapsed run time
	Distance float64
	Speed    float64 // Effective world speed, burst included
	Coins    int
	Kills    int

	Player     *Player
	Obstacles  []*Obstacle
	Enemies    []*Enemy
	Pickups    []*Pickup
	Shots      []*Projectile // Player fire
	EnemyShots []*Projectile // Enemy and boss fire
	Boss       *Boss
	Gate       BossGate
	Spawner    *Spawner
	Effects    *Effects
	Particles  *Emitter

	baseSpeed    float64
	distScore    float64 // Distance points with the multiplier applied as earned
	bonus        int     // Coin and kill points
	fireCooldown float64 // ms until manual fire is allowed
	autoFireMs   float64
	jetMs        float64
	submitted    bool
}

// Score returns the run score. Points are banked as they are earned so the
// score never drops, even when a multiplier expires.
func (r *Run) Score() int {
	return int(r.distScore) + r.bonus
}

// Game is the orchestrator: it owns the mode machine and the current run
// and advances every subsystem in a fixed order each tick.
type Game struct {
	id, title string
	cfg       config.JetpackConfig
	runtime   core.RuntimeConfig
	rng       *RNG
	sound     core.SoundPlayer
	scores    core.ScoreStore
	log       *log.Logger
	pilot     core.Pilot
	now       func() time.Time

	mode       Mode
	paused     bool
	run        *Run
	highScores []core.ScoreRecord
}

// New creates a game on its title screen.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg.World.Width <= 0 {
		cfg = config.DefaultJetpackConfig()
	}
	if opts.Preset != "" {
		config.ApplyJetpackPreset(&cfg, opts.Preset)
	}

	g := &Game{
		id:     "classic",
		title:  "Jetpack Raid",
		cfg:    cfg,
		sound:  opts.Sound,
		scores: opts.Scores,
		log:    opts.Logger,
		pilot:  opts.Pilot,
		now:    opts.Now,
	}
	if g.sound == nil {
		g.sound = core.MuteSound{}
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.pilot.Name == "" {
		g.pilot.Name = cfg.Scoreboard.DefaultName
	}
	if g.now == nil {
		g.now = time.Now
	}

	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset returns to the title screen with a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = NewRNG(cfg.Seed)
	g.mode = ModeStart
	g.paused = false
	g.run = g.newRun()
	g.refreshHighScores()
}

func (g *Game) newRun() *Run {
	return &Run{
		Speed:     g.cfg.Speed.Initial,
		baseSpeed: g.cfg.Speed.Initial,
		Player:    newPlayer(g.cfg),
		Gate:      newBossGate(g.cfg.Spawning),
		Spawner:   newSpawner(g.cfg, g.rng),
		Effects:   newEffects(g.cfg.Powerups),
		Particles: newEmitter(g.rng),
	}
}

// startRun discards the current run and starts playing a new one.
func (g *Game) startRun() {
	g.run = g.newRun()
	g.mode = ModePlaying
	g.paused = false
	g.log.Info("run started", "mode", g.id, "pilot", g.pilot.Name)
}

// Step applies one tick of input to the mode machine and, while playing,
// advances the simulation by the runtime tick duration.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.mode {
	case ModeStart:
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionStartFlight):
			g.startRun()
			// Launching with the thrust key keeps it held.
			if in.Has(core.ActionStartFlight) {
				g.StartFlight()
			}
		case in.Has(core.ActionScores):
			g.showScoreboard()
		}

	case ModePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		if in.Has(core.ActionStartFlight) {
			g.StartFlight()
		}
		if in.Has(core.ActionStopFlight) {
			g.StopFlight()
		}
		if in.Has(core.ActionFire) {
			g.FireWeapon()
		}
		g.Advance(g.tickMs(in))

	case ModeGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.startRun()
		case in.Has(core.ActionScores):
			g.showScoreboard()
		default:
			// Debris keeps settling behind the game over banner.
			g.run.Particles.Update(g.tickMs(in))
		}

	case ModeScoreboard:
		switch {
		case in.Has(core.ActionRestart):
			g.startRun()
		case in.Has(core.ActionBack), in.Has(core.ActionConfirm):
			g.mode = ModeStart
		}
	}

	return core.StepResult{State: g.State()}
}

// tickMs returns the time a step covers: the measured frame time when the
// platform supplies one, else the nominal tick.
func (g *Game) tickMs(in core.InputFrame) float64 {
	if in.DtMs > 0 {
		return in.DtMs
	}
	return g.runtime.TickMs()
}

func (g *Game) showScoreboard() {
	g.refreshHighScores()
	g.mode = ModeScoreboard
}

// StartFlight engages the jetpack.
func (g *Game) StartFlight() {
	if !g.live() {
		return
	}
	p := g.run.Player
	if !p.Flying && p.Fuel > 0 {
		g.sound.Play(core.CueJump, 0.1)
	}
	p.Flying = true
}

// StopFlight releases the jetpack.
func (g *Game) StopFlight() {
	if !g.live() {
		return
	}
	g.run.Player.Flying = false
}

// FireWeapon fires a manual volley. Returns false while the weapon is
// cooling down.
func (g *Game) FireWeapon() bool {
	if !g.live() || g.run.fireCooldown > 0 {
		return false
	}
	g.fire()
	cd := g.cfg.Weapons.CooldownMs
	if g.run.Effects.Active(PowerupRapid) {
		cd *= g.cfg.Weapons.RapidFactor
	}
	g.run.fireCooldown = cd
	return true
}

// live reports whether the run accepts input.
func (g *Game) live() bool {
	return g.mode == ModePlaying && !g.paused
}

// fire spawns one volley from the pilot's gun in the current fire mode.
func (g *Game) fire() {
	r := g.run
	w := g.cfg.Weapons
	at := r.Player.Muzzle()
	speed := w.ShotSpeed + w.ShotSpeedScale*r.Speed

	if r.Effects.Mode == FireSpread {
		for i := -1; i <= 1; i++ {
			r.Shots = append(r.Shots, newPlayerShot(at, float64(i)*w.SpreadAngle, speed, w.ShotDamage))
		}
	} else {
		r.Shots = append(r.Shots, newPlayerShot(at, 0, speed, w.ShotDamage))
	}
	g.sound.Play(core.CuePlayerShot, 0.1)
}

// autoFireInterval returns the ms between automatic volleys.
func (g *Game) autoFireInterval() float64 {
	w := g.cfg.Weapons
	interval := w.AutoFireMs
	if g.run.Effects.Mode == FireSpread {
		interval = w.AutoFireSpreadMs
	}
	if g.run.Effects.Active(PowerupRapid) {
		interval /= 2
	}
	return interval
}

// Advance runs one simulation tick of dtMs milliseconds. Order matters:
// speed and time, pilot and weapons, spawners, the collision passes,
// particles, effect expiry, the boss machine, then the terminal check.
// Nothing happens outside of a live run.
func (g *Game) Advance(dtMs float64) {
	if !g.live() || dtMs <= 0 {
		return
	}
	g.advanceWorld(dtMs)
	g.advancePilot(dtMs)
	g.spawn()

	g.passObstacles(dtMs)
	g.passPickups(dtMs)
	g.passShots(dtMs)
	g.passEnemies(dtMs)
	g.passEnemyShots(dtMs)
	g.run.Particles.Update(dtMs)

	if g.mode == ModeGameOver {
		g.submitScore()
		return
	}

	for _, kind := range g.run.Effects.Tick(dtMs) {
		g.log.Debug("effect expired", "kind", kind)
	}
	g.advanceBoss(dtMs)
}

// burstFactor returns the current world speed multiplier.
func (g *Game) burstFactor() float64 {
	if g.run.Effects.Active(PowerupBurst) {
		return g.cfg.Speed.BurstFactor
	}
	return 1
}

func (g *Game) advanceWorld(dtMs float64) {
	r := g.run
	s := g.cfg.Speed
	k := dtMs / refFrameMs

	r.TimeMs += dtMs
	burst := g.burstFactor()
	r.baseSpeed = core.ClampF(r.baseSpeed+s.Increment*k, s.Initial, s.Max/burst)
	r.Speed = r.baseSpeed * burst

	step := r.Speed * k
	r.Distance += step
	r.distScore += step * float64(r.Effects.Multiplier)
}

func (g *Game) advancePilot(dtMs float64) {
	r := g.run
	p := r.Player
	p.Update(dtMs)

	r.fireCooldown = math.Max(0, r.fireCooldown-dtMs)

	if r.Effects.WeaponActive {
		r.autoFireMs += dtMs
		if interval := g.autoFireInterval(); r.autoFireMs >= interval {
			r.autoFireMs = math.Mod(r.autoFireMs, interval)
			g.fire()
		}
	} else {
		r.autoFireMs = 0
	}

	if p.Flying && p.Fuel > 0 {
		r.jetMs += dtMs
		if r.jetMs >= g.cfg.Player.JetEmitEvery {
			r.jetMs = 0
			r.Particles.Jet(p.Nozzle())
		}
	} else {
		r.jetMs = 0
	}
}

func (g *Game) spawn() {
	r := g.run
	out := r.Spawner.Update(r.TimeMs, r.Boss != nil || r.Gate.Approaching, r.Boss != nil && r.Boss.Active)
	if out.obstacle != nil {
		r.Obstacles = append(r.Obstacles, out.obstacle)
	}
	if out.pickup != nil {
		r.Pickups = append(r.Pickups, out.pickup)
	}
	if out.enemy != nil {
		r.Enemies = append(r.Enemies, out.enemy)
	}
}

// activate applies a collected power-up.
func (g *Game) activate(kind PowerupKind) {
	r := g.run
	switch kind {
	case PowerupCoin:
		r.Coins++
		r.bonus += g.cfg.Scoring.CoinValue * r.Effects.Multiplier
	case PowerupFuel:
		r.Player.Refuel()
	case PowerupShield:
		r.Player.AddShield()
	default:
		r.Effects.Activate(kind)
	}
	g.sound.Play(core.CuePickup, 0.05)
}

func (g *Game) buildBoss() *Boss {
	b := g.cfg.Bosses
	kind := pickWeighted(g.rng, []weighted[BossKind]{
		{BossTank, b.TankWeight},
		{BossShip, b.ShipWeight},
		{BossFinal, b.FinalWeight},
	})
	return newBoss(kind, g.run.Gate.Cycle, g.cfg, g.rng)
}

func (g *Game) advanceBoss(dtMs float64) {
	r := g.run
	if b := r.Gate.Tick(dtMs, r.Boss != nil, g.buildBoss); b != nil {
		g.log.Info("boss approaching", "boss", b.Kind(), "cycle", r.Gate.Cycle)
	}
	if r.Boss == nil {
		if b := r.Gate.Release(len(r.Enemies) == 0 && len(r.Obstacles) == 0); b != nil {
			r.Boss = b
			g.log.Debug("boss entering", "boss", b.Kind(), "health", b.MaxHealth)
		}
		return
	}

	b := r.Boss
	if b.Defeated() {
		g.defeatBoss(b)
		return
	}
	frame := b.Update(bossContext{
		dtMs:       dtMs,
		speedRatio: r.Speed / g.cfg.Speed.Initial,
		target:     r.Player.Center(),
		cycle:      r.Gate.Cycle,
		world:      g.cfg.World,
		rng:        g.rng,
	})
	for _, s := range frame.Shots {
		g.enemyFire(s.From, s.Angle, s.SpeedMult)
	}
	if len(frame.Shots) > 0 {
		g.sound.Play(core.CueEnemyShot, 0.1)
	}
	if frame.PhaseShift {
		r.Particles.Explode(b.Center(), 30, core.ColorBrightMagenta, 5*refFrameMs, 30*refFrameMs)
		g.sound.Play(core.CueBossPhase, 0)
		g.log.Debug("boss phase", "phase", b.Phase())
	}
}

// defeatBoss awards the kill, clears the boss and bumps world speed.
func (g *Game) defeatBoss(b *Boss) {
	r := g.run
	s := g.cfg.Speed

	r.bonus += int(b.MaxHealth * g.cfg.Scoring.BossKillScale * float64(r.Effects.Multiplier))
	r.Particles.Explode(b.Center(), 50, bossColor(b.Kind()), 10*refFrameMs, 60*refFrameMs)
	r.Boss = nil
	r.Gate.Defeated()

	burst := g.burstFactor()
	r.baseSpeed = math.Min(s.Max/burst, r.baseSpeed+s.BossDefeatBump)
	r.Speed = r.baseSpeed * burst

	g.sound.Play(core.CueBossDefeat, 0)
	g.log.Info("boss defeated", "boss", b.Kind(), "cycle", r.Gate.Cycle, "score", r.Score())
}

// triggerGameOver ends the run. Later calls are no-ops.
func (g *Game) triggerGameOver() {
	if g.mode != ModePlaying {
		return
	}
	g.mode = ModeGameOver
	r := g.run
	r.Player.Flying = false
	r.Particles.Explode(r.Player.Center(), 30, core.ColorCyan, 5*refFrameMs, 40*refFrameMs)
	g.sound.Play(core.CueGameOver, 0)
	g.log.Info("run ended",
		"score", r.Score(),
		"distance", int(r.Distance),
		"seconds", int(r.TimeMs/1000),
		"bosses", r.Gate.Cycle,
	)
}

// submitScore saves the finished run once. Invalid records and a missing
// store are logged and skipped.
func (g *Game) submitScore() {
	r := g.run
	if r.submitted {
		return
	}
	r.submitted = true

	rec := core.ScoreRecord{
		Name:     g.pilot.Name,
		Score:    r.Score(),
		Date:     g.now().Format(g.cfg.Scoreboard.DateLayout),
		PlayerID: g.pilot.ID,
	}
	if err := rec.Validate(); err != nil {
		g.log.Warn("score not submitted", "err", err)
		return
	}
	if g.scores == nil {
		g.log.Info("no score store, skipping save", "score", rec.Score)
		return
	}
	if err := g.scores.SaveScoreRecord(rec); err != nil {
		g.log.Error("failed to save score", "err", err)
		return
	}
	g.refreshHighScores()
}

func (g *Game) refreshHighScores() {
	if g.scores == nil {
		return
	}
	top, err := g.scores.TopScores(g.cfg.Scoreboard.TopN)
	if err != nil {
		g.log.Warn("failed to load high scores", "err", err)
		return
	}
	g.highScores = top
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.run.Score(),
		GameOver: g.mode == ModeGameOver,
		Paused:   g.paused,
	}
}

// Mode returns the current screen.
func (g *Game) Mode() Mode {
	return g.mode
}

// Run returns the current run.
func (g *Game) Run() *Run {
	return g.run
}

// HighScores returns the last leaderboard loaded from the score store.
func (g *Game) HighScores() []core.ScoreRecord {
	return g.highScores
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.JetpackConfig {
	return g.cfg
}

// modes are the registered difficulty variants.
var modes = []struct {
	id, title string
	preset    config.DifficultyPreset
}{
	{"classic", "Jetpack Raid", config.DifficultyNormal},
	{"cadet", "Jetpack Raid: Cadet", config.DifficultyEasy},
	{"ace", "Jetpack Raid: Ace", config.DifficultyHard},
	{"steady", "Jetpack Raid: Steady", config.DifficultyFixed},
}

func init() {
	for _, m := range modes {
		registry.Register(m.id, func(env registry.Env) registry.Game {
			g := New(Options{
				Config: env.Config,
				Preset: m.preset,
				Sound:  env.Sound,
				Scores: env.Scores,
				Logger: env.Logger,
				Pilot:  env.Pilot,
			})
			g.id, g.title = m.id, m.title
			return g
		})
	}
}

// ModeFor returns the ID of the mode tuned with preset.
func ModeFor(preset config.DifficultyPreset) (string, bool) {
	for _, m := range modes {
		if m.preset == preset {
			return m.id, true
		}
	}
	return "", false
}
