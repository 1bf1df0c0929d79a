package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/umbra/archetypes"
	"github.com/automoto/umbra/assets"
	"github.com/automoto/umbra/components"
	cfg "github.com/automoto/umbra/config"
	"github.com/automoto/umbra/engine"
	"github.com/automoto/umbra/fonts"
	"github.com/automoto/umbra/leveldata"
	"github.com/automoto/umbra/logic"
	"github.com/automoto/umbra/systems"
	"github.com/automoto/umbra/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	worldConfigPath = "assets/config/world.yaml"
	worldConfigDir  = "assets/config"
	worldLevelPath  = "assets/levels/world.tmx"
)

// WorldScene is the gameplay scene: player and enemies with animated sheets,
// timeline-driven overlays (boss intro, time slow), and a hot-reloadable
// yaml configuration overlay.
type WorldScene struct {
	ecs          *ecs.ECS
	state        *engine.State
	registry     *logic.Registry
	router       *Router
	timeline     *systems.TimelineSystem
	space        *resolv.Space
	watcher      *cfg.Watcher
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldScene creates a new world scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.drainConfigEvents()
	ws.ecs.Update()
	ws.router.Flush()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	fonts.LoadDefaults()
	assets.LoadDir("assets/images")

	ws.ecs = ecs.NewECS(donburi.NewWorld())
	ws.state = engine.NewState()
	ws.router = NewRouter(ws.sceneChanger)
	ws.router.OnLeave(ws.dispose)
	ws.space = resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16)

	ws.registry = logic.NewRegistry()
	systems.RegisterTransitions(ws.registry)

	prefabs := &worldPrefabs{scene: ws}
	ws.timeline = systems.NewTimelineSystem(ws.router, systems.WorldAudio{ECS: ws.ecs}, prefabs)
	animation := systems.NewAnimationSystem(nil)
	combat := systems.NewCombatSystem(popupSpawner{reg: ws.registry})
	input := systems.NewInputSystem(ws.state, ws.timeline)
	render := systems.NewRenderSystem(ws.state)

	frame := func() engine.Frame {
		return engine.Frame{Delta: tickDelta, State: ws.state}
	}

	ws.ecs.AddSystem(input.Update)
	ws.ecs.AddSystem(systems.UpdateAudio)
	ws.ecs.AddSystem(systems.UpdateCollisions)
	ws.ecs.AddSystem(func(e *ecs.ECS) { combat.Update(e, frame()) })
	ws.ecs.AddSystem(func(e *ecs.ECS) { animation.Update(e, frame()) })
	ws.ecs.AddSystem(func(e *ecs.ECS) { ws.timeline.Update(e, frame()) })
	ws.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateTweens(e, frame()) })

	ws.ecs.AddRenderer(cfg.Default, render.Draw)

	fileConfig, err := cfg.Load(worldConfigPath)
	if err != nil {
		log.Printf("Warning: Could not load world config: %v", err)
		fileConfig = &cfg.FileConfig{}
	}
	fileConfig.Apply()

	level := ws.loadLevel()
	ws.spawnWorld(level)

	if len(fileConfig.Timelines) > 0 {
		for _, def := range fileConfig.Timelines {
			SpawnTimeline(ws.ecs, ws.registry, def)
		}
	} else {
		ws.spawnDefaultTimelines()
	}

	ws.watchConfig()
}

// loadLevel reads the TMX placement data. A missing level file falls back to
// hardcoded spawns so the scene still comes up on a bare checkout.
func (ws *WorldScene) loadLevel() *leveldata.Level {
	level, err := leveldata.Load(os.DirFS("."), worldLevelPath)
	if err != nil {
		log.Printf("Warning: Could not load level %s: %v", worldLevelPath, err)
		return &leveldata.Level{
			PlayerSpawn: leveldata.SpawnPoint{X: 200, Y: 600},
			EnemySpawns: []leveldata.EnemySpawn{
				{X: 700, Y: 600, EnemyType: "poison"},
				{X: 1100, Y: 560, EnemyType: "boss"},
			},
			HazardRects: []leveldata.HazardRect{
				{X: 420, Y: 640, W: 64, H: 32},
			},
		}
	}
	return level
}

func (ws *WorldScene) spawnWorld(level *leveldata.Level) {
	for _, rect := range level.SolidRects {
		obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvSolid)
		ws.space.Add(obj)
	}

	for _, rect := range level.HazardRects {
		entry := archetypes.Hazard.Spawn(ws.ecs)
		obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvHazard)
		ws.space.Add(obj)
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
	}

	ws.spawnPlayer(level.PlayerSpawn)
	for _, spawn := range level.EnemySpawns {
		ws.spawnEnemy(spawn)
	}

	// Intro callout above the player spawn.
	popupSpawner{reg: ws.registry}.SpawnPopup(ws.ecs, "GO!", level.PlayerSpawn.X, level.PlayerSpawn.Y-60)
}

func (ws *WorldScene) spawnPlayer(spawn leveldata.SpawnPoint) {
	entry := archetypes.Player.Spawn(ws.ecs)

	components.Player.SetValue(entry, components.PlayerData{Health: 3})
	components.Transform.SetValue(entry, components.TransformData{
		Position: dmath.Vec2{X: spawn.X, Y: spawn.Y},
	})
	components.Renderable.SetValue(entry, components.RenderableData{
		TextureID: "player_idle",
		Active:    true,
		Alpha:     1,
	})

	obj := resolv.NewObject(spawn.X, spawn.Y, 32, 48, tags.ResolvPlayer)
	obj.Data = entry
	ws.space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
}

func (ws *WorldScene) spawnEnemy(spawn leveldata.EnemySpawn) {
	entry := archetypes.Enemy.Spawn(ws.ecs)

	enemyType := cfg.EnemyPoison
	texture := "poison_idle"
	if spawn.EnemyType == "boss" {
		enemyType = cfg.EnemyBoss
		texture = "boss_idle"
	}

	components.Enemy.SetValue(entry, components.EnemyData{Type: enemyType})
	components.Transform.SetValue(entry, components.TransformData{
		Position: dmath.Vec2{X: spawn.X, Y: spawn.Y},
	})
	components.Renderable.SetValue(entry, components.RenderableData{
		TextureID: texture,
		Active:    true,
		Alpha:     1,
	})

	obj := resolv.NewObject(spawn.X, spawn.Y, 48, 48, tags.ResolvEnemy)
	obj.Data = entry
	ws.space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
}

// spawnDefaultTimelines is the built-in overlay set used when the yaml
// overlay defines none: the boss warning banner and the dormant time-slow
// vignette woken by the Q key.
func (ws *WorldScene) spawnDefaultTimelines() {
	SpawnTimeline(ws.ecs, ws.registry, cfg.TimelineDef{
		Tag:      "boss_intro",
		In:       "SlideOutWarning",
		Out:      "FadeOut",
		InDelay:  1,
		OutDelay: 0.5,
		Duration: 1.2,
		Start:    -600,
		End:      float64(cfg.C.Width)/2 - 300,
		Y:        120,
		Texture:  "warning_banner",
	})

	SpawnTimeline(ws.ecs, ws.registry, cfg.TimelineDef{
		Tag:      "slow",
		In:       "SlowAbility",
		Out:      "FadeOut",
		Duration: 4,
		Texture:  "slow_vignette",
		Inactive: true,
	})
}

// dispose releases the config watcher when the scene is left. Without it
// every trip back to the menu abandoned a live watcher goroutine.
func (ws *WorldScene) dispose() {
	if ws.watcher != nil {
		if err := ws.watcher.Close(); err != nil {
			log.Printf("Warning: could not close config watcher: %v", err)
		}
		ws.watcher = nil
	}
}

func (ws *WorldScene) watchConfig() {
	watcher, err := cfg.NewWatcher(worldConfigDir)
	if err != nil {
		log.Printf("Warning: Could not watch config dir %s: %v", worldConfigDir, err)
		return
	}
	ws.watcher = watcher
}

// drainConfigEvents applies pending config edits: sheet metadata merges into
// the global table and every timeline re-resolves its function names.
func (ws *WorldScene) drainConfigEvents() {
	if ws.watcher == nil {
		return
	}
	reloaded := false
	for {
		select {
		case path, ok := <-ws.watcher.Events:
			if !ok {
				ws.watcher = nil
				return
			}
			log.Printf("Reloading config %s", path)
			reloaded = true
		case err, ok := <-ws.watcher.Errors:
			if !ok {
				ws.watcher = nil
				return
			}
			log.Printf("Warning: config watcher error: %v", err)
		default:
			if reloaded {
				fileConfig, err := cfg.Load(worldConfigPath)
				if err != nil {
					log.Printf("Warning: Could not reload world config: %v", err)
					return
				}
				fileConfig.Apply()
				RebindTimelines(ws.ecs.World, ws.registry)
			}
			return
		}
	}
}

// worldPrefabs spawns named prefabs requested by transition functions.
type worldPrefabs struct {
	scene *WorldScene
}

func (p *worldPrefabs) LoadPrefab(name string) {
	switch name {
	case "boss_bar":
		SpawnTimeline(p.scene.ecs, p.scene.registry, cfg.TimelineDef{
			Tag:      "boss_bar",
			In:       "FadeIn",
			Out:      "FadeOut",
			OutDelay: 30,
			Duration: 0.8,
			Start:    float64(cfg.C.Width)/2 - 250,
			End:      float64(cfg.C.Width)/2 - 250,
			Y:        40,
			Texture:  "boss_bar",
		})
	default:
		log.Printf("Warning: unknown prefab %q", name)
	}
}
