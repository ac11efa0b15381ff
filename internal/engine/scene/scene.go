// Package scene draws the demo scene: floor tiles, lanterns, the centre prop
// and the pickable spheres, plus the debug lines.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/stencilpick/internal/config"
	"github.com/Faultbox/stencilpick/internal/engine/debug"
	"github.com/Faultbox/stencilpick/internal/engine/debuglines"
	"github.com/Faultbox/stencilpick/internal/engine/lighting"
	"github.com/Faultbox/stencilpick/internal/engine/mesh"
	"github.com/Faultbox/stencilpick/internal/engine/outline"
	"github.com/Faultbox/stencilpick/internal/engine/scene/shaders"
	"github.com/Faultbox/stencilpick/internal/engine/selection"
	"github.com/Faultbox/stencilpick/internal/engine/shader"
	"github.com/Faultbox/stencilpick/internal/logger"
)

// Material colours.
var (
	floorColor  = mgl32.Vec3{0.45, 0.42, 0.38}
	propColor   = mgl32.Vec3{0.55, 0.35, 0.2}
	sphereColor = mgl32.Vec3{0.6, 0.6, 0.65}
	hitColor    = mgl32.Vec3{1, 0.85, 0.2}
	missColor   = mgl32.Vec3{0.9, 0.2, 0.2}
	boundsColor = mgl32.Vec3{0.2, 0.9, 0.3}
	gridColor   = mgl32.Vec3{0.25, 0.25, 0.25}
)

// Config contains scene configuration options.
type Config struct {
	Scene        config.SceneConfig
	Outline      config.OutlineConfig
	LineCapacity int
	ShowBounds   bool
}

// View holds the per-frame camera inputs of a draw.
type View struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	CameraPos  mgl32.Vec3
	Elapsed    float32
}

// Scene owns the GPU resources of the demo scene.
type Scene struct {
	Layout
	Rig     *lighting.Rig
	Outline *outline.Renderer

	main   *shader.Program
	border *shader.Program
	line   *shader.Program

	sphere  *GPUMesh
	prop    *GPUMesh
	tile    *GPUMesh
	lantern *GPUMesh
	tiles   []mgl32.Mat4

	state glState

	hitLines    *LineRenderer
	missLines   *LineRenderer
	gridLines   *LineRenderer
	boundsLines *LineRenderer

	outlineColor mgl32.Vec3
	ShowBounds   bool

	log *zap.Logger
}

// New compiles the shaders, uploads the meshes and places the objects.
func New(cfg Config) (*Scene, error) {
	s := &Scene{
		Layout:       NewLayout(cfg.Scene),
		Rig:          lighting.NewRig(),
		outlineColor: mgl32.Vec3(cfg.Outline.Color),
		ShowBounds:   cfg.ShowBounds,
		log:          logger.Named("scene"),
	}

	var err error
	if s.main, err = shader.NewProgram("main", shaders.MainVertexShader, shaders.MainFragmentShader); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating scene: %w", err)
	}
	if s.border, err = shader.NewProgram("border", shaders.BorderVertexShader, shaders.BorderFragmentShader); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating scene: %w", err)
	}
	if s.line, err = shader.NewProgram("line", shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	s.sphere = Upload(mesh.Sphere(0.5, 24, 32))
	s.prop = Upload(mesh.Box(s.PropSize))
	s.tile = Upload(mesh.FloorTile(TileSize, TileSize))
	s.lantern = Upload(mesh.Box(mgl32.Vec3{0.3, 0.5, 0.3}))
	s.tiles = s.TileModels()

	s.hitLines = NewLineRenderer(cfg.LineCapacity)
	s.missLines = NewLineRenderer(cfg.LineCapacity)
	grid := s.Floor.GridLines(0.01)
	s.gridLines = NewLineRenderer(len(grid))
	s.gridLines.Set(grid)
	// Candidates never move, so their proxies are uploaded once.
	bounds := proxyLines(s.Candidates)
	s.boundsLines = NewLineRenderer(len(bounds))
	s.boundsLines.Set(bounds)

	s.Outline = &outline.Renderer{
		Device:             &s.state,
		Primary:            s.main,
		Border:             s.border,
		Enabled:            cfg.Outline.Enabled,
		Scale:              cfg.Outline.Scale,
		ReplaceOnDepthFail: cfg.Outline.ReplaceOnDepthFail,
	}

	s.log.Info("scene ready",
		zap.Int("candidates", len(s.Candidates)),
		zap.Int("floor_tiles", len(s.tiles)),
		zap.Bool("prop_border", s.PropBorder))
	return s, nil
}

// PrepareClear opens the stencil write mask so a following clear resets the
// stencil buffer.
func (s *Scene) PrepareClear() {
	s.state.invalidate()
	s.state.SetState(outline.Clearing())
}

// Draw renders every object. Depth and stencil state are the baseline on
// return.
func (s *Scene) Draw(v View) {
	s.state.SetState(outline.Baseline())

	s.border.Use()
	s.border.SetMat4("projection", v.Projection)
	s.border.SetMat4("view", v.View)
	s.border.SetVec3("borderColor", s.outlineColor)

	s.main.Use()
	s.main.SetMat4("projection", v.Projection)
	s.main.SetMat4("view", v.View)
	s.main.SetVec3("viewPos", v.CameraPos)
	s.main.SetVec3("material.specular", mgl32.Vec3{0.5, 0.5, 0.5})
	s.main.SetFloat("material.shininess", 32)
	s.Rig.Upload(s.main)

	// Lanterns glow in their light's colour. Only the first one spins.
	s.main.SetFloat("emissiveMult", 1)
	for i, l := range s.Rig.Points.Lights {
		spin := float32(0)
		if i == 0 {
			spin = LanternSpin
		}
		s.main.SetVec3("material.diffuse", l.Color)
		s.main.SetMat4("model", LanternModel(l.Position, v.Elapsed, spin))
		s.lantern.Draw()
	}
	s.main.SetFloat("emissiveMult", 0)

	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)
	s.main.SetVec3("material.diffuse", floorColor)
	for _, m := range s.tiles {
		s.main.SetMat4("model", m)
		s.tile.Draw()
	}
	gl.Disable(gl.CULL_FACE)

	s.main.SetVec3("material.diffuse", propColor)
	s.Outline.Draw(outline.Target{Mesh: s.prop, Model: mgl32.Ident4(), Flagged: s.PropBorder})

	s.main.SetVec3("material.diffuse", sphereColor)
	for _, c := range s.Candidates {
		s.Outline.Draw(outline.Target{Mesh: s.sphere, Model: CandidateModel(c), Flagged: c.Selected})
	}
}

// SyncLines uploads the recorder's buffers if they changed since the last sync.
func (s *Scene) SyncLines(rec *debuglines.Recorder) {
	if rec.Hits.Dirty() {
		s.hitLines.Set(rec.Hits.Vertices())
		rec.Hits.MarkClean()
	}
	if rec.OutOfRange.Dirty() {
		s.missLines.Set(rec.OutOfRange.Vertices())
		rec.OutOfRange.MarkClean()
	}
}

// DrawLines renders the floor grid, captured rays and, when ShowBounds is
// set, the pick proxies of the candidates.
func (s *Scene) DrawLines(v View) {
	s.line.Use()
	s.line.SetMat4("projection", v.Projection)
	s.line.SetMat4("view", v.View)
	s.line.SetBool("alt", false)

	s.line.SetVec3("lineColor", gridColor)
	s.gridLines.Draw()

	s.line.SetVec3("lineColor", hitColor)
	s.line.SetVec3("altColor", missColor)
	s.hitLines.Draw()
	s.line.SetBool("alt", true)
	s.missLines.Draw()
	s.line.SetBool("alt", false)

	if s.ShowBounds {
		s.line.SetVec3("lineColor", boundsColor)
		s.boundsLines.Draw()
	}
}

func proxyLines(candidates []selection.Candidate) []float32 {
	var v []float32
	for _, c := range candidates {
		v = append(v, debug.SphereProxyWireframe(c.Position, c.Radius(), debug.DefaultBBoxPadding)...)
	}
	return v
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	for _, p := range []*shader.Program{s.main, s.border, s.line} {
		if p != nil {
			p.Delete()
		}
	}
	for _, m := range []*GPUMesh{s.sphere, s.prop, s.tile, s.lantern} {
		if m != nil {
			m.Delete()
		}
	}
	for _, l := range []*LineRenderer{s.hitLines, s.missLines, s.gridLines, s.boundsLines} {
		if l != nil {
			l.Delete()
		}
	}
}
