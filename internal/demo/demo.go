// Package demo implements the main loop of the picking demo.
package demo

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/stencilpick/internal/config"
	"github.com/Faultbox/stencilpick/internal/engine/camera"
	"github.com/Faultbox/stencilpick/internal/engine/clock"
	"github.com/Faultbox/stencilpick/internal/engine/controls"
	"github.com/Faultbox/stencilpick/internal/engine/debug"
	"github.com/Faultbox/stencilpick/internal/engine/debuglines"
	"github.com/Faultbox/stencilpick/internal/engine/framebuffer"
	"github.com/Faultbox/stencilpick/internal/engine/input"
	"github.com/Faultbox/stencilpick/internal/engine/picking"
	"github.com/Faultbox/stencilpick/internal/engine/renderer"
	"github.com/Faultbox/stencilpick/internal/engine/scene"
	"github.com/Faultbox/stencilpick/internal/engine/selection"
	"github.com/Faultbox/stencilpick/internal/engine/window"
	"github.com/Faultbox/stencilpick/internal/logger"
)

// Title is the window title prefix.
const Title = "stencilpick"

// Demo is the main demo instance.
type Demo struct {
	cfg     *config.Config
	running bool

	window      *window.Window
	input       *input.Input
	framebuffer *framebuffer.Framebuffer
	scene       *scene.Scene

	controls *controls.Machine
	toggles  controls.Toggles
	camera   *camera.FlyCamera
	clock    *clock.Clock

	tracker  *selection.Tracker
	recorder *debuglines.Recorder
	shots    *debug.ScreenshotCapture

	title string
	log   *zap.Logger
}

// New creates the window, GL resources and scene.
func New(cfg *config.Config) (*Demo, error) {
	d := &Demo{
		cfg:      cfg,
		controls: controls.NewMachine(),
		toggles: controls.Toggles{
			Outline:      cfg.Outline.Enabled,
			BorderMode:   cfg.Outline.ReplaceOnDepthFail,
			SpeedMult:    cfg.Input.SpeedMult,
			SpeedMultMin: cfg.Input.SpeedMultMin,
			SpeedMultMax: cfg.Input.SpeedMultMax,
		},
		tracker:  selection.NewTracker(cfg.Picking.ClearOnRelease),
		recorder: debuglines.NewRecorder(cfg.DebugLines.Capacity),
		shots:    debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix, cfg.Screenshot.Scale),
		log:      logger.Named("demo"),
	}

	bindings := input.DefaultBindings()
	if err := bindings.Override(cfg.Input.Bindings); err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}
	for _, pair := range bindings.Conflicts() {
		d.log.Warn("actions share a binding",
			zap.Stringer("first", pair[0]),
			zap.Stringer("second", pair[1]))
	}
	d.input = input.New(bindings)

	d.camera = camera.NewFlyCamera(mgl32.Vec3(cfg.Camera.Position))
	d.camera.Speed = cfg.Camera.Speed
	d.camera.Sensitivity = cfg.Camera.Sensitivity
	d.camera.Zoom = cfg.Camera.Zoom
	d.camera.SetOrientation(cfg.Camera.Yaw, cfg.Camera.Pitch)

	// Create window (this also creates OpenGL context)
	var err error
	d.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer init must follow window creation, since the context must exist.
	if _, err := renderer.Init(); err != nil {
		d.Close()
		return nil, err
	}

	dw, dh := d.window.DrawableSize()
	d.framebuffer, err = framebuffer.New(int32(dw), int32(dh))
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create framebuffer: %w", err)
	}

	d.scene, err = scene.New(scene.Config{
		Scene:        cfg.Scene,
		Outline:      cfg.Outline,
		LineCapacity: cfg.DebugLines.Capacity,
		ShowBounds:   cfg.DebugLines.ShowBounds,
	})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	// Start in look mode with the cursor captured.
	d.window.SetCursorLocked(true)

	d.log.Info("demo initialized")
	return d, nil
}

// Run starts the main loop and returns when the demo quits.
func (d *Demo) Run() error {
	d.running = true
	d.clock = clock.New(time.Now())

	d.log.Info("starting main loop")

	for d.running {
		var fc FrameContext

		// 1. Timing
		fc.Delta = d.clock.Tick(time.Now())
		fc.Elapsed = d.clock.Elapsed()

		// 2. Input
		if d.input.Update() {
			d.running = false
			break
		}
		d.controls.Update(d.input.IsDown)
		fc.Requests = d.toggles.Apply(d.controls)
		if fc.Requests.Quit {
			d.running = false
			break
		}
		if fc.Requests.CursorChanged {
			d.window.SetCursorLocked(!d.toggles.PointerMode)
		}
		if d.input.Resized() {
			w, h := d.window.DrawableSize()
			d.framebuffer.Resize(int32(w), int32(h))
			fc.Resized = true
		}

		// 3. Update
		d.update(&fc)

		// 4. Render
		if err := d.render(&fc); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 5. Present
		d.window.SwapBuffers()
		d.updateTitle()
	}

	return nil
}

// update moves the camera and re-evaluates the selection.
func (d *Demo) update(fc *FrameContext) {
	moveCamera(d.camera, d.controls, fc.Delta*d.toggles.MoveScale(d.controls))
	if !d.toggles.PointerMode {
		// SDL reports downward motion as positive.
		dx, dy := d.input.MouseDelta()
		d.camera.HandleLook(dx, -dy)
	}
	d.camera.HandleZoom(d.input.Wheel())

	w, h := d.framebuffer.Size()
	fc.Width, fc.Height = int(w), int(h)
	sx, sy := d.window.PixelScale()
	cx, cy := d.input.Cursor()
	fc.CursorX, fc.CursorY = toPixels(cx, cy, sx, sy)

	fc.Projection = d.camera.Projection(fc.Aspect(), d.cfg.Camera.Near, d.cfg.Camera.Far)
	fc.View = d.camera.ViewMatrix()
	fc.Picking = selection.Active(d.toggles.PointerMode, d.controls.Down(controls.Pick))

	d.scene.Rig.Update(fc.Elapsed, d.camera.Position, d.camera.Front(), d.toggles.Flashlight)
	d.scene.Outline.Enabled = d.toggles.Outline
	d.scene.Outline.ReplaceOnDepthFail = d.toggles.BorderMode

	// The framebuffer still holds the previous frame, so the depth reads
	// below see last frame's geometry.
	var ray picking.Ray
	if fc.Picking {
		ray = d.castRay(fc)
	}
	tester := &picking.Tester{
		Depth:      d.framebuffer,
		Projection: fc.Projection,
		View:       fc.View,
		CursorX:    fc.CursorX,
		CursorY:    fc.CursorY,
		Width:      fc.Width,
		Height:     fc.Height,
	}
	updateSelection(d.tracker, fc, d.scene.Candidates, ray, tester)
}

func (d *Demo) castRay(fc *FrameContext) picking.Ray {
	w, h := float32(fc.Width), float32(fc.Height)
	if !d.cfg.Picking.LogRays || !logger.Enabled(zapcore.DebugLevel) {
		return picking.CastPickRay(fc.CursorX, fc.CursorY, w, h, fc.Projection, fc.View)
	}
	ray, tr := picking.CastPickRayTrace(fc.CursorX, fc.CursorY, w, h, fc.Projection, fc.View)
	d.log.Debug("pick ray",
		zap.Float32s("ndc", tr.NDC[:]),
		zap.Float32s("eye", tr.Eye[:]),
		zap.Float32s("world", tr.World[:]),
		zap.Float32s("origin", ray.Origin[:]))
	return ray
}

// render draws the frame into the framebuffer and presents it.
func (d *Demo) render(fc *FrameContext) error {
	bg := d.cfg.Graphics.ClearColor
	view := scene.View{
		Projection: fc.Projection,
		View:       fc.View,
		CameraPos:  d.camera.Position,
		Elapsed:    fc.Elapsed,
	}

	d.framebuffer.Bind()
	d.scene.PrepareClear()
	d.framebuffer.Clear(bg[0], bg[1], bg[2], 1)
	d.scene.Draw(view)

	if fc.Requests.ClearLines {
		d.recorder.Clear()
	}
	if fc.Requests.CaptureLine {
		depth := d.framebuffer.DepthAt(fc.Width/2, fc.Height/2)
		d.recorder.Capture(d.camera.Position, d.camera.Front(), depth, d.cfg.Camera.Near, d.cfg.Camera.Far)
	}
	d.scene.SyncLines(d.recorder)
	d.scene.DrawLines(view)

	d.framebuffer.Unbind()
	ww, wh := d.window.DrawableSize()
	d.framebuffer.BlitToScreen(int32(ww), int32(wh))

	if fc.Requests.Screenshot {
		d.screenshot()
	}

	return renderer.CheckError("frame")
}

func (d *Demo) screenshot() {
	w, h := d.framebuffer.Size()
	path, err := d.shots.CaptureFromPixels(d.framebuffer.ReadPixels(), int(w), int(h))
	if err != nil {
		d.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	d.log.Info("screenshot saved", zap.String("path", path))
}

func (d *Demo) updateTitle() {
	title := frameTitle(d.clock.FPS(), d.toggles)
	if title == d.title {
		return
	}
	d.title = title
	d.window.SetTitle(title)
}

// Close releases all resources.
func (d *Demo) Close() {
	d.log.Info("closing demo")

	if d.scene != nil {
		d.scene.Destroy()
	}
	if d.framebuffer != nil {
		d.framebuffer.Destroy()
	}
	if d.window != nil {
		d.window.Close()
	}
}
