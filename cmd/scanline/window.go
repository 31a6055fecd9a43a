package main

import (
	"context"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/taigrr/scanline/pkg/input"
	"github.com/taigrr/scanline/pkg/render"
)

// windowKeys maps ebiten keys to keymap names.
var windowKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyE, "e"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyArrowUp, "up"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyArrowDown, "down"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyArrowLeft, "left"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyArrowRight, "right"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// windowGame presents the framebuffer in a desktop window. Each Update is
// one loop iteration: poll keys, step the camera, render the frame.
type windowGame struct {
	done     <-chan struct{}
	renderer *render.Renderer
	cam      *render.Camera
	ctrl     *input.Controller
	faces    []render.Face
	hud      *HUD

	img *ebiten.Image
	pix []byte
}

func (g *windowGame) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	for _, k := range windowKeys {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		name := k.name
		if ctrl && k.key == ebiten.KeyC {
			name = "ctrl+c"
		}
		if !g.ctrl.HandleKey(name) {
			return ebiten.Termination
		}
	}

	g.hud.Update(g.renderer.RenderFrame(g.cam, g.faces))
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	fb := g.renderer.FrameBuffer()
	if g.img == nil || g.img.Bounds().Dx() != fb.Width || g.img.Bounds().Dy() != fb.Height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(fb.Width, fb.Height)
		g.pix = make([]byte, fb.Len()*4)
	}

	fb.CopyRGBA(g.pix)
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
	ebitenutil.DebugPrint(screen, g.hud.Status()+"\n"+g.hud.CameraLine(g.cam))
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.renderer.FrameBuffer()
	return fb.Width, fb.Height
}

// runWindow opens a window and blocks until it closes.
func runWindow(ctx context.Context, cfg *config) error {
	closeLog, err := cfg.setupLogging(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	faces, mesh, err := cfg.faces()
	if err != nil {
		return err
	}
	opts, err := cfg.options(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	renderer, err := render.NewRenderer(opts)
	if err != nil {
		return err
	}
	cam, err := cfg.camera(opts)
	if err != nil {
		return err
	}

	g := &windowGame{
		done:     ctx.Done(),
		renderer: renderer,
		cam:      cam,
		ctrl:     input.NewController(cam, cfg.steps()),
		faces:    faces,
		hud:      NewHUD(mesh.Name, mesh.TriangleCount(), cfg.fps),
	}

	ebiten.SetWindowTitle("scanline - " + mesh.Name)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(cfg.fps)

	render.Logger().Info("window opened", "width", opts.Width, "height", opts.Height, "scene", mesh.Name)
	return ebiten.RunGame(g)
}
