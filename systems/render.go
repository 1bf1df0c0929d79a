package systems

import (
	"image"
	"image/color"

	"github.com/automoto/umbra/assets"
	"github.com/automoto/umbra/components"
	"github.com/automoto/umbra/engine"
	"github.com/automoto/umbra/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	placeholderColor = color.RGBA{R: 180, G: 60, B: 180, A: 255}
	placeholderSize  = 32.0
)

// RenderSystem draws renderable entities in screen space. Sprites come out
// of the texture registry sliced by the entity's animation grid; entities
// with no registered texture get a placeholder rect so missing assets stay
// visible instead of silent.
type RenderSystem struct {
	state *engine.State
}

func NewRenderSystem(state *engine.State) *RenderSystem {
	return &RenderSystem{state: state}
}

func (r *RenderSystem) Draw(e *ecs.ECS, screen *ebiten.Image) {
	components.Renderable.Each(e.World, func(entry *donburi.Entry) {
		render := components.Renderable.Get(entry)
		if !render.Active || render.Alpha <= 0 {
			return
		}
		if !r.layerVisible(entry) {
			return
		}
		if !entry.HasComponent(components.Transform) {
			return
		}
		transform := components.Transform.Get(entry)

		if entry.HasComponent(components.Text) {
			drawText(screen, entry, render, transform)
			return
		}

		img := assets.Lookup(render.TextureID)
		if img == nil {
			sw, sh := scaleOrOne(transform)
			vector.DrawFilledRect(screen,
				float32(transform.Position.X), float32(transform.Position.Y),
				float32(placeholderSize*sw), float32(placeholderSize*sh),
				withAlpha(placeholderColor, render.Alpha), false)
			return
		}

		frameImg := currentFrame(entry, img)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		sw, sh := scaleOrOne(transform)
		drawOp.GeoM.Scale(sw, sh)
		drawOp.GeoM.Translate(transform.Position.X, transform.Position.Y)
		drawOp.ColorScale.ScaleAlpha(float32(render.Alpha))

		screen.DrawImage(frameImg, drawOp)
	})
}

// layerVisible honors externally toggled layer visibility. Entities with no
// layer component always draw.
func (r *RenderSystem) layerVisible(entry *donburi.Entry) bool {
	if !entry.HasComponent(components.Layer) {
		return true
	}
	layer := components.Layer.Get(entry)
	return r.state.LayerVisible(layer.ID)
}

// currentFrame slices the sheet cell for the entity's current animation
// frame. Entities without animation draw the whole texture.
func currentFrame(entry *donburi.Entry, img *ebiten.Image) *ebiten.Image {
	if !entry.HasComponent(components.Animation) {
		return img
	}
	anim := components.Animation.Get(entry)
	if anim.Cols <= 1 && anim.Rows <= 1 {
		return img
	}

	cols := anim.Cols
	if cols < 1 {
		cols = 1
	}
	rows := anim.Rows
	if rows < 1 {
		rows = 1
	}

	bounds := img.Bounds()
	cellW := bounds.Dx() / cols
	cellH := bounds.Dy() / rows
	if cellW < 1 || cellH < 1 {
		return img
	}

	col := anim.CurrentFrame % cols
	row := anim.CurrentFrame / cols
	if row >= rows {
		row = rows - 1
	}

	sx := bounds.Min.X + col*cellW
	sy := bounds.Min.Y + row*cellH
	rect := image.Rect(sx, sy, sx+cellW, sy+cellH)
	return img.SubImage(rect).(*ebiten.Image)
}

func drawText(screen *ebiten.Image, entry *donburi.Entry, render *components.RenderableData, transform *components.TransformData) {
	txt := components.Text.Get(entry)
	if txt.Content == "" {
		return
	}

	face := fonts.FaceForSize(txt.FontSize)
	clr := color.RGBA{R: 255, G: 255, B: 255, A: uint8(clamp01(render.Alpha) * 255)}
	text.Draw(screen, txt.Content, face, int(transform.Position.X), int(transform.Position.Y), clr)
}

func scaleOrOne(transform *components.TransformData) (float64, float64) {
	sx, sy := transform.Scale.X, transform.Scale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	c.A = uint8(clamp01(alpha) * 255)
	return c
}
