package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor     = color.RGBA{70, 70, 90, 255}
	platformColor = color.RGBA{110, 90, 60, 255}
	backColor     = color.RGBA{24, 20, 32, 255}
)

// viewTransform maps world coordinates to screen coordinates for the
// current camera state, including zoom and the transient shake offset.
type viewTransform struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func currentView(e *ecs.ECS, screen *ebiten.Image) (viewTransform, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return viewTransform{}, false
	}
	camera := components.Camera.Get(cameraEntry)

	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = cfg.Camera.DefaultZoom
	}
	return viewTransform{
		camX:  camera.Position.X + camera.ShakeOffset.X,
		camY:  camera.Position.Y + camera.ShakeOffset.Y,
		zoom:  zoom,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}, true
}

func (v viewTransform) apply(wx, wy float64) (float32, float32) {
	return float32((wx-v.camX)*v.zoom + v.halfW), float32((wy-v.camY)*v.zoom + v.halfH)
}

func (v viewTransform) scale(d float64) float32 {
	return float32(d * v.zoom)
}

// DrawWorld renders the level geometry and every entity as flat shapes.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backColor)

	view, ok := currentView(e, screen)
	if !ok {
		return
	}

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		if obj.HasTags(tags.ResolvDeadZone) {
			return
		}
		drawRect(screen, view, obj.X, obj.Y, obj.W, obj.H, wallColor)
	})
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		drawRect(screen, view, obj.X, obj.Y, obj.W, obj.H, platformColor)
	})

	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		sprite := components.Sprite.Get(entry)
		cx, cy := view.apply(obj.X+obj.W/2, obj.Y+obj.H/2)
		vector.DrawFilledCircle(screen, cx, cy, view.scale(obj.W/2), sprite.Color, true)
	})

	tags.Shot.Each(e.World, func(entry *donburi.Entry) {
		drawEntityRect(screen, view, entry)
	})
	tags.Boomerang.Each(e.World, func(entry *donburi.Entry) {
		drawBoomerang(screen, view, entry)
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		drawEntityRect(screen, view, entry)
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawEntityRect(screen, view, entry)
	})
}

func drawEntityRect(screen *ebiten.Image, view viewTransform, entry *donburi.Entry) {
	sprite := components.Sprite.Get(entry)
	if sprite.Hidden {
		return
	}
	obj := components.Object.Get(entry).Object

	col := sprite.Color
	if entry.HasComponent(components.Flash) {
		if flash := components.Flash.Get(entry); flash.Timer.Active() {
			col = color.RGBA{
				R: uint8(255 * flash.R),
				G: uint8(255 * flash.G),
				B: uint8(255 * flash.B),
				A: 255,
			}
		}
	}

	x, y, w, h := obj.X, obj.Y, obj.W, obj.H
	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		// Scale around the bottom-center anchor so feet stay planted.
		newW := w * ss.ScaleX
		newH := h * ss.ScaleY
		x -= (newW - w) / 2
		y += h - newH
		w, h = newW, newH
	}

	drawRect(screen, view, x, y, w, h, col)
}

// drawBoomerang renders the weapon as two blades orbiting the body, using
// the sprite rotation as spin phase.
func drawBoomerang(screen *ebiten.Image, view viewTransform, entry *donburi.Entry) {
	sprite := components.Sprite.Get(entry)
	obj := components.Object.Get(entry).Object

	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2
	r := obj.W / 2

	sx, sy := view.apply(cx, cy)
	vector.DrawFilledCircle(screen, sx, sy, view.scale(r/2), sprite.Color, true)

	bx, by := view.apply(cx+math.Cos(sprite.Rotation)*r, cy+math.Sin(sprite.Rotation)*r)
	vector.DrawFilledCircle(screen, bx, by, view.scale(r/3), sprite.Color, true)
	bx, by = view.apply(cx-math.Cos(sprite.Rotation)*r, cy-math.Sin(sprite.Rotation)*r)
	vector.DrawFilledCircle(screen, bx, by, view.scale(r/3), sprite.Color, true)
}

func drawRect(screen *ebiten.Image, view viewTransform, x, y, w, h float64, col color.Color) {
	sx, sy := view.apply(x, y)
	vector.DrawFilledRect(screen, sx, sy, view.scale(w), view.scale(h), col, false)
}
