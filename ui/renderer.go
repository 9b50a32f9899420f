// Package ui draws the board to a raylib window. Rendering is a
// cooperative side effect between simulation steps; closing the window
// drops frames and lets the run continue headless.
package ui

import (
	"fmt"

	ray "github.com/gen2brain/raylib-go/raylib"

	"snake-rl/rl"
	"snake-rl/snake"
)

const borderPadding = 10

// Renderer implements rl.Renderer on top of a raylib window. Frames
// are paced by the target FPS and thinned by frameSkip to keep
// training watchable without stalling it.
type Renderer struct {
	cellSize  int32
	frameSkip int
	countdown int
	open      bool // still drawing frames
	done      bool // window torn down
}

var _ rl.Renderer = &Renderer{}

func NewRenderer(title string, gridSize, cellPx, fps, frameSkip int) *Renderer {
	if cellPx < 4 {
		cellPx = 4
	}
	if frameSkip < 1 {
		frameSkip = 1
	}
	side := int32(gridSize*cellPx + 2*borderPadding)
	ray.InitWindow(side, side, title)
	ray.SetTargetFPS(int32(fps))
	return &Renderer{
		cellSize:  int32(cellPx),
		frameSkip: frameSkip,
		countdown: frameSkip,
		open:      true,
	}
}

// Frame draws the current board. Non-snake environments are ignored.
func (r *Renderer) Frame(env rl.Environment) {
	e, ok := env.(*snake.Env)
	if !ok || !r.open {
		return
	}
	r.countdown--
	if r.countdown > 0 {
		return
	}
	r.countdown = r.frameSkip

	if ray.WindowShouldClose() {
		r.open = false
		return
	}

	ray.BeginDrawing()
	ray.ClearBackground(ray.Black)

	size := int32(e.Size())
	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			ray.DrawRectangleLines(
				r.cellX(x), r.cellY(y),
				r.cellSize, r.cellSize, ray.DarkGray)
		}
	}

	food := e.Food()
	ray.DrawRectangle(
		r.cellX(int32(food.X))+1, r.cellY(int32(food.Y))+1,
		r.cellSize-2, r.cellSize-2, ray.Red)

	body := e.Body()
	for i, p := range body {
		color := ray.Green
		if i == len(body)-1 {
			color = ray.Lime // head
		}
		ray.DrawRectangle(
			r.cellX(int32(p.X))+2, r.cellY(int32(p.Y))+2,
			r.cellSize-4, r.cellSize-4, color)
	}

	hud := fmt.Sprintf("len=%d steps=%d", e.Length(), e.Steps())
	ray.DrawText(hud, borderPadding+4, borderPadding+4, 14, ray.RayWhite)

	ray.EndDrawing()
}

func (r *Renderer) Close() {
	if !r.done {
		ray.CloseWindow()
		r.open = false
		r.done = true
	}
}

func (r *Renderer) cellX(x int32) int32 { return borderPadding + x*r.cellSize }
func (r *Renderer) cellY(y int32) int32 { return borderPadding + y*r.cellSize }
