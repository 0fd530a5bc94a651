// File: render/ascii.go
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lguibr/updown/game"
	"github.com/lguibr/updown/utils"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

const (
	borderRune = '#'
	ballRune   = 'o'
	paddleRune = '='
)

// Cell is one character of a frame with its foreground color.
type Cell struct {
	Rune  rune
	Color [3]int
}

// Frame is a character grid; row 0 is the top of the world.
type Frame struct {
	Cols  int
	Rows  int
	Cells [][]Cell
}

// Viewport maps world coordinates onto a cols x rows grid.
type Viewport struct {
	World utils.Rect
	Cols  int
	Rows  int
}

func NewViewport(world utils.Rect, cols, rows int) Viewport {
	return Viewport{World: world, Cols: cols, Rows: rows}
}

// ToCell returns the cell containing p; ok is false outside the grid.
func (v Viewport) ToCell(p utils.Vector) (col, row int, ok bool) {
	if v.Cols <= 0 || v.Rows <= 0 || v.World.Size.Width <= 0 || v.World.Size.Height <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor((p.X - v.World.MinX()) / v.World.Size.Width * float64(v.Cols)))
	row = int(math.Floor((v.World.MaxY() - p.Y) / v.World.Size.Height * float64(v.Rows)))
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, ok
}

// ToWorld returns the world position at the center of a cell.
func (v Viewport) ToWorld(col, row int) utils.Vector {
	return utils.Vector{
		X: v.World.MinX() + (float64(col)+0.5)*v.World.Size.Width/float64(v.Cols),
		Y: v.World.MaxY() - (float64(row)+0.5)*v.World.Size.Height/float64(v.Rows),
	}
}

// rgbToGray averages the channels.
func rgbToGray(rgb [3]int) int {
	return (rgb[0] + rgb[1] + rgb[2]) / 3
}

// grayToASCII maps a grayscale value to a character of the ramp, skipping
// the blank so filled cells stay visible.
func grayToASCII(gray int) rune {
	index := 1 + gray*(len(asciiChars)-2)/255
	return rune(asciiChars[int(utils.ClampF(float64(index), 1, float64(len(asciiChars)-1)))])
}

// rgbToAnsi converts a color to an ANSI escape code for that color
func rgbToAnsi(rgb [3]int) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", rgb[0], rgb[1], rgb[2])
}

// Render rasterizes a snapshot: the world border, enemies filled with their
// color, the paddle and the ball, in that order.
func Render(snapshot game.Snapshot, cols, rows int) Frame {
	frame := newFrame(cols, rows)
	view := NewViewport(snapshot.World, cols, rows)
	white := utils.ColorWhite.RGB()

	for c := 0; c < cols; c++ {
		frame.set(c, 0, borderRune, white)
		frame.set(c, rows-1, borderRune, white)
	}
	for r := 0; r < rows; r++ {
		frame.set(0, r, borderRune, white)
		frame.set(cols-1, r, borderRune, white)
	}

	for i := range snapshot.Enemies {
		drawEnemy(&frame, view, &snapshot.Enemies[i])
	}

	paddle := snapshot.Paddle.Bounds()
	if _, row, ok := view.ToCell(paddle.Center()); ok {
		from, _, _ := view.ToCell(utils.Vector{X: paddle.MinX(), Y: paddle.Center().Y})
		to, _, _ := view.ToCell(utils.Vector{X: paddle.MaxX(), Y: paddle.Center().Y})
		for c := from; c <= to; c++ {
			frame.set(c, row, paddleRune, white)
		}
	}

	if col, row, ok := view.ToCell(snapshot.Ball.Position); ok {
		frame.set(col, row, ballRune, snapshot.Ball.Color.RGB())
	}
	return frame
}

func drawEnemy(frame *Frame, view Viewport, enemy *game.Enemy) {
	rgb := enemy.Color.RGB()
	glyph := grayToASCII(rgbToGray(rgb))
	vertices := enemy.Vertices()
	bounds := enemy.Bounds()

	minCol, maxRow, _ := view.ToCell(utils.Vector{X: bounds.MinX(), Y: bounds.MinY()})
	maxCol, minRow, _ := view.ToCell(utils.Vector{X: bounds.MaxX(), Y: bounds.MaxY()})
	minCol, maxCol = clampIndex(minCol, frame.Cols), clampIndex(maxCol, frame.Cols)
	minRow, maxRow = clampIndex(minRow, frame.Rows), clampIndex(maxRow, frame.Rows)
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if utils.PolygonContains(vertices, view.ToWorld(c, r)) {
				frame.set(c, r, glyph, rgb)
			}
		}
	}
	// Enemies smaller than a cell still show up.
	if col, row, ok := view.ToCell(enemy.Position); ok {
		frame.set(col, row, glyph, rgb)
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func newFrame(cols, rows int) Frame {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Cell{Rune: ' '}
		}
	}
	return Frame{Cols: cols, Rows: rows, Cells: cells}
}

func (f *Frame) set(col, row int, r rune, rgb [3]int) {
	if col < 0 || col >= f.Cols || row < 0 || row >= f.Rows {
		return
	}
	f.Cells[row][col] = Cell{Rune: r, Color: rgb}
}

// String renders the frame without colors, one line per row.
func (f Frame) String() string {
	var out strings.Builder
	for r, row := range f.Cells {
		if r > 0 {
			out.WriteByte('\n')
		}
		for _, cell := range row {
			out.WriteRune(cell.Rune)
		}
	}
	return out.String()
}

// ANSI renders the frame with 24-bit color escapes.
func (f Frame) ANSI() string {
	var out strings.Builder
	for _, row := range f.Cells {
		for _, cell := range row {
			if cell.Rune == ' ' {
				out.WriteByte(' ')
				continue
			}
			out.WriteString(rgbToAnsi(cell.Color))
			out.WriteRune(cell.Rune)
			out.WriteString("\033[0m") // Reset color after each character
		}
		out.WriteByte('\n')
	}
	return out.String()
}
