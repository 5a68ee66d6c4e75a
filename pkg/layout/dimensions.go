package layout

// dimensions returns the canvas size for the given grid. An empty grid is
// one gap wide and one gap tall.
func dimensions(v View, rows, columns int) (width, height float64) {
	width = v.DX + float64(max(columns-1, 0))*(v.Node.Width+v.DX)
	height = v.DY + float64(rows)*(v.Node.Height+v.DY)
	return width, height
}
