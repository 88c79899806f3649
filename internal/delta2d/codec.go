package delta2d

// Apply replaces each row of buf (viewed as rows×cols, row-major) after the
// first with its element-wise difference from the preceding row, in place.
// Subtraction wraps at the int16 boundary. buf must have length rows*cols;
// callers with rows <= 1 may call this safely — it is then a no-op.
func Apply(buf []int16, rows, cols int) {
	for r := rows - 1; r >= 1; r-- {
		cur := buf[r*cols : r*cols+cols]
		prev := buf[(r-1)*cols : (r-1)*cols+cols]
		for c := range cur {
			cur[c] -= prev[c]
		}
	}
}
