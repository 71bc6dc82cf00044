package binimg

// Count returns the number of foreground pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, p := range b.pix {
		if p {
			n++
		}
	}
	return n
}

// Components returns the number of 8-connected foreground components.
func (b *Bitmap) Components() int {
	seen := make([]bool, len(b.pix))
	var stack []int
	n := 0
	for i, p := range b.pix {
		if !p || seen[i] {
			continue
		}
		n++
		seen[i] = true
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cx, cy := cur%b.w, cur/b.w
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					x, y := cx+dx, cy+dy
					if x < 0 || y < 0 || x >= b.w || y >= b.h {
						continue
					}
					j := y*b.w + x
					if b.pix[j] && !seen[j] {
						seen[j] = true
						stack = append(stack, j)
					}
				}
			}
		}
	}
	return n
}
