package state

// ClampHighlight pulls the highlighted index back into [0, n-1]. An empty
// list pins it to 0.
func (d *Dropdown) ClampHighlight(n int) bool {
	old := d.Highlighted
	if n <= 0 || d.Highlighted < 0 {
		d.Highlighted = 0
	} else if d.Highlighted >= n {
		d.Highlighted = n - 1
	}
	return old != d.Highlighted
}

func (d *Dropdown) moveHighlightBy(delta, n int) bool {
	if n == 0 {
		d.Highlighted = 0
		return false
	}
	old := d.Highlighted
	if d.Highlighted < 0 {
		d.Highlighted = 0
	}
	d.Highlighted += delta
	if d.Highlighted < 0 {
		d.Highlighted = 0
	}
	if d.Highlighted >= n {
		d.Highlighted = n - 1
	}
	return d.Highlighted != old
}
