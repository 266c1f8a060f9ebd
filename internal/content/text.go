package content

import "slidedeck/internal/canvas"

// Title draws a centered deck or section title on row y.
func Title(c *canvas.Canvas, y int, text string) {
	w, _ := c.Size()
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	c.Text(x, y, Styles.Title, text)
}

// Subtitle draws a centered muted line on row y.
func Subtitle(c *canvas.Canvas, y int, text string) {
	w, _ := c.Size()
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	c.Text(x, y, Styles.Subtitle, text)
}

// Bullet draws a single bullet item at (x, y).
func Bullet(c *canvas.Canvas, x, y int, text string) {
	c.Text(x, y, Styles.Bullet, "• "+text)
}

// Bullets draws items on consecutive rows starting at (x, y).
func Bullets(c *canvas.Canvas, x, y int, items ...string) {
	for i, item := range items {
		Bullet(c, x, y+i, item)
	}
}

// Body draws plain text at (x, y); newlines continue on following rows.
func Body(c *canvas.Canvas, x, y int, text string) {
	c.Text(x, y, Styles.Body, text)
}
