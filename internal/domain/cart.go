package domain

// CartLine snapshots name, price and image at insertion time so later catalog
// changes never retroactively alter an in-progress cart. Quantity is always
// at least 1; a line that would drop below 1 is removed instead.
type CartLine struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Quantity  int
}

func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart is an ordered sequence of lines, one per product identifier,
// in insertion order.
type Cart struct {
	lines []CartLine
}

// Add increments the existing line for the product or appends a new one with
// quantity 1.
func (c *Cart) Add(p Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// Increase increments the matching line's quantity. Unknown ids are a no-op.
func (c *Cart) Increase(productID string) bool {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return true
		}
	}
	return false
}

// Decrease decrements the matching line's quantity, removing the line when it
// would drop below 1. Unknown ids are a no-op.
func (c *Cart) Decrease(productID string) bool {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return true
	}
	return false
}

func (c *Cart) Subtotal() float64 {
	subtotal := 0.0
	for _, l := range c.lines {
		subtotal += l.LineTotal()
	}
	return subtotal
}

// TotalItemCount is the sum of quantities across lines, used for badge counts.
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the ledger in display order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) Clear() {
	c.lines = nil
}
