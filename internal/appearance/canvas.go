package appearance

import "fmt"

// Op is one recorded paint operation.
type Op struct {
	Verb   string `json:"verb"`
	Target string `json:"target"`
	Value  string `json:"value,omitempty"`
}

// Canvas records paint operations instead of rasterizing them, so custom
// paint routines stay observable without a real surface.
type Canvas struct {
	ops []Op
}

// Fill records a background fill on target.
func (c *Canvas) Fill(target, color string) {
	c.ops = append(c.ops, Op{Verb: "fill", Target: target, Value: color})
}

// Stroke records a border stroke on target.
func (c *Canvas) Stroke(target, color string) {
	c.ops = append(c.ops, Op{Verb: "stroke", Target: target, Value: color})
}

// Text records drawn text on target.
func (c *Canvas) Text(target, text string) {
	c.ops = append(c.ops, Op{Verb: "text", Target: target, Value: text})
}

// Ops returns the recorded operations in order.
func (c *Canvas) Ops() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

// String renders the op list for demo output.
func (c *Canvas) String() string {
	s := ""
	for _, op := range c.ops {
		s += fmt.Sprintf("%s %s %s\n", op.Verb, op.Target, op.Value)
	}
	return s
}
