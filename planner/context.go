package planner

// Config holds planner settings a deployment can tune.
type Config struct {
	// MaxSetDepth bounds how deeply parenthesized queries may nest. Planning
	// a query nested past the ceiling fails with a RecursionLimitError
	// instead of exhausting the call stack. Zero means unlimited.
	MaxSetDepth int `mapstructure:"max_set_depth" yaml:"max_set_depth"`
}

// Context carries per compilation planning state. Each concurrent compilation
// must use its own Context because the depth counter mutates during
// translation.
type Context struct {
	depth    int
	maxDepth int
}

func NewContext(cfg Config) *Context {
	return &Context{maxDepth: cfg.MaxSetDepth}
}

// enter guards a recursive descent into a nested query. exit must be called
// when the descent returns. A failed enter restores the counter itself and
// needs no matching exit, so a failure in one branch cannot inflate the depth
// seen by a sibling branch.
func (c *Context) enter() error {
	c.depth += 1
	if c.maxDepth > 0 && c.depth > c.maxDepth {
		c.depth -= 1
		return &RecursionLimitError{Limit: c.maxDepth}
	}
	return nil
}

func (c *Context) exit() {
	c.depth -= 1
}
