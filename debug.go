package runenv

// debugFlag is the command-line token that forces the debug flag on during
// detection.
const debugFlag = "--debug"

// IsDebug reports whether the debug flag is on.
func (c *Context) IsDebug() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.debug
}

// SetDebug turns the debug flag on and writes a truthy RUN_ENV_debug entry to
// the mirror table. Calling SetDebug(false) is equivalent to ClearDebug.
func (c *Context) SetDebug(on ...bool) {
	if len(on) > 0 && !on[0] {
		c.ClearDebug()
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = true
	c.mirror.Set(DebugKey, "1")
}

// ClearDebug turns the debug flag off and removes the RUN_ENV_debug entry
// entirely. Removal matters: detection treats mere presence with a truthy
// value as "on", so absence is the canonical off state.
func (c *Context) ClearDebug() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = false
	c.mirror.Unset(DebugKey)
}
