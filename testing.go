package runenv

// testDirName is the directory name that signals a test context when it holds
// the running executable. Test suites are conventionally placed in a directory
// literally named "t"; running anything from inside it is a strong signal
// without requiring every test script to set the flag explicitly.
const testDirName = "t"

// IsTesting reports whether the testing flag is on.
func (c *Context) IsTesting() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.testing
}

// SetTesting turns the testing flag on and writes a truthy RUN_ENV_testing
// entry to the mirror table. Calling SetTesting(false) is equivalent to
// ClearTesting.
func (c *Context) SetTesting(on ...bool) {
	if len(on) > 0 && !on[0] {
		c.ClearTesting()
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.testing = true
	c.mirror.Set(TestingKey, "1")
}

// ClearTesting turns the testing flag off and removes the RUN_ENV_testing
// entry entirely, following the same absence-is-off convention as ClearDebug.
func (c *Context) ClearTesting() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.testing = false
	c.mirror.Unset(TestingKey)
}
