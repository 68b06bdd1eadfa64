package dispatcher

import "fmt"

// cmdComment implements "#": the address-resolution side effect on
// ed.Selection already happened in runAtDepth; there is nothing else
// to do.
func cmdComment(c *ctx) (bool, error) {
	return false, nil
}

func cmdEquals(c *ctx) (bool, error) {
	return false, c.UI.PrintMessage(fmt.Sprintf("(%d,%d)", c.Sel.A, c.Sel.B))
}
