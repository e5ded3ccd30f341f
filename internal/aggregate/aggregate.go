// Package aggregate collects the multiple independent failures a single
// walk over a configuration tree can produce -- every overflowing leaf
// a NodeIterator pass turns up -- into one reportable error, the way
// ygot/util.Errors
// collects per-field validation failures in the teacher.
package aggregate

import "github.com/openconfig/gnmi/errlist"

// Collector accumulates errors encountered while walking a tree,
// tagging each with the depth or index it was found at so a caller can
// tell which leaf failed without aborting the whole walk. count is kept
// independently of errlist.List's own bookkeeping: the teacher's own
// uses of errlist (ygot/render.go, ygot/diff.go) only ever call Add and
// Err, never inspect the list's size directly, so Collector doesn't
// lean on that either.
type Collector struct {
	list  errlist.List
	count int
}

// Add records err against depth if err is non-nil; it is a no-op
// otherwise. It returns whether err was recorded.
func (c *Collector) Add(depth int, err error) bool {
	if err == nil {
		return false
	}
	c.list.Add(&depthError{depth: depth, err: err})
	c.count++
	return true
}

// Len reports how many errors have been recorded so far.
func (c *Collector) Len() int {
	return c.count
}

// Err returns nil if no error was recorded, or the accumulated errors
// (in errlist.List's multi-line Error format) as a single error
// otherwise, exactly as ygot/render.go and ygot/diff.go use errs.Err()
// as their own terminal return value.
func (c *Collector) Err() error {
	return c.list.Err()
}

type depthError struct {
	depth int
	err   error
}

func (d *depthError) Error() string {
	return "depth " + itoa(d.depth) + ": " + d.err.Error()
}

func (d *depthError) Unwrap() error {
	return d.err
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
