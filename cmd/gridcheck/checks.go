package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/intgrid/grid"
)

const separator = "--------------------------------------"

// checker prints one "<msg>: Pass|Fail" line per condition and counts failures.
type checker struct {
	out    io.Writer
	log    *slog.Logger
	failed int
}

func (c *checker) check(ok bool, msg string) {
	res := "Pass"
	if !ok {
		res = "Fail"
		c.failed++
	}
	fmt.Fprintf(c.out, "%s: %s\n", msg, res)
}

// valueIs checks g(i,j) == want. An out-of-range index counts as a failure.
func (c *checker) valueIs(g *grid.Grid, i, j, want int) {
	v, err := g.At(i, j)
	if err != nil {
		c.log.Warn("check skipped", "err", err)
		c.check(false, "")
		return
	}
	c.log.Debug("value", "i", i, "j", j, "got", v, "want", want)
	c.check(v == want, "")
}

// runChecks executes the fixed scenario and returns the number of failed checks.
// Errors are returned only for shapes the Grid rejects outright.
func runChecks(out io.Writer, log *slog.Logger, cfg config) (int, error) {
	c := &checker{out: out, log: log}

	g, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return 0, err
	}
	log.Info("grid created", "rows", cfg.Rows, "cols", cfg.Cols)

	fmt.Fprintln(out, "Testing increment")
	c.valueIs(g, 1, 2, 0)
	g.Increment()
	c.valueIs(g, 1, 2, 1)

	fmt.Fprintln(out, "Testing printing")
	if err = g.Print(out); err != nil {
		return c.failed, err
	}
	fmt.Fprintln(out, separator)

	fmt.Fprintln(out, "Testing changing size")
	if err = g.Resize(cfg.ResizeRows, cfg.ResizeCols); err != nil {
		return c.failed, err
	}
	log.Info("grid resized", "rows", g.Rows(), "cols", g.Cols(), "size", g.Size())
	c.valueIs(g, 1, 2, 1)
	fmt.Fprintln(out, separator)

	fmt.Fprintln(out, "Testing finding value")
	c.check(!g.Find(4), "")
	if p, err := g.Get(4, 3); err != nil {
		c.log.Warn("assignment skipped", "err", err)
	} else {
		*p = 4
	}
	c.valueIs(g, 4, 3, 4)
	c.check(g.Find(4), "")

	sq, err := grid.NewSquare(cfg.Square)
	if err != nil {
		return c.failed, err
	}
	if err = sq.Print(out); err != nil {
		return c.failed, err
	}

	return c.failed, nil
}
