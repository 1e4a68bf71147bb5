// Package diffreport renders incompatibility reports: the difference
// between a stored shard config and the one derived from the current data
// config.
package diffreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/thoreinstein/shardcfg/internal/shard"
	"github.com/thoreinstein/shardcfg/internal/tree"
	"github.com/thoreinstein/shardcfg/internal/treediff"
)

// Style selects how the two sides of a difference are shown.
type Style string

const (
	// StyleTree prints the stored and current sides as two YAML trees.
	StyleTree Style = "tree"
	// StyleUnified prints a unified line diff of the two YAML trees.
	StyleUnified Style = "unified"
)

// ParseStyle parses a diff style name. The empty string means tree.
func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StyleTree, nil
	case StyleTree, StyleUnified:
		return st, nil
	default:
		return "", errors.Newf("unknown diff format %q (want tree or unified)", s)
	}
}

// Reporter writes incompatibility reports.
type Reporter struct {
	out   io.Writer
	style Style

	header, removed, added, path *color.Color
}

// New creates a Reporter writing to out. Colors are used only when
// useColor is set.
func New(out io.Writer, style Style, useColor bool) *Reporter {
	r := &Reporter{
		out:     out,
		style:   style,
		header:  color.New(color.Bold),
		removed: color.New(color.FgRed),
		added:   color.New(color.FgGreen),
		path:    color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.header, r.removed, r.added, r.path} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Report writes a report for err.
func (r *Reporter) Report(err *shard.IncompatibilityError) error {
	return r.Write(Sides{
		Title:    "Data config is not compatible with " + err.Path,
		OldLabel: "stored",
		NewLabel: "current",
		Old:      err.Stored,
		New:      err.Current,
	})
}

// Sides is a diff pair as produced by treediff.Diff, with labels.
type Sides struct {
	Title    string
	OldLabel string
	NewLabel string
	Old      tree.Mapping
	New      tree.Mapping
}

// Write writes a report for an arbitrary diff pair.
func (r *Reporter) Write(s Sides) error {
	changes := treediff.Changes(s.Old, s.New)

	fmt.Fprintln(r.out, r.header.Sprint(s.Title))
	fmt.Fprintf(r.out, "%d difference(s):\n", len(changes))
	for _, c := range changes {
		fmt.Fprintf(r.out, "  %s: %s -> %s\n", r.path.Sprint(c.PathString()),
			r.removed.Sprint(inline(c.Old)), r.added.Sprint(inline(c.New)))
	}
	fmt.Fprintln(r.out)

	oldDoc, err := tree.MarshalYAML(s.Old)
	if err != nil {
		return err
	}
	newDoc, err := tree.MarshalYAML(s.New)
	if err != nil {
		return err
	}

	if r.style == StyleUnified {
		r.unified(s.OldLabel, s.NewLabel, string(oldDoc), string(newDoc))
		return nil
	}
	r.side(s.OldLabel+":", string(oldDoc), r.removed)
	r.side(s.NewLabel+":", string(newDoc), r.added)
	return nil
}

func (r *Reporter) side(title, doc string, c *color.Color) {
	fmt.Fprintln(r.out, r.header.Sprint(title))
	for _, line := range splitLines(doc) {
		fmt.Fprintf(r.out, "  %s\n", c.Sprint(line))
	}
}

func (r *Reporter) unified(oldLabel, newLabel, oldDoc, newDoc string) {
	fmt.Fprintln(r.out, r.removed.Sprint("--- "+oldLabel))
	fmt.Fprintln(r.out, r.added.Sprint("+++ "+newLabel))
	for _, l := range LineDiff(oldDoc, newDoc) {
		switch l.Op {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintln(r.out, r.removed.Sprint("-"+l.Text))
		case diffmatchpatch.DiffInsert:
			fmt.Fprintln(r.out, r.added.Sprint("+"+l.Text))
		default:
			fmt.Fprintln(r.out, " "+l.Text)
		}
	}
}

// Line is one line of a line diff.
type Line struct {
	Op   diffmatchpatch.Operation
	Text string
}

// LineDiff computes a line-level diff of a and b.
func LineDiff(a, b string) []Line {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []Line
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Op: d.Type, Text: text})
		}
	}
	return out
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// inline renders a node on one line, with collections in flow style.
func inline(n tree.Node) string {
	switch v := n.(type) {
	case tree.Mapping:
		parts := make([]string, 0, len(v))
		for _, k := range v.Keys() {
			parts = append(parts, k+": "+inline(v[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case tree.Sequence:
		parts := make([]string, len(v))
		for i, child := range v {
			parts[i] = inline(child)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case tree.Scalar:
		return v.Text()
	default:
		return tree.MissingText
	}
}
