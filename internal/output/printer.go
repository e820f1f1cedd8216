// Package output renders command results for humans and for scripts.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"sigs.k8s.io/yaml"
)

// Format selects how structured results are printed.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

var formatNames = map[Format]string{
	FormatText: "text",
	FormatJSON: "json",
	FormatYAML: "yaml",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Formats lists the accepted --output values.
func Formats() []string {
	return []string{"text", "json", "yaml"}
}

// ParseFormat parses an --output value. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatText, fmt.Errorf("unknown output format %q (expected one of %s)", s, strings.Join(Formats(), ", "))
}

// Printer writes results to out and diagnostics to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	format Format
	color  bool
}

// New returns a Printer. Color is enabled only when out is a terminal.
func New(out, errOut io.Writer, format Format) *Printer {
	return &Printer{out: out, errOut: errOut, format: format, color: IsTerminal(out)}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Format returns the configured format.
func (p *Printer) Format() Format {
	return p.format
}

// Writer returns the result stream.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Structured reports whether results should be machine readable.
func (p *Printer) Structured() bool {
	return p.format != FormatText
}

func (p *Printer) paint(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.color && IsTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Println writes a line of text.
func (p *Printer) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

// Success writes a confirmation line, green on a terminal. Nothing is
// written in structured modes so that stdout stays parseable.
func (p *Printer) Success(format string, a ...interface{}) {
	if p.Structured() {
		return
	}
	p.paint(p.out, color.FgGreen).Fprintf(p.out, format+"\n", a...)
}

// Error writes err to the diagnostic stream, red on a terminal.
func (p *Printer) Error(err error) {
	p.paint(p.errOut, color.FgRed, color.Bold).Fprintf(p.errOut, "Error: %v\n", err)
}

// Warn writes a warning to the diagnostic stream.
func (p *Printer) Warn(format string, a ...interface{}) {
	p.paint(p.errOut, color.FgYellow).Fprintf(p.errOut, "Warning: "+format+"\n", a...)
}

// Emit prints v as JSON or YAML, or calls text for the text format.
func (p *Printer) Emit(v interface{}, text func(w io.Writer) error) error {
	switch p.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.out, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = p.out.Write(data)
		return err
	default:
		return text(p.out)
	}
}

// Lines prints one item per line in text mode, or the list in structured
// modes.
func (p *Printer) Lines(items []string) error {
	return p.Emit(items, func(w io.Writer) error {
		for _, item := range items {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
		}
		return nil
	})
}

// KeyValues prints data as sorted "key: value" lines, leaving out keys for
// which skip returns true. Structured modes print the filtered map.
func (p *Printer) KeyValues(data map[string]interface{}, skip func(key string) bool) error {
	filtered := make(map[string]interface{}, len(data))
	keys := make([]string, 0, len(data))
	for k, v := range data {
		if skip != nil && skip(k) {
			continue
		}
		filtered[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return p.Emit(filtered, func(w io.Writer) error {
		bold := p.paint(w, color.Bold)
		for _, k := range keys {
			if _, err := fmt.Fprintf(w, "%s: %s\n", bold.Sprint(k), FormatValue(filtered[k])); err != nil {
				return err
			}
		}
		return nil
	})
}

// Table prints rows under header. Structured modes print rows as a list of
// objects keyed by the lowercased header names.
func (p *Printer) Table(header []string, rows [][]string) error {
	objects := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(row) {
				obj[strings.ToLower(h)] = row[i]
			}
		}
		objects = append(objects, obj)
	}

	return p.Emit(objects, func(out io.Writer) error {
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, strings.Join(header, "\t"))
		underline := make([]string, len(header))
		for i, h := range header {
			underline[i] = strings.Repeat("-", len(h))
		}
		fmt.Fprintln(w, strings.Join(underline, "\t"))
		for _, row := range rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		return w.Flush()
	})
}

// FormatValue renders a decoded JSON value on one line. Scalars print
// as-is; lists and objects print as compact JSON.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return fmt.Sprintf("%t", val)
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
