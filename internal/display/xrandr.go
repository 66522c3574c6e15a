package display

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/iiroan/resswitch/internal/exec"
)

type runFunc func(ctx context.Context, name string, args []string, opts exec.Options) *exec.Result

// xrandrController drives X11 outputs through the xrandr command.
type xrandrController struct {
	output string
	run    runFunc
	logger *log.Logger
}

func newXrandrController(opts Options) (Controller, error) {
	if err := exec.RequireCommands("xrandr"); err != nil {
		return nil, err
	}
	return &xrandrController{output: opts.Output, run: exec.Run, logger: opts.Logger}, nil
}

func (c *xrandrController) options() exec.Options {
	o := exec.DefaultOptions()
	o.Logger = c.logger
	return o
}

func (c *xrandrController) QueryCurrentMode(ctx context.Context) (Mode, error) {
	result := c.run(ctx, "xrandr", []string{"--current"}, c.options())
	if result.Err != nil {
		return Mode{}, fmt.Errorf("running xrandr: %s", result.Message())
	}
	return parseXrandr(result.Stdout, c.output)
}

func (c *xrandrController) RequestMode(ctx context.Context, mode Mode, persistent bool) error {
	output := mode.Output
	if output == "" {
		output = c.output
	}
	if output == "" {
		return &ModeError{Mode: mode, Msg: "no xrandr output selected"}
	}
	if persistent {
		c.logger.Warn("xrandr cannot persist display modes, applying for this session only", "output", output)
	}

	args := []string{
		"--output", output,
		"--mode", fmt.Sprintf("%dx%d", mode.Width, mode.Height),
		"--rate", strconv.Itoa(mode.RefreshRate),
	}
	result := c.run(ctx, "xrandr", args, c.options())
	if result.Err != nil {
		return &ModeError{Mode: mode, Code: result.ExitCode, Msg: result.Message()}
	}
	return nil
}

var xrandrOrientations = map[string]int{
	"normal":   0,
	"left":     1,
	"inverted": 2,
	"right":    3,
}

type xrandrOutput struct {
	name    string
	primary bool
	mode    Mode
}

// parseXrandr finds the active mode of output, or of the primary output when
// output is empty (falling back to the first connected one).
func parseXrandr(text string, output string) (Mode, error) {
	var outputs []*xrandrOutput
	var current *xrandrOutput

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if line[0] != ' ' && line[0] != '\t' {
			current = nil
			fields := strings.Fields(line)
			if len(fields) < 2 || fields[1] != "connected" {
				continue
			}
			current = &xrandrOutput{
				name:    fields[0],
				primary: len(fields) > 2 && fields[2] == "primary",
				mode:    Mode{Output: fields[0]},
			}
			parseGeometry(fields[2:], &current.mode)
			outputs = append(outputs, current)
			continue
		}

		if current == nil || current.mode.Width != 0 {
			continue
		}
		parseModeLine(line, &current.mode)
	}
	if err := scanner.Err(); err != nil {
		return Mode{}, fmt.Errorf("reading xrandr output: %w", err)
	}

	target := selectOutput(outputs, output)
	if target == nil {
		if output != "" {
			return Mode{}, fmt.Errorf("xrandr output %q is not connected", output)
		}
		return Mode{}, fmt.Errorf("no connected xrandr output")
	}
	if target.mode.Width == 0 {
		return Mode{}, fmt.Errorf("xrandr output %q has no active mode", target.name)
	}
	return target.mode, nil
}

func selectOutput(outputs []*xrandrOutput, name string) *xrandrOutput {
	if name != "" {
		for _, o := range outputs {
			if o.name == name {
				return o
			}
		}
		return nil
	}
	for _, o := range outputs {
		if o.primary {
			return o
		}
	}
	if len(outputs) > 0 {
		return outputs[0]
	}
	return nil
}

// parseModeLine reads "   1920x1080     60.00*+  50.00" and records the
// resolution when one of its rates is marked active.
func parseModeLine(line string, mode *Mode) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	for _, rate := range fields[1:] {
		if !strings.Contains(rate, "*") {
			continue
		}
		width, height, ok := parseResolution(fields[0])
		if !ok {
			return
		}
		hz, err := strconv.ParseFloat(strings.TrimRight(rate, "*+"), 64)
		if err != nil {
			return
		}
		mode.Width = width
		mode.Height = height
		mode.RefreshRate = int(math.Round(hz))
		return
	}
}

// parseGeometry reads "1920x1080+0+0 left" style tokens after "connected [primary]".
func parseGeometry(fields []string, mode *Mode) {
	for i, f := range fields {
		if f == "primary" {
			continue
		}
		parts := strings.SplitN(f, "+", 3)
		if len(parts) != 3 {
			return
		}
		if x, err := strconv.Atoi(parts[1]); err == nil {
			mode.PositionX = x
		}
		if y, err := strconv.Atoi(parts[2]); err == nil {
			mode.PositionY = y
		}
		if i+1 < len(fields) {
			if o, ok := xrandrOrientations[fields[i+1]]; ok {
				mode.Orientation = o
			}
		}
		return
	}
}

func parseResolution(s string) (int, int, bool) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimRight(parts[1], "i"))
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
