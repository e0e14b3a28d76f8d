// Package audit verifies the resolver's contract over every variant, status
// and mode.
package audit

import (
	"fmt"
	"math"

	"github.com/opencode-ai/modern/internal/theme"
)

const tolerance = 1e-9

// Finding is a single contract violation.
type Finding struct {
	Subject string `json:"subject" yaml:"subject"`
	Detail  string `json:"detail" yaml:"detail"`
}

// Result is the outcome of one check.
type Result struct {
	Check     string    `json:"check" yaml:"check"`
	Evaluated int       `json:"evaluated" yaml:"evaluated"`
	Findings  []Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// Passed reports whether the check found no violations.
func (r Result) Passed() bool {
	return len(r.Findings) == 0
}

// Report collects the results of every check.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
}

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed() {
			return false
		}
	}
	return true
}

// Check evaluates one property.
type Check struct {
	Name string
	Run  func() Result
}

// Checks lists the built-in checks in evaluation order.
func Checks() []Check {
	return []Check{
		{Name: "disabled-alpha", Run: DisabledAlpha},
		{Name: "hover-shift", Run: HoverShift},
		{Name: "purity", Run: Purity},
		{Name: "container-distinct", Run: ContainerDistinct},
	}
}

// Run evaluates every check.
func Run() Report {
	var report Report
	for _, check := range Checks() {
		report.Results = append(report.Results, check.Run())
	}
	return report
}

type buttonCase struct {
	name     string
	textOnly bool
	resolve  theme.ButtonFunc
}

func buttonCases() []buttonCase {
	var cases []buttonCase
	for _, variant := range theme.ButtonVariants() {
		cases = append(cases, buttonCase{
			name:     "button/" + variant.String(),
			textOnly: variant.TextOnly(),
			resolve:  theme.ButtonFor(variant),
		})
	}
	for _, tint := range theme.Tints() {
		cases = append(cases, buttonCase{
			name:    "tinted/" + tint.String(),
			resolve: theme.Tinted(tint),
		})
	}
	return cases
}

// DisabledAlpha checks that disabled buttons halve text and background alpha
// and drop their shadow.
func DisabledAlpha() Result {
	result := Result{Check: "disabled-alpha"}

	for _, mode := range theme.Modes() {
		for _, bc := range buttonCases() {
			result.Evaluated++
			subject := fmt.Sprintf("%s (%s)", bc.name, mode)
			active := bc.resolve(mode, theme.Active)
			disabled := bc.resolve(mode, theme.Disabled)

			if !near(disabled.TextColor.A, active.TextColor.A*0.5) {
				result.add(subject, "text alpha %.3f, want %.3f", disabled.TextColor.A, active.TextColor.A*0.5)
			}
			if !near(disabled.Background.Color.A, active.Background.Color.A*0.5) {
				result.add(subject, "background alpha %.3f, want %.3f", disabled.Background.Color.A, active.Background.Color.A*0.5)
			}
			if !disabled.Shadow.IsZero() {
				result.add(subject, "shadow not removed")
			}
		}
	}
	return result
}

// HoverShift checks that filled buttons move toward white in dark mode and
// toward black in light mode by the hover and pressed deltas.
func HoverShift() Result {
	result := Result{Check: "hover-shift"}

	steps := []struct {
		status theme.Status
		delta  float64
	}{
		{theme.Hovered, 0.05},
		{theme.Pressed, 0.10},
	}

	for _, mode := range theme.Modes() {
		for _, bc := range buttonCases() {
			if bc.textOnly {
				continue
			}
			active := bc.resolve(mode, theme.Active).Background.Color
			for _, step := range steps {
				result.Evaluated++
				got := bc.resolve(mode, step.status).Background.Color
				want := active.Darken(step.delta)
				if mode.IsDark() {
					want = active.Lighten(step.delta)
				}
				if !nearColor(got, want) {
					result.add(fmt.Sprintf("%s %s (%s)", bc.name, step.status, mode), "background %s, want %s", got, want)
				}
			}
		}
	}
	return result
}

// Purity checks that resolving the same inputs twice gives identical records.
func Purity() Result {
	result := Result{Check: "purity"}

	for _, mode := range theme.Modes() {
		subject := func(kind string, status theme.Status) string {
			return fmt.Sprintf("%s %s (%s)", kind, status, mode)
		}
		for _, status := range theme.Statuses() {
			for _, bc := range buttonCases() {
				result.Evaluated++
				if bc.resolve(mode, status) != bc.resolve(mode, status) {
					result.add(subject(bc.name, status), "results differ")
				}
			}
			for _, variant := range theme.TextInputVariants() {
				result.Evaluated++
				if theme.TextInput(mode, variant, status) != theme.TextInput(mode, variant, status) {
					result.add(subject("text-input/"+variant.String(), status), "results differ")
				}
			}
			for _, checked := range []bool{false, true} {
				result.Evaluated += 2
				if theme.Checkbox(mode, status, checked) != theme.Checkbox(mode, status, checked) {
					result.add(subject("checkbox", status), "results differ")
				}
				if theme.Radio(mode, status, checked) != theme.Radio(mode, status, checked) {
					result.add(subject("radio", status), "results differ")
				}
			}
			result.Evaluated++
			if theme.PickList(mode, status) != theme.PickList(mode, status) {
				result.add(subject("pick-list", status), "results differ")
			}
		}
		for _, variant := range theme.ContainerVariants() {
			result.Evaluated++
			if theme.Container(mode, variant) != theme.Container(mode, variant) {
				result.add(subject("container/"+variant.String(), theme.Active), "results differ")
			}
		}
		for _, variant := range theme.TextVariants() {
			result.Evaluated++
			if theme.Text(mode, variant) != theme.Text(mode, variant) {
				result.add(subject("text/"+variant.String(), theme.Active), "results differ")
			}
		}
	}
	return result
}

// ContainerDistinct checks that no container variant shares a background
// color between light and dark mode.
func ContainerDistinct() Result {
	result := Result{Check: "container-distinct"}

	for _, variant := range theme.ContainerVariants() {
		light := theme.Container(theme.Light, variant).Background
		dark := theme.Container(theme.Dark, variant).Background
		if !light.Valid && !dark.Valid {
			continue
		}
		result.Evaluated++
		if light == dark {
			result.add("container/"+variant.String(), "light and dark share background %s", light.Color)
		}
	}
	return result
}

func (r *Result) add(subject, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Subject: subject, Detail: fmt.Sprintf(format, args...)})
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func nearColor(a, b theme.Color) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}
