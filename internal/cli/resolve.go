// Package cli provides the resolve command.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/modern/internal/logging"
	"github.com/opencode-ai/modern/internal/theme"
)

var (
	resolveStatus   string
	resolveSize     string
	resolveChecked  bool
	resolveSelected bool
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveStatus, "status", "s", "active", "interaction status (active, hovered, pressed, focused, opened, disabled)")
	resolveCmd.Flags().StringVar(&resolveSize, "size", "medium", "button size (small, medium, large)")
	resolveCmd.Flags().BoolVar(&resolveChecked, "checked", false, "resolve a checked checkbox")
	resolveCmd.Flags().BoolVar(&resolveSelected, "selected", false, "resolve a selected radio, or a selected button")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <widget> [variant]",
	Short: "Print one resolved style record",
	Long: `Print the style record a widget resolves to for the active mode and a status.

Widgets: button, tinted, container, tooltip, text-input, combo-box,
combo-menu, checkbox, radio, pick-list, text.`,
	Example: `  modern resolve button primary --status hovered --mode dark
  modern resolve container card -o yaml
  modern resolve checkbox --checked --status disabled`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant := ""
		if len(args) > 1 {
			variant = args[1]
		}
		return runResolve(cmd.OutOrStdout(), args[0], variant)
	},
}

// ResolveOutput is the structured form of the resolve command.
type ResolveOutput struct {
	Widget  string `json:"widget" yaml:"widget"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Mode    string `json:"mode" yaml:"mode"`
	Status  string `json:"status" yaml:"status"`
	Style   any    `json:"style" yaml:"style"`
}

// widgetResolver resolves one widget kind. variant is empty when omitted.
type widgetResolver struct {
	defaultVariant string
	variants       func() []string
	resolve        func(mode theme.Mode, variant string, status theme.Status) (any, error)
}

var widgetResolvers = map[string]widgetResolver{
	"button": {
		defaultVariant: "primary",
		variants:       func() []string { return names(theme.ButtonVariants()) },
		resolve: func(mode theme.Mode, variant string, status theme.Status) (any, error) {
			v, err := theme.ParseButtonVariant(variant)
			if err != nil {
				return nil, err
			}
			return resolveButton(theme.ButtonFor(v), mode, status)
		},
	},
	"tinted": {
		defaultVariant: "blue",
		variants:       func() []string { return names(theme.Tints()) },
		resolve: func(mode theme.Mode, variant string, status theme.Status) (any, error) {
			tint, err := theme.ParseTint(variant)
			if err != nil {
				return nil, err
			}
			return resolveButton(theme.Tinted(tint), mode, status)
		},
	},
	"container": {
		defaultVariant: "card",
		variants:       func() []string { return names(theme.ContainerVariants()) },
		resolve: func(mode theme.Mode, variant string, _ theme.Status) (any, error) {
			v, err := theme.ParseContainerVariant(variant)
			if err != nil {
				return nil, err
			}
			return theme.Container(mode, v), nil
		},
	},
	"tooltip": {
		defaultVariant: "valid",
		variants:       func() []string { return names(theme.ValidationStates()) },
		resolve: func(mode theme.Mode, variant string, _ theme.Status) (any, error) {
			state, err := theme.ParseValidationState(variant)
			if err != nil {
				return nil, err
			}
			return theme.TooltipContainer(mode, state), nil
		},
	},
	"text-input": {
		defaultVariant: "default",
		variants:       func() []string { return names(theme.TextInputVariants()) },
		resolve: func(mode theme.Mode, variant string, status theme.Status) (any, error) {
			v, err := theme.ParseTextInputVariant(variant)
			if err != nil {
				return nil, err
			}
			return theme.TextInput(mode, v, status), nil
		},
	},
	"combo-box": {
		resolve: func(mode theme.Mode, _ string, status theme.Status) (any, error) {
			return theme.ComboBox(mode, status), nil
		},
	},
	"combo-menu": {
		resolve: func(mode theme.Mode, _ string, _ theme.Status) (any, error) {
			return theme.ComboBoxMenu(mode), nil
		},
	},
	"checkbox": {
		resolve: func(mode theme.Mode, _ string, status theme.Status) (any, error) {
			return theme.Checkbox(mode, status, resolveChecked), nil
		},
	},
	"radio": {
		resolve: func(mode theme.Mode, _ string, status theme.Status) (any, error) {
			return theme.Radio(mode, status, resolveSelected), nil
		},
	},
	"pick-list": {
		resolve: func(mode theme.Mode, _ string, status theme.Status) (any, error) {
			return theme.PickList(mode, status), nil
		},
	},
	"text": {
		defaultVariant: "primary",
		variants:       func() []string { return names(theme.TextVariants()) },
		resolve: func(mode theme.Mode, variant string, _ theme.Status) (any, error) {
			v, err := theme.ParseTextVariant(variant)
			if err != nil {
				return nil, err
			}
			return theme.Text(mode, v), nil
		},
	},
}

func resolveButton(fn theme.ButtonFunc, mode theme.Mode, status theme.Status) (any, error) {
	size, err := theme.ParseButtonSize(resolveSize)
	if err != nil {
		return nil, err
	}
	fn = theme.Sized(fn, size)
	if resolveSelected {
		fn = theme.Selected(fn)
	}
	return fn(mode, status), nil
}

func widgetNames() []string {
	out := make([]string, 0, len(widgetResolvers))
	for _, name := range []string{"button", "tinted", "container", "tooltip", "text-input", "combo-box", "combo-menu", "checkbox", "radio", "pick-list", "text"} {
		if _, ok := widgetResolvers[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

func names[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func runResolve(out io.Writer, widget, variant string) error {
	widget = strings.ToLower(strings.TrimSpace(widget))
	resolver, ok := widgetResolvers[widget]
	if !ok {
		return &PreflightError{
			Message:  fmt.Sprintf("unknown widget %q", widget),
			Hint:     "Expected one of " + strings.Join(widgetNames(), ", "),
			NextStep: "modern resolve --help",
		}
	}

	if variant == "" {
		variant = resolver.defaultVariant
	} else if resolver.variants == nil {
		return &PreflightError{
			Message:  fmt.Sprintf("%s has no variants", widget),
			Hint:     "Drop the variant argument",
			NextStep: fmt.Sprintf("modern resolve %s", widget),
		}
	}

	status, err := theme.ParseStatus(resolveStatus)
	if err != nil {
		return argumentError("status", err, "modern resolve --help")
	}
	mode, err := resolvedMode()
	if err != nil {
		return err
	}

	style, err := resolver.resolve(mode, variant, status)
	if err != nil {
		return argumentError(widget+" variant", err, fmt.Sprintf("modern resolve %s %s", widget, resolver.defaultVariant))
	}

	logger := logging.Component("cli")
	logger.Debug().
		Str("widget", widget).
		Str("variant", variant).
		Str("mode", mode.String()).
		Str("status", status.String()).
		Msg("resolved style")

	result := ResolveOutput{
		Widget:  widget,
		Variant: variant,
		Mode:    mode.String(),
		Status:  status.String(),
		Style:   style,
	}
	if IsStructuredOutput() {
		return WriteOutput(out, result)
	}
	return writeStyleTable(out, result, theme.PaletteFor(mode).Background)
}

func writeStyleTable(out io.Writer, result ResolveOutput, backdrop theme.Color) error {
	title := result.Widget
	if result.Variant != "" {
		title += "/" + result.Variant
	}
	fmt.Fprintf(out, "%s (%s, %s)\n", colorize(title, colorBlue), result.Mode, result.Status)

	fields, err := flattenRecord(result.Style)
	if err != nil {
		return err
	}
	tw := newTable(out, "FIELD", "VALUE")
	for _, field := range fields {
		value := field.value
		if color, err := theme.ParseHex(value); err == nil {
			value = swatch(color, backdrop)
		}
		tw.AppendRow([]any{field.key, value})
	}
	tw.Render()
	return nil
}

type recordField struct {
	key   string
	value string
}

// flattenRecord lists the leaves of a style record in field order as
// dotted keys.
func flattenRecord(record any) ([]recordField, error) {
	var node yaml.Node
	if err := node.Encode(record); err != nil {
		return nil, fmt.Errorf("failed to encode style: %w", err)
	}
	var fields []recordField
	flattenNode(&node, "", &fields)
	return fields, nil
}

func flattenNode(node *yaml.Node, prefix string, fields *[]recordField) {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			flattenNode(child, prefix, fields)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			flattenNode(node.Content[i+1], key, fields)
		}
	default:
		value := node.Value
		if node.Tag == "!!null" {
			value = "none"
		}
		*fields = append(*fields, recordField{key: prefix, value: value})
	}
}
