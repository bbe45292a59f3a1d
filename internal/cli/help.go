package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles - spectrum theme
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SpectrumYellow).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(SpectrumCyan).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SpectrumBlue).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(SpectrumYellow).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(SpectrumRed).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(CoolGray).
				Italic(true)
)

// StyledHelpPrinter creates a custom help printer with Lipgloss styling
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		// Title and description
		sb.WriteString(helpTitleStyle.Render(appTitle))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render(appDescription))
		sb.WriteString("\n")

		// Usage
		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(fmt.Sprintf("%s <input> ... [flags]", ctx.Model.Name))
		sb.WriteString("\n")

		// Arguments section
		args := getArguments(ctx)
		if len(args) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Arguments:"))
			sb.WriteString("\n")
			for _, arg := range args {
				sb.WriteString("  ")
				sb.WriteString(helpArgStyle.Render(arg.name))
				if arg.help != "" {
					sb.WriteString("  ")
					sb.WriteString(arg.help)
				}
				sb.WriteString("\n")
			}
		}

		// Flags, one section per group in declaration order
		for _, group := range getFlags(ctx) {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render(group.title + ":"))
			sb.WriteString("\n")
			for _, flag := range group.flags {
				sb.WriteString("  ")
				sb.WriteString(helpFlagStyle.Render(flag.flags))
				if flag.help != "" {
					sb.WriteString("  ")
					sb.WriteString(flag.help)
				}
				if flag.defaultVal != "" {
					sb.WriteString(" ")
					sb.WriteString(helpDefaultStyle.Render("(default: " + flag.defaultVal + ")"))
				}
				sb.WriteString("\n")
			}
		}

		// Examples
		sb.WriteString("\n")
		sb.WriteString(helpSectionStyle.Render("Examples:"))
		sb.WriteString("\n")
		for _, ex := range examples {
			sb.WriteString("  ")
			sb.WriteString(helpDefaultStyle.Render("# " + ex.comment))
			sb.WriteString("\n  ")
			sb.WriteString(fmt.Sprintf("%s %s", ctx.Model.Name, ex.args))
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	})
}

type argument struct {
	name string
	help string
}

type flag struct {
	flags      string
	help       string
	defaultVal string
}

func getArguments(ctx *kong.Context) []argument {
	var args []argument

	// Parse arguments from the model
	for _, arg := range ctx.Model.Node.Positional {
		name := arg.Summary()
		help := arg.Help
		args = append(args, argument{name: name, help: help})
	}

	return args
}

type flagGroup struct {
	title string
	flags []flag
}

var examples = []struct {
	comment string
	args    string
}{
	{"show a spectrum in a window", "spectrum_000000100.dat"},
	{"write one PDF per file, named out_<input>.pdf", "--pdf -o out spectra/*.dat"},
	{"log axes, zoomed to 0.5 < ω/ω₀ < 2 and θ < 10°", "-d 0.01,10,0,90 -z 0.5,2,0,10 --log-omega --log-int spectrum.dat"},
	{"clip and smooth before plotting", "--data-max 1e-20 --smooth 2,1 --format png spectrum.dat"},
}

func getFlags(ctx *kong.Context) []flagGroup {
	groups := []flagGroup{{title: "Flags"}}
	index := map[string]int{"": 0}

	// Always include help flag
	groups[0].flags = append(groups[0].flags, flag{
		flags: "-h, --help",
		help:  "Show context-sensitive help.",
	})

	// Parse flags from the model
	for _, f := range ctx.Model.Node.Flags {
		if f.Name == "help" || f.Hidden {
			continue
		}

		flagStr := ""
		if f.Short != 0 {
			flagStr = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		} else {
			flagStr = fmt.Sprintf("--%s", f.Name)
		}

		if !f.IsBool() && f.PlaceHolder != "" {
			flagStr += "=" + strings.ToUpper(f.PlaceHolder)
		}

		// Only show default if it's a meaningful value (not empty, not type placeholder)
		defaultVal := ""
		if f.HasDefault && !f.IsBool() {
			val := f.Default
			if val != "" && val != "STRING" && val != "BOOL" {
				defaultVal = val
			}
		}

		help := f.Help
		if f.Enum != "" {
			help += " [" + strings.ReplaceAll(f.Enum, ",", "|") + "]"
		}

		title := ""
		if f.Group != nil {
			title = f.Group.Title
		}
		i, ok := index[title]
		if !ok {
			i = len(groups)
			index[title] = i
			groups = append(groups, flagGroup{title: title})
		}
		groups[i].flags = append(groups[i].flags, flag{
			flags:      flagStr,
			help:       help,
			defaultVal: defaultVal,
		})
	}

	return groups
}
