package shell

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

// DefaultPrompt is used when the configuration does not set one.
const DefaultPrompt = "seashell> "

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

// expandPrompt renders a prompt template: \u is the user, \h the
// hostname, \w the working directory with the home prefix shown as ~.
func expandPrompt(template, user, host, wd, home string) string {
	if home != "" && strings.HasPrefix(wd, home) {
		wd = "~" + strings.TrimPrefix(wd, home)
	}

	out := strings.ReplaceAll(template, `\u`, user)
	out = strings.ReplaceAll(out, `\h`, host)
	out = strings.ReplaceAll(out, `\w`, wd)
	return out
}

// Prompt renders the prompt for the next read.
func (s *Shell) Prompt() string {
	template := s.cfg.Prompt
	if template == "" {
		template = DefaultPrompt
	}

	host, _ := os.Hostname()
	wd, _ := os.Getwd()
	home, _ := os.UserHomeDir()
	rendered := expandPrompt(template, os.Getenv("USER"), host, wd, home)

	if !s.shouldColor() {
		return rendered
	}
	c := color.New(color.FgGreen, color.Bold)
	c.EnableColor()
	return c.Sprint(rendered)
}

// shouldColor applies the configured color policy: always and never are
// forced, auto colors only when output goes to a terminal.
func (s *Shell) shouldColor() bool {
	switch s.cfg.Color {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return s.isTerminal
	}
}
