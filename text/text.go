package text

import (
	"strings"
)

const (
	VERSION = "0.1"
	PROMPT  = "→ "
)

func Emph(s string) string {
	return CYAN + "'" + s + "'" + RESET
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func Banner() string {
	moon := Yellow("☾")
	title := " Luna v" + VERSION + " — REPL "
	width := len([]rune(title))
	left := strings.Repeat("─", (width-1)/2)
	right := strings.Repeat("─", width-1-(width-1)/2)
	leftMargin := "  "
	return "\n" +
		leftMargin + "╭" + left + moon + right + "╮\n" +
		leftMargin + "│" + title + "│\n" +
		leftMargin + "╰" + left + moon + right + "╯\n\n"
}

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	BLUE   = "\033[34m"
	PURPLE = "\033[35m"
	CYAN   = "\033[36m"
	GRAY   = "\033[37m"
	WHITE  = "\033[97m"
	ERROR  = Red("error") + ": "
	OK     = Green("ok")
)
