package commands

// Raw ANSI sequences for the tabular views, where escape codes are laid out
// by hand around tabwriter cells.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// truncate caps s at max runes, ending with "..." when anything was cut.
// Counting runes keeps multi-byte characters, common in skill descriptions,
// from being split.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
