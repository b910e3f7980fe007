package cli

import (
	"fmt"
	"io"
	"strings"
)

// renderPlain writes the portfolio as plain text, for pipes and --no-ui
func (c *cli) renderPlain(w io.Writer) (int, error) {
	names := make([]string, 0, len(c.provider.NavigationItems()))
	for _, item := range c.provider.NavigationItems() {
		names = append(names, item.Name)
	}

	if _, err := fmt.Fprintf(w, "folio  %s\n\n", strings.Join(names, " · ")); err != nil {
		return 1, err
	}

	for _, section := range c.provider.Sections() {
		fmt.Fprintf(w, "%s\n%s\n%s\n\n", section.Title, strings.Repeat("─", len([]rune(section.Title))), section.Body)
	}

	if c.cfg.CV != "" {
		fmt.Fprintf(w, "%s: %s\n", c.provider.UIText().DownloadCV, c.cfg.CV)
	}

	return 0, nil
}
