package cli

import (
	"fmt"
	"strings"

	"github.com/voltquote/voltquote/internal/model"
)

// RenderSuggestions formats a ranked suggestion list for terminal display.
func RenderSuggestions(suggestions model.Suggestions) string {
	if len(suggestions) == 0 {
		return FormatSubtle("no suggestions")
	}

	var b strings.Builder
	for i, s := range suggestions {
		line := fmt.Sprintf("%d. %-30s %4.0f%%  %s",
			i+1, s.Text, s.Confidence*100, FormatSubtle(string(s.Source)+" · "+s.Reason))
		b.WriteString(line)
		if i < len(suggestions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderCompletion formats a sequence completion report.
func RenderCompletion(c model.SequenceCompletion) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d/%d items (%d%%)\n", c.Completed, c.Total, c.Percentage))

	if len(c.NextRecommended) > 0 {
		b.WriteString("next up:\n")
		for _, s := range c.NextRecommended {
			b.WriteString("  " + s.Text + "\n")
		}
	}
	if len(c.MissingItems) > 0 {
		b.WriteString(FormatSubtle(fmt.Sprintf("missing: %s", strings.Join(c.MissingItems, ", "))))
	}
	return b.String()
}
