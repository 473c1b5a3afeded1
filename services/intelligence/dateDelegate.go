// File: service/ai/dateDelegate.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const defaultDateTimeout = 10 * time.Second

// GeminiDateDelegate resolves natural-language date expressions ("next
// Friday", "24th August") through Gemini. Past-looking results are returned
// as-is: temporal validation belongs to the conversation service, not here.
type GeminiDateDelegate struct {
	Client  Capability
	Timeout time.Duration
}

func (d *GeminiDateDelegate) NormalizeDate(ctx context.Context, expression string, referenceNow time.Time) (string, error) {
	if d.Client == nil {
		return "", fmt.Errorf("no capability client configured")
	}

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultDateTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Convert this date expression to YYYY-MM-DD format: %q
Today's date is %s.
Resolve relative expressions ("tomorrow", "next Friday") against today.
If no year is given, assume the current year even if the result looks past.
Return ONLY the date in YYYY-MM-DD format, or the word INVALID if it is not a date.`,
		expression, referenceNow.Format("2006-01-02"))

	raw, err := d.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to normalize date: %w", err)
	}
	result := strings.TrimSpace(StripJSONFences(raw))
	if strings.EqualFold(result, "INVALID") {
		return "", fmt.Errorf("expression %q is not a date", expression)
	}
	return result, nil
}
