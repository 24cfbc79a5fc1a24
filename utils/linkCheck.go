package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CheckContentURL probes an external material URL with a HEAD request.
// Callers treat a failure as a warning, not a rejection: some hosts block
// HEAD, and the link may simply be down right now.
func CheckContentURL(rawURL string) error {
	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().Head(rawURL)
	if err != nil {
		return err
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("content url returned status %d", resp.StatusCode())
	}
	return nil
}
