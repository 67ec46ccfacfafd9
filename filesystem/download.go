package filesystem

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Download fetches url into dst, replacing any existing file. A failed
// download leaves no file behind.
func Download(ctx context.Context, url string, dst Path) (retErr error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", "sophifs")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("downloading %s: status %d", url, resp.StatusCode)
	}

	f, err := os.Create(dst.String())
	if err != nil {
		return fmt.Errorf("creating download file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = err
		}
		if retErr != nil {
			_ = os.Remove(dst.String())
		}
	}()

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	Logger().Debug("downloaded", "url", url, "path", dst.String(), "bytes", n)
	return nil
}
