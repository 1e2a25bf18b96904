package adapters

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"dkp-bootstrap/internal/ports"
	"dkp-bootstrap/internal/shared"
)

const defaultDownloadTimeout = 120 * time.Second
const defaultDownloadRetries = 3
const defaultDownloadRetryDelay = 500 * time.Millisecond
const maxDownloadRetryDelay = 5 * time.Second

type DownloadAdapter struct {
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

func NewDownloadAdapter() DownloadAdapter {
	return DownloadAdapter{
		Timeout:    defaultDownloadTimeout,
		Retries:    defaultDownloadRetries,
		RetryDelay: defaultDownloadRetryDelay,
	}
}

// Fetch downloads url to dest, retrying transient failures. The file is
// written executable because the one artifact fetched this way is a
// bootstrap script that runs immediately afterwards.
func (a DownloadAdapter) Fetch(ctx context.Context, url string, dest string) error {
	retries := a.Retries
	if retries <= 0 {
		retries = defaultDownloadRetries
	}
	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		retry, err := a.fetchOnce(ctx, url, dest)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry || attempt == retries-1 {
			return err
		}
		time.Sleep(a.retryDelay(attempt))
	}
	return lastErr
}

func (a DownloadAdapter) fetchOnce(ctx context.Context, url string, dest string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create download request").
			WithCause(err)
	}
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultDownloadTimeout
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return true, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("download failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retry := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		return retry, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("download failed").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	file, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create download target").
			WithCause(err)
	}
	defer file.Close()
	if _, err := io.Copy(file, resp.Body); err != nil {
		return true, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("download interrupted").
			WithCause(err)
	}
	return false, nil
}

func (a DownloadAdapter) retryDelay(attempt int) time.Duration {
	delay := a.RetryDelay
	if delay <= 0 {
		delay = defaultDownloadRetryDelay
	}
	delay = delay * time.Duration(1<<attempt)
	if delay > maxDownloadRetryDelay {
		delay = maxDownloadRetryDelay
	}
	return delay
}

var _ ports.DownloadPort = DownloadAdapter{}
