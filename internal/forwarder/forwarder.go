// Package forwarder pushes generated reports to a remote collector.
package forwarder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"owbridge/internal/service"
)

// Forwarder periodically POSTs a freshly generated report to a remote
// collector. A failed cycle is logged and the next tick proceeds; the
// HTTP surface is unaffected.
type Forwarder struct {
	service  *service.ReportService
	client   *resty.Client
	url      string
	interval time.Duration
}

// NewForwarder creates a forwarder pushing to url every interval.
func NewForwarder(svc *service.ReportService, url string, interval time.Duration) *Forwarder {
	return &Forwarder{
		service:  svc,
		client:   resty.New().SetTimeout(10 * time.Second),
		url:      url,
		interval: interval,
	}
}

// Run blocks until ctx is done, pushing one report per interval.
func (f *Forwarder) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.pushOnce(ctx); err != nil {
				log.Printf("report push failed: %v", err)
			}
		}
	}
}

func (f *Forwarder) pushOnce(ctx context.Context) error {
	body, err := f.service.Generate()
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/xml; charset=utf-8").
		SetBody(body).
		Post(f.url)
	if err != nil {
		return fmt.Errorf("posting report: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("collector returned %s", resp.Status())
	}
	return nil
}
