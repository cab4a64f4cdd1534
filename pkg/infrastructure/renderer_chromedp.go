package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromedpRenderer prints HTML pages to PDF through headless Chrome. The
// document carries its own @page rules, so printing preserves the CSS page
// size instead of Chrome's defaults.
type ChromedpRenderer struct {
	chromePath string
	timeout    time.Duration
}

// NewChromedpRenderer builds a renderer. chromePath may be empty to rely on
// chromedp's own browser discovery; the CHROME_PATH environment variable
// still wins when set.
func NewChromedpRenderer(chromePath string, timeout time.Duration) *ChromedpRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromedpRenderer{chromePath: chromePath, timeout: timeout}
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	execPath := r.chromePath
	if p := os.Getenv("CHROME_PATH"); p != "" {
		execPath = p
	}
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, r.timeout)
	defer cancel2()

	// navigate to a file URL instead of data: so relative anchors resolve
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(ctx2,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
