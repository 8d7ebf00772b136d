package handlers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/danielgpm/linkedin-cv/api/http/presenter"
	"github.com/danielgpm/linkedin-cv/pkg/cvstore"
	"github.com/danielgpm/linkedin-cv/pkg/ratelimit"
	"github.com/danielgpm/linkedin-cv/pkg/resume"
)

var errNoPDF = errors.New("No PDF file provided")

// UploadHandler runs the extraction pipeline over a streamed event response.
type UploadHandler struct {
	limiter   ratelimit.Limiter
	extractor resume.Extractor
	store     cvstore.Service
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	// pdf-to-text step, swappable in tests
	extractText func(data []byte) (string, error)
	// multipart capture step, swappable in tests
	captureFile func(c *fiber.Ctx) ([]byte, error)
}

func NewUploadHandler(limiter ratelimit.Limiter, extractor resume.Extractor, store cvstore.Service) *UploadHandler {
	h := &UploadHandler{
		limiter:     limiter,
		extractor:   extractor,
		store:       store,
		maxBytes:    15 << 20, // 15MB
		extractText: resume.ExtractText,
	}
	h.captureFile = h.capturePDF
	return h
}

// capturePDF locates, opens and reads the uploaded file. Absence of the form
// field is its own sentinel; any other failure keeps its message.
func (h *UploadHandler) capturePDF(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("pdf")
	if err != nil || fh == nil {
		return nil, errNoPDF
	}
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readAtMost(file, h.maxBytes)
}

// Upload accepts a LinkedIn PDF and streams pipeline progress as server-sent
// events: a limit-check notice, a processing notice, an extraction notice,
// then exactly one terminal event — {"error": ...} or {"message": "Done!",
// "data": <cv>}. All failures after the stream opens are reported in-stream.
// @Summary Convert a LinkedIn PDF resume into a structured CV
// @Description Streams progress events; the terminal event carries the validated CV or an error message.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce text/event-stream
// @Param   pdf formData file true "LinkedIn-exported PDF resume"
// @Success 200 {string} string "event stream"
// @Router  /resume/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	ip := clientIP(c)

	// Quota check and file capture both run before streaming starts; the
	// fiber context is not safe to touch from inside the stream writer. The
	// check comes first: a request that will be rejected never locates or
	// reads the upload. Absence and read failures are reported in-stream,
	// not as an HTTP error.
	used, limitErr := h.limiter.Usage(c.Context(), ip)

	var pdfData []byte
	var fileErr error
	if limitErr == nil && used < h.limiter.Limit() {
		pdfData, fileErr = h.captureFile(c)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		// The pipeline runs to completion even if the client disconnects:
		// no cancellation token, no locks held across the slow calls.
		ctx := context.Background()
		send := func(ev presenter.Event) { presenter.WriteEvent(w, ev) }

		send(presenter.Event{Message: "Checking IP limit..."})
		if limitErr != nil {
			send(presenter.Event{Error: "Could not verify request limit"})
			return
		}
		if used >= h.limiter.Limit() {
			send(presenter.Event{Error: "Too many requests"})
			return
		}
		h.limiter.Increment(ctx, ip)

		send(presenter.Event{Message: "Processing PDF file..."})
		if fileErr != nil {
			send(presenter.Event{Error: fileErr.Error()})
			return
		}
		text, err := h.extractText(pdfData)
		if err != nil {
			send(presenter.Event{Error: err.Error()})
			return
		}
		if !resume.IsLinkedInResume(text) {
			send(presenter.Event{Error: "Not a LinkedIn resume"})
			return
		}

		send(presenter.Event{Message: "Extracting and formatting data..."})
		cv, err := h.extractor.Extract(ctx, text)
		if err != nil {
			send(presenter.Event{Error: err.Error()})
			return
		}
		if h.store != nil {
			if err := h.store.Save(ctx, ip, cv); err != nil {
				log.Printf("upload: save cv for %s: %v", ip, err)
			}
		}
		send(presenter.Event{Message: "Done!", Data: &cv})
	}))
	return nil
}

// clientIP identifies the caller by the first comma-separated value of the
// forwarding header, falling back to "unknown".
func clientIP(c *fiber.Ctx) string {
	fwd := c.Get("X-Forwarded-For")
	ip := strings.TrimSpace(strings.Split(fwd, ",")[0])
	if ip == "" {
		return "unknown"
	}
	return ip
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
