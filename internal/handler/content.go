package handler

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/velora/content-studio/internal/model"
	"github.com/velora/content-studio/internal/queue"
	"github.com/velora/content-studio/internal/repository"
	"github.com/velora/content-studio/internal/service"
)

// ContentHandler serves the generation, history and download endpoints the
// dashboard consumes.  All of them sit behind the session middleware.
type ContentHandler struct {
	Gen     *service.Generator
	History *repository.HistoryStore
}

func NewContentHandler(gen *service.Generator, history *repository.HistoryStore) *ContentHandler {
	return &ContentHandler{Gen: gen, History: history}
}

type generateResp struct {
	Content   string  `json:"content"`
	Timestamp string  `json:"timestamp"`
	ID        string  `json:"id"`
	Image     *string `json:"image"`
}

// Generate produces content for a topic and records it in the history.  The
// generator itself never fails; a broken upstream degrades to demo content.
func (h *ContentHandler) Generate(c echo.Context) error {
	var req service.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Topic is required"})
	}
	if req.Topic == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Topic is required"})
	}
	if req.Tone == "" {
		req.Tone = "professional"
	}
	if req.ContentType == "" {
		req.ContentType = "blog"
	}

	res := h.Gen.Generate(c.Request().Context(), req)

	rec := model.ContentRecord{
		ID:          uuid.NewString(),
		Topic:       req.Topic,
		Tone:        req.Tone,
		ContentType: req.ContentType,
		Keywords:    req.Keywords,
		Content:     res.Content,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Image:       res.Image,
	}
	h.History.Add(rec)

	userID, _ := c.Get("user_id").(uint64)
	event := queue.ContentGeneratedEvent{
		ContentID:   rec.ID,
		UserID:      userID,
		Topic:       rec.Topic,
		Tone:        rec.Tone,
		ContentType: rec.ContentType,
		Demo:        res.Demo,
		GeneratedAt: rec.Timestamp,
	}
	// Fire and forget; a missing broker must not slow the response down.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = service.PublishContentGenerated(ctx, event)
	}()

	out := generateResp{Content: rec.Content, Timestamp: rec.Timestamp, ID: rec.ID}
	if rec.Image != "" {
		out.Image = &rec.Image
	}
	return c.JSON(http.StatusOK, out)
}

// HistoryList returns the retained generation records, oldest first.
func (h *ContentHandler) HistoryList(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"history": h.History.List()})
}

// HistoryByID returns a single record.
func (h *ContentHandler) HistoryByID(c echo.Context) error {
	rec, err := h.History.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Content not found"})
		}
		log.Printf("history: lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error loading content"})
	}
	return c.JSON(http.StatusOK, rec)
}

type downloadReq struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// imageClient bounds how long a download request may spend fetching the
// optional image before the archive ships without it.
var imageClient = &http.Client{Timeout: 10 * time.Second}

// Download packages content (and, when reachable, its image) into a zip
// archive served as an attachment.
func (h *ContentHandler) Download(c echo.Context) error {
	var req downloadReq
	if err := c.Bind(&req); err != nil || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Content is required"})
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("content.md")
	if err == nil {
		_, err = f.Write([]byte(req.Content))
	}
	if err != nil {
		log.Printf("download: zip write failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error building archive"})
	}

	// The image is best-effort: any fetch problem ships the archive without it.
	if req.ImageURL != "" {
		if data, err := fetchImage(c.Request().Context(), req.ImageURL); err == nil {
			if f, err := zw.Create("image.png"); err == nil {
				_, _ = f.Write(data)
			}
		}
	}

	if err := zw.Close(); err != nil {
		log.Printf("download: zip close failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error building archive"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="generated-content.zip"`)
	return c.Blob(http.StatusOK, "application/zip", buf.Bytes())
}

func fetchImage(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := imageClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("image fetch failed")
	}
	return io.ReadAll(io.LimitReader(resp.Body, 10<<20))
}
