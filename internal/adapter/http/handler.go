// Package http exposes the three editing surfaces over fiber: the
// dashboard collection routes, the editor routes and the preview/export
// routes, each parametrized solely by a resume id.
package http

import (
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
)

type Handler struct {
	store    *usecase.Store
	saver    *usecase.Autosaver
	html     *render.HTMLRenderer
	exporter *render.Exporter
	log      zerolog.Logger
}

func NewHandler(store *usecase.Store, saver *usecase.Autosaver, html *render.HTMLRenderer, exporter *render.Exporter, log zerolog.Logger) *Handler {
	return &Handler{
		store:    store,
		saver:    saver,
		html:     html,
		exporter: exporter,
		log:      log.With().Str("component", "http").Logger(),
	}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/resumes", h.ListResumes)
	app.Post("/resumes", h.CreateResume)
	app.Get("/resumes/:id", h.GetResume)
	app.Patch("/resumes/:id", h.UpdateResume)
	app.Post("/resumes/:id/save", h.SaveResume)
	app.Post("/resumes/:id/duplicate", h.DuplicateResume)
	app.Delete("/resumes/:id", h.DeleteResume)
	app.Get("/resumes/:id/preview", h.PreviewResume)
	app.Get("/resumes/:id/export", h.ExportResume)
}

type listItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PersonName  string `json:"personName"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	LastUpdated string `json:"lastUpdated"`
}

// ListResumes backs the dashboard: the full collection, or a filtered view
// when ?query= is present.
func (h *Handler) ListResumes(c *fiber.Ctx) error {
	records := h.store.List(c.Query("query"))
	items := make([]listItem, 0, len(records))
	for _, r := range records {
		items = append(items, listItem{
			ID:          r.ID,
			Name:        r.Name,
			PersonName:  r.PersonalInfo.Name,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
			LastUpdated: model.FormatDate(r.UpdatedAt),
		})
	}
	return c.JSON(fiber.Map{"resumes": items})
}

type createReq struct {
	Name string `json:"name"`
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req createReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
	}
	rec := h.store.Create(c.UserContext(), req.Name)
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	rec, err := h.store.Get(c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	return c.JSON(rec)
}

// UpdateResume applies an editor patch and arms the autosave debounce; the
// commit itself happens after the quiet window or on a manual save.
func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	var patch map[string]interface{}
	if err := json.Unmarshal(c.Body(), &patch); err != nil || patch == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	rec, err := h.store.Update(c.Params("id"), patch)
	if err != nil {
		return notFound(c)
	}
	h.saver.Touch()
	return c.JSON(rec)
}

// SaveResume is the manual save action: cancel the pending debounce and
// commit immediately.
func (h *Handler) SaveResume(c *fiber.Ctx) error {
	if _, err := h.store.Get(c.Params("id")); err != nil {
		return notFound(c)
	}
	h.saver.Flush()
	rec, _ := h.store.Get(c.Params("id"))
	return c.JSON(fiber.Map{"saved": true, "updatedAt": rec.UpdatedAt})
}

func (h *Handler) DuplicateResume(c *fiber.Ctx) error {
	rec, err := h.store.Duplicate(c.UserContext(), c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	h.store.Delete(c.UserContext(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// PreviewResume serves the interactive on-screen page, scaled by ?scale=.
func (h *Handler) PreviewResume(c *fiber.Ctx) error {
	rec, err := h.store.Get(c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	page, err := h.html.Preview(layout.Build(rec), rec.Name, c.QueryFloat("scale", render.DefaultScale))
	if err != nil {
		h.log.Error().Err(err).Str("id", rec.ID).Msg("preview rendering failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render preview"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

// ExportResume streams the fixed-size PDF artifact. The document is fully
// generated before the first response byte, so a failure produces a plain
// error notice and never a partial file.
func (h *Handler) ExportResume(c *fiber.Ctx) error {
	rec, err := h.store.Get(c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	pdf, name, err := h.exporter.Export(c.UserContext(), rec)
	if err != nil {
		h.log.Error().Err(err).Str("id", rec.ID).Msg("pdf generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate PDF, please try again"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(pdf)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
}
