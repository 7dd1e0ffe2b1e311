package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docmap/internal/model"
	"docmap/internal/outline"
	"docmap/internal/prompt"
	"docmap/internal/service"
	"docmap/internal/web"
)

// truncationNotice is returned as a warning when the source text was cut
// before prompting. Informational only, never an error.
var truncationNotice = fmt.Sprintf("Text was truncated to %d characters due to length limitations.", prompt.MaxTextChars)

// generateResponse wraps a freshly generated mindmap together with notices.
type generateResponse struct {
	Data     *model.Mindmap `json:"data"`
	Warnings []string       `json:"warnings"`
}

type outlineResponse struct {
	Title string          `json:"title"`
	Nodes []*outline.Node `json:"nodes"`
}

type questionsResponse struct {
	Questions []string `json:"questions"`
}

// GenerateMindmap handles PDF upload and mindmap generation.
// @Summary Generate a mindmap from an uploaded PDF
// @Tags mindmaps
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Success 201 {object} generateResponse
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Failure 504 {object} errorPayload
// @Router /mindmaps [post]
func GenerateMindmap(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		m, err := svc.Generate(c.UserContext(), f, fh.Filename, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}

		warnings := []string{}
		if m.Truncated {
			warnings = append(warnings, truncationNotice)
		}
		return c.Status(fiber.StatusCreated).JSON(generateResponse{Data: m, Warnings: warnings})
	}
}

// ListMindmaps returns stored mindmaps, newest first.
// @Summary List generated mindmaps
// @Tags mindmaps
// @Produce json
// @Param limit query int false "maximum number of entries (0 = all)"
// @Success 200 {array} model.Mindmap
// @Failure 400 {object} errorPayload
// @Router /mindmaps [get]
func ListMindmaps(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "0")
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		items, err := svc.List(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetMindmap returns a single mindmap by ID.
// @Summary Get a mindmap
// @Tags mindmaps
// @Produce json
// @Param id path string true "mindmap ID"
// @Success 200 {object} model.Mindmap
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /mindmaps/{id} [get]
func GetMindmap(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(m)
	}
}

// MindmapMarkdown returns the stored markdown as plain text.
// @Summary Get the markdown source of a mindmap
// @Tags mindmaps
// @Produce text/markdown
// @Param id path string true "mindmap ID"
// @Success 200 {string} string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /mindmaps/{id}/markdown [get]
func MindmapMarkdown(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		return c.SendString(m.Markdown)
	}
}

// DownloadMindmap serves the markdown as a file attachment. The body is the
// stored markdown byte for byte.
// @Summary Download the mindmap markdown
// @Tags mindmaps
// @Produce text/markdown
// @Param id path string true "mindmap ID"
// @Success 200 {string} string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /mindmaps/{id}/download [get]
func DownloadMindmap(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Attachment("mindmap.md")
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		return c.SendString(m.Markdown)
	}
}

// ViewMindmap renders the interactive mindmap page. With download=1 the page
// is served as an attachment instead.
// @Summary View the interactive mindmap
// @Tags mindmaps
// @Produce html
// @Param id path string true "mindmap ID"
// @Param download query bool false "serve as attachment"
// @Success 200 {string} string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /mindmaps/{id}/view [get]
func ViewMindmap(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		html := web.RenderViewer(m.Markdown)
		if c.QueryBool("download") {
			c.Attachment("interactive_mindmap.html")
			return c.SendString(html)
		}
		return c.Type("html").SendString(html)
	}
}

// MindmapOutline returns the heading tree of the stored markdown.
// @Summary Get the outline of a mindmap
// @Tags mindmaps
// @Produce json
// @Param id path string true "mindmap ID"
// @Success 200 {object} outlineResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /mindmaps/{id}/outline [get]
func MindmapOutline(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		nodes := outline.Parse(m.Markdown)
		if nodes == nil {
			nodes = []*outline.Node{}
		}
		return c.JSON(outlineResponse{
			Title: outline.Title(m.Markdown),
			Nodes: nodes,
		})
	}
}

// GenerateQuestions produces study questions from the stored source text.
// @Summary Generate study questions for a mindmap
// @Tags mindmaps
// @Produce json
// @Param id path string true "mindmap ID"
// @Success 200 {object} questionsResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Failure 504 {object} errorPayload
// @Router /mindmaps/{id}/questions [post]
func GenerateQuestions(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		questions, err := svc.Questions(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(questionsResponse{Questions: questions})
	}
}

// DeleteMindmap removes a mindmap from the session store.
// @Summary Delete a mindmap
// @Tags mindmaps
// @Param id path string true "mindmap ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /mindmaps/{id} [delete]
func DeleteMindmap(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
