package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/id01t/bookforge/internal/entities"
	"github.com/id01t/bookforge/internal/manuscript"
	"github.com/id01t/bookforge/internal/providers"
	"github.com/id01t/bookforge/internal/services"
	"github.com/id01t/bookforge/internal/tasks"
)

// GenerateController handles manuscript generation endpoints.
type GenerateController struct {
	generator  Generator
	taskClient *tasks.Client
}

func NewGenerateController(generator Generator, taskClient *tasks.Client) *GenerateController {
	return &GenerateController{generator: generator, taskClient: taskClient}
}

// GenerateRequest is the request body shared by the generation endpoints.
type GenerateRequest struct {
	Title           string `json:"title" binding:"required"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	TableOfContents string `json:"table_of_contents"`
	Topic           string `json:"topic"`
	Provider        string `json:"provider"`
	Model           string `json:"model"`
}

func (r GenerateRequest) metadata() entities.BookMetadata {
	return entities.BookMetadata{
		Title:           r.Title,
		Subtitle:        r.Subtitle,
		Description:     r.Description,
		TableOfContents: r.TableOfContents,
		Topic:           r.Topic,
	}
}

// GenerateResponse is the body of a successful synchronous run.
type GenerateResponse struct {
	RunID    string               `json:"run_id"`
	Document string               `json:"document"`
	Chapters []manuscript.Chapter `json:"chapters"`
	Partial  bool                 `json:"partial"`
	Provider string               `json:"provider"`
	Model    string               `json:"model,omitempty"`
	Warnings []string             `json:"warnings,omitempty"`
}

// Generate handles POST /api/generate
// Assembles the whole manuscript before responding. Client disconnect cancels
// the run through the request context.
func (gc *GenerateController) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	outcome, err := gc.generator.Generate(c.Request.Context(), services.GenerateRequest{
		Meta:     req.metadata(),
		Provider: req.Provider,
		Model:    req.Model,
	})
	if err != nil {
		gc.respondGenerateError(c, outcome, err)
		return
	}

	c.JSON(http.StatusOK, generateResponse(outcome))
}

// GenerateStream handles POST /api/generate/stream
// Emits SSE events while the manuscript assembles: chapter_start, delta,
// chapter_done, then done or error.
func (gc *GenerateController) GenerateStream(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	emit := func(event string, data any) {
		c.SSEvent(event, data)
		c.Writer.Flush()
	}

	progress := manuscript.Progress{
		OnChapterStart: func(index int, title string) {
			emit("chapter_start", gin.H{"index": index, "title": title})
		},
		OnChapterDelta: func(index int, delta string) {
			emit("delta", gin.H{"index": index, "text": delta})
		},
		OnChapterDone: func(index int, text string) {
			emit("chapter_done", gin.H{"index": index})
		},
	}

	outcome, err := gc.generator.Generate(c.Request.Context(), services.GenerateRequest{
		Meta:     req.metadata(),
		Provider: req.Provider,
		Model:    req.Model,
		Progress: progress,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client is gone; nothing left to write.
			return
		}
		payload := gin.H{"message": err.Error()}
		if outcome != nil && outcome.Result != nil && outcome.Result.Partial {
			payload["partial"] = true
			payload["document"] = outcome.Result.Document
		}
		emit("error", payload)
		return
	}

	emit("done", generateResponse(outcome))
}

// GenerateAsync handles POST /api/generate/async
// Enqueues a background generation task and returns its ID.
func (gc *GenerateController) GenerateAsync(c *gin.Context) {
	if gc.taskClient == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "task queue is not enabled"})
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	ids, err := gc.taskClient.Add(tasks.GenerateBookTask{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Description:     req.Description,
		TableOfContents: req.TableOfContents,
		Topic:           req.Topic,
		Provider:        req.Provider,
		Model:           req.Model,
	}).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue generation")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"task_id": ids[0],
		"message": "generation enqueued",
	})
}

func (gc *GenerateController) respondGenerateError(c *gin.Context, outcome *services.GenerateOutcome, err error) {
	if errors.Is(err, context.Canceled) {
		// Client disconnected mid-run.
		c.Status(http.StatusRequestTimeout)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		details := gin.H{}
		if outcome != nil && outcome.Result != nil {
			details["partial"] = true
			details["document"] = outcome.Result.Document
		}
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{
			Error:   "generation timed out",
			Code:    "run_timeout",
			Details: details,
		})
		return
	}
	if providers.IsConfigError(err) {
		respondBadRequest(c, err.Error())
		return
	}

	var chErr *manuscript.ChapterError
	if errors.As(err, &chErr) {
		details := gin.H{"chapter": chErr.Index, "title": chErr.Title}
		if outcome != nil && outcome.Result != nil {
			details["partial"] = true
			details["document"] = outcome.Result.Document
			details["run_id"] = outcome.Result.RunID
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   err.Error(),
			Code:    "chapter_failed",
			Details: details,
		})
		return
	}

	respondInternalError(c, err, "generate")
}

func generateResponse(outcome *services.GenerateOutcome) GenerateResponse {
	return GenerateResponse{
		RunID:    outcome.Result.RunID,
		Document: outcome.Result.Document,
		Chapters: outcome.Result.Chapters,
		Partial:  outcome.Result.Partial,
		Provider: outcome.Provider,
		Model:    outcome.Model,
		Warnings: outcome.Result.Warnings,
	}
}
