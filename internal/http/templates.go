package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/id01t/bookforge/internal/templates"
)

// TemplatesController exposes the built-in prompt templates.
type TemplatesController struct {
	catalog *templates.Catalog
}

func NewTemplatesController(catalog *templates.Catalog) *TemplatesController {
	return &TemplatesController{catalog: catalog}
}

// List handles GET /api/templates
func (tc *TemplatesController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": tc.catalog.Names()})
}

// ApplyRequest is the body of POST /api/templates/apply.
type ApplyRequest struct {
	Name      string            `json:"name" binding:"required"`
	Variables map[string]string `json:"variables"`
}

// Apply handles POST /api/templates/apply
// Renders the named template with the given variables and returns the prompt.
func (tc *TemplatesController) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	body := tc.catalog.Get(req.Name)
	if body == "" {
		respondNotFound(c, "template")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":   req.Name,
		"prompt": templates.Apply(body, req.Variables),
	})
}
