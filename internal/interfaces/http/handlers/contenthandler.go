package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contentApp "vitrine/internal/application/content"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
)

// ContentHandler handles the structured portfolio content: projects,
// testimonials, achievements and site text.
type ContentHandler struct {
	service *contentApp.Service
	logger  logger.Interface
}

func NewContentHandler(service *contentApp.Service, log logger.Interface) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  log,
	}
}

// ---- Projects ----

// ListProjects returns all projects in display order.
// GET /api/content/projects
func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, projects)
}

// GetProject returns one project.
// GET /api/content/projects/:id
func (h *ContentHandler) GetProject(c *gin.Context) {
	project, err := h.service.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, project)
}

// CreateProject stores a new project.
// POST /api/admin/projects
func (h *ContentHandler) CreateProject(c *gin.Context) {
	var req contentApp.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, project)
}

// UpdateProject replaces an existing project.
// PUT /api/admin/projects/:id
func (h *ContentHandler) UpdateProject(c *gin.Context) {
	var req contentApp.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, project)
}

// DeleteProject removes a project.
// DELETE /api/admin/projects/:id
func (h *ContentHandler) DeleteProject(c *gin.Context) {
	if err := h.service.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Project deleted", nil)
}

// ---- Testimonials ----

// ListTestimonials returns all testimonials in display order.
// GET /api/content/testimonials
func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	items, err := h.service.ListTestimonials(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, items)
}

// CreateTestimonial stores a new testimonial.
// POST /api/admin/testimonials
func (h *ContentHandler) CreateTestimonial(c *gin.Context) {
	var req contentApp.Testimonial
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.CreateTestimonial(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, item)
}

// UpdateTestimonial replaces an existing testimonial.
// PUT /api/admin/testimonials/:id
func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	var req contentApp.Testimonial
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.UpdateTestimonial(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, item)
}

// DeleteTestimonial removes a testimonial.
// DELETE /api/admin/testimonials/:id
func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.service.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Testimonial deleted", nil)
}

// ---- Achievements ----

// ListAchievements returns all achievements in display order.
// GET /api/content/achievements
func (h *ContentHandler) ListAchievements(c *gin.Context) {
	items, err := h.service.ListAchievements(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, items)
}

// CreateAchievement stores a new achievement.
// POST /api/admin/achievements
func (h *ContentHandler) CreateAchievement(c *gin.Context) {
	var req contentApp.Achievement
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.CreateAchievement(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, item)
}

// UpdateAchievement replaces an existing achievement.
// PUT /api/admin/achievements/:id
func (h *ContentHandler) UpdateAchievement(c *gin.Context) {
	var req contentApp.Achievement
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.UpdateAchievement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, item)
}

// DeleteAchievement removes an achievement.
// DELETE /api/admin/achievements/:id
func (h *ContentHandler) DeleteAchievement(c *gin.Context) {
	if err := h.service.DeleteAchievement(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Achievement deleted", nil)
}

// ---- Site text ----

// GetSiteText returns one block of site copy with its rendered HTML.
// GET /api/content/sitetext/:key
func (h *ContentHandler) GetSiteText(c *gin.Context) {
	st, err := h.service.GetSiteText(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, st)
}

// ListSiteTexts returns all site copy blocks.
// GET /api/content/sitetext
func (h *ContentHandler) ListSiteTexts(c *gin.Context) {
	items, err := h.service.ListSiteTexts(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, items)
}

type siteTextRequest struct {
	Markdown string `json:"markdown" binding:"required"`
}

// SetSiteText upserts a block of site copy.
// PUT /api/admin/sitetext/:key
func (h *ContentHandler) SetSiteText(c *gin.Context) {
	var req siteTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "markdown is required")
		return
	}

	st, err := h.service.SetSiteText(c.Request.Context(), c.Param("key"), req.Markdown)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, st)
}

// DeleteSiteText removes a block of site copy.
// DELETE /api/admin/sitetext/:key
func (h *ContentHandler) DeleteSiteText(c *gin.Context) {
	if err := h.service.DeleteSiteText(c.Request.Context(), c.Param("key")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Site text deleted", nil)
}
