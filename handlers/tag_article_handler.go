package handlers

import (
	"errors"

	"symphony-forum/helper"
	"symphony-forum/models"
	"symphony-forum/repositories"
	"symphony-forum/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type TagArticleHandler struct {
	tagArticleService services.TagArticleService
	Helper            *helper.HTTPHelper
}

func NewTagArticleHandler(tagArticleService services.TagArticleService, h *helper.HTTPHelper) *TagArticleHandler {
	return &TagArticleHandler{tagArticleService: tagArticleService, Helper: h}
}

func (h *TagArticleHandler) sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyArticleID),
		errors.Is(err, services.ErrEmptyTagID),
		errors.Is(err, repositories.ErrInvalidRelation):
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
	case errors.Is(err, repositories.ErrNotFound):
		h.Helper.SendNotFoundError(c, "Tag-article relation not found", h.Helper.EmptyJsonMap())
	case repositories.IsRepositoryError(err):
		h.Helper.SendDatabaseError(c, "Failed to access tag-article relations", h.Helper.EmptyJsonMap())
	default:
		h.Helper.SendBadRequest(c, "Error ", err.Error())
	}
}

// validate reports whether v passed validation, answering the request otherwise.
func (h *TagArticleHandler) validate(c *gin.Context, v interface{}) bool {
	err := h.Helper.Validate.Struct(v)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.Helper.SendValidationError(c, validationErrors)
	} else {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
	}
	return false
}

func (h *TagArticleHandler) GetArticleTags(c *gin.Context) {
	relations, err := h.tagArticleService.GetArticleRelations(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", relations)
}

func (h *TagArticleHandler) GetTagArticles(c *gin.Context) {
	var params models.TagArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters", err.Error())
		return
	}
	params.TagID = c.Param("id")

	if !h.validate(c, params) {
		return
	}

	page, err := h.tagArticleService.GetTagRelations(c.Request.Context(), params)
	if err != nil {
		h.sendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"relations":  page.Relations,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, page.RecordCount),
	})
}

func (h *TagArticleHandler) TagArticle(c *gin.Context) {
	var req models.CreateTagArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if !h.validate(c, req) {
		return
	}

	relations, err := h.tagArticleService.TagArticle(c.Request.Context(), req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article tagged successfully", relations)
}

func (h *TagArticleHandler) UntagArticle(c *gin.Context) {
	removed, err := h.tagArticleService.UntagArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article untagged successfully", gin.H{"removed": removed})
}

func (h *TagArticleHandler) RemoveRelation(c *gin.Context) {
	if err := h.tagArticleService.RemoveRelation(c.Request.Context(), c.Param("id")); err != nil {
		h.sendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Relation removed successfully", h.Helper.EmptyJsonMap())
}
