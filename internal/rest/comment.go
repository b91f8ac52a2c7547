package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/request"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

// CreateComment adds a top-level comment on the article in the path.
func (h *commentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	articleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	comment, err := h.Service.Add(c.Request.Context(), articleID, uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// ReplyComment adds a reply under the comment in the path.
func (h *commentHandler) ReplyComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	comment, err := h.Service.Reply(c.Request.Context(), parentID, uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// EditComment rewrites the caller's comment content.
func (h *commentHandler) EditComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	comment, err := h.Service.Edit(c.Request.Context(), commentID, uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

// DeleteComment removes the caller's comment. Replies stay in place.
func (h *commentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), commentID, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// FetchTopLevel pages the article's top-level comments with reply counts.
func (h *commentHandler) FetchTopLevel(c *gin.Context) {
	articleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := h.Service.TopLevel(c.Request.Context(), articleID, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageOfComments(res))
}

// FetchReplies pages the replies under the comment in the path.
func (h *commentHandler) FetchReplies(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := h.Service.Replies(c.Request.Context(), commentID, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageOfComments(res))
}

func pageOfComments(res domain.Page[domain.Comment]) response.Page[response.Comment] {
	out := response.Page[response.Comment]{Total: res.Total, Page: res.Page, Pages: res.Pages}
	out.Items = make([]response.Comment, len(res.Items))
	for i := range res.Items {
		out.Items[i] = response.NewCommentFromDomain(&res.Items[i])
	}
	return out
}
