package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/request"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/response"
)

// FeedHandler represent the httphandler for the feed and posts
type FeedHandler struct {
	Service domain.FeedUsecase
}

func NewFeedHandler(svc domain.FeedUsecase) *FeedHandler {
	return &FeedHandler{
		Service: svc,
	}
}

// GetFeed pages posts by the caller and the accounts they follow.
func (h *FeedHandler) GetFeed(c *gin.Context) {
	uid, ok := authedUserID(c)
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := h.Service.GetFeed(c.Request.Context(), uid, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageOfPosts(res))
}

// CreatePost publishes a short post for the caller.
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	post := req.ToDomain(uid)
	if err := h.Service.CreatePost(c.Request.Context(), &post); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewPostFromDomain(&post))
}

// UpdatePost rewrites the caller's post content.
func (h *FeedHandler) UpdatePost(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	post, err := h.Service.UpdatePost(c.Request.Context(), postID, uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// DeletePost removes the caller's post.
func (h *FeedHandler) DeletePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.Service.DeletePost(c.Request.Context(), postID, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// UserPosts pages one account's posts.
func (h *FeedHandler) UserPosts(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := h.Service.UserPosts(c.Request.Context(), userID, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageOfPosts(res))
}

// HashtagPosts pages posts carrying the tag in the path.
func (h *FeedHandler) HashtagPosts(c *gin.Context) {
	page, size := pageParams(c)

	res, err := h.Service.HashtagPosts(c.Request.Context(), c.Param("tag"), page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageOfPosts(res))
}

func pageOfPosts(res domain.Page[domain.Post]) response.Page[response.Post] {
	out := response.Page[response.Post]{Total: res.Total, Page: res.Page, Pages: res.Pages}
	out.Items = make([]response.Post, len(res.Items))
	for i := range res.Items {
		out.Items[i] = response.NewPostFromDomain(&res.Items[i])
	}
	return out
}
