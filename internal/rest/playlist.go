package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/request"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/response"
)

type playlistHandler struct {
	Service domain.PlaylistUsecase
}

func NewPlaylistHandler(svc domain.PlaylistUsecase) *playlistHandler {
	return &playlistHandler{
		Service: svc,
	}
}

// Create makes a new playlist for the caller.
func (h *playlistHandler) Create(c *gin.Context) {
	var req request.Playlist
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	p := req.ToDomain(uid)
	if err := h.Service.Create(c.Request.Context(), &p); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewPlaylistFromDomain(&p))
}

// Get returns the playlist with its articles populated.
func (h *playlistHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewPlaylistFromDomain(&p))
}

// FetchByOwner pages the playlists of the user in the path.
func (h *playlistHandler) FetchByOwner(c *gin.Context) {
	ownerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := h.Service.FetchByOwner(c.Request.Context(), ownerID, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	out := response.Page[response.Playlist]{Total: res.Total, Page: res.Page, Pages: res.Pages}
	out.Items = make([]response.Playlist, len(res.Items))
	for i := range res.Items {
		out.Items[i] = response.NewPlaylistFromDomain(&res.Items[i])
	}
	c.JSON(http.StatusOK, out)
}

// AddArticle appends the article to the caller's playlist.
func (h *playlistHandler) AddArticle(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	articleID, ok := pathID(c, "articleID")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.Service.AddArticle(c.Request.Context(), playlistID, articleID, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article added"})
}

// RemoveArticle drops the article from the caller's playlist.
func (h *playlistHandler) RemoveArticle(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	articleID, ok := pathID(c, "articleID")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.Service.RemoveArticle(c.Request.Context(), playlistID, articleID, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes the caller's playlist.
func (h *playlistHandler) Delete(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), playlistID, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
