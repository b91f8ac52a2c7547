package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/response"
)

// EngagementHandler represent the httphandler for follow and like toggles
type EngagementHandler struct {
	Service domain.EngagementUsecase
}

func NewEngagementHandler(svc domain.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{
		Service: svc,
	}
}

// ToggleFollow flips the follow edge towards the author in the path.
func (h *EngagementHandler) ToggleFollow(c *gin.Context) {
	authorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	following, err := h.Service.ToggleFollow(c.Request.Context(), uid, authorID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// FollowStatus reports whether the caller follows the author in the path.
func (h *EngagementHandler) FollowStatus(c *gin.Context) {
	authorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	following, err := h.Service.CheckFollowStatus(c.Request.Context(), uid, authorID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// Followers pages the accounts following the user in the path.
func (h *EngagementHandler) Followers(c *gin.Context) {
	authorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := h.Service.GetFollowers(c.Request.Context(), authorID, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageOfUsers(res))
}

// Following pages the accounts the user in the path follows.
func (h *EngagementHandler) Following(c *gin.Context) {
	followerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := h.Service.GetFollowing(c.Request.Context(), followerID, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageOfUsers(res))
}

// ToggleArticleLike flips the caller's like on the article in the path.
func (h *EngagementHandler) ToggleArticleLike(c *gin.Context) {
	h.toggleLike(c, domain.LikeTargetArticle)
}

// ToggleCommentLike flips the caller's like on the comment in the path.
func (h *EngagementHandler) ToggleCommentLike(c *gin.Context) {
	h.toggleLike(c, domain.LikeTargetComment)
}

func (h *EngagementHandler) toggleLike(c *gin.Context, target domain.LikeTarget) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	liked, err := h.Service.ToggleLike(c.Request.Context(), uid, targetID, target)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// ArticleLikeStatus reports whether the caller likes the article in the path.
func (h *EngagementHandler) ArticleLikeStatus(c *gin.Context) {
	h.likeStatus(c, domain.LikeTargetArticle)
}

// CommentLikeStatus reports whether the caller likes the comment in the path.
func (h *EngagementHandler) CommentLikeStatus(c *gin.Context) {
	h.likeStatus(c, domain.LikeTargetComment)
}

func (h *EngagementHandler) likeStatus(c *gin.Context, target domain.LikeTarget) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	liked, err := h.Service.CheckLikeStatus(c.Request.Context(), uid, targetID, target)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// LikedArticles pages the articles the caller has liked, newest like first.
func (h *EngagementHandler) LikedArticles(c *gin.Context) {
	uid, ok := authedUserID(c)
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := h.Service.GetLikedArticles(c.Request.Context(), uid, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	out := response.Page[response.Article]{Total: res.Total, Page: res.Page, Pages: res.Pages}
	out.Items = make([]response.Article, len(res.Items))
	for i := range res.Items {
		out.Items[i] = response.NewArticleListFromDomain(&res.Items[i])
	}
	c.JSON(http.StatusOK, out)
}

// LikedComments pages the comments the caller has liked, newest like first.
func (h *EngagementHandler) LikedComments(c *gin.Context) {
	uid, ok := authedUserID(c)
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := h.Service.GetLikedComments(c.Request.Context(), uid, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	out := response.Page[response.Comment]{Total: res.Total, Page: res.Page, Pages: res.Pages}
	out.Items = make([]response.Comment, len(res.Items))
	for i := range res.Items {
		out.Items[i] = response.NewCommentFromDomain(&res.Items[i])
	}
	c.JSON(http.StatusOK, out)
}

func pageOfUsers(res domain.Page[domain.User]) response.Page[response.User] {
	out := response.Page[response.User]{Total: res.Total, Page: res.Page, Pages: res.Pages}
	out.Items = make([]response.User, len(res.Items))
	for i := range res.Items {
		out.Items[i] = response.NewUserFromDomain(&res.Items[i])
	}
	return out
}
