package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/request"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/response"
)

// ArticleHandler  represent the httphandler for article
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// GetByID will get article by given id
func (a *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	art, err := a.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// Fetch pages all articles, newest first.
func (a *ArticleHandler) Fetch(c *gin.Context) {
	page, size := pageParams(c)

	res, err := a.Service.Fetch(c.Request.Context(), page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageOfArticles(res))
}

// FetchByAuthor pages one author's articles.
func (a *ArticleHandler) FetchByAuthor(c *gin.Context) {
	authorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pageParams(c)

	res, err := a.Service.FetchByAuthor(c.Request.Context(), authorID, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageOfArticles(res))
}

// Store will store the article by given request body
func (a *ArticleHandler) Store(c *gin.Context) {
	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	article := req.ToDomain()
	article.Author.ID = uid

	if err := a.Service.Store(c.Request.Context(), &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewArticleFromDomain(&article))
}

// Update rewrites the caller's article.
func (a *ArticleHandler) Update(c *gin.Context) {
	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	article := req.ToDomain()
	article.ID = id
	article.Author.ID = uid

	if err := a.Service.Update(c.Request.Context(), &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticleFromDomain(&article))
}

// Delete removes the caller's article with its comments and likes.
func (a *ArticleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := a.Service.Delete(c.Request.Context(), id, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func pageOfArticles(res domain.Page[domain.Article]) response.Page[response.Article] {
	out := response.Page[response.Article]{Total: res.Total, Page: res.Page, Pages: res.Pages}
	out.Items = make([]response.Article, len(res.Items))
	for i := range res.Items {
		out.Items[i] = response.NewArticleListFromDomain(&res.Items[i])
	}
	return out
}
