// controllers/blog_post.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"devforge-backend/config"
	"devforge-backend/models"
	"devforge-backend/serializers"
	"devforge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var blogPostOrderingFields = map[string]string{
	"published_at": "published_at",
}

// CreateBlogPostInput defines the expected JSON structure for creating a blog post
type CreateBlogPostInput struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Category    string `json:"category"`
	CoverImage  string `json:"cover_image"`
	Author      string `json:"author"`
	IsPublished *bool  `json:"is_published"`
}

// UpdateBlogPostInput defines the expected JSON structure for updating a blog post
type UpdateBlogPostInput struct {
	Title       *string `json:"title"`
	Excerpt     *string `json:"excerpt"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	CoverImage  *string `json:"cover_image"`
	Author      *string `json:"author"`
	IsPublished *bool   `json:"is_published"`
}

// GetBlogPosts retrieves all published posts
func GetBlogPosts(c *gin.Context) {
	q := config.DB.Where("is_published = ?", true)
	q = utils.ApplySearch(q, c.Query("search"), "title", "excerpt", "content", "category")

	if clause, ok := utils.OrderingClause(c.Query("ordering"), blogPostOrderingFields); ok {
		q = q.Order(clause)
	} else {
		q = q.Order("published_at DESC")
	}
	q = utils.ApplyPagination(c, q)

	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve posts")
		return
	}

	c.JSON(http.StatusOK, serializers.NewBlogPostListResponse(posts))
}

// GetBlogPost retrieves a published post by slug
func GetBlogPost(c *gin.Context) {
	var post models.BlogPost
	if err := config.DB.Where("slug = ? AND is_published = ?", c.Param("slug"), true).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Post not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serializers.NewBlogPostResponse(post))
}

// CreateBlogPost creates a new blog post
func CreateBlogPost(c *gin.Context) {
	var input CreateBlogPostInput
	if !bindJSON(c, &input) {
		return
	}

	slugValue := input.Slug
	if slugValue == "" {
		slugValue = input.Title
	}
	slugValue = slug.Make(slugValue)
	if slugTaken(c, &models.BlogPost{}, slugValue) {
		return
	}

	post := models.BlogPost{
		Title:      input.Title,
		Slug:       slugValue,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		Category:   input.Category,
		CoverImage: input.CoverImage,
		Author:     input.Author,
	}
	if input.IsPublished != nil && *input.IsPublished {
		post.IsPublished = true
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := config.DB.Create(&post).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, serializers.NewBlogPostResponse(post))
}

// UpdateBlogPost updates an existing blog post. The publication timestamp
// is set the first time the post goes live and kept on republish.
func UpdateBlogPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	var input UpdateBlogPostInput
	if !bindJSON(c, &input) {
		return
	}

	var post models.BlogPost
	if err := config.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Post not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.CoverImage != nil {
		post.CoverImage = *input.CoverImage
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
		if post.IsPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	}

	if err := config.DB.Save(&post).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, serializers.NewBlogPostResponse(post))
}

// DeleteBlogPost removes a blog post
func DeleteBlogPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	result := config.DB.Delete(&models.BlogPost{}, "id = ?", postID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
