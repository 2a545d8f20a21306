package routes

import (
	"os"
	"strings"

	"devforge-backend/config"
	"devforge-backend/controllers"
	"devforge-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		parts := strings.Split(env, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		return origins
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:slug", controllers.GetService)
		}

		portfolio := api.Group("/portfolio")
		{
			portfolio.GET("", controllers.GetPortfolioItems)
			portfolio.GET("/featured", controllers.GetFeaturedPortfolio)
			portfolio.GET("/:slug", controllers.GetPortfolioItem)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", controllers.GetTestimonials)
			testimonials.GET("/featured", controllers.GetFeaturedTestimonials)
			testimonials.GET("/:id", controllers.GetTestimonial)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", controllers.CreateContact)
			// Listing is currently open, matching the reference deployment
			// where the admin frontend reads it without a session.
			contact.GET("", controllers.GetContacts)
		}

		api.GET("/company-info", controllers.GetCompanyInfo)

		team := api.Group("/team")
		{
			team.GET("", controllers.GetTeamMembers)
			team.GET("/:id", controllers.GetTeamMember)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", controllers.GetJobOpenings)
			jobs.GET("/:slug", controllers.GetJobOpening)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", controllers.GetBlogPosts)
			posts.GET("/:slug", controllers.GetBlogPost)
		}
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	admin := r.Group("/api/admin")
	admin.Use(utils.AuthMiddleware())
	{
		services := admin.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		portfolio := admin.Group("/portfolio")
		{
			portfolio.POST("", controllers.CreatePortfolioItem)
			portfolio.PUT("/:id", controllers.UpdatePortfolioItem)
			portfolio.DELETE("/:id", controllers.DeletePortfolioItem)
		}

		testimonials := admin.Group("/testimonials")
		{
			testimonials.POST("", controllers.CreateTestimonial)
			testimonials.PUT("/:id", controllers.UpdateTestimonial)
			testimonials.DELETE("/:id", controllers.DeleteTestimonial)
		}

		admin.PUT("/contact/:id", controllers.UpdateContact)
		admin.PUT("/company-info", controllers.UpdateCompanyInfo)

		team := admin.Group("/team")
		{
			team.POST("", controllers.CreateTeamMember)
			team.PUT("/:id", controllers.UpdateTeamMember)
			team.DELETE("/:id", controllers.DeleteTeamMember)
		}

		jobs := admin.Group("/jobs")
		{
			jobs.POST("", controllers.CreateJobOpening)
			jobs.PUT("/:id", controllers.UpdateJobOpening)
			jobs.DELETE("/:id", controllers.DeleteJobOpening)
		}

		posts := admin.Group("/posts")
		{
			posts.POST("", controllers.CreateBlogPost)
			posts.PUT("/:id", controllers.UpdateBlogPost)
			posts.DELETE("/:id", controllers.DeleteBlogPost)
		}
	}

	return r
}
