package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"devforge-backend/config"
	"devforge-backend/controllers"
	"devforge-backend/models"
	"devforge-backend/routes"
	"devforge-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Portfolio{},
		&models.Testimonial{},
		&models.Contact{},
		&models.CompanyInfo{},
		&models.TeamMember{},
		&models.JobOpening{},
		&models.BlogPost{},
	)

	seedAdminUser()
}

func main() {
	notifier := services.NewNotificationService(config.DB)
	controllers.ContactNotifier = notifier
	notifier.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// seedAdminUser creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// when it does not exist yet. Without the variables nothing is seeded.
func seedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to look up admin user: %v", err)
		return
	}

	admin := models.User{
		Email:    email,
		Password: password, // hashed in BeforeCreate hook
		Name:     "Admin",
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", email)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
