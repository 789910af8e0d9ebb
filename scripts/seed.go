package main

import (
	"coursefeedback/config"
	"coursefeedback/database"
	"coursefeedback/models"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the database with demo users, courses and feedback.
// Run with: go run ./scripts
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Clear existing data
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Feedback{}).Error; err != nil {
		log.Fatalf("Failed to clear feedback: %v", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Course{}).Error; err != nil {
		log.Fatalf("Failed to clear courses: %v", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}
	log.Println("Cleared existing data")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := []models.User{
		{Name: "Admin User", Email: "admin@demo.com", Password: string(hashedPassword), Role: models.RoleAdmin},
		{Name: "John Student", Email: "student@demo.com", Password: string(hashedPassword), Role: models.RoleStudent},
		{Name: "Alice Johnson", Email: "alice@demo.com", Password: string(hashedPassword), Role: models.RoleStudent},
		{Name: "Bob Wilson", Email: "bob@demo.com", Password: string(hashedPassword), Role: models.RoleStudent},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Println("Created demo users")

	courses := []models.Course{
		{
			Name:        "React Fundamentals",
			Description: "Learn the basics of React.js including components, props, state, and hooks. Perfect for beginners.",
			Instructor:  "Dr. Sarah Chen",
			Duration:    "8 weeks",
		},
		{
			Name:        "Node.js Backend Development",
			Description: "Master server-side development with Node.js, Express.js, and MongoDB. Build scalable APIs.",
			Instructor:  "Prof. Michael Rodriguez",
			Duration:    "10 weeks",
		},
		{
			Name:        "JavaScript Advanced Concepts",
			Description: "Deep dive into advanced JavaScript topics including closures, promises, async/await, and ES6+ features.",
			Instructor:  "Dr. Emily Davis",
			Duration:    "6 weeks",
		},
		{
			Name:        "Full Stack Web Development",
			Description: "Complete web development course covering frontend, backend, databases, and deployment.",
			Instructor:  "Prof. David Kim",
			Duration:    "16 weeks",
		},
		{
			Name:        "Database Design & MongoDB",
			Description: "Learn database design principles and master MongoDB for modern web applications.",
			Instructor:  "Dr. Lisa Thompson",
			Duration:    "5 weeks",
		},
	}
	if err := db.Create(&courses).Error; err != nil {
		log.Fatalf("Failed to seed courses: %v", err)
	}
	log.Println("Created demo courses")

	feedbacks := []models.Feedback{
		{CourseID: courses[0].ID, StudentID: users[1].ID, Rating: 5, Comment: "Excellent course! The instructor explains concepts very clearly and the hands-on projects really helped me understand React."},
		{CourseID: courses[0].ID, StudentID: users[2].ID, Rating: 4, Comment: "Great introduction to React. Would have liked more advanced topics covered, but overall very good."},
		{CourseID: courses[0].ID, StudentID: users[3].ID, Rating: 5, Comment: "Perfect for beginners! The pace was just right and the examples were practical."},
		{CourseID: courses[1].ID, StudentID: users[1].ID, Rating: 4, Comment: "Solid course on backend development. The MongoDB integration section was particularly helpful."},
		{CourseID: courses[1].ID, StudentID: users[2].ID, Rating: 5, Comment: "Outstanding! This course gave me the confidence to build real-world applications."},
		{CourseID: courses[2].ID, StudentID: users[3].ID, Rating: 4, Comment: "Challenging but rewarding. The async/await section really clicked for me."},
		{CourseID: courses[2].ID, StudentID: users[1].ID, Rating: 3, Comment: "Good content but a bit fast-paced. Would benefit from more examples."},
		{CourseID: courses[3].ID, StudentID: users[2].ID, Rating: 5, Comment: "Comprehensive and well structured. Covers everything you need to ship a full application."},
		{CourseID: courses[4].ID, StudentID: users[3].ID, Rating: 4, Comment: "Clear explanations of schema design trade-offs. The aggregation section was the highlight."},
	}
	if err := db.Create(&feedbacks).Error; err != nil {
		log.Fatalf("Failed to seed feedback: %v", err)
	}
	log.Println("Created demo feedback")

	log.Println("Seeding completed successfully.")
}
