package main

import (
	"log"
	"os"

	"ticketdesk-be/internal/constant"
	"ticketdesk-be/internal/model"
	"ticketdesk-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	admin := seedAdmin(db)
	seedSampleTickets(db, admin)

	color.Green("✅ Seeding completed")
}

func seedAdmin(db *gorm.DB) *model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}

	admin := &model.User{
		Id:           uuid.New(),
		Username:     "admin",
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         constant.UserRoleAdmin,
	}

	// Re-running the seeder refreshes the password instead of failing.
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash"}),
	}).Create(admin).Error
	if err != nil {
		log.Fatal("Error: Failed to seed admin user:", err)
	}

	// Fetch the persisted row in case the insert was a conflict-update.
	var persisted model.User
	if err := db.Where("username = ?", "admin").First(&persisted).Error; err != nil {
		log.Fatal("Error: Failed to load seeded admin:", err)
	}

	color.Cyan("Seeded user: %s (%s)", persisted.Username, persisted.Email)
	return &persisted
}

func seedSampleTickets(db *gorm.DB, creator *model.User) {
	var count int64
	if err := db.Model(&model.Ticket{}).Count(&count).Error; err != nil {
		log.Fatal("Error: Failed to count tickets:", err)
	}
	if count > 0 {
		color.Yellow("Tickets already present, skipping sample data")
		return
	}

	tickets := []model.Ticket{
		{
			Id:          uuid.New(),
			Title:       "Cannot log in to the portal",
			Description: "The login page keeps returning an invalid credentials error even with a fresh password reset.",
			Status:      constant.TicketStatusOpen,
			Priority:    constant.TicketPriorityHigh,
			CreatedById: creator.Id,
		},
		{
			Id:          uuid.New(),
			Title:       "Printer on 3rd floor jams",
			Description: "Paper jams on every duplex job. Single-sided printing works fine.",
			Status:      constant.TicketStatusInProgress,
			Priority:    constant.TicketPriorityMedium,
			CreatedById: creator.Id,
		},
		{
			Id:          uuid.New(),
			Title:       "VPNが頻繁に切断される",
			Description: "在宅勤務中にVPN接続が1時間ごとに切断されます。再接続には毎回2、3分かかります。",
			Status:      constant.TicketStatusOpen,
			Priority:    constant.TicketPriorityUrgent,
			CreatedById: creator.Id,
		},
	}

	if err := db.Create(&tickets).Error; err != nil {
		log.Fatal("Error: Failed to seed tickets:", err)
	}
	color.Cyan("Seeded %d sample tickets", len(tickets))
}
