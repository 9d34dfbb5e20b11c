package main

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"lexfeed/internal/config"
	"lexfeed/internal/db"
	"lexfeed/internal/model"
	"lexfeed/internal/repository"
	"lexfeed/internal/search"
)

// seedUser is one sample profile. Existing users (matched by email) are
// updated in place so the seeder can run repeatedly.
type seedUser struct {
	Email    string
	Password string
	Name     string
	Role     string
	Company  string
	Position string
	Location string
	About    string
}

var sampleUsers = []seedUser{
	{
		Email: "amira@counsel.example", Password: "changeme1", Name: "Amira Haddad",
		Role: model.RoleNameLawyer, Company: "Haddad & Partners", Position: "Senior Associate",
		Location: "Cairo", About: "Commercial litigation and arbitration.",
	},
	{
		Email: "tarek@counsel.example", Password: "changeme2", Name: "Tarek Mansour",
		Role: model.RoleNameLawyer, Company: "Mansour Legal", Position: "Founding Partner",
		Location: "Alexandria", About: "Intellectual property and startups.",
	},
	{
		Email: "nadia@mail.example", Password: "changeme3", Name: "Nadia Fikry",
		Role: model.RoleNameUser, Location: "Giza", About: "Looking for counsel on tenancy disputes.",
	},
}

var sampleFeeds = []struct {
	AuthorEmail string
	Title       string
	Body        string
}{
	{"amira@counsel.example", "New arbitration rules published", "A short walkthrough of what changed and who is affected."},
	{"tarek@counsel.example", "Trademark basics for founders", "Register early. Here is why it matters more than you think."},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Feed{},
		&model.Comment{},
		&model.Like{},
		&model.Message{},
		&model.Reply{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	index, err := search.Open(cfg.SearchIndexPath)
	if err != nil {
		log.Fatalf("Failed to open search index: %v", err)
	}
	defer index.Close()

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	feedRepo := repository.NewFeedRepository(gormDB)

	if err := roleRepo.EnsureDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}
	log.Println("Roles seeded")

	created, updated, err := seedUsers(ctx, userRepo, roleRepo, index)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users seeded: %d created, %d updated", created, updated)

	feeds, err := seedFeeds(ctx, userRepo, feedRepo)
	if err != nil {
		log.Fatalf("Failed to seed feeds: %v", err)
	}
	log.Printf("Feeds seeded: %d created", feeds)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, users repository.UserRepository, roles repository.RoleRepository, index *search.Index) (created int, updated int, err error) {
	for _, item := range sampleUsers {
		role, err := roles.FindByName(ctx, item.Role)
		if err != nil {
			return created, updated, fmt.Errorf("role %s: %w", item.Role, err)
		}

		existing, err := users.FindByEmail(ctx, item.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, updated, fmt.Errorf("lookup %s: %w", item.Email, err)
		}

		user := existing
		if user == nil {
			user = &model.User{Email: item.Email}
		}
		user.Name = item.Name
		user.Company = item.Company
		user.Position = item.Position
		user.Location = item.Location
		user.About = item.About
		user.RoleID = role.ID
		if err := user.SetPassword(item.Password); err != nil {
			return created, updated, fmt.Errorf("hash password for %s: %w", item.Email, err)
		}

		if existing != nil {
			if err := users.Update(ctx, user); err != nil {
				return created, updated, fmt.Errorf("update %s: %w", item.Email, err)
			}
			updated++
		} else {
			if err := users.Create(ctx, user); err != nil {
				return created, updated, fmt.Errorf("create %s: %w", item.Email, err)
			}
			created++
		}

		if err := index.IndexUser(user); err != nil {
			log.Printf("Warning: failed to index %s: %v", item.Email, err)
		}
	}
	return created, updated, nil
}

func seedFeeds(ctx context.Context, users repository.UserRepository, feeds repository.FeedRepository) (created int, err error) {
	total, err := feeds.Count(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		log.Println("Feeds already present, skipping feed seed")
		return 0, nil
	}

	for _, item := range sampleFeeds {
		author, err := users.FindByEmail(ctx, item.AuthorEmail)
		if err != nil {
			return created, fmt.Errorf("author %s: %w", item.AuthorEmail, err)
		}
		feed := &model.Feed{Title: item.Title, Body: item.Body, AuthorID: author.ID}
		if err := feeds.Create(ctx, feed); err != nil {
			return created, fmt.Errorf("create feed %q: %w", item.Title, err)
		}
		created++
	}
	return created, nil
}
