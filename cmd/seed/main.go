package main

import (
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"inkwell/internal/infra"
	"inkwell/internal/models/db_models"
	"inkwell/pkg/utils"
)

// Seeds the canonical development fixtures: an admin and a regular user,
// sample posts, one collection each, and two bookmarks.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	admin := upsertUser(db, &db_models.User{
		Name:             "Admin User",
		Email:            "admin@example.com",
		Role:             db_models.RoleAdmin,
		Subscription:     db_models.SubscriptionPremium,
		GenerationsLeft:  999,
		GenerationsTotal: 999,
	}, "admin123")

	user := upsertUser(db, &db_models.User{
		Name:             "Regular User",
		Email:            "user@example.com",
		Role:             db_models.RoleUser,
		Subscription:     db_models.SubscriptionFree,
		GenerationsLeft:  18,
		GenerationsTotal: 20,
	}, "user123")

	adminPost1 := createPost(db, &db_models.Post{
		Title:    "Getting Started with Go Web Services",
		Content:  "Go makes it straightforward to build production-ready web services. With a small set of well-chosen libraries you get routing, persistence, and observability without a heavyweight framework.\n\nIn this blog post, we'll explore the key building blocks and how to get started with them.",
		Excerpt:  "Learn how to build modern web services with Go and a handful of well-chosen libraries.",
		Status:   db_models.PostStatusPublished,
		Likes:    15,
		AuthorID: admin.ID,
	})

	adminPost2 := createPost(db, &db_models.Post{
		Title:    "Understanding Database Migrations",
		Content:  "Schema migrations are one of the least glamorous and most important parts of running a data-backed service. Getting them wrong means downtime; getting them right means nobody notices.\n\nIn this comprehensive guide, we'll cover migration strategies for relational stores.",
		Excerpt:  "A comprehensive guide to schema migration strategies for relational databases.",
		Status:   db_models.PostStatusPublished,
		Likes:    8,
		AuthorID: admin.ID,
	})

	userPost1 := createPost(db, &db_models.Post{
		Title:    "The Future of AI in Content Creation",
		Content:  "Artificial intelligence is transforming the way we create and consume content. From automated drafting to intelligent recommendations, AI is changing the content creation landscape.\n\nIn this post, we explore how AI is being used in content creation today and what the future might hold.",
		Excerpt:  "Exploring how artificial intelligence is transforming the way we create and consume content.",
		Status:   db_models.PostStatusDraft,
		Likes:    3,
		AuthorID: user.ID,
	})

	userPost2 := createPost(db, &db_models.Post{
		Title:    "10 SEO Tips for Better Blog Performance",
		Content:  "Search Engine Optimization (SEO) is crucial for driving organic traffic to your blog. By implementing the right strategies, you can improve your blog's visibility and reach a wider audience.\n\nHere are 10 practical SEO tips to improve your blog's performance.",
		Excerpt:  "Practical SEO strategies to improve your blog's visibility and drive more organic traffic.",
		Status:   db_models.PostStatusDraft,
		Likes:    5,
		AuthorID: user.ID,
	})

	createCollection(db, &db_models.Collection{
		Name:        "Web Development",
		Description: "Articles about web development technologies and best practices",
		UserID:      admin.ID,
	}, adminPost1, adminPost2)

	createCollection(db, &db_models.Collection{
		Name:        "Content Marketing",
		Description: "Resources for effective content marketing",
		UserID:      user.ID,
	}, userPost1, userPost2)

	savePost(db, user, adminPost1)
	savePost(db, admin, userPost2)

	log.Println("Database seeded successfully!")
}

func upsertUser(db *gorm.DB, user *db_models.User, password string) *db_models.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	user.PasswordHash = hash

	var existing db_models.User
	err = db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return &existing
	}

	if err := db.Create(user).Error; err != nil {
		log.Fatalf("Failed to create user %s: %v", user.Email, err)
	}
	return user
}

func createPost(db *gorm.DB, post *db_models.Post) *db_models.Post {
	post.WordCount = utils.CountWords(post.Content)
	if err := db.Create(post).Error; err != nil {
		log.Fatalf("Failed to create post %q: %v", post.Title, err)
	}
	return post
}

func createCollection(db *gorm.DB, collection *db_models.Collection, posts ...*db_models.Post) {
	if err := db.Create(collection).Error; err != nil {
		log.Fatalf("Failed to create collection %q: %v", collection.Name, err)
	}
	for _, post := range posts {
		if err := db.Model(collection).Association("Posts").Append(post); err != nil {
			log.Fatalf("Failed to attach post to collection: %v", err)
		}
	}
}

func savePost(db *gorm.DB, user *db_models.User, post *db_models.Post) {
	saved := &db_models.SavedPost{
		UserID: user.ID,
		PostID: post.ID,
	}
	if err := db.Create(saved).Error; err != nil {
		log.Fatalf("Failed to save post: %v", err)
	}
}
