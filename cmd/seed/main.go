package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"miniblog/internal/config"
	"miniblog/internal/db"
	"miniblog/internal/model"
	"miniblog/internal/repository"
)

// Seeds a handful of demo users, posts and comments for local development.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	users := seedUsers(ctx, userRepo)
	posts := seedPosts(ctx, postRepo, users)
	seedComments(ctx, commentRepo, users, posts)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, repo repository.UserRepository) []*model.User {
	names := []string{"alice", "bob", "carol"}

	users := make([]*model.User, 0, len(names))
	for _, name := range names {
		if existing, err := repo.FindByUsername(ctx, name); err == nil {
			log.Printf("User %q already exists, skipping", name)
			users = append(users, existing)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(name+"123"), 10)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := &model.User{
			Username:     name,
			PasswordHash: string(hash),
			Avatar:       model.DefaultAvatar,
		}
		if err := repo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %q: %v", name, err)
		}
		log.Printf("Created user %q (password %q)", name, name+"123")
		users = append(users, user)
	}
	return users
}

func seedPosts(ctx context.Context, repo repository.PostRepository, users []*model.User) []*model.Post {
	titles := []string{
		"Hello, world",
		"Notes from the weekend",
		"On keeping a blog small",
	}

	posts := make([]*model.Post, 0, len(titles))
	for i, title := range titles {
		post := &model.Post{
			Title:      title,
			Content:    "<p>Seeded content for " + title + ".</p>",
			DatePosted: time.Now().UTC().Add(-time.Duration(len(titles)-i) * time.Hour),
			UserID:     users[i%len(users)].ID,
		}
		if err := repo.Create(ctx, post); err != nil {
			log.Fatalf("Failed to create post %q: %v", title, err)
		}
		posts = append(posts, post)
	}
	log.Printf("Created %d posts", len(posts))
	return posts
}

func seedComments(ctx context.Context, repo repository.CommentRepository, users []*model.User, posts []*model.Post) {
	guest := "drive-by reader"
	created := 0

	for _, post := range posts {
		authored := &model.Comment{
			Content:    "First!",
			DatePosted: time.Now().UTC().Add(-30 * time.Minute),
			UserID:     &users[0].ID,
			PostID:     post.ID,
		}
		if err := repo.Create(ctx, authored); err != nil {
			log.Fatalf("Failed to create comment: %v", err)
		}

		reply := &model.Comment{
			Content:    "Welcome aboard.",
			DatePosted: time.Now().UTC().Add(-20 * time.Minute),
			GuestName:  &guest,
			PostID:     post.ID,
			ParentID:   &authored.ID,
		}
		if err := repo.Create(ctx, reply); err != nil {
			log.Fatalf("Failed to create reply: %v", err)
		}
		created += 2
	}
	log.Printf("Created %d comments", created)
}
