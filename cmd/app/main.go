package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"inkwell/cmd/fx/admin_fx"
	"inkwell/cmd/fx/assist_fx"
	"inkwell/cmd/fx/auth_fx"
	"inkwell/cmd/fx/collection_fx"
	"inkwell/cmd/fx/db_fx"
	"inkwell/cmd/fx/post_fx"
	"inkwell/internal/api/controllers"
	"inkwell/internal/infra"
	"inkwell/internal/models/db_models"
	"inkwell/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		auth_fx.Module,
		post_fx.Module,
		collection_fx.Module,
		admin_fx.Module,
		assist_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	postController *controllers.PostController,
	collectionController *controllers.CollectionController,
	adminController *controllers.AdminController,
	assistController *controllers.AssistController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SessionMiddleware())

	RegisterRoutes(r, authController, postController, collectionController, adminController, assistController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	postController *controllers.PostController,
	collectionController *controllers.CollectionController,
	adminController *controllers.AdminController,
	assistController *controllers.AssistController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.SignUp)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", authController.Logout)
	authGroup.GET("/me", middleware.RequireAuth(), authController.Me)

	postsGroup := r.Group("/posts")
	postsGroup.GET("", postController.ListPosts)
	postsGroup.GET("/saved", middleware.RequireAuth(), postController.SavedPosts)
	postsGroup.GET("/search", middleware.RequireAuth(), postController.SearchPosts)
	postsGroup.GET("/:id", postController.GetPost)
	postsGroup.POST("", middleware.RequireAuth(), postController.CreatePost)
	postsGroup.PUT("/:id", middleware.RequireAuth(), postController.UpdatePost)
	postsGroup.DELETE("/:id", middleware.RequireAuth(), postController.DeletePost)
	postsGroup.POST("/:id/like", middleware.RequireAuth(), postController.LikePost)
	postsGroup.POST("/:id/save", middleware.RequireAuth(), postController.ToggleSave)

	collectionsGroup := r.Group("/collections", middleware.RequireAuth())
	collectionsGroup.GET("", collectionController.ListCollections)
	collectionsGroup.POST("", collectionController.CreateCollection)
	collectionsGroup.GET("/:id", collectionController.GetCollection)
	collectionsGroup.PUT("/:id", collectionController.UpdateCollection)
	collectionsGroup.DELETE("/:id", collectionController.DeleteCollection)
	collectionsGroup.POST("/:id/posts", collectionController.TogglePost)

	adminGroup := r.Group("/admin", middleware.RequireRole(db_models.RoleAdmin))
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.GET("/stats", adminController.Stats)
	adminGroup.PUT("/users/:id/role", adminController.UpdateUserRole)

	generateGroup := r.Group("/generate", middleware.RequireAuth())
	generateGroup.POST("/improve", assistController.ImproveContent)
}
