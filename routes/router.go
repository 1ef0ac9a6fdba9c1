package routes

import (
	"net/http"

	"netflix-clone-backend/controllers"
	"netflix-clone-backend/middleware"
	"netflix-clone-backend/models"
	"netflix-clone-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

type Services struct {
	Auth     *services.AuthService
	Content  *services.ContentService
	Search   *services.SearchService
	Bookmark *services.BookmarkService
	Catalog  *services.CatalogService
}

type Options struct {
	CookieName   string
	CookieSecure bool
	CORSOrigins  []string
	Logger       hclog.Logger
}

// NewRouter mounts every route group under /api/v1. Everything except
// signup, login and logout requires a session.
func NewRouter(svc Services, opts Options) (*gin.Engine, error) {
	if err := controllers.RegisterValidators(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	authController := controllers.NewAuthController(svc.Auth, opts.CookieName, opts.CookieSecure, logger)
	contentController := controllers.NewContentController(svc.Content, logger)
	searchController := controllers.NewSearchController(svc.Search, logger)
	bookmarkController := controllers.NewBookmarkController(svc.Bookmark, logger)
	catalogController := controllers.NewCatalogController(svc.Catalog, logger)

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", "path", c.Request.URL.Path, "request_id", middleware.RequestIDFrom(c), "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.Envelope{Success: false, Message: "Internal server error"})
	}))
	r.Use(middleware.RequestID(), middleware.RequestLogger(logger.Named("http")), middleware.CORS(opts.CORSOrigins))

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	protected := middleware.AuthMiddleware(svc.Auth, opts.CookieName, logger.Named("session"))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/authCheck", protected, authController.AuthCheck)
		auth.PUT("/update", protected, authController.Update)

		// :id doubles as the category name on /content/:type/:id
		content := api.Group("/content/:type", protected)
		content.GET("/trending", contentController.Trending())
		content.GET("/:id", contentController.Category())
		content.GET("/:id/trailers", contentController.Trailers())
		content.GET("/:id/details", contentController.Details())
		content.GET("/:id/similar", contentController.Similar())
		content.GET("/:id/reviews", contentController.Reviews())
		content.GET("/:id/credits", contentController.Credits())
		content.GET("/:id/recommendations", contentController.Recommendations())
		content.GET("/:id/images", contentController.Images())

		search := api.Group("/search", protected)
		search.GET("/person/:query", searchController.Search(models.SearchTypePerson))
		search.GET("/movie/:query", searchController.Search(models.SearchTypeMovie))
		search.GET("/tv/:query", searchController.Search(models.SearchTypeTV))
		search.GET("/collection/:query", searchController.Search(models.SearchTypeCollection))
		search.GET("/history", searchController.History)
		search.POST("/addHistory", searchController.AddHistory)
		search.DELETE("/history/:id", searchController.RemoveHistory)

		actor := api.Group("/actor", protected)
		actor.GET("/popular", catalogController.PopularActors)
		actor.GET("/:id", catalogController.Actor())
		actor.GET("/:id/movies", catalogController.ActorMovies())
		actor.GET("/:id/tv", catalogController.ActorTV())
		actor.GET("/:id/images", catalogController.ActorImages())

		collection := api.Group("/collection", protected)
		collection.GET("/:id/details", catalogController.CollectionDetails())
		collection.GET("/:id/images", catalogController.CollectionImages())

		api.GET("/trending/:media/:window", protected, catalogController.Trending)

		bookmark := api.Group("/bookmark", protected)
		bookmark.GET("", bookmarkController.List)
		bookmark.POST("/add", bookmarkController.Add)
		bookmark.DELETE("/remove/:contentId", bookmarkController.Remove)
	}

	return r, nil
}
