package server

import (
	"log"
	"strings"
	"time"

	"anoa.com/wisatapedia/internal/config"
	"anoa.com/wisatapedia/internal/middleware"
	"anoa.com/wisatapedia/pkg/storage"

	articleHttp "anoa.com/wisatapedia/internal/modules/article/delivery/http"
	articleRepo "anoa.com/wisatapedia/internal/modules/article/repository"
	articleService "anoa.com/wisatapedia/internal/modules/article/service"

	commentHttp "anoa.com/wisatapedia/internal/modules/comment/delivery/http"
	commentRepo "anoa.com/wisatapedia/internal/modules/comment/repository"
	commentService "anoa.com/wisatapedia/internal/modules/comment/service"

	postHttp "anoa.com/wisatapedia/internal/modules/communitypost/delivery/http"
	postRepo "anoa.com/wisatapedia/internal/modules/communitypost/repository"
	postService "anoa.com/wisatapedia/internal/modules/communitypost/service"

	eventHttp "anoa.com/wisatapedia/internal/modules/event/delivery/http"
	eventRepo "anoa.com/wisatapedia/internal/modules/event/repository"
	eventService "anoa.com/wisatapedia/internal/modules/event/service"

	geoHttp "anoa.com/wisatapedia/internal/modules/geography/delivery/http"
	geoRepo "anoa.com/wisatapedia/internal/modules/geography/repository"
	geoService "anoa.com/wisatapedia/internal/modules/geography/service"

	mediaHttp "anoa.com/wisatapedia/internal/modules/media/delivery/http"
	mediaRepo "anoa.com/wisatapedia/internal/modules/media/repository"
	mediaService "anoa.com/wisatapedia/internal/modules/media/service"

	notiHttp "anoa.com/wisatapedia/internal/modules/notification/delivery/http"
	notifRepo "anoa.com/wisatapedia/internal/modules/notification/repository"
	notifService "anoa.com/wisatapedia/internal/modules/notification/service"

	placeHttp "anoa.com/wisatapedia/internal/modules/place/delivery/http"
	placeRepo "anoa.com/wisatapedia/internal/modules/place/repository"
	placeService "anoa.com/wisatapedia/internal/modules/place/service"

	ratingHttp "anoa.com/wisatapedia/internal/modules/rating/delivery/http"
	ratingRepo "anoa.com/wisatapedia/internal/modules/rating/repository"
	ratingService "anoa.com/wisatapedia/internal/modules/rating/service"

	reactionHttp "anoa.com/wisatapedia/internal/modules/reaction/delivery/http"
	reactionRepo "anoa.com/wisatapedia/internal/modules/reaction/repository"
	reactionService "anoa.com/wisatapedia/internal/modules/reaction/service"

	searchService "anoa.com/wisatapedia/internal/modules/search/service"

	userHttp "anoa.com/wisatapedia/internal/modules/user/delivery/http"
	userRepo "anoa.com/wisatapedia/internal/modules/user/repository"
	userService "anoa.com/wisatapedia/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	userRepository := userRepo.NewUserRepository(db)

	mediaStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	meiliHost := cfg.MeiliSearchHost
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}
	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	searchSvc := searchService.NewSearchService(meiliClient)

	authSvc := userService.NewAuthService(userRepository)
	authHandler := userHttp.NewAuthHandler(authSvc)

	geographyRepository := geoRepo.NewGeographyRepository(db)
	geographySvc := geoService.NewGeographyService(geographyRepository)
	geographyHandler := geoHttp.NewGeographyHandler(geographySvc)

	ratingRepository := ratingRepo.NewRatingRepository(db)
	ratingSvc := ratingService.NewRatingService(ratingRepository)
	ratingHandler := ratingHttp.NewRatingHandler(ratingSvc)

	placeRepository := placeRepo.NewPlaceRepository(db)
	placeSvc := placeService.NewPlaceService(placeRepository, geographyRepository, ratingSvc, searchSvc)
	placeHandler := placeHttp.NewPlaceHandler(placeSvc)

	eventRepository := eventRepo.NewEventRepository(db)
	eventSvc := eventService.NewEventService(eventRepository, placeRepository, ratingSvc)
	eventHandler := eventHttp.NewEventHandler(eventSvc)

	// Comment engine, shared by articles and community posts
	commentRepository := commentRepo.NewCommentRepository(db)
	ownerLookup := commentRepo.NewOwnerLookup(db)
	userLookup := commentRepo.NewUserLookup(db)
	commentSvc := commentService.NewCommentService(commentRepository, ownerLookup, userLookup)
	commentHandler := commentHttp.NewCommentHandler(commentSvc)

	articleRepository := articleRepo.NewArticleRepository(db)
	articleSvc := articleService.NewArticleService(articleRepository, commentSvc, ratingSvc, searchSvc)
	articleHandler := articleHttp.NewArticleHandler(articleSvc)

	postRepository := postRepo.NewPostRepository(db)
	postSvc := postService.NewPostService(postRepository, commentSvc, redisClient)
	postHandler := postHttp.NewPostHandler(postSvc)

	mediaRepository := mediaRepo.NewMediaRepository(db)
	mediaSvc := mediaService.NewMediaService(mediaRepository, mediaStorage)
	mediaHandler := mediaHttp.NewMediaHandler(mediaSvc)

	notificationRepository := notifRepo.NewNotificationRepository(db)
	notificationSvc := notifService.NewNotificationService(notificationRepository, redisClient)
	notificationHandler := notiHttp.NewNotificationHandler(notificationSvc, redisClient)

	reactionRepository := reactionRepo.NewReactionRepository(db)
	reactionSvc := reactionService.NewReactionService(reactionRepository, redisClient, notificationSvc, articleRepository, postRepository)
	reactionHandler := reactionHttp.NewReactionHandler(reactionSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepository)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	public := api.Group("")
	public.Use(authMiddleware.OptionalAuth())
	{
		// Geography reads
		public.GET("/continents", geographyHandler.ListContinents)
		public.GET("/countries", geographyHandler.ListCountries)
		public.GET("/regions", geographyHandler.ListRegions)
		public.GET("/regions/slug/:slug", geographyHandler.GetRegionBySlug)
		public.GET("/districts", geographyHandler.ListDistricts)
		public.GET("/wards", geographyHandler.ListWards)

		// Place reads
		public.GET("/locations", placeHandler.ListLocations)
		public.GET("/locations/:id", placeHandler.GetLocation)
		public.GET("/locations/slug/:slug", placeHandler.GetLocationBySlug)
		public.GET("/accommodations", placeHandler.ListAccommodations)
		public.GET("/accommodations/:id", placeHandler.GetAccommodation)
		public.GET("/foods", placeHandler.ListFoods)
		public.GET("/foods/:id", placeHandler.GetFood)

		// Event reads
		public.GET("/organizers", eventHandler.ListOrganizers)
		public.GET("/organizers/:id", eventHandler.GetOrganizer)
		public.GET("/events", eventHandler.ListEvents)
		public.GET("/events/:id", eventHandler.GetEvent)
		public.GET("/events/slug/:slug", eventHandler.GetEventBySlug)

		// Content reads
		public.GET("/articles", articleHandler.GetArticles)
		public.GET("/articles/slug/:slug", articleHandler.GetArticleBySlug)
		public.GET("/posts", postHandler.GetFeed)
		public.GET("/posts/:id", postHandler.GetPost)
		public.GET("/users/:username", authHandler.PublicProfile)

		// Attachment reads
		public.GET("/ratings/:refType/:refID", ratingHandler.GetRatings)
		public.GET("/ratings/:refType/:refID/summary", ratingHandler.GetSummary)
		public.GET("/media/for/:refType/:refID", mediaHandler.ListForReference)
		public.GET("/media/:id", mediaHandler.GetMedia)
		public.GET("/comments/for/:ownerType/:ownerID", commentHandler.ListTopLevel)
		public.GET("/comments/for/:ownerType/:ownerID/count", commentHandler.CountForOwner)
		public.GET("/comments/:id/replies", commentHandler.ListReplies)
		public.GET("/reactions/:refType/:refID", reactionHandler.GetReactions)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Profile
		protected.GET("/profile/me", authHandler.Me)
		protected.PUT("/profile", authHandler.UpdateProfile)

		// Geography writes, reference data is curated
		admin := protected.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.POST("/continents", geographyHandler.CreateContinent)
			admin.PUT("/continents/:id", geographyHandler.RenameContinent)
			admin.DELETE("/continents/:id", geographyHandler.DeleteContinent)
			admin.POST("/countries", geographyHandler.CreateCountry)
			admin.PUT("/countries/:id", geographyHandler.RenameCountry)
			admin.DELETE("/countries/:id", geographyHandler.DeleteCountry)
			admin.POST("/regions", geographyHandler.CreateRegion)
			admin.PUT("/regions/:id", geographyHandler.RenameRegion)
			admin.DELETE("/regions/:id", geographyHandler.DeleteRegion)
			admin.POST("/districts", geographyHandler.CreateDistrict)
			admin.PUT("/districts/:id", geographyHandler.RenameDistrict)
			admin.DELETE("/districts/:id", geographyHandler.DeleteDistrict)
			admin.POST("/wards", geographyHandler.CreateWard)
			admin.PUT("/wards/:id", geographyHandler.RenameWard)
			admin.DELETE("/wards/:id", geographyHandler.DeleteWard)
		}

		// Place and event writes, editors keep the catalog
		editorial := protected.Group("")
		editorial.Use(authMiddleware.RequireRole("admin", "editor"))
		{
			editorial.POST("/locations", placeHandler.CreateLocation)
			editorial.PUT("/locations/:id", placeHandler.UpdateLocation)
			editorial.DELETE("/locations/:id", placeHandler.DeleteLocation)
			editorial.POST("/accommodations", placeHandler.CreateAccommodation)
			editorial.PUT("/accommodations/:id", placeHandler.UpdateAccommodation)
			editorial.DELETE("/accommodations/:id", placeHandler.DeleteAccommodation)
			editorial.POST("/foods", placeHandler.CreateFood)
			editorial.PUT("/foods/:id", placeHandler.UpdateFood)
			editorial.DELETE("/foods/:id", placeHandler.DeleteFood)

			editorial.POST("/organizers", eventHandler.CreateOrganizer)
			editorial.PUT("/organizers/:id", eventHandler.UpdateOrganizer)
			editorial.DELETE("/organizers/:id", eventHandler.DeleteOrganizer)
			editorial.POST("/events", eventHandler.CreateEvent)
			editorial.PUT("/events/:id", eventHandler.UpdateEvent)
			editorial.DELETE("/events/:id", eventHandler.DeleteEvent)

			editorial.POST("/articles", articleHandler.CreateArticle)
		}

		// Articles (author-or-admin enforced in the service)
		protected.GET("/articles/me", articleHandler.GetMyArticles)
		protected.PUT("/articles/:id", articleHandler.UpdateArticle)
		protected.DELETE("/articles/:id", articleHandler.DeleteArticle)

		// Community posts
		protected.POST("/posts", postHandler.CreatePost)
		protected.PUT("/posts/:id", postHandler.UpdatePost)
		protected.DELETE("/posts/:id", postHandler.DeletePost)

		// Ratings
		protected.POST("/ratings", ratingHandler.CreateRating)
		protected.PUT("/ratings/:id", ratingHandler.UpdateRating)
		protected.DELETE("/ratings/:id", ratingHandler.DeleteRating)

		// Media
		protected.POST("/media", mediaHandler.UploadMedia)
		protected.PUT("/media/:id", mediaHandler.UpdateMedia)
		protected.DELETE("/media/:id", mediaHandler.DeleteMedia)

		// Comments
		protected.POST("/comments", commentHandler.PostComment)
		protected.PUT("/comments/:id", commentHandler.EditComment)
		protected.PATCH("/comments/:id/status", commentHandler.ModerateComment)

		// Reactions
		protected.POST("/reactions", reactionHandler.ToggleReaction)

		// Notifications
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
