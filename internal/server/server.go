package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/programandoparacristo/plataforma/internal/config"
	"github.com/programandoparacristo/plataforma/internal/middleware"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
	"github.com/programandoparacristo/plataforma/pkg/webhook"

	articleHttp "github.com/programandoparacristo/plataforma/internal/modules/article/delivery/http"
	articleRepo "github.com/programandoparacristo/plataforma/internal/modules/article/repository"
	articleService "github.com/programandoparacristo/plataforma/internal/modules/article/service"

	challengeHttp "github.com/programandoparacristo/plataforma/internal/modules/challenge/delivery/http"
	challengeRepo "github.com/programandoparacristo/plataforma/internal/modules/challenge/repository"
	challengeService "github.com/programandoparacristo/plataforma/internal/modules/challenge/service"

	contactHttp "github.com/programandoparacristo/plataforma/internal/modules/contact/delivery/http"
	contactRepo "github.com/programandoparacristo/plataforma/internal/modules/contact/repository"
	contactService "github.com/programandoparacristo/plataforma/internal/modules/contact/service"

	engagementHttp "github.com/programandoparacristo/plataforma/internal/modules/engagement/delivery/http"
	engagementRepo "github.com/programandoparacristo/plataforma/internal/modules/engagement/repository"
	engagementService "github.com/programandoparacristo/plataforma/internal/modules/engagement/service"

	gamificationHttp "github.com/programandoparacristo/plataforma/internal/modules/gamification/delivery/http"
	gamificationRepo "github.com/programandoparacristo/plataforma/internal/modules/gamification/repository"
	gamificationService "github.com/programandoparacristo/plataforma/internal/modules/gamification/service"

	newsletterHttp "github.com/programandoparacristo/plataforma/internal/modules/newsletter/delivery/http"
	newsletterRepo "github.com/programandoparacristo/plataforma/internal/modules/newsletter/repository"
	newsletterService "github.com/programandoparacristo/plataforma/internal/modules/newsletter/service"

	profileHttp "github.com/programandoparacristo/plataforma/internal/modules/profile/delivery/http"
	profileService "github.com/programandoparacristo/plataforma/internal/modules/profile/service"

	statHttp "github.com/programandoparacristo/plataforma/internal/modules/stat/delivery/http"
	statService "github.com/programandoparacristo/plataforma/internal/modules/stat/service"

	userHttp "github.com/programandoparacristo/plataforma/internal/modules/user/delivery/http"
	userRepo "github.com/programandoparacristo/plataforma/internal/modules/user/repository"
	userService "github.com/programandoparacristo/plataforma/internal/modules/user/service"
)

type Server struct {
	engine *gin.Engine
	store  kvstore.Store
}

func NewServer(cfg *config.Config, store kvstore.Store) *Server {
	users := userRepo.NewUserRepository(store)
	articles := articleRepo.NewArticleRepository(store)
	challenges := challengeRepo.NewChallengeRepository(store)
	engagement := engagementRepo.NewEngagementRepository(store)
	markers := gamificationRepo.NewMarkerRepository(store)
	subscribers := newsletterRepo.NewNewsletterRepository(store)
	contacts := contactRepo.NewContactRepository(store)

	authSvc := userService.NewAuthService(users, cfg.JWTSecret, cfg.JWTTTL, cfg.SignupSecretCode)
	authHandler := userHttp.NewAuthHandler(authSvc)

	gamificationSvc := gamificationService.NewGamificationService(markers, users, challenges)
	gamificationHandler := gamificationHttp.NewGamificationHandler(gamificationSvc)

	articleSvc := articleService.NewArticleService(articles, users, gamificationSvc)
	articleHandler := articleHttp.NewArticleHandler(articleSvc)

	challengeSvc := challengeService.NewChallengeService(challenges, users, gamificationSvc)
	challengeHandler := challengeHttp.NewChallengeHandler(challengeSvc)

	engagementSvc := engagementService.NewEngagementService(engagement, articles, challenges, users)
	engagementHandler := engagementHttp.NewEngagementHandler(engagementSvc)

	profileSvc := profileService.NewProfileService(users)
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	newsletterSvc := newsletterService.NewNewsletterService(subscribers, webhook.NewClient(cfg.NewsletterWebhookURL))
	newsletterHandler := newsletterHttp.NewNewsletterHandler(newsletterSvc)

	contactSvc := contactService.NewContactService(contacts)
	contactHandler := contactHttp.NewContactHandler(contactSvc)

	statSvc := statService.NewStatService(users, articles, challenges, engagement, subscribers)
	statHandler := statHttp.NewStatHandler(statSvc)

	router := gin.New()
	setupCORS(router, cfg.AllowedOrigins)
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(users, cfg.JWTSecret)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Public content surface.
	router.GET("/articles", articleHandler.ListArticles)
	router.GET("/articles/:slug", articleHandler.GetArticleBySlug)
	router.GET("/comments/:contentType/:contentId", engagementHandler.ListComments)
	router.GET("/gamification/leaderboard", gamificationHandler.GetLeaderboard)
	router.GET("/profile/:userId", profileHandler.GetPublicProfile)
	router.GET("/likes/check", authMiddleware.OptionalAuth(), engagementHandler.CheckLike)
	router.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
	router.POST("/contact", contactHandler.CreateContact)

	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/articles", articleHandler.CreateArticle)
		protected.PUT("/articles/:id", articleHandler.UpdateArticle)
		protected.DELETE("/articles/:id", articleHandler.DeleteArticle)

		// The challenge catalog is members-only, reads included.
		protected.GET("/challenges", challengeHandler.ListChallenges)
		protected.GET("/challenges/:id", challengeHandler.GetChallenge)
		protected.POST("/challenges", challengeHandler.CreateChallenge)
		protected.PUT("/challenges/:id", challengeHandler.UpdateChallenge)
		protected.DELETE("/challenges/:id", challengeHandler.DeleteChallenge)

		protected.POST("/likes/toggle", engagementHandler.ToggleLike)
		protected.POST("/comments", engagementHandler.CreateComment)

		protected.POST("/gamification/complete-challenge", gamificationHandler.CompleteChallenge)
		protected.POST("/gamification/read-article", gamificationHandler.ReadArticle)

		protected.GET("/dashboard/stats", statHandler.GetDashboardStats)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		admin := protected.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.GET("/comments/pending", engagementHandler.ListPendingComments)
			admin.PUT("/comments/:contentType/:contentId/:commentId/moderate", engagementHandler.ModerateComment)
			admin.GET("/admin/stats", statHandler.GetAdminStats)
			admin.GET("/admin/users", statHandler.ListUsers)
			admin.GET("/contacts", contactHandler.ListContacts)
		}
	}

	return &Server{
		engine: router,
		store:  store,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
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
