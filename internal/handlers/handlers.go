package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"peerskill/api/internal/cache"
	"peerskill/api/internal/config"
	"peerskill/api/internal/middleware"
	"peerskill/api/internal/models"
	"peerskill/api/internal/repository"
	"peerskill/api/internal/service"
	"peerskill/api/internal/storage"
)

type HandlerSet struct {
	log                 zerolog.Logger
	cfg                 *config.AppConfig
	db                  *pgxpool.Pool
	cache               *redis.Client
	authService         *service.AuthService
	peerService         *service.PeerService
	ratingService       *service.RatingService
	sessionService      *service.SessionService
	adminService        *service.AdminService
	avatarService       *service.AvatarService
	notificationService *service.NotificationService
	users               *repository.UserRepository
	requests            *repository.RequestRepository
	sessions            *repository.SessionRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cacheClient *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	leaderboard := cache.NewLeaderboardCache(cacheClient)

	return HandlerSet{
		log:                 log,
		cfg:                 cfg,
		db:                  db,
		cache:               cacheClient,
		authService:         service.NewAuthService(userRepo, cfg, log),
		peerService:         service.NewPeerService(userRepo, leaderboard, cfg, log),
		ratingService:       service.NewRatingService(userRepo, notificationRepo, log),
		sessionService:      service.NewSessionService(userRepo, sessionRepo, cfg, log),
		adminService:        service.NewAdminService(userRepo, requestRepo, sessionRepo, notificationRepo, log),
		avatarService:       service.NewAvatarService(userRepo, store, log),
		notificationService: service.NewNotificationService(notificationRepo, log),
		users:               userRepo,
		requests:            requestRepo,
		sessions:            sessionRepo,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)

	authed := router.Group("")
	authed.Use(middleware.Auth(h.cfg, h.users))
	authed.POST("/me", h.Me)
	authed.POST("/me/avatar", h.UploadAvatar)
	authed.POST("/update-profile", h.UpdateProfile)
	authed.POST("/recommendations", h.Recommendations)
	authed.POST("/peers/random", h.RandomPeers)
	authed.POST("/peers/search", h.SearchPeers)
	authed.GET("/peers/leaderboard", h.Leaderboard)
	authed.POST("/request-skill", h.RequestSkill)
	authed.POST("/rate-peer", h.RatePeer)
	authed.POST("/schedule-session", h.ScheduleSession)
	authed.POST("/my-sessions", h.MySessions)
	authed.POST("/notifications", h.ListNotifications)
	authed.POST("/notifications/mark-read", h.MarkNotificationsRead)

	admin := router.Group("/admin")
	admin.Use(
		middleware.Auth(h.cfg, h.users),
		middleware.RequireRoles(models.UserRoleAdmin),
	)
	admin.GET("/users", h.AdminListUsers)
	admin.GET("/requests", h.AdminListRequests)
	admin.GET("/sessions", h.AdminListSessions)
	admin.DELETE("/user", h.AdminDeleteUser)
	admin.POST("/update-points", h.AdminUpdatePoints)
}

func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}

func isSelfOrAdmin(principal models.User, email string) bool {
	return principal.Role == models.UserRoleAdmin || strings.EqualFold(principal.Email, email)
}

// respondError converts service/repository failures into the HTTP taxonomy.
// Anything unrecognized is a store failure and stays generic.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrSelfRating),
		errors.Is(err, service.ErrUnsupportedAvatar):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrIdentityMismatch):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
	}
}

type userResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Contact     string   `json:"contact"`
	Teach       []string `json:"teach"`
	Learn       []string `json:"learn"`
	StudyYear   string   `json:"studyYear"`
	Branch      string   `json:"branch"`
	SkillPoints int      `json:"skillPoints"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Avatar      *string  `json:"avatar,omitempty"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Contact:     u.Contact,
		Teach:       u.Teach,
		Learn:       u.Learn,
		StudyYear:   u.StudyYear,
		Branch:      u.Branch,
		SkillPoints: u.SkillPoints,
		Rating:      u.Rating,
		Reviews:     u.Reviews,
		Avatar:      u.AvatarURL,
	}
}

func toUserResponses(users []models.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
