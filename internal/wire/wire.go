package wire

import (
	"Meenews/internal/api"
	"Meenews/internal/api/config"
	"Meenews/internal/api/handler"
	"Meenews/internal/job"
	"Meenews/internal/pkg/cron"
	"Meenews/internal/pkg/kafka"
	"Meenews/internal/repository"
	"Meenews/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	contentRegistry := repository.NewContentRegistry(db)
	newsRepo := repository.NewNewsRepo(db)
	interactionRepo := repository.NewInteractionRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	tagRepo := repository.NewTagRepo(db)
	moderationRepo := repository.NewModerationRepo(db)
	statsRepo := repository.NewStatsRepo(db)
	recommendationRepo := repository.NewRecommendationRepo(db)
	trendingRepo := repository.NewTrendingRepo(db)
	profileRepo := repository.NewProfileRepo(db)

	statsService := service.NewStatsService(statsRepo)
	candidateSource := service.NewProfileWeightSource(newsRepo, profileRepo)
	recommendationService := service.NewRecommendationService(recommendationRepo, candidateSource, &cfg.Recommend)
	contentService := service.NewContentService(contentRegistry, newsRepo, statsService, recommendationService)
	interactionService := service.NewInteractionService(contentService, interactionRepo, commentRepo, moderationRepo, statsService, recommendationService)
	tagService := service.NewTagService(contentService, tagRepo)
	moderationService := service.NewModerationService(contentService, moderationRepo)
	trendingService := service.NewTrendingService(trendingRepo, &cfg.Trending)
	profileService := service.NewProfileService(profileRepo)

	handlers := &api.HandlersGroup{
		ContentHandler:     handler.NewContentHandler(contentService, statsService),
		InteractionHandler: handler.NewInteractionHandler(interactionService),
		CommentHandler:     handler.NewCommentHandler(interactionService),
		TagHandler:         handler.NewTagHandler(tagService),
		ModerationHandler:  handler.NewModerationHandler(moderationService),
		RecommendHandler:   handler.NewRecommendHandler(recommendationService),
		TrendingHandler:    handler.NewTrendingHandler(trendingService),
		ProfileHandler:     handler.NewProfileHandler(profileService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, interactionService, statsService)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewStatsRecomputeJob(statsService),
		job.NewTrendingJob(trendingService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
