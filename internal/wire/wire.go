package wire

import (
	"Wildsalt/internal/api"
	"Wildsalt/internal/api/handler"
	"Wildsalt/internal/job"
	"Wildsalt/internal/pkg/cron"
	"Wildsalt/internal/pkg/security"
	"Wildsalt/internal/repository"
	"Wildsalt/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	CronManager *cron.Manager
}

func BuildApplication(db *mongo.Database) (*ApplicationContainer, error) {
	articleRepo := repository.NewArticleRepo(db)
	viewRepo := repository.NewViewRepo(db)
	reactionRepo := repository.NewReactionRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	mediaRepo := repository.NewMediaRepo(db)

	viewService := service.NewViewService(viewRepo, articleRepo)
	reactionService := service.NewReactionService(reactionRepo, articleRepo)
	authService := service.NewAuthService(userRepo, security.NewCredentialVerifier(), security.NewPasswordHasher())
	articleService := service.NewArticleService(articleRepo, categoryRepo, viewRepo, reactionRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	settingService := service.NewSettingService(settingRepo)
	mediaService := service.NewMediaService(mediaRepo)
	feedService := service.NewFeedService(articleRepo, settingRepo)

	handlers := &api.HandlersGroup{
		ViewHandler:     handler.NewViewHandler(viewService),
		ReactionHandler: handler.NewReactionHandler(reactionService),
		AuthHandler:     handler.NewAuthHandler(authService),
		ArticleHandler:  handler.NewArticleHandler(articleService),
		CommentHandler:  handler.NewCommentHandler(commentService),
		CategoryHandler: handler.NewCategoryHandler(categoryService),
		MediaHandler:    handler.NewMediaHandler(mediaService),
		SettingHandler:  handler.NewSettingHandler(settingService),
		FeedHandler:     handler.NewFeedHandler(feedService),
	}

	router := api.SetupRouter(handlers)

	reconcileJob := job.NewReconcileJob(articleRepo, viewRepo, reactionRepo, commentRepo)
	cronManager := cron.NewCronManager(reconcileJob)

	return &ApplicationContainer{
		Router:      router,
		CronManager: cronManager,
	}, nil
}
