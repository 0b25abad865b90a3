package wire

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joeljosepholawale/campustng/internal/api"
	"github.com/joeljosepholawale/campustng/internal/api/config"
	"github.com/joeljosepholawale/campustng/internal/api/handler"
	"github.com/joeljosepholawale/campustng/internal/job"
	"github.com/joeljosepholawale/campustng/internal/pkg/cron"
	"github.com/joeljosepholawale/campustng/internal/pkg/mailer"
	"github.com/joeljosepholawale/campustng/internal/pkg/payment"
	"github.com/joeljosepholawale/campustng/internal/pkg/push"
	"github.com/joeljosepholawale/campustng/internal/repository"
	"github.com/joeljosepholawale/campustng/internal/service"
)

// ApplicationContainer bundles the top level components the server runs.
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	CronManager *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	followRepo := repository.NewFollowRepo(db)
	schoolRepo := repository.NewSchoolRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	serviceRepo := repository.NewServiceRepo(db)
	requestRepo := repository.NewRequestRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	savedSearchRepo := repository.NewSavedSearchRepo(db)
	reportRepo := repository.NewReportRepo(db)
	conversationRepo := repository.NewConversationRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	boostPlanRepo := repository.NewBoostPlanRepo(db)
	forumRepo := repository.NewForumRepo(db)
	studyGroupRepo := repository.NewStudyGroupRepo(db)
	outboxRepo := repository.NewOutboxRepo(db)

	gateway := payment.NewFlutterwaveGateway()
	brevoMailer := mailer.NewBrevoMailer()
	expoSender := push.NewExpoSender()

	notificationSvc := service.NewNotificationService(notificationRepo, conversationRepo, userRepo, outboxRepo)
	authSvc := service.NewAuthService(userRepo, outboxRepo)
	userSvc := service.NewUserService(userRepo, followRepo, productRepo, reviewRepo, savedSearchRepo, reportRepo, notificationSvc)
	productSvc := service.NewProductService(productRepo, categoryRepo, followRepo, userRepo, notificationSvc)
	listingSvc := service.NewListingService(serviceRepo, requestRepo)
	chatSvc := service.NewChatService(conversationRepo, productRepo, userRepo, notificationSvc)
	reviewSvc := service.NewReviewService(reviewRepo, userRepo, notificationSvc)
	communitySvc := service.NewCommunityService(forumRepo, studyGroupRepo, userRepo)
	schoolSvc := service.NewSchoolService(schoolRepo)
	boostSvc := service.NewBoostService(transactionRepo, boostPlanRepo, productRepo, userRepo, gateway, notificationSvc)
	adminSvc := service.NewAdminService(userRepo, productRepo, serviceRepo, requestRepo, reportRepo,
		categoryRepo, boostPlanRepo, transactionRepo, schoolRepo, notificationSvc)

	handlers := &api.HandlersGroup{
		AuthHandler:         handler.NewAuthHandler(authSvc),
		UserHandler:         handler.NewUserHandler(userSvc),
		ProductHandler:      handler.NewProductHandler(productSvc),
		ListingHandler:      handler.NewListingHandler(listingSvc),
		ChatHandler:         handler.NewChatHandler(chatSvc),
		ReviewHandler:       handler.NewReviewHandler(reviewSvc),
		CommunityHandler:    handler.NewCommunityHandler(communitySvc),
		SchoolHandler:       handler.NewSchoolHandler(schoolSvc),
		BoostHandler:        handler.NewBoostHandler(boostSvc),
		NotificationHandler: handler.NewNotificationHandler(notificationSvc),
		UploadHandler:       handler.NewUploadHandler(),
		AdminHandler:        handler.NewAdminHandler(adminSvc),
		WsHandler:           handler.NewWsHandler(chatSvc, communitySvc),
	}

	router := api.SetupRouter(handlers)

	outboxJob := job.NewOutboxJob(outboxRepo, brevoMailer, expoSender)
	promotionExpiryJob := job.NewPromotionExpiryJob(productRepo)
	cronMgr := cron.NewCronManager(outboxJob, promotionExpiryJob)

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronMgr,
	}, nil
}
