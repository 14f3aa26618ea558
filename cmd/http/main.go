package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/delivery/http/routers"
	"clinicflow-service/internal/app/drivers/database"
	"clinicflow-service/internal/app/drivers/logger"
	smtpdriver "clinicflow-service/internal/app/drivers/mailer"
	"clinicflow-service/internal/app/drivers/messaging"
	"clinicflow-service/internal/app/drivers/storage"
	"clinicflow-service/internal/app/services/core/analytics"
	"clinicflow-service/internal/app/services/core/appointments"
	"clinicflow-service/internal/app/services/core/auth"
	"clinicflow-service/internal/app/services/core/availability"
	"clinicflow-service/internal/app/services/core/billing"
	"clinicflow-service/internal/app/services/core/clinicservices"
	"clinicflow-service/internal/app/services/core/notes"
	"clinicflow-service/internal/app/services/core/patients"
	"clinicflow-service/internal/app/services/core/psychologists"
	"clinicflow-service/internal/app/services/core/users"
	"clinicflow-service/internal/app/services/shared/locker"
	"clinicflow-service/internal/app/services/shared/mailer"
	"clinicflow-service/internal/app/services/shared/notifier"
	sharedredis "clinicflow-service/internal/app/services/shared/redis"
	"clinicflow-service/internal/app/services/shared/session"
	sharedstorage "clinicflow-service/internal/app/services/shared/storage"
	"clinicflow-service/internal/app/workers"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error during shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)

	queueService, err := notifier.NewQueueService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Error initializing queue service: %v", err)
	}

	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)
	mailerService := mailer.NewMailerService(smtpClient, queueService, bootstrap.InternalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB)
	psychologistMongoRepository := psychologists.NewPsychologistMongoRepository(bootstrap.MongoDB)
	serviceMongoRepository := clinicservices.NewServiceMongoRepository(bootstrap.MongoDB)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB)
	noteMongoRepository := notes.NewNoteMongoRepository(bootstrap.MongoDB)
	invoiceMongoRepository := billing.NewInvoiceMongoRepository(bootstrap.MongoDB)
	paymentMongoRepository := billing.NewPaymentMongoRepository(bootstrap.MongoDB)
	medicareClaimMongoRepository := billing.NewMedicareClaimMongoRepository(bootstrap.MongoDB)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, patientMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Users
	userUsecase := users.NewUserUsecase(userMongoRepository, patientMongoRepository, psychologistMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Psychologists
	psychologistUsecase := psychologists.NewPsychologistUsecase(psychologistMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	psychologistController := psychologists.NewPsychologistController(bootstrap.Logger, psychologistUsecase)

	// Services
	serviceUsecase := clinicservices.NewServiceUsecase(serviceMongoRepository, redisRepository, bootstrap.Logger)
	serviceController := clinicservices.NewServiceController(bootstrap.Logger, serviceUsecase)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(psychologistMongoRepository, appointmentMongoRepository, serviceUsecase, bootstrap.InternalConfig, bootstrap.Logger)
	availabilityController := availability.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Billing
	billingUsecase := billing.NewBillingUsecase(
		invoiceMongoRepository,
		paymentMongoRepository,
		medicareClaimMongoRepository,
		patientMongoRepository,
		serviceUsecase,
		minioStorage,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	billingController := billing.NewBillingController(bootstrap.Logger, billingUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		psychologistMongoRepository,
		serviceUsecase,
		billingUsecase,
		lockerService,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Notes
	noteUsecase := notes.NewNoteUsecase(noteMongoRepository, patientMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	noteController := notes.NewNoteController(bootstrap.Logger, noteUsecase)

	// Analytics
	analyticsUsecase := analytics.NewAnalyticsUsecase(appointmentMongoRepository, patientMongoRepository, invoiceMongoRepository, bootstrap.Logger)
	analyticsController := analytics.NewAnalyticsController(bootstrap.Logger, analyticsUsecase)

	// Background workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	var workerWg sync.WaitGroup

	reminderWorker := workers.NewReminderWorker(
		appointmentMongoRepository,
		patientMongoRepository,
		psychologistMongoRepository,
		redisRepository,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	mailerWorker := workers.NewMailerWorker(queueService, mailerService, bootstrap.InternalConfig, bootstrap.Logger)

	workerWg.Add(2)
	go func() {
		defer workerWg.Done()
		reminderWorker.Run(workerCtx)
	}()
	go func() {
		defer workerWg.Done()
		mailerWorker.Run(workerCtx)
	}()

	bootstrap.WorkerStop = func() {
		workerCancel()
		workerWg.Wait()
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		patientController,
		psychologistController,
		serviceController,
		availabilityController,
		appointmentController,
		noteController,
		billingController,
		analyticsController,
	)
}
