package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"frontdesk/internal/shared/config"
)

type NotificationService interface {
	SendNotification(ctx context.Context, notification *EmailNotification) error

	SendBookingConfirmed(ctx context.Context, email, name, ticketCode, locationName string,
		scheduledAt time.Time) error
	SendNowServing(ctx context.Context, email, name, ticketCode, locationName string) error

	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type EmailNotificationService struct {
	config       config.KafkaConfig
	producer     NotificationProducer
	consumer     NotificationConsumer
	emailService EmailService

	// State
	isRunning bool
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewEmailNotificationService(cfg config.KafkaConfig) (NotificationService, error) {
	var emailService EmailService
	smtpConfig := NewSMTPConfigFromEnv()
	if smtpConfig.IsConfigured() {
		smtp, err := NewSMTPEmailService(smtpConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create SMTP email service: %w", err)
		}
		emailService = smtp
	} else {
		log.Printf("📧 SMTP not configured, emails will be logged only")
		emailService = NewMockEmailService()
	}

	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Brokers
	producerConfig.NotificationTopic = cfg.NotificationTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Brokers
	consumerConfig.Topics = []string{cfg.NotificationTopic}
	consumerConfig.GroupID = cfg.ConsumerGroupID

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, emailService)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	log.Printf("📧 Email notification service initialized (Brokers: %v, Topic: %s)", cfg.Brokers, cfg.NotificationTopic)

	return &EmailNotificationService{
		config:       cfg,
		producer:     producer,
		consumer:     consumer,
		emailService: emailService,
		isRunning:    false,
		ctx:          ctx,
		cancel:       cancel,
	}, nil
}

func (ens *EmailNotificationService) Start(ctx context.Context) error {
	ens.mu.Lock()
	defer ens.mu.Unlock()

	if ens.isRunning {
		return fmt.Errorf("notification service is already running")
	}

	log.Printf("🚀 Starting Email Notification Service...")

	numWorkers := ens.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 3
	}

	err := ens.consumer.StartConsumers(ens.ctx, numWorkers)
	if err != nil {
		return fmt.Errorf("failed to start consumers: %w", err)
	}

	ens.isRunning = true
	log.Printf("✅ Email Notification Service started successfully")

	return nil
}

func (ens *EmailNotificationService) Stop() error {
	ens.mu.Lock()
	defer ens.mu.Unlock()

	if !ens.isRunning {
		return fmt.Errorf("notification service is not running")
	}

	log.Printf("🛑 Stopping Email Notification Service...")

	ens.cancel()

	if err := ens.consumer.Stop(); err != nil {
		log.Printf("Error stopping consumer: %v", err)
	}

	if err := ens.producer.Close(); err != nil {
		log.Printf("Error closing producer: %v", err)
	}

	ens.isRunning = false
	log.Printf("✅ Email Notification Service stopped")

	return nil
}

func (ens *EmailNotificationService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	return ens.producer.PublishNotification(ctx, notification)
}

func (ens *EmailNotificationService) SendBookingConfirmed(ctx context.Context, email, name, ticketCode, locationName string,
	scheduledAt time.Time) error {

	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingConfirmed).
		WithRecipient(email, name).
		WithTicketContext(ticketCode, locationName).
		WithSubject(fmt.Sprintf("✅ Appointment Confirmed at %s", locationName)).
		WithTemplateData(map[string]interface{}{
			"scheduled_at": scheduledAt.Format(time.RFC1123),
		}).
		Build()

	return ens.producer.PublishNotification(ctx, notification)
}

func (ens *EmailNotificationService) SendNowServing(ctx context.Context, email, name, ticketCode, locationName string) error {
	notification := NewNotificationBuilder().
		WithType(NotificationTypeNowServing).
		WithRecipient(email, name).
		WithTicketContext(ticketCode, locationName).
		WithSubject(fmt.Sprintf("🔔 It's your turn at %s", locationName)).
		Build()

	return ens.producer.PublishNotification(ctx, notification)
}

func (ens *EmailNotificationService) HealthCheck(ctx context.Context) error {
	ens.mu.RLock()
	isRunning := ens.isRunning
	ens.mu.RUnlock()

	if !isRunning {
		return fmt.Errorf("notification service is not running")
	}

	if err := ens.producer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("producer health check failed: %w", err)
	}

	if err := ens.consumer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("consumer health check failed: %w", err)
	}

	return nil
}
