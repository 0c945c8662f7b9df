// Package notification implements push delivery through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"maple/config"
	"maple/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// multicastBatchSize is the FCM limit on tokens per multicast request.
const multicastBatchSize = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendBatchNotification sends push notifications to multiple device tokens.
// Token lists larger than the FCM multicast limit are split into sequential
// batches; counts and invalid tokens are accumulated across batches.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	invalidTokens = make([]string, 0)

	for start := 0; start < len(tokens); start += multicastBatchSize {
		end := min(start+multicastBatchSize, len(tokens))
		batch := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, sendErr := s.client.SendEachForMulticast(ctx, message)
		if sendErr != nil {
			// Earlier batches already went out; report what was delivered.
			return successCount, failureCount, invalidTokens, fmt.Errorf("failed to send multicast notification: %w", sendErr)
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error != nil {
				// Check if error is due to invalid or unregistered token
				if messaging.IsInvalidArgument(sendResponse.Error) ||
					messaging.IsUnregistered(sendResponse.Error) {
					invalidTokens = append(invalidTokens, batch[idx])
				}
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
