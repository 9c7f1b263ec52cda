package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"detailers/config"
	deliverycontext "detailers/internal/delivery/context"
	"detailers/internal/domain/constants"
	"detailers/internal/domain/entity"
	"detailers/internal/domain/repository"
	"detailers/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying lead events
type PushHandler struct {
	verifyPushAuth  bool
	pushAudience    string
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService `optional:"true"`
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-signed pushes carry a verifiable OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.PubSub.VerifyPushAuth

	pushAudience := ""
	if params.Config.PubSub != nil {
		pushAudience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		pushAudience:    pushAudience,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request(), h.pushAudience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse lead event
	var event service.LeadEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse lead event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing lead event",
		slog.String("event_type", event.EventType),
		slog.String("company_id", event.CompanyID),
		slog.String("owner_id", event.OwnerID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process lead event",
			slog.String("event_type", event.EventType),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Lead event processed successfully",
		slog.String("event_type", event.EventType),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.LeadEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent fans a lead event out to the listing owner's registered devices
func (h *PushHandler) processEvent(ctx context.Context, event *service.LeadEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.notificationSvc == nil {
		logger.Warn("[Worker] Push notifications are not configured, dropping event",
			slog.String("event_type", event.EventType),
		)

		return nil
	}

	// Unclaimed listings have no owner to notify.
	if event.OwnerID == "" {
		logger.Info("[Worker] No owner on event, nothing to notify",
			slog.String("company_id", event.CompanyID),
		)

		return nil
	}

	ownerID, err := uuid.Parse(event.OwnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	devices, err := h.deviceRepo.FindDevicesByOwner(ctx, ownerID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		logger.Info("[Worker] Owner has no registered devices",
			slog.String("owner_id", event.OwnerID),
		)

		return nil
	}

	title, body, data := h.prepareNotificationContent(event)
	tokens := h.collectTokens(devices)

	sent, failed, invalidTokens := h.sendBatchedNotifications(ctx, tokens, title, body, data)

	h.cleanupInvalidTokens(ctx, invalidTokens)

	logger.Info("[Worker] Push fan-out completed",
		slog.String("event_type", event.EventType),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// collectTokens extracts FCM tokens from devices
func (h *PushHandler) collectTokens(devices []*entity.OwnerDevice) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}

// prepareNotificationContent creates the notification title, body, and data
func (h *PushHandler) prepareNotificationContent(event *service.LeadEvent) (title, body string, data map[string]string) {
	switch event.EventType {
	case constants.EventTypeClaimVerified:
		title = "Listing claimed"
		body = fmt.Sprintf("You now manage %s", event.CompanyName)
	default:
		title = "New quote request"
		body = event.Summary
		if body == "" {
			body = fmt.Sprintf("New quote request for %s", event.CompanyName)
		}
	}

	data = map[string]string{
		"event_type":   event.EventType,
		"company_id":   event.CompanyID,
		"company_name": event.CompanyName,
	}
	if event.LeadID != "" {
		data["lead_id"] = event.LeadID
	}

	return title, body, data
}

// sendBatchedNotifications sends notifications in batches and collects results
func (h *PushHandler) sendBatchedNotifications(ctx context.Context, tokens []string, title, body string, data map[string]string) (sent, failed int, invalidTokens []string) {
	const batchSize = 500

	for idx := 0; idx < len(tokens); idx += batchSize {
		end := min(idx+batchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalidTokens, sendErr := h.notificationSvc.SendBatchNotification(
			ctx, batch, title, body, data,
		)
		if sendErr != nil {
			h.logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			failed += len(batch)

			continue
		}

		sent += successCount
		failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	return sent, failed, invalidTokens
}

// cleanupInvalidTokens removes device registrations FCM reported as invalid
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string) {
	if len(invalidTokens) == 0 {
		return
	}

	if err := h.deviceRepo.DeleteDevicesByToken(ctx, invalidTokens); err != nil {
		h.logger.Error("[Worker] Failed to delete invalid device tokens",
			slog.Int("token_count", len(invalidTokens)),
			slog.Any("error", err),
		)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience defaults to the URL of this push endpoint
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http" // For local development
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
