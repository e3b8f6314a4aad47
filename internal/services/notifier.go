package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/Renal37/valerius-unlock/internal/logger"
	"github.com/Renal37/valerius-unlock/internal/models"
	"go.uber.org/zap"
)

const (
	defaultTelegramAPIURL = "https://api.telegram.org"
	telegramTimeout       = 5 * time.Second
	defaultRetryAfter     = 30 * time.Second
)

var errTelegramRejected = errors.New("telegram rejected message")

type notifierJobQueue interface {
	Enqueue(job Job) error

	ScheduleJob(job Job, delay time.Duration)

	PauseAndResume(delay time.Duration)
}

// TelegramNotifier отправляет уведомления о новых заявках в чат оператора.
// Без токена бота или id чата уведомления молча пропускаются.
type TelegramNotifier struct {
	apiURL   string
	botToken string
	chatID   string
	client   *http.Client
	queue    notifierJobQueue
	now      func() time.Time
}

func NewTelegramNotifier(botToken, chatID string, queue notifierJobQueue) *TelegramNotifier {
	return &TelegramNotifier{
		apiURL:   defaultTelegramAPIURL,
		botToken: botToken,
		chatID:   chatID,
		client:   &http.Client{Timeout: telegramTimeout},
		queue:    queue,
		now:      time.Now,
	}
}

// WithAPIURL подменяет адрес Bot API.
func (t *TelegramNotifier) WithAPIURL(apiURL string) *TelegramNotifier {
	t.apiURL = apiURL
	return t
}

func (t *TelegramNotifier) Enabled() bool {
	return t.botToken != "" && t.chatID != ""
}

func (t *TelegramNotifier) NotifyNewOrder(order models.Order) {
	if !t.Enabled() {
		return
	}

	text := t.formatNewOrder(order)
	if err := t.queue.Enqueue(t.sendJob(order.ID, text)); err != nil {
		logger.Log.Warn("failed to enqueue telegram notification", zap.Int64("order_id", order.ID), zap.Error(err))
	}
}

func (t *TelegramNotifier) sendJob(orderID int64, text string) Job {
	var job Job
	job = func(ctx context.Context) {
		retryAfter, err := t.send(ctx, text)
		if err != nil {
			logger.Log.Error("failed to send telegram notification", zap.Int64("order_id", orderID), zap.Error(err))
			return
		}

		if retryAfter > 0 {
			logger.Log.Info("telegram asked to slow down", zap.Duration("retry_after", retryAfter))
			t.queue.PauseAndResume(retryAfter)
			t.queue.ScheduleJob(job, retryAfter)
			return
		}

		logger.Log.Info("telegram notification sent", zap.Int64("order_id", orderID))
	}
	return job
}

func (t *TelegramNotifier) formatNewOrder(order models.Order) string {
	return fmt.Sprintf(
		"🔔 <b>Новый заказ #%d</b>\n\n"+
			"👤 Клиент: %s\n"+
			"📱 Телефон: %s\n"+
			"📲 Модель: %s\n"+
			"📅 Время: %s\n\n"+
			"Проверьте админ-панель для деталей!",
		order.ID,
		html.EscapeString(order.CustomerName),
		html.EscapeString(order.CustomerPhone),
		html.EscapeString(order.PhoneModel),
		t.now().Format("02.01.2006 15:04"),
	)
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters,omitempty"`
}

// send возвращает retryAfter > 0, если Telegram ответил 429.
func (t *TelegramNotifier) send(ctx context.Context, text string) (time.Duration, error) {
	payload, err := json.Marshal(telegramMessage{ChatID: t.chatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send message: %w", err)
	}
	defer res.Body.Close()

	var parsed telegramResponse
	decodeErr := json.NewDecoder(res.Body).Decode(&parsed)

	if res.StatusCode == http.StatusTooManyRequests {
		if decodeErr == nil && parsed.Parameters != nil && parsed.Parameters.RetryAfter > 0 {
			return time.Duration(parsed.Parameters.RetryAfter) * time.Second, nil
		}
		return defaultRetryAfter, nil
	}

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d: %s", errTelegramRejected, res.StatusCode, parsed.Description)
	}

	return 0, nil
}
