package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// TelegramSender is the part of *bot.Bot the dispatcher needs.
type TelegramSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// NewTelegram creates a bot client for token without contacting Telegram.
func NewTelegram(token string) (*bot.Bot, error) {
	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return b, nil
}

// Options configures a Dispatcher.
type Options struct {
	Webhooks []string
	Telegram TelegramSender // nil disables the channel
	ChatID   int64
	Timeout  time.Duration
	Log      zerolog.Logger
}

// Dispatcher records submissions and forwards them to the staff channels.
// Delivery runs in the background; failures are logged and the submission
// stays pending for the next RetryPending, which only re-sends to the
// channels that have not accepted it yet.
type Dispatcher struct {
	store    *Store
	client   *http.Client
	webhooks []string
	telegram TelegramSender
	chatID   int64
	timeout  time.Duration
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher backed by the given store.
func NewDispatcher(store *Store, opts Options) *Dispatcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		store: store,
		client: &http.Client{
			Timeout: timeout,
		},
		webhooks: opts.Webhooks,
		telegram: opts.Telegram,
		chatID:   opts.ChatID,
		timeout:  timeout,
		log:      opts.Log,
	}
}

// Channels reports how many staff channels are configured.
func (d *Dispatcher) Channels() int {
	n := len(d.webhooks)
	if d.telegram != nil && d.chatID != 0 {
		n++
	}
	return n
}

// Submit persists a submission and starts delivering it.
func (d *Dispatcher) Submit(ctx context.Context, sub Submission) (Submission, error) {
	sub, err := d.store.Create(ctx, sub)
	if err != nil {
		return Submission{}, fmt.Errorf("recording submission: %w", err)
	}
	d.deliverAsync(ctx, sub)
	return sub, nil
}

// RetryPending re-sends every undelivered submission.
func (d *Dispatcher) RetryPending(ctx context.Context) (int, error) {
	if d.Channels() == 0 {
		return 0, nil
	}
	pending, err := d.store.GetPending(ctx)
	if err != nil {
		return 0, err
	}
	for _, sub := range pending {
		d.deliverAsync(ctx, sub)
	}
	return len(pending), nil
}

// Wait blocks until in-flight deliveries finish.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliverAsync(ctx context.Context, sub Submission) {
	if d.Channels() == 0 {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()
		d.deliver(ctx, sub)
	}()
}

// channelTelegram names the Telegram channel in the delivery log; webhooks
// are named by URL.
const channelTelegram = "telegram"

func (d *Dispatcher) deliver(ctx context.Context, sub Submission) {
	log := d.log.With().Str("submission", sub.ID).Str("kind", string(sub.Kind)).Logger()

	done, err := d.store.DeliveredChannels(ctx, sub.ID)
	if err != nil {
		log.Error().Err(err).Msg("reading delivery log")
		return
	}
	payload, err := json.Marshal(sub)
	if err != nil {
		log.Error().Err(err).Msg("encoding submission")
		return
	}

	ok := true
	send := func(channel string, fn func() error) {
		if done[channel] {
			return
		}
		if err := fn(); err != nil {
			ok = false
			log.Warn().Err(err).Str("channel", channel).Msg("delivery failed")
			return
		}
		if err := d.store.MarkChannelDelivered(ctx, sub.ID, channel); err != nil {
			ok = false
			log.Error().Err(err).Msg("recording delivery")
		}
	}
	for _, url := range d.webhooks {
		send("webhook:"+url, func() error { return d.SendWebhook(ctx, url, payload) })
	}
	if d.telegram != nil && d.chatID != 0 {
		send(channelTelegram, func() error {
			_, err := d.telegram.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: d.chatID,
				Text:   FormatText(sub),
			})
			return err
		})
	}

	if !ok {
		return
	}
	if err := d.store.MarkDelivered(ctx, sub.ID); err != nil {
		log.Error().Err(err).Msg("marking submission delivered")
		return
	}
	log.Debug().Msg("submission delivered")
}

// SendWebhook POSTs payload to the given URL.
func (d *Dispatcher) SendWebhook(ctx context.Context, url string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// FormatText renders a submission as a plain-text staff message.
func FormatText(sub Submission) string {
	var b strings.Builder
	b.WriteString(sub.Kind.Title())
	b.WriteString("\n")
	line := func(label, v string) {
		if v != "" {
			fmt.Fprintf(&b, "\n%s: %s", label, v)
		}
	}
	line("Name", sub.Name)
	line("Email", sub.Email)
	line("Subject", sub.Subject)

	keys := make([]string, 0, len(sub.Fields))
	for k := range sub.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line(k, sub.Fields[k])
	}
	if sub.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(sub.Body)
	}
	return b.String()
}
