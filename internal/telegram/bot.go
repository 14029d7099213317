package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"dinner-planner/internal/app"
	"dinner-planner/internal/config"
	"dinner-planner/internal/metrics"
	"dinner-planner/internal/recipe"
	"dinner-planner/internal/weather"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	requestTimeout = 1 * time.Minute
	maxListed      = 30
	helpText       = "🍽 *Dinner Planner*\n\n" +
		"/plan - plan next week's dinners\n" +
		"/plan hot|cold|moderate - plan for the given weather\n" +
		"/recipes - list stored recipes\n" +
		"/seed - add the sample recipes to an empty collection\n" +
		"/health - system health\n\n" +
		"Send a recipe URL to import it."
)

// Service is the part of the application the bot drives.
type Service interface {
	GenerateMealPlan(ctx context.Context, opts app.PlanOptions) (app.Result, error)
	ImportRecipe(ctx context.Context, url string) (recipe.Recipe, error)
	SeedSamples(ctx context.Context) (int, error)
	ListRecipes(ctx context.Context) ([]recipe.Recipe, error)
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot answers Telegram webhook updates for the allowed users.
type Bot struct {
	api      sender
	service  Service
	allowed  []int64
	dataPath string
	logger   *zap.Logger
	wg       sync.WaitGroup
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, service Service, logger *zap.Logger) (*Bot, error) {
	if err := cfg.ValidateTelegram(); err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	logger.Info("authorized on telegram", zap.String("account", api.Self.UserName))

	wh, err := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url %s: %w", cfg.TelegramWebhookURL, err)
	}
	resp, err := api.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	logger.Info("webhook set", zap.String("description", resp.Description))

	return newBot(api, service, cfg.TelegramAllowedUserIDs, cfg.DatabasePath, logger), nil
}

func newBot(api sender, service Service, allowed []int64, dataPath string, logger *zap.Logger) *Bot {
	return &Bot{
		api:      api,
		service:  service,
		allowed:  allowed,
		dataPath: dataPath,
		logger:   logger,
	}
}

// RegisterHandlers registers the webhook, health and metrics endpoints.
func (b *Bot) RegisterHandlers(mux *http.ServeMux, recorder *metrics.Recorder) {
	mux.HandleFunc("/webhook", b.handleWebhook)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("/metrics", recorder.Handler())
}

// Wait blocks until every in-flight message has been handled.
func (b *Bot) Wait() {
	b.wg.Wait()
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		b.logger.Warn("error parsing update", zap.Error(err))
		http.Error(w, "bad update", http.StatusBadRequest)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		return
	}

	if !slices.Contains(b.allowed, update.Message.From.ID) {
		b.logger.Warn("unauthorized access attempt",
			zap.Int64("user_id", update.Message.From.ID),
			zap.String("username", update.Message.From.UserName),
		)
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.processMessage(update.Message)
	}()
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	text := strings.TrimSpace(msg.Text)
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		b.handleImport(ctx, msg.Chat.ID, text)
		return
	}

	switch msg.Command() {
	case "plan":
		b.handlePlan(ctx, msg.Chat.ID, strings.TrimSpace(msg.CommandArguments()))
	case "recipes":
		b.handleRecipes(ctx, msg.Chat.ID)
	case "seed":
		b.handleSeed(ctx, msg.Chat.ID)
	case "health":
		b.handleHealth(msg.Chat.ID)
	default:
		b.reply(msg.Chat.ID, helpText)
	}
}

func (b *Bot) handlePlan(ctx context.Context, chatID int64, arg string) {
	var opts app.PlanOptions
	if arg != "" {
		w, err := weather.Parse(strings.ToLower(arg))
		if err != nil {
			b.reply(chatID, "❌ Unknown weather. Use `/plan hot`, `/plan cold` or `/plan moderate`.")
			return
		}
		opts.Weather = &w
	}

	res, err := b.service.GenerateMealPlan(ctx, opts)
	if err != nil {
		b.logger.Error("error generating plan", zap.Error(err))
		b.replyError(chatID, "Error generating plan", err)
		return
	}

	planText, shoppingListText := formatPlanMarkdownParts(res)
	b.reply(chatID, planText)
	b.reply(chatID, shoppingListText)
}

func (b *Bot) handleImport(ctx context.Context, chatID int64, url string) {
	rec, err := b.service.ImportRecipe(ctx, url)
	if err != nil {
		b.logger.Error("error importing recipe", zap.String("url", url), zap.Error(err))
		b.replyError(chatID, "Error importing recipe", err)
		return
	}

	b.reply(chatID, fmt.Sprintf("✅ *Recipe Saved!*\n\n*Title:* %s\n*Protein:* %s\n*Time:* %d mins\n*Ingredients:* %d",
		escape(rec.Name), rec.ProteinType, rec.TotalTime(), len(rec.Ingredients)))
}

func (b *Bot) handleRecipes(ctx context.Context, chatID int64) {
	recipes, err := b.service.ListRecipes(ctx)
	if err != nil {
		b.replyError(chatID, "Error listing recipes", err)
		return
	}
	b.reply(chatID, formatRecipeList(recipes))
}

func (b *Bot) handleSeed(ctx context.Context, chatID int64) {
	n, err := b.service.SeedSamples(ctx)
	if err != nil {
		b.replyError(chatID, "Error seeding recipes", err)
		return
	}
	if n == 0 {
		b.reply(chatID, "ℹ️ Recipes already exist, nothing seeded.")
		return
	}
	b.reply(chatID, fmt.Sprintf("🌱 Added %d sample recipes.", n))
}

func (b *Bot) handleHealth(chatID int64) {
	health := metrics.GetSysHealth(b.dataPath)

	var sb strings.Builder
	sb.WriteString("🧠 *System Health*\n")
	fmt.Fprintf(&sb, "• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB)
	fmt.Fprintf(&sb, "• Goroutines: %d\n", health.Goroutines)
	fmt.Fprintf(&sb, "• GC runs: %d\n", health.NumGC)
	fmt.Fprintf(&sb, "• Uptime: %s\n", health.Uptime)
	fmt.Fprintf(&sb, "• Database: %s\n", health.DataSize)
	b.reply(chatID, sb.String())
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) replyError(chatID int64, title string, err error) {
	safeErr := strings.ReplaceAll(err.Error(), "`", "'")
	b.reply(chatID, fmt.Sprintf("❌ *%s:*\n```\n%v\n```", title, safeErr))
}
