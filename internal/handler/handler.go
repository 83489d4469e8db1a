package handler

import (
	"sync"

	"wortquiz/internal/quiz"
	"wortquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler renders the quiz engine's snapshots in Telegram and translates
// button taps and text messages into engine intents
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	engine      *quiz.Engine
	logger      *zap.Logger

	// quizChat is where timer-driven advances push the next question
	mu       sync.Mutex
	quizChat *tele.Chat
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	engine *quiz.Engine,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		engine:      engine,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages (typed answers)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnStartQuiz, h.handleStartQuiz)
	h.bot.Handle(&btnToggleMode, h.handleToggleMode)
	h.bot.Handle(&btnDifficulty, h.handleDifficultyMenu)
	h.bot.Handle(&btnRestart, h.handleRestart)
	h.bot.Handle(&btnStatsPanel, h.handleStatsPanel)
	h.bot.Handle(&btnResetStats, h.handleResetStats)
	h.bot.Handle(&btnHelp, h.handleHelp)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Dynamically built buttons
	h.bot.Handle(&btnAnswer, h.handleAnswer)
	h.bot.Handle(&btnDiff, h.handleDifficultyPick)

	// Generic callback handler for dynamic data (answers, difficulty picks)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// rememberChat records where the quiz is running so deferred advances know
// where to send the next question
func (h *Handler) rememberChat(chat *tele.Chat) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.quizChat = chat
}

// PushQuestion sends the next question after a timer-driven advance
func (h *Handler) PushQuestion(snap quiz.Snapshot) {
	h.mu.Lock()
	chat := h.quizChat
	h.mu.Unlock()

	if chat == nil {
		return
	}

	if snap.State != quiz.StatePresenting {
		return
	}

	if _, err := h.bot.Send(chat, formatQuestion(snap), answersMarkup(snap)); err != nil {
		h.logger.Warn("Failed to push next question", zap.Error(err))
	}
}

// Inline keyboard buttons
var (
	btnStartQuiz = tele.Btn{
		Unique: "start_quiz",
		Text:   "▶️ Start quiz",
	}
	btnToggleMode = tele.Btn{
		Unique: "toggle_mode",
		Text:   "🔄 Switch direction",
	}
	btnDifficulty = tele.Btn{
		Unique: "difficulty",
		Text:   "🎚 Difficulty",
	}
	btnRestart = tele.Btn{
		Unique: "restart",
		Text:   "⏮ Restart deck",
	}
	btnStatsPanel = tele.Btn{
		Unique: "stats_panel",
		Text:   "📊 Statistics",
	}
	btnResetStats = tele.Btn{
		Unique: "reset_stats",
		Text:   "🗑 Reset statistics",
	}
	btnHelp = tele.Btn{
		Unique: "help",
		Text:   "ℹ️ Help",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnStartQuiz),
		menu.Row(btnToggleMode, btnDifficulty),
		menu.Row(btnStatsPanel, btnHelp),
		menu.Row(btnResetStats),
	)
	return menu
}

// quizMenuMarkup returns the controls shown under an idle or finished quiz
func quizMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnRestart, btnDifficulty),
		menu.Row(btnMainMenu),
	)
	return menu
}
