// Package pixelchat wires the dragonfly server together with the chat
// moderation engine: AI classification, rule evaluation, the strike ladder
// and enforcement.
package pixelchat

import (
	"log/slog"
	"time"

	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/getsentry/sentry-go"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/chatguard"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/classify"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/command"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/dispatch"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/handler"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/strikes"
	"golang.org/x/text/language"
)

// PixelChat represents the main server struct. It holds the configuration
// and the moderation engine components.
type PixelChat struct {
	log  *slog.Logger
	conf Config

	srv *server.Server

	store      *strikes.Store
	bans       *dispatch.BanList
	dispatcher *dispatch.Dispatcher
	guard      *chatguard.Guard
}

// NewPixelChat creates a new instance of PixelChat.
func NewPixelChat(log *slog.Logger, conf Config) (*PixelChat, error) {
	if level, err := ParseLogLevel(conf.PixelChat.LogLevel); err != nil {
		log.Warn("invalid log level in config, defaulting to info", "error", err)
	} else {
		slog.SetLogLoggerLevel(level)
	}

	if conf.PixelChat.SentryDsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: conf.PixelChat.SentryDsn}); err != nil {
			log.Error("failed to initialize sentry", "error", err)
		}
	}

	log.Info("Starting Server...")

	c, err := conf.UserConfig.Config(log)
	if err != nil {
		return nil, err
	}

	pc := &PixelChat{
		log:  log,
		conf: conf,
	}

	if err = pc.loadLocales(); err != nil {
		return nil, err
	}
	if err = pc.loadModeration(); err != nil {
		return nil, err
	}
	pc.loadCommands()
	pc.setupGin()

	c.Allower = &Allower{bans: pc.bans}

	pc.srv = c.New()
	pc.srv.CloseOnProgramEnd()

	return pc, nil
}

// Start begins the server's main loop, accepting connections and handling
// players. It blocks until the server is closed.
func (pc *PixelChat) Start() {
	pc.srv.Listen()
	pc.dispatcher.Start(pc.srv.World())

	for pl := range pc.srv.Accept() {
		pc.accept(pl)
	}

	pc.Close()
}

// loadLocales registers all the locales active on the server.
func (pc *PixelChat) loadLocales() error {
	path := pc.conf.PixelChat.LocalePath
	locales := []language.Tag{
		language.English,
	}
	for _, l := range locales {
		if err := locale.Register(l, path); err != nil {
			// Built-in fallback strings cover every key.
			pc.log.Warn("could not load locale file", "locale", l.String(), "error", err)
		}
	}
	return nil
}

// loadModeration builds the strike store, ban list, dispatcher and the guard
// pipeline from the configuration.
func (pc *PixelChat) loadModeration() error {
	store, err := strikes.NewStore(pc.conf.PixelChat.StrikePath)
	if err != nil {
		return err
	}
	if pc.conf.ChatGuard.ClearStrikesOnRestart {
		if err = store.ResetAll(); err != nil {
			return err
		}
		pc.log.Info("Cleared all player strikes on startup")
	}

	bans, err := dispatch.NewBanList(pc.conf.PixelChat.BanPath)
	if err != nil {
		return err
	}

	console := dispatch.NewConsole(pc.log, bans, pc.conf.ChatGuard.TempBanDuration.Duration())
	dispatcher := dispatch.NewDispatcher(pc.log, console)

	api := pc.conf.API
	classifier := classify.NewService(pc.log, api.Endpoint, api.Model, api.Key, api.SystemPrompt, pc.conf.PixelChat.Language, api.RequestTimeout.Duration())

	pc.store = store
	pc.bans = bans
	pc.dispatcher = dispatcher
	pc.guard = chatguard.NewGuard(pc.log, classifier, store, dispatcher, pc.policy())
	return nil
}

// policy resolves the read-only policy snapshot from the configuration.
func (pc *PixelChat) policy() chatguard.Policy {
	cg := pc.conf.ChatGuard

	enabled := cg.Enabled
	if pc.conf.API.Key == "" || pc.conf.API.Key == "API-KEY" {
		if enabled {
			pc.log.Warn("No API key set, the chat guard is disabled")
		}
		enabled = false
	}

	prefix := locale.Translate("chatguard.prefix") + " "
	if cg.EnableCustomPrefix {
		prefix = cg.CustomPrefix + " "
	}

	handling := chatguard.HandlingBlock
	switch cg.MessageHandling {
	case string(chatguard.HandlingBlock):
	case string(chatguard.HandlingCensor):
		handling = chatguard.HandlingCensor
	default:
		pc.log.Warn("unrecognized message handling mode in config, defaulting to BLOCK", "mode", cg.MessageHandling)
	}

	return chatguard.Policy{
		Enabled:    enabled,
		Handling:   handling,
		NotifyUser: cg.NotifyUser,
		Prefix:     prefix,
		Rules: chatguard.Rules{
			OffensiveLanguage: cg.BlockOffensiveLanguage,
			Usernames:         cg.BlockUsernames,
			Passwords:         cg.BlockPasswords,
			HomeAddresses:     cg.BlockHomeAddresses,
			EmailAddresses:    cg.BlockEmailAddresses,
			Websites:          cg.BlockWebsites,
			SexualContent:     cg.BlockSexualContent,
		},
		BypassPlayers:          cg.BypassPlayers,
		UseBuiltInStrikeSystem: cg.UseBuiltInStrikeSystem,
		CustomStrikeCommand:    cg.CustomStrikeCommand,
		Thresholds: chatguard.Thresholds{
			Kick:    cg.StrikesBeforeKick,
			TempBan: cg.StrikesBeforeTempBan,
			Ban:     cg.StrikesBeforeBan,
		},
		KickCommand:    cg.KickCommand,
		TempBanCommand: cg.TempBanCommand,
		BanCommand:     cg.BanCommand,
	}
}

// loadCommands registers all the commands on the server.
func (pc *PixelChat) loadCommands() {
	admins := pc.conf.ChatGuard.AdminPlayers
	cmd.Register(command.NewStrike(admins))
	cmd.Register(command.NewStrikes(admins))
	cmd.Register(command.NewResetStrikes(admins))
	cmd.Register(command.NewRemoveStrikes(admins))
	cmd.Register(command.NewUnban(admins, pc.bans))
}

// accept handles a new player joining the server.
func (pc *PixelChat) accept(p *player.Player) {
	p.Handle(handler.NewPlayerHandler(pc.guard))
}

// Close closes the server and all its associated services.
func (pc *PixelChat) Close() {
	pc.log.Debug("Closing Dispatcher...")
	pc.dispatcher.Close()
	sentry.Flush(2 * time.Second)
}
