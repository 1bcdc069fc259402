package pixelchat

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/df-mc/dragonfly/server"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/util"
	"github.com/restartfu/gophig"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// Config holds the server configuration: paths, the AI endpoint settings and
// every chat guard rule and threshold.
type Config struct {
	PixelChat struct {
		SentryDsn  string
		LogLevel   string // Can be "debug", "info", "warn", "error"
		LocalePath string
		Language   string
		StrikePath string
		BanPath    string
	}
	API struct {
		Endpoint       string
		Model          string
		Key            string
		SystemPrompt   string
		RequestTimeout util.Duration
	}
	ChatGuard struct {
		Enabled                bool
		MessageHandling        string // "BLOCK" or "CENSOR"
		NotifyUser             bool
		EnableCustomPrefix     bool
		CustomPrefix           string
		BypassPlayers          []string
		AdminPlayers           []string
		UseBuiltInStrikeSystem bool
		ClearStrikesOnRestart  bool
		CustomStrikeCommand    string
		StrikesBeforeKick      int
		KickCommand            string
		StrikesBeforeTempBan   int
		TempBanCommand         string
		TempBanDuration        util.Duration
		StrikesBeforeBan       int
		BanCommand             string
		BlockOffensiveLanguage bool
		BlockUsernames         bool
		BlockPasswords         bool
		BlockHomeAddresses     bool
		BlockEmailAddresses    bool
		BlockWebsites          bool
		BlockSexualContent     bool
	}
	Service struct {
		GinAddress string
		AdminKey   string
	}
	server.UserConfig
}

// DefaultConfig returns a config with prefilled default values.
func DefaultConfig() Config {
	c := Config{}

	c.PixelChat.SentryDsn = ""
	c.PixelChat.LogLevel = "info"
	c.PixelChat.LocalePath = "resources/locales"
	c.PixelChat.Language = "en"
	c.PixelChat.StrikePath = "resources/player_strikes.json"
	c.PixelChat.BanPath = "resources/bans.json"

	c.API.Endpoint = "https://api.groq.com/openai/v1/chat/completions"
	c.API.Model = "llama-3.3-70b-versatile"
	c.API.Key = "API-KEY"
	c.API.SystemPrompt = "You are a chat moderator for a Minecraft server. Classify the user message and respond with a JSON object containing the boolean fields isOffensiveLanguage, isUsername, isPassword, isHomeAddress, isEmailAddress, isWebsite, isSexualContent and a short reason string."
	c.API.RequestTimeout = util.Duration(5 * time.Second)

	c.ChatGuard.Enabled = true
	c.ChatGuard.MessageHandling = "CENSOR"
	c.ChatGuard.NotifyUser = true
	c.ChatGuard.EnableCustomPrefix = false
	c.ChatGuard.CustomPrefix = ""
	c.ChatGuard.UseBuiltInStrikeSystem = true
	c.ChatGuard.ClearStrikesOnRestart = false
	c.ChatGuard.CustomStrikeCommand = "strike <player> <reason>"
	c.ChatGuard.StrikesBeforeKick = 3
	c.ChatGuard.KickCommand = "kick <player> <reason>"
	c.ChatGuard.StrikesBeforeTempBan = 5
	c.ChatGuard.TempBanCommand = "tempban <player> <reason>"
	c.ChatGuard.TempBanDuration = util.Duration(24 * time.Hour)
	c.ChatGuard.StrikesBeforeBan = 7
	c.ChatGuard.BanCommand = "ban <player> <reason>"
	c.ChatGuard.BlockOffensiveLanguage = true
	c.ChatGuard.BlockUsernames = false
	c.ChatGuard.BlockPasswords = true
	c.ChatGuard.BlockHomeAddresses = true
	c.ChatGuard.BlockEmailAddresses = true
	c.ChatGuard.BlockWebsites = true
	c.ChatGuard.BlockSexualContent = true

	c.Service.GinAddress = ":8080"
	c.Service.AdminKey = "secret-key"

	userConfig := server.DefaultConfig()
	userConfig.Server.Name = text.Colourf("<red>Pixel</red><aqua>Chat</aqua> Guardian")
	userConfig.World.Folder = "resources/world"
	userConfig.Players.Folder = "resources/player_data"

	c.UserConfig = userConfig

	return c
}

// ParseLogLevel returns the appropriate slog.Level based on string configuration.
// Returns an error if the provided log level string is not recognized.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unrecognized log level: %q", level)
	}
}

// ReadConfig loads the server configuration from config.toml.
// If the file doesn't exist, it creates a new one with default values.
// Returns the loaded configuration and any error encountered.
func ReadConfig() (Config, error) {
	g := gophig.NewGophig[Config]("./config.toml", gophig.TOMLMarshaler{}, os.ModePerm)
	_, err := g.LoadConf()
	if os.IsNotExist(err) {
		err = g.SaveConf(DefaultConfig())
		if err != nil {
			return Config{}, err
		}
	}
	c, err := g.LoadConf()
	return c, err
}
