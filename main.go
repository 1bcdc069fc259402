package main

import (
	"log/slog"

	"github.com/df-mc/dragonfly/server/player/chat"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat"
)

// init ...
func init() {
	chat.Global.Subscribe(chat.StdoutSubscriber{})
}

// main ...
func main() {
	log := slog.Default()
	conf, err := pixelchat.ReadConfig()
	if err != nil {
		panic(err)
	}

	guardian, err := pixelchat.NewPixelChat(log, conf)
	if err != nil {
		panic(err)
	}

	guardian.Start()
}
