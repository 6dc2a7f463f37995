// Command ircdemo is a tiny interactive IRC session built on irclib: it
// connects, registers, joins the configured channels, answers server pings,
// prints every inbound line and forwards stdin lines to the server verbatim.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryansmarcil/irclib"
	"gopkg.in/natefinch/lumberjack.v2"
)

// pacing for the two caller-side loops; the library itself never blocks
const (
	connectRetryDelay = 250 * time.Millisecond
	pollDelay         = 20 * time.Millisecond
)

func main() {
	configPath := flag.String("config", "ircdemo.yaml", "path to yaml config")
	server := flag.String("server", "", "server host:port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *server != "" {
		cfg.Server = *server
	}
	if cfg.Server == "" {
		fmt.Fprintln(os.Stderr, "no server configured, use -server or the config file")
		os.Exit(1)
	}
	if cfg.Nick == "" {
		cfg.Nick = "guest-" + uuid.NewString()[:8]
	}
	setupLogging(cfg.Log)

	c := irclib.New()
	c.SetDefaultHandlers()

	c.OnConnect = func(c *irclib.Client) {
		c.Send(fmt.Sprintf("USER %s * * :%s", cfg.User, cfg.RealName))
		c.Send("NICK " + cfg.Nick)
	}
	c.OnMessage = func(c *irclib.Client, line string) {
		fmt.Println(line)
	}
	// 001 is the registration confirmation; join only after it
	c.SetHandler("001", func(c *irclib.Client, msg *irclib.Message) {
		for _, ch := range cfg.Channels {
			c.Send("JOIN " + ch)
		}
	})

	slog.Info("connecting", "server", cfg.Server, "nick", cfg.Nick)
	for {
		ok, err := c.Connect(cfg.Server)
		if ok {
			break
		}
		if err != nil {
			slog.Warn("connect attempt failed", "error", err)
		}
		time.Sleep(connectRetryDelay)
	}

	input := readStdin()
	for c.IsConnected() {
		if err := c.Poll(); err != nil {
			slog.Error("poll failed", "error", err)
			c.Disconnect()
			break
		}
		select {
		case line, open := <-input:
			if !open {
				c.Disconnect()
			} else if line != "" {
				c.Send(line)
			}
		default:
		}
		time.Sleep(pollDelay)
	}
	slog.Info("session ended")
}

// readStdin bridges stdin lines into a channel so the poll loop can pick
// them up without blocking. The channel closes on EOF.
func readStdin() <-chan string {
	out := make(chan string, 16)
	go func() {
		defer close(out)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			out <- strings.TrimRight(sc.Text(), "\r\n")
		}
	}()
	return out
}

// setupLogging points slog at a rotated file when one is configured,
// otherwise leaves the default stderr handler alone.
func setupLogging(cfg LogConfig) {
	if cfg.File == "" {
		return
	}
	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(h))
}
