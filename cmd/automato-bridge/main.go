// Command automato-bridge loads the persisted configuration, opens the
// serial port, and serves the HTTP bridge described in pkg/bridge.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/openautomato/automato/pkg/bridge"
	"github.com/openautomato/automato/pkg/config"
	"github.com/openautomato/automato/pkg/serialport"
	"github.com/openautomato/automato/pkg/telemetry"
	"github.com/openautomato/automato/pkg/transact"
)

var configPath = flag.String("config", "/etc/automato/bridge.toml", "path to TOML configuration file")

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Starting automato bridge on %s:%d", cfg.IP, cfg.Port)
	log.Printf("Serial device: %s baud %d", cfg.SerialDevice, cfg.SerialBaud)

	port, err := serialport.Open(serialport.Config{Device: cfg.SerialDevice, BaudRate: cfg.SerialBaud})
	if err != nil {
		log.Fatalf("open serial port: %v", err)
	}
	session := transact.New(port)
	defer session.Close()

	var sink *telemetry.Sink
	if cfg.RedisAddr != "" {
		sink, err = telemetry.New(cfg.RedisAddr, "", 0)
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
			sink = nil
		} else {
			log.Printf("Connected to redis at %s for telemetry", cfg.RedisAddr)
			defer sink.Close()
		}
	}

	srv := bridge.New(session, cfg.AutomatoIDBytes(), sink)

	addr := fmt.Sprintf("%s:%d", cfg.IP, cfg.Port)
	httpServer := &http.Server{Addr: addr, Handler: srv.Handler()}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("bridge http server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Printf("shutting down")
	_ = httpServer.Close()
}
