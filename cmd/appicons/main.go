// Package main renders the breathing circles app icon set and its
// Contents.json into the Xcode project.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/zenflow/zenflow-icons/internal/platform/cmd"
	"github.com/zenflow/zenflow-icons/internal/platform/config"
	applog "github.com/zenflow/zenflow-icons/internal/platform/log"
	"github.com/zenflow/zenflow-icons/internal/tools/icongen"
)

func main() {
	cfg, err := icongen.ParseConfig(flag.CommandLine, os.Args[1:], icongen.AppIcons)
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := applog.New(os.Stderr, applog.Options{Level: cfg.LogLevel, Timestamp: cfg.LogTimestamps})
	if err != nil {
		config.Exitf("configure logging: %v", err)
	}

	err = platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceAppIcons, platformcmd.RunOptions{Logger: &logger}, func(ctx context.Context) error {
		_, err := icongen.Run(ctx, cfg, os.Stdout, os.Stderr)
		return err
	})
	if err != nil {
		config.Exitf("generate icons: %v", err)
	}
}
