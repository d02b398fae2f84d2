// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nomadic-labs/docsite/cmd/app"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	ctx, cancel := context.WithCancel(context.Background())
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalCh
		cancel()
	}()

	command := app.NewCommand(ctx)
	if err := command.Execute(); err != nil {
		klog.Errorf("%v\n", err)
		os.Exit(1)
	}
}
