package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/tiny"
)

var log = common.GetLogger("main")

func main() {
	configPath := flag.String("config", "", "path of the node config file")
	flag.Parse()

	var config *common.Config
	if *configPath != "" {
		config = common.NewConfig(*configPath)
	} else {
		config = common.NewDefaultConfig()
	}
	common.InitLogger(config.GetString(common.LogLevel))

	node, err := tiny.New(config)
	if err != nil {
		log.Errorf("failed to create node, err:%s", err)
		os.Exit(1)
	}
	if err := node.Start(); err != nil {
		log.Errorf("failed to start node, err:%s", err)
		node.Close()
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Infof("received %s, shutting down", sig)
	node.Close()
}
