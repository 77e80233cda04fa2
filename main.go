package main

import (
	"flag"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	addr := flag.String("addr", consts.DefaultAddr, "websocket listen address")
	flag.Parse()

	server := network.NewWebsocketServer(*addr)
	log.Error(server.Serve())
}
