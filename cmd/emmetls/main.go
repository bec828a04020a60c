package main

import (
	"context"
	"flag"
	"os"

	"github.com/acomagu/emmetls/langserver"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/jsonrpc2"
)

func main() {
	logfile := flag.String("logfile", "", "log to this file instead of stderr")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if *logfile != "" {
		f, err := os.OpenFile(*logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.WithError(err).Fatal("failed to open log file")
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	handler := langserver.NewHandler(logger)
	conn := jsonrpc2.NewConn(
		context.Background(),
		jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}),
		handler,
	)
	logger.Info("emmetls started")
	<-conn.DisconnectNotify()
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
