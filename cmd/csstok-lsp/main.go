package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/gops/agent"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/signadot/csstok/debug"
)

const lsName = "csstok-lsp"

var (
	version = "0.0.1"
)

func main() {
	ctx := context.Background()
	log, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building logger: %v\n", err)
		os.Exit(1)
	}
	if os.Getenv("CSSTOK_LSP_GOPS") != "" {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Error(err, "gops agent failed")
		}
	}
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := NewServer(log)
	handler := protocol.ServerHandler(server, nil)
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	log.Info("starting", "version", version)
	conn.Go(ctx, handler)
	<-conn.Done()
	if err := conn.Err(); err != nil {
		log.Error(err, "connection closed")
	}
}

// newLogger logs json to stderr; stdout carries the protocol.
func newLogger() (logr.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if debug.LSP() {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl).WithName(lsName), nil
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
