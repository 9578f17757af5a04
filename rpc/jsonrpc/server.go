package jsonrpc

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/rpc/api"
)

const namespace = "eth"

var log = common.GetLogger("jsonrpc")

// Server serves the eth namespace over HTTP. JSON-RPC is mounted at "/" and a
// liveness probe at "/health".
type Server struct {
	rpc      *rpc.Server
	router   chi.Router
	http     *http.Server
	listener net.Listener
}

func InitAPIs(backend api.Backend) []interface{} {
	return []interface{}{
		api.NewChainAPI(backend),
		api.NewTransactionAPI(backend),
	}
}

func NewServer(backend api.Backend) (*Server, error) {
	srv := rpc.NewServer()
	for _, s := range InitAPIs(backend) {
		if err := srv.RegisterName(namespace, s); err != nil {
			return nil, errors.Wrap(err, "register rpc api")
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/", srv)

	return &Server{
		rpc:    srv,
		router: r,
	}, nil
}

// RPC returns the underlying rpc server, e.g. for in-process clients.
func (s *Server) RPC() *rpc.Server {
	return s.rpc
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr and serves in the background.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", addr)
	}
	s.listener = ln
	s.http = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Errorf("json-rpc server stopped, err:%s", err)
		}
	}()
	log.Infof("JSON-RPC server listening on %s", ln.Addr())
	return nil
}

// Addr returns the listening address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) Stop(ctx context.Context) error {
	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	}
	s.rpc.Stop()
	return err
}
