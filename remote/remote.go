// This file is part of Imager.
//
// Imager is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Imager is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Imager.  If not, see <https://www.gnu.org/licenses/>.

package remote

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jetsetilly/imager/curated"
	"github.com/jetsetilly/imager/imagemanager"
	"github.com/jetsetilly/imager/logger"
)

// Error pattern returned when the server cannot be started.
const (
	ListenFailed = "remote: %v"
)

// DefaultQueueLength is the number of commands that can be waiting before
// the server starts refusing requests.
const DefaultQueueLength = 16

// StatusFunc returns the current state of the image manager.
type StatusFunc func() imagemanager.Status

// Server accepts remote commands over HTTP.
type Server struct {
	commands chan Command
	status   StatusFunc
	engine   *gin.Engine
	srv      *http.Server
}

// NewServer is the preferred method of initialisation for the Server type. A
// queueLength of zero or less uses DefaultQueueLength.
func NewServer(status StatusFunc, queueLength int) *Server {
	if queueLength <= 0 {
		queueLength = DefaultQueueLength
	}

	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		commands: make(chan Command, queueLength),
		status:   status,
		engine:   gin.New(),
	}
	s.engine.Use(gin.Recovery())

	s.engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.status())
	})

	for _, a := range []Action{Next, Prev, Reload, Random} {
		a := a
		s.engine.POST("/"+a.String(), func(c *gin.Context) {
			s.queue(c, Command{Action: a})
		})
	}

	s.engine.POST("/append", func(c *gin.Context) {
		path := c.Query("path")
		if path == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing path"})
			return
		}
		s.queue(c, Command{Action: Append, Argument: path})
	})

	s.engine.POST("/sort/:order", func(c *gin.Context) {
		order := c.Param("order")
		switch order {
		case SortRandom, SortLogical, SortDirectory:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown ordering", "order": order})
			return
		}
		s.queue(c, Command{Action: Sort, Argument: order})
	})

	return s
}

// queue never blocks the request handler
func (s *Server) queue(c *gin.Context, cmd Command) {
	select {
	case s.commands <- cmd:
		c.JSON(http.StatusAccepted, gin.H{"queued": cmd.String()})
	default:
		logger.Logf(logger.Allow, "remote", "refusing %s: queue full", cmd)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queue full"})
	}
}

// Commands returns the channel on which commands are delivered.
func (s *Server) Commands() <-chan Command {
	return s.commands
}

// Handler returns the HTTP handler for the server. Useful for testing.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Listen starts serving on the address. It returns once the address is being
// listened on. The actual address is returned, which is useful if the port
// in the requested address is zero.
func (s *Server) Listen(addr string) (string, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return "", curated.Errorf(ListenFailed, err)
	}

	s.srv = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Logf(logger.Allow, "remote", "listening on %s", l.Addr())
		err := s.srv.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log(logger.Allow, "remote", err)
		}
	}()

	return l.Addr().String(), nil
}

// Shutdown stops the server if it has been started with Listen().
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
