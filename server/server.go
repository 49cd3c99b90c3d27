package server

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-visualizer/schema"
	"github.com/bitmark-inc/covid-visualizer/stats"
)

const indexFile = "index.html"

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server serves the rendered charts and the table they were drawn from
type Server struct {
	server *http.Server

	dir       string
	countries schema.Countries
}

// NewServer new instance of server
func NewServer(dir string, countries schema.Countries) *Server {
	return &Server{
		dir:       dir,
		countries: countries,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	log.WithField("addr", addr).Info("serving charts")
	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(Ginrus("Chart"))

	r.GET("/", s.index)
	r.Static("/charts", s.dir)

	apiRoute := r.Group("/api")
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		apiRoute.GET("/countries", s.getCountries)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) index(c *gin.Context) {
	c.File(filepath.Join(s.dir, indexFile))
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"countries": len(s.countries),
	})
}

// getCountries returns the preprocessed table, non-finite rates as null
func (s *Server) getCountries(c *gin.Context) {
	table := s.countries.Table()

	rows := make([]map[string]interface{}, 0, len(table.Rows))
	for _, row := range table.Rows {
		r := make(map[string]interface{}, len(row))
		for k, v := range row {
			if f, ok := v.(float64); ok && !stats.IsFinite(f) {
				r[k] = nil
				continue
			}
			r[k] = v
		}
		rows = append(rows, r)
	}

	c.JSON(http.StatusOK, gin.H{
		"columns": table.Columns,
		"rows":    rows,
	})
}
