package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-visualizer/chart"
	"github.com/bitmark-inc/covid-visualizer/external/disease"
	"github.com/bitmark-inc/covid-visualizer/pipeline"
	"github.com/bitmark-inc/covid-visualizer/server"
	"github.com/bitmark-inc/covid-visualizer/utils"
)

const (
	logPrefix       = "main"
	shutdownTimeout = 30 * time.Second
	sentryFlush     = 5 * time.Second
)

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("disease.url", disease.DefaultURL)
	viper.SetDefault("disease.timeout", 30*time.Second)
	viper.SetDefault("chart.dir", "./charts")
	viper.SetDefault("chart.formats", []string{chart.FormatHTML, chart.FormatPNG})
	viper.SetDefault("chart.lang", "en")
	viper.SetDefault("chart.top", chart.DefaultTop)
	viper.SetDefault("i18n.dir", "")
	viper.SetDefault("summary.enable", true)
	viper.SetDefault("server.enable", false)
	viper.SetDefault("server.port", "8080")
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	setDefaults()

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// fatal reports err to sentry and exits
func fatal(err error, msg string) {
	sentry.CaptureException(err)
	sentry.Flush(sentryFlush)
	log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Fatal(msg)
}

func logMetrics(scope tally.TestScope) {
	fields := log.Fields{"prefix": logPrefix}
	for _, c := range scope.Snapshot().Counters() {
		fields[c.Name()] = c.Value()
	}
	for _, t := range scope.Snapshot().Timers() {
		fields[t.Name()] = t.Values()
	}
	log.WithFields(fields).Info("metrics")
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	runID := uuid.New().String()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run", runID)
	})
	log.WithFields(log.Fields{"prefix": "init", "run": runID}).Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		fatal(err, "load i18n messages")
	}

	lang := viper.GetString("chart.lang")
	top := viper.GetInt("chart.top")
	dir := viper.GetString("chart.dir")
	titles := chart.NewTitles(lang, top)

	renderers := []chart.Renderer{}
	for _, format := range viper.GetStringSlice("chart.formats") {
		r, err := chart.NewRenderer(format, dir, titles, top)
		if err != nil {
			fatal(err, "create chart renderer")
		}
		renderers = append(renderers, r)
	}

	scope := tally.NewTestScope("covid", map[string]string{"run": runID})

	p := pipeline.New(
		disease.New(viper.GetString("disease.url"), viper.GetDuration("disease.timeout")),
		chart.NewVisualizer(renderers...),
		scope,
	)

	countries, err := p.Run(context.Background())
	if err != nil {
		fatal(err, "run pipeline")
	}

	logMetrics(scope)

	if viper.GetBool("summary.enable") {
		chart.Summary(os.Stdout, countries, top, lang)
	}

	if !viper.GetBool("server.enable") {
		sentry.Flush(sentryFlush)
		return
	}

	s := server.NewServer(dir, countries)

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.WithField("prefix", logPrefix).Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			log.Error("Server Shutdown:", err)
		}
	}()

	if err := s.Run(":" + viper.GetString("server.port")); err != nil && err != http.ErrServerClosed {
		fatal(err, "serve charts")
	}
	sentry.Flush(sentryFlush)
}
