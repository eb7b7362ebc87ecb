package logging

import (
	"io"

	"github.com/WangWilly/xLens/pkgs/clients/twitterclient"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// InitLogger initializes the application logger. The level string follows
// the LOG_LEVEL setting; unrecognized values fall back to info, and the
// debug flag overrides whatever was configured.
func InitLogger(level string, dbg bool, logFile io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	if dbg {
		parsed = log.DebugLevel
	}
	log.SetLevel(parsed)

	if logFile != nil {
		log.AddHook(lfshook.NewHook(logFile, nil))
	}
}

////////////////////////////////////////////////////////////////////////////////

// SetClientLogger gives the API client its own plain-text logger writing to
// the provided sink, keeping transport chatter out of the main log.
func SetClientLogger(client *twitterclient.Client, out io.Writer) {
	logger := log.New()
	logger.SetLevel(log.InfoLevel)
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
	})
	client.SetLogger(logger)
}
