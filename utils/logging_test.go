package utils

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	. "gopkg.in/check.v1"
)

type LoggingSuite struct {
	origLogger zerolog.Logger
}

var _ = Suite(&LoggingSuite{})

func (s *LoggingSuite) SetUpTest(c *C) {
	s.origLogger = log.Logger
}

func (s *LoggingSuite) TearDownTest(c *C) {
	log.Logger = s.origLogger
}

func (s *LoggingSuite) TestSetupLoggerPicksWriterByFormat(c *C) {
	SetupLogger(&ConfigStructure{LogLevel: "warn", LogFormat: "json"})
	c.Check(zerolog.MessageFieldName, Equals, "message")

	SetupLogger(&ConfigStructure{LogLevel: "warn", LogFormat: "default"})
	c.Check(log.Logger, NotNil)
}

func (s *LoggingSuite) TestSetupJSONLoggerEmitsStructuredOutput(c *C) {
	var buf bytes.Buffer
	SetupJSONLogger("info", &buf)

	log.Info().Str("file", "car.p3s").Msg("decompressed")

	output := buf.String()
	c.Check(strings.Contains(output, `"message":"decompressed"`), Equals, true)
	c.Check(strings.Contains(output, `"file":"car.p3s"`), Equals, true)
	c.Check(strings.Contains(output, `"time"`), Equals, true)
}

func (s *LoggingSuite) TestSetupJSONLoggerHonorsLevel(c *C) {
	var buf bytes.Buffer
	SetupJSONLogger("warn", &buf)

	log.Info().Msg("suppressed")
	c.Check(buf.Len(), Equals, 0)

	log.Warn().Msg("emitted")
	c.Check(strings.Contains(buf.String(), "emitted"), Equals, true)
}

func (s *LoggingSuite) TestGetLogLevelOrDebug(c *C) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for levelStr, expected := range cases {
		c.Check(GetLogLevelOrDebug(levelStr), Equals, expected, Commentf("level %q", levelStr))
	}
}

func (s *LoggingSuite) TestGetLogLevelOrDebugFallsBackOnGarbage(c *C) {
	log.Logger = zerolog.New(&bytes.Buffer{})
	c.Check(GetLogLevelOrDebug("verbose"), Equals, zerolog.DebugLevel)
}

func (s *LoggingSuite) TestTimestampHookStampsEvents(c *C) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(&timestampHook{})

	logger.Info().Msg("stamped")
	output := buf.String()
	c.Check(strings.Contains(output, `"time"`), Equals, true)
	c.Check(strings.Contains(output, "stamped"), Equals, true)
}
