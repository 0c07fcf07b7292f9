package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	entry   *logrus.Entry
	console bool
}

// Properties mirrors logger.properties.
type Properties struct {
	LogFilename string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
	Level       string
	Console     bool
}

func readLoggerProperties(dir string) (Properties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "logs/pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	v.SetDefault("console", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Properties{}, fmt.Errorf("read logger properties: %w", err)
		}
	}

	return Properties{
		LogFilename: cast.ToString(v.Get("logFilename")),
		MaxSize:     cast.ToInt(v.Get("maxSize")),
		MaxBackups:  cast.ToInt(v.Get("maxBackups")),
		MaxAge:      cast.ToInt(v.Get("maxAge")),
		Compress:    cast.ToBool(v.Get("compress")),
		Level:       cast.ToString(v.Get("level")),
		Console:     cast.ToBool(v.Get("console")),
	}, nil
}

// Init reads <dir>/logger.properties and points logrus at a rotating file.
// A missing file falls back to defaults; a malformed one is an error.
func (l *Logger) Init(dir string) error {
	props, err := readLoggerProperties(dir)
	if err != nil {
		return err
	}
	l.Configure(props, &lumberjack.Logger{
		Filename:   props.LogFilename,
		MaxSize:    props.MaxSize,
		MaxBackups: props.MaxBackups,
		MaxAge:     props.MaxAge,
		Compress:   props.Compress,
	})
	return nil
}

// Configure wires logrus to out with the given properties and stamps every
// entry with a fresh session id.
func (l *Logger) Configure(props Properties, out io.Writer) {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(out)
	base.SetLevel(ParseLevel(props.Level))

	l.entry = base.WithField("session", uuid.NewString())
	l.console = props.Console
}

// SetConsole toggles the stdout echo. The terminal frontend turns it off so
// log lines do not land on the game screen.
func (l *Logger) SetConsole(on bool) {
	l.console = on
}

func ParseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) log() *logrus.Entry {
	if l.entry == nil {
		l.entry = logrus.NewEntry(logrus.StandardLogger())
	}
	return l.entry
}

func (l *Logger) echo(prefix, message string) {
	if l.console {
		fmt.Println(prefix, message)
	}
}

func (l *Logger) Info(message string) {
	l.log().Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	l.log().Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	l.log().Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	l.log().Warn(message)
	l.echo("Warn:", message)
}

// Fatal logs, echoes to stderr and exits with status 1.
func (l *Logger) Fatal(message string) {
	fmt.Fprintln(os.Stderr, "Fatal:", message)
	l.log().Fatal(message)
}
