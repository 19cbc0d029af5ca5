// Package logger sets up the internal logrus logger and the access log.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	internalLogFile = "folio.log"
	accessLogFile   = "access.log"
	errorLogFile    = "errors.log"
)

// OutputConf selects where a log is written to. If no directory is set
// the log goes to stderr.
type OutputConf struct {
	Dir    string `yaml:"dir"`
	StdErr bool   `yaml:"stderr"`
}

// InternalConf configures application-internal logging.
// Level accepts standard log levels (e.g. DEBUG, INFO, WARN, ERROR).
type InternalConf struct {
	OutputConf `yaml:",inline"`

	Level string    `yaml:"level"`
	Smart SmartConf `yaml:"smart"`
}

// SmartConf enables duplicating error logs into a dedicated directory.
// If Dir is empty, the internal log directory is used.
type SmartConf struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Init configures the standard logrus logger
func Init(conf InternalConf) error {
	level := log.InfoLevel
	if conf.Level != "" {
		var err error
		level, err = log.ParseLevel(strings.ToLower(conf.Level))
		if err != nil {
			return errors.Wrap(err, "invalid log level")
		}
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	w, err := output(conf.OutputConf, internalLogFile)
	if err != nil {
		return err
	}
	log.SetOutput(w)
	if conf.Smart.Enabled {
		dir := conf.Smart.Dir
		if dir == "" {
			dir = conf.Dir
		}
		if dir == "" {
			return errors.New("smart logging requires a directory")
		}
		f, err := openLogFile(dir, errorLogFile)
		if err != nil {
			return err
		}
		log.AddHook(newErrorHook(f))
	}
	return nil
}

// AccessWriter returns the writer the access log is written to
func AccessWriter(conf OutputConf) (io.Writer, error) {
	return output(conf, accessLogFile)
}

func output(conf OutputConf, filename string) (io.Writer, error) {
	var writers []io.Writer
	if conf.Dir != "" {
		f, err := openLogFile(conf.Dir, filename)
		if err != nil {
			return nil, err
		}
		writers = append(writers, f)
	}
	if conf.StdErr || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}
	if len(writers) == 1 {
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}

func openLogFile(dir, filename string) (*os.File, error) {
	path := filepath.Join(dir, filename)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open log file '%s'", path)
	}
	return f, nil
}

// errorHook writes error entries to an additional writer as JSON
type errorHook struct {
	mu        sync.Mutex
	w         io.Writer
	formatter log.Formatter
}

func newErrorHook(w io.Writer) *errorHook {
	return &errorHook{
		w:         w,
		formatter: &log.JSONFormatter{},
	}
}

// Levels implements the logrus.Hook interface
func (*errorHook) Levels() []log.Level {
	return []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel}
}

// Fire implements the logrus.Hook interface
func (h *errorHook) Fire(entry *log.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(line)
	return err
}
