/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatter for Akaylee Decipher. Structured, colorized
output with decipher-specific prefixes so strategy runs, faults, budget events,
and ranking output stand out in a scrolling log.
*/

package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DecipherFormatter provides structured, colorized log output.
type DecipherFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format formats a log entry.
func (f *DecipherFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder

	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[36m%s\033[0m ", timestamp)) // Cyan
		} else {
			output.WriteString(fmt.Sprintf("%s ", timestamp))
		}
	}

	level := strings.ToUpper(entry.Level.String())
	if f.Colors {
		output.WriteString(fmt.Sprintf("\033[%dm%s\033[0m ", f.levelColor(entry.Level), level))
	} else {
		output.WriteString(fmt.Sprintf("%s ", level))
	}

	if prefix := f.decipherPrefix(entry.Message); prefix != "" {
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[35m[%s]\033[0m ", prefix)) // Magenta
		} else {
			output.WriteString(fmt.Sprintf("[%s] ", prefix))
		}
	}

	if f.Caller && entry.HasCaller() {
		caller := fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[33m[%s]\033[0m ", caller)) // Yellow
		} else {
			output.WriteString(fmt.Sprintf("[%s] ", caller))
		}
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String()), nil
}

func (f *DecipherFormatter) levelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	case logrus.FatalLevel, logrus.PanicLevel:
		return 35 // Magenta
	default:
		return 37
	}
}

// decipherPrefix tags well-known engine messages for quick scanning.
func (f *DecipherFormatter) decipherPrefix(message string) string {
	switch {
	case strings.Contains(message, "Strategy completed"):
		return "STRATEGY"
	case strings.Contains(message, "Strategy fault"):
		return "FAULT"
	case strings.Contains(message, "budget exceeded"):
		return "BUDGET"
	case strings.Contains(message, "Run complete"):
		return "RANK"
	case strings.Contains(message, "Engine"):
		return "ENGINE"
	default:
		return ""
	}
}

func (f *DecipherFormatter) formatFields(fields logrus.Fields) string {
	var parts []string
	for key, value := range fields {
		formatted := f.formatValue(key, value)
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, formatted)) // Blue key, Green value
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, formatted))
		}
	}
	return strings.Join(parts, " ")
}

func (f *DecipherFormatter) formatValue(key string, value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case float64:
		if key == "score" {
			return fmt.Sprintf("%.3f", v)
		}
		return fmt.Sprintf("%v", v)
	case string:
		if key == "session_id" && len(v) > 8 {
			return v[:8] + "..."
		}
		if len(v) > 60 {
			return fmt.Sprintf("%s...", v[:60])
		}
		return v
	case []byte:
		if len(v) > 20 {
			return fmt.Sprintf("[%d bytes]", len(v))
		}
		return fmt.Sprintf("%x", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
