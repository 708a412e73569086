package log

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"lifelink/internal/domain"
)

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{logrus.FieldKeyTime: "ts"},
	})
	return l
}

// Logger exposes the shared logger for code that has no request context.
func Logger() *logrus.Logger { return std }

// SetOutput redirects every entry, including the access log, to w.
func SetOutput(w io.Writer) { std.SetOutput(w) }

type sink struct{}

func (sink) Write(p []byte) (int, error) { return std.Out.Write(p) }

// Writer returns a writer that always targets the current sink, so the access
// log follows SetOutput.
func Writer() io.Writer { return sink{} }

// SetLevel parses a logrus level name; unknown names keep the current level.
func SetLevel(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		std.SetLevel(lvl)
	}
}

func entry(c *fiber.Ctx, kind, action string, fields map[string]any) *logrus.Entry {
	f := logrus.Fields{"kind": kind, "action": action}
	if c != nil {
		f["ip"] = c.IP()
		f["method"] = c.Method()
		f["path"] = c.Path()
		f["status"] = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			f["req_id"] = rid
		}
		if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
			f["user_id"] = u.ID
		}
	}
	if len(fields) > 0 {
		f["fields"] = fields
	}
	return std.WithFields(f)
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	entry(c, "info", action, fields).Info(action)
}

// Audit records a state change made through the API.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	entry(c, "audit", action, fields).Info(action)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	entry(c, "security", action, fields).Warn(action)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	entry(c, "error", action, fields).WithError(err).Error(action)
}
