package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"ttiring-notification-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

// Headers that never leave the process in a bug report.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"X-Api-Key":     true,
	"Cookie":        true,
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	var trace []string
	for {
		f, more := frames.Next()
		trace = append(trace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return trace
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

// splitMessageForDiscord cuts message on line boundaries into chunks of at most DiscordMaxMessageLen runes.
func splitMessageForDiscord(message string) []string {
	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, strings.TrimSuffix(cur.String(), "\n"))
			cur.Reset()
			curLen = 0
		}
	}

	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		n := utf8.RuneCountInString(line)
		if curLen+n > DiscordMaxMessageLen {
			flush()
			for n > DiscordMaxMessageLen {
				r := []rune(line)
				chunks = append(chunks, string(r[:DiscordMaxMessageLen]))
				line = string(r[DiscordMaxMessageLen:])
				n = utf8.RuneCountInString(line)
			}
		}
		cur.WriteString(line)
		curLen += n
	}
	flush()
	return chunks
}

func buildInternalServerErrorReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("============ TTIRING NOTIFICATION ERROR ============\n")
	if c != nil && c.Request != nil {
		sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
		sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
		sb.WriteString("----------------------------------------------------\n")

		if len(c.Request.Header) > 0 {
			keys := make([]string, 0, len(c.Request.Header))
			for k := range c.Request.Header {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			sb.WriteString("Headers :\n")
			for _, k := range keys {
				v := strings.Join(c.Request.Header[k], ", ")
				if redactedHeaders[k] {
					v = "[REDACTED]"
				}
				sb.WriteString(fmt.Sprintf("    %s: %s\n", k, v))
			}
			sb.WriteString("----------------------------------------------------\n")
		}

		if params := c.Request.URL.Query().Encode(); params != "" {
			sb.WriteString(fmt.Sprintf("Params  : %s\n", params))
		}

		if c.Request.Body != nil {
			bodyBytes, err := io.ReadAll(c.Request.Body)
			if err == nil && len(bodyBytes) > 0 {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
				sb.WriteString("Body    :\n")
				var pretty bytes.Buffer
				if err := json.Indent(&pretty, bodyBytes, "    ", "  "); err == nil {
					sb.WriteString("    " + pretty.String() + "\n")
				} else {
					sb.WriteString("    " + string(bodyBytes) + "\n")
				}
				sb.WriteString("----------------------------------------------------\n")
			}
		}
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}
	sb.WriteString("====================================================\n")
	return sb.String()
}
