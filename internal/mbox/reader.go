// Package mbox reads RFC 4155 mailbox archives and hands each
// message to the import pipeline as a decoded RawEmail.
package mbox

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

// maxLineSize accommodates the very long lines HTML mail tends to
// contain.
const maxLineSize = 4 * 1024 * 1024

// Reader streams messages out of a single mbox file.
type Reader struct {
	path string
}

// NewReader fails if the archive does not exist; an unreadable
// source is the one fatal condition of an import run.
func NewReader(path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("mbox file not found: %s: %w", path, err)
	}
	return &Reader{path: path}, nil
}

// Parse walks the archive in order, invoking fn once per message.
// Messages that cannot even be parsed as RFC 5322 are logged and
// dropped; fn errors abort the walk.
func (r *Reader) Parse(ctx context.Context, fn func(domain.RawEmail) error) error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("open mbox %s: %w", r.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var current bytes.Buffer
	flush := func() error {
		if current.Len() == 0 {
			return nil
		}
		raw := current.Bytes()
		current = bytes.Buffer{}
		email, ok := parseMessage(raw)
		if !ok {
			return nil
		}
		return fn(email)
	}

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Text()
		if strings.HasPrefix(line, "From ") {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read mbox %s: %w", r.path, err)
	}
	return flush()
}

func parseMessage(raw []byte) (domain.RawEmail, bool) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		log.WithError(err).Debug("Skipping unparseable mbox message")
		return domain.RawEmail{}, false
	}

	email := domain.RawEmail{
		Subject: decodeHeader(msg.Header.Get("Subject")),
		Sender:  msg.Header.Get("From"),
		Body:    readBody(msg.Header, msg.Body),
	}
	if date, err := msg.Header.Date(); err == nil {
		email.Date = &date
	}
	return email, true
}

func decodeHeader(value string) string {
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}

// readBody extracts the message payload, walking multipart bodies
// with a preference for text/plain over text/html, and decoding the
// transfer encoding.
func readBody(header mail.Header, body io.Reader) string {
	contentType := header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return decodeTransfer(body, header.Get("Content-Transfer-Encoding"))
	}

	text, html := walkParts(multipart.NewReader(body, params["boundary"]))
	if text != "" {
		return text
	}
	return html
}

func walkParts(mr *multipart.Reader) (text, html string) {
	for {
		part, err := mr.NextPart()
		if err != nil {
			return text, html
		}
		mediaType, params, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			continue
		}
		switch {
		case mediaType == "text/plain":
			return decodeTransfer(part, part.Header.Get("Content-Transfer-Encoding")), html
		case mediaType == "text/html":
			html = decodeTransfer(part, part.Header.Get("Content-Transfer-Encoding"))
		case strings.HasPrefix(mediaType, "multipart/"):
			nestedText, nestedHTML := walkParts(multipart.NewReader(part, params["boundary"]))
			if nestedText != "" {
				return nestedText, html
			}
			if nestedHTML != "" {
				html = nestedHTML
			}
		}
	}
}

func decodeTransfer(r io.Reader, encoding string) string {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	}
	// Decoder errors mid-stream still leave a usable prefix.
	data, _ := io.ReadAll(r)
	body := string(data)

	// Some exports carry quoted-printable content without declaring
	// it. Soft line breaks and =3D escapes give it away.
	if strings.Count(body, "=") > 5 && (strings.Contains(body, "=3D") || strings.Contains(body, "=\n")) {
		if decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(body))); err == nil {
			body = string(decoded)
		}
	}
	return body
}
