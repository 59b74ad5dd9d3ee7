package mbox

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

const plainArchive = `From noreply@zomato.com Sat Jun 05 09:00:00 2021
From: Zomato <noreply@zomato.com>
To: someone@example.com
Subject: Your Zomato order is confirmed
Date: Sat, 05 Jun 2021 14:30:00 +0530

ORDER ID: 12345678
Thank you for ordering from Biryani Blues
Total paid: not really
From noreply@zomato.com Mon Jun 07 20:00:00 2021
From: Zomato <noreply@zomato.com>
To: someone@example.com
Subject: =?UTF-8?Q?Your_order_for_=E2=82=B9440?=
Date: Mon, 07 Jun 2021 20:00:00 +0530

second message body
`

func writeArchive(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.mbox")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func collect(t *testing.T, r *Reader) []domain.RawEmail {
	t.Helper()
	var emails []domain.RawEmail
	err := r.Parse(context.Background(), func(e domain.RawEmail) error {
		emails = append(emails, e)
		return nil
	})
	require.NoError(t, err)
	return emails
}

func TestNewReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.mbox"))
	assert.Error(t, err)
}

func TestParseSplitsMessages(t *testing.T) {
	r, err := NewReader(writeArchive(t, plainArchive))
	require.NoError(t, err)

	emails := collect(t, r)
	require.Len(t, emails, 2)

	first := emails[0]
	assert.Equal(t, "Your Zomato order is confirmed", first.Subject)
	assert.Contains(t, first.Sender, "noreply@zomato.com")
	assert.Contains(t, first.Body, "ORDER ID: 12345678")
	assert.Contains(t, first.Body, "Biryani Blues")
	require.NotNil(t, first.Date)
	assert.True(t, first.Date.Equal(time.Date(2021, time.June, 5, 9, 0, 0, 0, time.UTC)))

	// Encoded-word subjects are decoded.
	assert.Equal(t, "Your order for ₹440", emails[1].Subject)
}

func TestParseQuotedPrintableBody(t *testing.T) {
	archive := "From noreply@zomato.com Sat Jun 05 09:00:00 2021\n" +
		"From: Zomato <noreply@zomato.com>\n" +
		"Subject: order receipt\n" +
		"Content-Type: text/html; charset=utf-8\n" +
		"Content-Transfer-Encoding: quoted-printable\n" +
		"\n" +
		"<td class=3D\"total\">Total paid =E2=82=B9440.00</td>=\n" +
		" and more\n"

	r, err := NewReader(writeArchive(t, archive))
	require.NoError(t, err)

	emails := collect(t, r)
	require.Len(t, emails, 1)
	assert.Contains(t, emails[0].Body, `<td class="total">Total paid ₹440.00</td> and more`)
}

func TestParseUndeclaredQuotedPrintable(t *testing.T) {
	archive := "From noreply@zomato.com Sat Jun 05 09:00:00 2021\n" +
		"From: Zomato <noreply@zomato.com>\n" +
		"Subject: order receipt\n" +
		"\n" +
		"<td class=3D\"a\">x</td><td class=3D\"b\">y</td><td class=3D\"c\">z</td>\n" +
		"<td class=3D\"d\">p</td><td class=3D\"e\">q</td><td class=3D\"f\">r</td>\n"

	r, err := NewReader(writeArchive(t, archive))
	require.NoError(t, err)

	emails := collect(t, r)
	require.Len(t, emails, 1)
	assert.Contains(t, emails[0].Body, `<td class="a">x</td>`)
}

func TestParseMultipartPrefersPlainText(t *testing.T) {
	archive := "From noreply@zomato.com Sat Jun 05 09:00:00 2021\n" +
		"From: Zomato <noreply@zomato.com>\n" +
		"Subject: order receipt\n" +
		"Content-Type: multipart/alternative; boundary=XYZ\n" +
		"\n" +
		"--XYZ\n" +
		"Content-Type: text/html; charset=utf-8\n" +
		"\n" +
		"<b>html version</b>\n" +
		"--XYZ\n" +
		"Content-Type: text/plain; charset=utf-8\n" +
		"\n" +
		"plain version\n" +
		"--XYZ--\n"

	r, err := NewReader(writeArchive(t, archive))
	require.NoError(t, err)

	emails := collect(t, r)
	require.Len(t, emails, 1)
	assert.Contains(t, emails[0].Body, "plain version")
	assert.NotContains(t, emails[0].Body, "html version")
}

func TestParseMultipartFallsBackToHTML(t *testing.T) {
	archive := "From noreply@zomato.com Sat Jun 05 09:00:00 2021\n" +
		"From: Zomato <noreply@zomato.com>\n" +
		"Subject: order receipt\n" +
		"Content-Type: multipart/alternative; boundary=XYZ\n" +
		"\n" +
		"--XYZ\n" +
		"Content-Type: text/html; charset=utf-8\n" +
		"\n" +
		"<b>html only</b>\n" +
		"--XYZ--\n"

	r, err := NewReader(writeArchive(t, archive))
	require.NoError(t, err)

	emails := collect(t, r)
	require.Len(t, emails, 1)
	assert.Contains(t, emails[0].Body, "html only")
}

func TestParseDropsUnparseableMessage(t *testing.T) {
	archive := "From garbage\n" +
		"this is not : a valid header block because\nit just rambles on\n" +
		"From noreply@zomato.com Sat Jun 05 09:00:00 2021\n" +
		"From: Zomato <noreply@zomato.com>\n" +
		"Subject: valid one\n" +
		"\n" +
		"body\n"

	r, err := NewReader(writeArchive(t, archive))
	require.NoError(t, err)

	emails := collect(t, r)
	require.Len(t, emails, 1)
	assert.Equal(t, "valid one", emails[0].Subject)
}

func TestParseCallbackErrorAborts(t *testing.T) {
	r, err := NewReader(writeArchive(t, plainArchive))
	require.NoError(t, err)

	calls := 0
	parseErr := r.Parse(context.Background(), func(domain.RawEmail) error {
		calls++
		return context.Canceled
	})
	assert.ErrorIs(t, parseErr, context.Canceled)
	assert.Equal(t, 1, calls)
}
